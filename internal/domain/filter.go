package domain

// GenreAll selects every genre.
const GenreAll = "All"

// Filter carries the full filter state for one request: an exact genre match
// (or GenreAll) combined with an inclusive year range.
type Filter struct {
	Genre    string `json:"genre"`
	YearFrom int    `json:"yearFrom"`
	YearTo   int    `json:"yearTo"`
}

// Matches reports whether the movie satisfies both predicates.
func (f Filter) Matches(m Movie) bool {
	if m.Year < f.YearFrom || m.Year > f.YearTo {
		return false
	}
	if f.Genre != "" && f.Genre != GenreAll && m.Genre != f.Genre {
		return false
	}
	return true
}
