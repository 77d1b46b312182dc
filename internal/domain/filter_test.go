package domain

import "testing"

func TestFilterMatches(t *testing.T) {
	movie := Movie{Film: "Inception", Genre: "Action", Year: 2010}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"all genres full span", Filter{Genre: GenreAll, YearFrom: 2007, YearTo: 2011}, true},
		{"empty genre counts as all", Filter{YearFrom: 2007, YearTo: 2011}, true},
		{"exact genre", Filter{Genre: "Action", YearFrom: 2010, YearTo: 2010}, true},
		{"other genre", Filter{Genre: "Comedy", YearFrom: 2007, YearTo: 2011}, false},
		{"year below range", Filter{Genre: GenreAll, YearFrom: 2011, YearTo: 2012}, false},
		{"year above range", Filter{Genre: GenreAll, YearFrom: 2007, YearTo: 2009}, false},
		{"inverted range matches nothing", Filter{Genre: GenreAll, YearFrom: 2011, YearTo: 2009}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(movie); got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
