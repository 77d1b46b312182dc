// Package dataset loads the movie ratings CSV into an immutable in-memory
// table and derives read-only filtered projections from it.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mkumar312/movie-ratings-dashboard/internal/domain"
)

// Columns is the exact header the source CSV must carry, in order.
var Columns = []string{"Film", "Genre", "CriticRating", "AudienceRating", "BudgetMillions", "Year"}

// ErrorKind classifies load failures.
type ErrorKind string

const (
	KindMissingFile ErrorKind = "missing_file"
	KindBadSchema   ErrorKind = "bad_schema"
	KindBadValue    ErrorKind = "bad_value"
)

// LoadError is fatal: the caller must not serve a partial dataset.
type LoadError struct {
	Kind   ErrorKind
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dataset: load %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Table is the loaded dataset plus metadata derived from it. A Table is
// read-only after construction; Filter returns a new Table sharing rows.
type Table struct {
	movies  []domain.Movie
	genres  []string
	yearMin int
	yearMax int
}

// New builds a Table from in-memory rows, deriving the genre list and year
// span. Rows are not validated here; Parse is the validating entry point.
func New(movies []domain.Movie) *Table {
	t := &Table{movies: movies}
	seen := make(map[string]struct{})
	for i, m := range movies {
		if _, ok := seen[m.Genre]; !ok {
			seen[m.Genre] = struct{}{}
			t.genres = append(t.genres, m.Genre)
		}
		if i == 0 || m.Year < t.yearMin {
			t.yearMin = m.Year
		}
		if i == 0 || m.Year > t.yearMax {
			t.yearMax = m.Year
		}
	}
	sort.Strings(t.genres)
	return t
}

// Load reads and validates the CSV at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindMissingFile, Source: path, Err: err}
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = path
		}
		return nil, err
	}
	return table, nil
}

// Parse reads the full CSV from r, validating the header and every value.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &LoadError{Kind: KindBadSchema, Source: "csv", Err: fmt.Errorf("read header: %w", err)}
	}
	if err := checkHeader(header); err != nil {
		return nil, &LoadError{Kind: KindBadSchema, Source: "csv", Err: err}
	}

	var movies []domain.Movie
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &LoadError{Kind: KindBadValue, Source: "csv", Err: fmt.Errorf("line %d: %w", line, err)}
		}
		movie, err := parseRow(record)
		if err != nil {
			return nil, &LoadError{Kind: KindBadValue, Source: "csv", Err: fmt.Errorf("line %d: %w", line, err)}
		}
		movies = append(movies, movie)
	}

	return New(movies), nil
}

func checkHeader(header []string) error {
	if len(header) != len(Columns) {
		return fmt.Errorf("expected %d columns, got %d", len(Columns), len(header))
	}
	for i, want := range Columns {
		if strings.TrimSpace(header[i]) != want {
			return fmt.Errorf("column %d: expected %q, got %q", i+1, want, strings.TrimSpace(header[i]))
		}
	}
	return nil
}

func parseRow(record []string) (domain.Movie, error) {
	if len(record) != len(Columns) {
		return domain.Movie{}, fmt.Errorf("expected %d fields, got %d", len(Columns), len(record))
	}

	critic, err := parseRating(record[2], "CriticRating")
	if err != nil {
		return domain.Movie{}, err
	}
	audience, err := parseRating(record[3], "AudienceRating")
	if err != nil {
		return domain.Movie{}, err
	}
	budget, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("BudgetMillions: %q is not numeric", record[4])
	}
	if budget < 0 {
		return domain.Movie{}, fmt.Errorf("BudgetMillions: %v is negative", budget)
	}
	year, err := strconv.Atoi(strings.TrimSpace(record[5]))
	if err != nil {
		return domain.Movie{}, fmt.Errorf("Year: %q is not an integer", record[5])
	}

	return domain.Movie{
		Film:           strings.TrimSpace(record[0]),
		Genre:          strings.TrimSpace(record[1]),
		CriticRating:   critic,
		AudienceRating: audience,
		BudgetMillions: budget,
		Year:           year,
	}, nil
}

func parseRating(raw, field string) (float64, error) {
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not numeric", field, raw)
	}
	if val < 0 || val > 100 {
		return 0, fmt.Errorf("%s: %v outside [0,100]", field, val)
	}
	return val, nil
}

// Len returns the row count.
func (t *Table) Len() int { return len(t.movies) }

// Movies exposes the underlying rows. Callers must not mutate them.
func (t *Table) Movies() []domain.Movie { return t.movies }

// Genres lists the distinct genres in sorted order.
func (t *Table) Genres() []string { return t.genres }

// YearRange returns the min and max year present in the table. Both are zero
// for an empty table.
func (t *Table) YearRange() (int, int) { return t.yearMin, t.yearMax }

// FullSpan returns a filter matching every row of the table.
func (t *Table) FullSpan() domain.Filter {
	return domain.Filter{Genre: domain.GenreAll, YearFrom: t.yearMin, YearTo: t.yearMax}
}

// Filter derives the subset of rows matching f. Zero matches yields an empty
// table, never an error.
func (t *Table) Filter(f domain.Filter) *Table {
	matched := make([]domain.Movie, 0, len(t.movies))
	for _, m := range t.movies {
		if f.Matches(m) {
			matched = append(matched, m)
		}
	}
	return New(matched)
}

// Head returns the first n rows, or all rows when fewer exist.
func (t *Table) Head(n int) []domain.Movie {
	if n < 0 {
		n = 0
	}
	if n > len(t.movies) {
		n = len(t.movies)
	}
	return t.movies[:n]
}

// CriticRatings extracts the critic rating column.
func (t *Table) CriticRatings() []float64 {
	return t.column(func(m domain.Movie) float64 { return m.CriticRating })
}

// AudienceRatings extracts the audience rating column.
func (t *Table) AudienceRatings() []float64 {
	return t.column(func(m domain.Movie) float64 { return m.AudienceRating })
}

// Budgets extracts the budget column, in millions.
func (t *Table) Budgets() []float64 {
	return t.column(func(m domain.Movie) float64 { return m.BudgetMillions })
}

// Years extracts the year column as floats for numeric helpers.
func (t *Table) Years() []float64 {
	return t.column(func(m domain.Movie) float64 { return float64(m.Year) })
}

func (t *Table) column(get func(domain.Movie) float64) []float64 {
	out := make([]float64, len(t.movies))
	for i, m := range t.movies {
		out[i] = get(m)
	}
	return out
}
