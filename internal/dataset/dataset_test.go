package dataset

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkumar312/movie-ratings-dashboard/internal/domain"
)

func TestLoadFixture(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "movies.csv"))
	require.NoError(t, err)

	assert.Equal(t, 10, table.Len())
	assert.Equal(t, []string{"Action", "Adventure", "Comedy", "Drama", "Horror"}, table.Genres())

	yearMin, yearMax := table.YearRange()
	assert.Equal(t, 2007, yearMin)
	assert.Equal(t, 2010, yearMax)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.csv"))
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, KindMissingFile, le.Kind)
}

func TestLoadIdempotent(t *testing.T) {
	path := filepath.Join("testdata", "movies.csv")
	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, first.Len(), second.Len())
	assert.Equal(t, first.Movies(), second.Movies())
	assert.Equal(t, first.Genres(), second.Genres())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		kind ErrorKind
	}{
		{
			name: "wrong column name",
			csv:  "Film,Genre,Critic,AudienceRating,BudgetMillions,Year\n",
			kind: KindBadSchema,
		},
		{
			name: "missing column",
			csv:  "Film,Genre,CriticRating,AudienceRating,BudgetMillions\n",
			kind: KindBadSchema,
		},
		{
			name: "non-numeric rating",
			csv:  "Film,Genre,CriticRating,AudienceRating,BudgetMillions,Year\nFoo,Drama,high,50,10,2009\n",
			kind: KindBadValue,
		},
		{
			name: "rating out of range",
			csv:  "Film,Genre,CriticRating,AudienceRating,BudgetMillions,Year\nFoo,Drama,120,50,10,2009\n",
			kind: KindBadValue,
		},
		{
			name: "negative budget",
			csv:  "Film,Genre,CriticRating,AudienceRating,BudgetMillions,Year\nFoo,Drama,80,50,-10,2009\n",
			kind: KindBadValue,
		},
		{
			name: "non-integer year",
			csv:  "Film,Genre,CriticRating,AudienceRating,BudgetMillions,Year\nFoo,Drama,80,50,10,soon\n",
			kind: KindBadValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.csv))
			require.Error(t, err)

			var le *LoadError
			require.True(t, errors.As(err, &le), "error should be a LoadError: %v", err)
			assert.Equal(t, tt.kind, le.Kind)
		})
	}
}

func TestParseEmptyBody(t *testing.T) {
	table, err := Parse(strings.NewReader("Film,Genre,CriticRating,AudienceRating,BudgetMillions,Year\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func threeRowTable() *Table {
	return New([]domain.Movie{
		{Film: "A", Genre: "Comedy", CriticRating: 70, AudienceRating: 60, BudgetMillions: 10, Year: 2010},
		{Film: "B", Genre: "Drama", CriticRating: 80, AudienceRating: 75, BudgetMillions: 20, Year: 2012},
		{Film: "C", Genre: "Comedy", CriticRating: 50, AudienceRating: 55, BudgetMillions: 5, Year: 2010},
	})
}

func TestFilterScenario(t *testing.T) {
	table := threeRowTable()

	comedy := table.Filter(domain.Filter{Genre: "Comedy", YearFrom: 2010, YearTo: 2012})
	assert.Equal(t, 2, comedy.Len())

	year2012 := table.Filter(domain.Filter{Genre: domain.GenreAll, YearFrom: 2012, YearTo: 2012})
	assert.Equal(t, 1, year2012.Len())

	both := table.Filter(domain.Filter{Genre: "Comedy", YearFrom: 2012, YearTo: 2012})
	assert.Equal(t, 0, both.Len())
}

func TestFilterFullSpanMatchesAll(t *testing.T) {
	table := threeRowTable()
	filtered := table.Filter(table.FullSpan())
	assert.Equal(t, table.Len(), filtered.Len())
}

func TestFilterNeverExceedsTotal(t *testing.T) {
	table := threeRowTable()
	filters := []domain.Filter{
		{Genre: "Comedy", YearFrom: 2000, YearTo: 2020},
		{Genre: "Drama", YearFrom: 2012, YearTo: 2012},
		{Genre: domain.GenreAll, YearFrom: 2011, YearTo: 2011},
		{Genre: "Horror", YearFrom: 2000, YearTo: 2020},
	}
	for _, f := range filters {
		assert.LessOrEqual(t, table.Filter(f).Len(), table.Len())
	}
}

func TestFilterOutsideYearSpanIsEmpty(t *testing.T) {
	table := threeRowTable()
	filtered := table.Filter(domain.Filter{Genre: domain.GenreAll, YearFrom: 1990, YearTo: 1995})
	assert.Equal(t, 0, filtered.Len())
	assert.Empty(t, filtered.Genres())
}

func TestHead(t *testing.T) {
	table := threeRowTable()
	assert.Len(t, table.Head(2), 2)
	assert.Len(t, table.Head(10), 3)
	assert.Empty(t, table.Head(0))
	assert.Empty(t, table.Head(-1))
}
