package httpserver

import (
	"net/url"
	"testing"

	"github.com/mkumar312/movie-ratings-dashboard/internal/domain"
)

func FuzzBuildRequestFilter(f *testing.F) {
	seeds := []string{
		"genre=Comedy&yearFrom=2008&yearTo=2010",
		"yearFrom=abc",
		"jointKind=hex&bins=20",
		"bins=100000",
		"limit=0",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	defaults := domain.Filter{Genre: domain.GenreAll, YearFrom: 2007, YearTo: 2011}
	f.Fuzz(func(t *testing.T, raw string) {
		values, err := url.ParseQuery(raw)
		if err != nil {
			return
		}
		_, _ = buildRequestFilter(values, defaults)
	})
}
