package usecase

import (
	"context"

	"cast-match/internal/search"
)

type SearchUsecase interface {
	FuzzySearch(ctx context.Context, records []search.Record, fields []string, query string, threshold *float64) []search.Record
}

type Searcher struct {
	matcher search.Matcher
}

// NewSearchUsecase builds the search usecase around the given matcher,
// defaulting to the fuzzy index when none is supplied.
func NewSearchUsecase(m search.Matcher) *Searcher {
	if m == nil {
		m = search.NewFuzzyIndex()
	}
	return &Searcher{matcher: m}
}

func (u *Searcher) FuzzySearch(_ context.Context, records []search.Record, fields []string, query string, threshold *float64) []search.Record {
	t := search.DefaultThreshold
	if threshold != nil {
		t = *threshold
	}
	return search.Search(u.matcher, records, fields, query, t)
}
