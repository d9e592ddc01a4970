package search

import (
	"fmt"
	"strings"

	fuzzylib "github.com/sahilm/fuzzy"
)

// DefaultThreshold is the normalized match threshold applied when callers do
// not supply one: 0 keeps only exact matches, 1 keeps anything.
const DefaultThreshold = 0.5

// Matcher filters and reorders records for a query over the given fields.
// The engine depends only on this narrow interface so the index backend can
// be swapped without touching callers.
type Matcher interface {
	Match(records []Record, fields []string, query string, threshold float64) ([]Record, error)
}

// NewFuzzyIndex returns the default Matcher, backed by the sahilm/fuzzy
// approximate-matching index.
func NewFuzzyIndex() Matcher {
	return fuzzyIndex{}
}

type fuzzyIndex struct{}

// recordSource adapts a record batch to fuzzy.Source, exposing the named
// fields of each record as one searchable string.
type recordSource struct {
	records []Record
	fields  []string
}

func (s recordSource) String(i int) string {
	parts := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		if v := s.records[i].FieldText(f); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

func (s recordSource) Len() int {
	return len(s.records)
}

// Match runs the query against the index and keeps records whose normalized
// distance is within the threshold, best matches first. The library scores on
// an open-ended scale, so distance is derived from the score of the query
// matched against itself: 1 - score/selfScore, floored at 0.
func (fuzzyIndex) Match(records []Record, fields []string, query string, threshold float64) ([]Record, error) {
	if len(records) == 0 {
		return []Record{}, nil
	}

	self := fuzzylib.Find(query, []string{query})
	if len(self) == 0 || self[0].Score <= 0 {
		return nil, fmt.Errorf("fuzzy index: no usable reference score for %q", query)
	}
	selfScore := float64(self[0].Score)

	matches := fuzzylib.FindFrom(query, recordSource{records: records, fields: fields})

	out := make([]Record, 0, len(matches))
	for _, m := range matches {
		distance := 1 - float64(m.Score)/selfScore
		if distance < 0 {
			distance = 0
		}
		if distance > threshold {
			continue
		}
		out = append(out, records[m.Index])
	}
	return out, nil
}
