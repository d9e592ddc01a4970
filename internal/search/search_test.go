package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingMatcher struct{}

func (failingMatcher) Match([]Record, []string, string, float64) ([]Record, error) {
	return nil, errors.New("index unavailable")
}

type panickingMatcher struct{}

func (panickingMatcher) Match([]Record, []string, string, float64) ([]Record, error) {
	panic("index blew up")
}

func cityRecords() []Record {
	return []Record{
		{"name": "Paris", "country": "France"},
		{"name": "Lyon", "country": "France"},
		{"name": "Parc floral", "country": "France"},
	}
}

func TestSearch_EmptyInputReturnsEmpty(t *testing.T) {
	got := Search(NewFuzzyIndex(), nil, []string{"name"}, "paris", DefaultThreshold)
	assert.Empty(t, got)
}

func TestSearch_BlankQueryReturnsInputUnchanged(t *testing.T) {
	records := cityRecords()

	for _, q := range []string{"", "   ", "\t"} {
		got := Search(NewFuzzyIndex(), records, []string{"name"}, q, DefaultThreshold)
		require.Len(t, got, len(records))
		for i := range records {
			assert.Equal(t, records[i], got[i], "query %q must keep original order", q)
		}
	}
}

func TestSearch_ExactMatchRankedAndFiltered(t *testing.T) {
	got := Search(NewFuzzyIndex(), cityRecords(), []string{"name"}, "paris", DefaultThreshold)

	require.NotEmpty(t, got)
	assert.Equal(t, "Paris", got[0].FieldText("name"))
	for _, r := range got {
		assert.NotEqual(t, "Lyon", r.FieldText("name"), "non-matching record must be dropped")
	}
}

func TestSearch_LooseThresholdKeepsAllSubsequenceMatches(t *testing.T) {
	got := Search(NewFuzzyIndex(), cityRecords(), []string{"name"}, "par", 1.0)

	names := make([]string, 0, len(got))
	for _, r := range got {
		names = append(names, r.FieldText("name"))
	}
	assert.Contains(t, names, "Paris")
	assert.Contains(t, names, "Parc floral")
	assert.NotContains(t, names, "Lyon")
}

func TestSearch_MatcherErrorDegradesToUnfiltered(t *testing.T) {
	records := cityRecords()

	got := Search(failingMatcher{}, records, []string{"name"}, "paris", DefaultThreshold)
	assert.Equal(t, records, got)
}

func TestSearch_MatcherPanicDegradesToUnfiltered(t *testing.T) {
	records := cityRecords()

	var got []Record
	require.NotPanics(t, func() {
		got = Search(panickingMatcher{}, records, []string{"name"}, "paris", DefaultThreshold)
	})
	assert.Equal(t, records, got)
}

func TestSearch_NegativeThresholdUsesDefault(t *testing.T) {
	got := Search(NewFuzzyIndex(), cityRecords(), []string{"name"}, "paris", -1)
	require.NotEmpty(t, got)
	assert.Equal(t, "Paris", got[0].FieldText("name"))
}

func TestSearch_MultipleFields(t *testing.T) {
	records := []Record{
		{"name": "Jean", "city": "Paris"},
		{"name": "Paul", "city": "Lyon"},
	}

	got := Search(NewFuzzyIndex(), records, []string{"name", "city"}, "paris", DefaultThreshold)
	require.NotEmpty(t, got)
	assert.Equal(t, "Jean", got[0].FieldText("name"))
}

func TestRecord_FieldText(t *testing.T) {
	r := Record{"name": "Paris", "population": 2100000, "mayor": nil}

	assert.Equal(t, "Paris", r.FieldText("name"))
	assert.Equal(t, "", r.FieldText("population"))
	assert.Equal(t, "", r.FieldText("mayor"))
	assert.Equal(t, "", r.FieldText("missing"))
}
