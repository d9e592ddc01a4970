package search

import (
	"math"
	"sort"

	"cast-match/internal/domain/fuzzy"
)

// NewRelevanceMatcher returns a Matcher built on the in-house subsequence
// test and relevance scorer instead of the library index. It honors the same
// threshold scale: a record's best field score is normalized against the
// exact-match score and converted to a distance.
func NewRelevanceMatcher() Matcher {
	return relevanceMatcher{}
}

type relevanceMatcher struct{}

func (relevanceMatcher) Match(records []Record, fields []string, query string, threshold float64) ([]Record, error) {
	type scoredRecord struct {
		record Record
		score  int
	}

	kept := make([]scoredRecord, 0, len(records))
	for _, r := range records {
		best := 0
		for _, f := range fields {
			text := r.FieldText(f)
			if text == "" || !fuzzy.IsSubsequenceMatch(query, text) {
				continue
			}
			if s := fuzzy.RelevanceScore(query, text); s > best {
				best = s
			}
		}
		if best == 0 {
			continue
		}

		normalized := math.Min(float64(best), 100) / 100
		if 1-normalized > threshold {
			continue
		}
		kept = append(kept, scoredRecord{record: r, score: best})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	out := make([]Record, 0, len(kept))
	for _, s := range kept {
		out = append(out, s.record)
	}
	return out, nil
}
