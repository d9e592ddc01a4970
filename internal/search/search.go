// Package search provides ranked fuzzy search over lists of
// field-addressable records.
package search

import (
	"fmt"
	"strings"
)

// Search filters and reorders records against query using m. A blank or
// whitespace-only query returns the input unchanged in its original order,
// and an empty batch returns an empty batch. A negative threshold selects
// DefaultThreshold.
//
// Matching failures never reach the caller: when the matcher errors or
// panics the original, unfiltered batch is returned instead.
func Search(m Matcher, records []Record, fields []string, query string, threshold float64) []Record {
	if len(records) == 0 {
		return []Record{}
	}
	if strings.TrimSpace(query) == "" {
		return records
	}
	if threshold < 0 {
		threshold = DefaultThreshold
	}

	out, err := safeMatch(m, records, fields, query, threshold)
	if err != nil {
		return records
	}
	return out
}

func safeMatch(m Matcher, records []Record, fields []string, query string, threshold float64) (out []Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("matcher panic: %v", r)
		}
	}()
	return m.Match(records, fields, query, threshold)
}
