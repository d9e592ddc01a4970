// Package fuzzy implements the two approximate text-matching primitives used
// for ranked search: a subsequence-existence test and a heuristic relevance
// scorer.
package fuzzy

import "strings"

const (
	exactScore     = 100
	prefixScore    = 80
	substringScore = 60

	charPoint        = 1
	consecutiveBonus = 2
	wordStartBonus   = 5
)

// IsSubsequenceMatch reports whether the characters of pattern appear in
// order, not necessarily contiguously, within text. The pattern is lowercased
// and stripped of whitespace; the text is only lowercased. An empty pattern
// always matches.
func IsSubsequenceMatch(pattern, text string) bool {
	p := stripWhitespace(strings.ToLower(pattern))
	if p == "" {
		return true
	}
	t := strings.ToLower(text)

	pi := 0
	for ti := 0; ti < len(t) && pi < len(p); ti++ {
		if t[ti] == p[pi] {
			pi++
		}
	}
	return pi == len(p)
}

// RelevanceScore rates how well pattern matches text. Zero means no match and
// must be filtered out by ranking callers; higher is better and there is no
// fixed upper bound.
//
// Tiers, best first: exact equality 100, prefix 80, substring 60. Anything
// else falls through to a subsequence scan where each matched character earns
// a point, a character extending a consecutive run earns 2 extra and a match
// at the start of the text or right after a space earns 5 extra.
func RelevanceScore(pattern, text string) int {
	if pattern == "" {
		return 1
	}

	p := strings.ToLower(pattern)
	t := strings.ToLower(text)

	if p == t {
		return exactScore
	}
	if strings.HasPrefix(t, p) {
		return prefixScore
	}
	if strings.Contains(t, p) {
		return substringScore
	}

	score := 0
	pi := 0
	prevMatched := false
	for ti := 0; ti < len(t) && pi < len(p); ti++ {
		if t[ti] != p[pi] {
			prevMatched = false
			continue
		}

		score += charPoint
		if prevMatched {
			score += consecutiveBonus
		}
		if ti == 0 || t[ti-1] == ' ' {
			score += wordStartBonus
		}
		pi++
		prevMatched = true
	}

	if pi < len(p) {
		return 0
	}
	return score
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
