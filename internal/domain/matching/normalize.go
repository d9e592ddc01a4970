package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const strippedPunctuation = ".,/#!$%^&*;:{}=-_`~()"

// NormalizeText lowercases s, removes the fixed punctuation set and trims
// surrounding whitespace. Every text-equality comparison in the engine goes
// through this single helper so no two criteria normalize differently.
func NormalizeText(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(strippedPunctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// cityKey reduces a free-text city to a comparable key: everything before a
// postal-code suffix like "Paris (75)", lowercased and trimmed.
func cityKey(s string) string {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}

// IsIndifferent reports whether v is absent or the "no preference" sentinel.
// The comparison ignores case and diacritics, so "indifférent", "Indifferent"
// and "INDIFFÉRENT" all exempt the requirement.
func IsIndifferent(v string) bool {
	v = strings.ToLower(strings.TrimSpace(stripDiacritics(v)))
	return v == "" || v == "indifferent"
}
