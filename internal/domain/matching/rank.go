package matching

import "sort"

// Rank scores every pairing of the batch and returns the entries ordered by
// descending score. The sort is stable, so pairings with equal scores keep
// their input order. Pairings without a project score zero. Nothing is
// truncated here; callers decide how many results to keep.
func Rank(c CandidateProfile, pairings []Pairing) []ScoredOpening {
	out := make([]ScoredOpening, 0, len(pairings))
	for _, pr := range pairings {
		so := ScoredOpening{Opening: pr.Opening}
		if pr.Project != nil {
			so.Project = *pr.Project
			so.MatchScore = Score(c, pr.Opening, *pr.Project)
		}
		out = append(out, so)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}
