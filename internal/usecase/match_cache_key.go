package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"cast-match/internal/domain/matching"
)

type rankCacheKeyInput struct {
	Candidate matching.CandidateProfile `json:"candidate"`
	Pairings  []matching.Pairing        `json:"pairings"`
}

// RankCacheKey derives a stable cache key for a ranking request by hashing
// its canonical JSON form. Two requests with the same candidate and the same
// batch, in the same order, share a key; order matters because ties keep
// input order.
func RankCacheKey(c matching.CandidateProfile, pairings []matching.Pairing) string {
	b, _ := json.Marshal(rankCacheKeyInput{Candidate: c, Pairings: pairings})
	sum := sha256.Sum256(b)
	return "match:rank:" + hex.EncodeToString(sum[:])
}
