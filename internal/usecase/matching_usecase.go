package usecase

import (
	"context"
	"time"

	"cast-match/internal/domain/matching"
)

// MatchCache is the slice of the cache the matching usecase needs.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type MatchingUsecase interface {
	ScoreOpening(ctx context.Context, c matching.CandidateProfile, o matching.RoleOpening, p matching.ProjectContext) int
	RankOpenings(ctx context.Context, c matching.CandidateProfile, pairings []matching.Pairing) []matching.ScoredOpening
}

type Matching struct {
	cache MatchCache
	ttl   time.Duration
}

// NewMatchingUsecase wires the pure matching engine to an optional result
// cache. A nil cache disables caching entirely.
func NewMatchingUsecase(cache MatchCache, ttl time.Duration) *Matching {
	return &Matching{cache: cache, ttl: ttl}
}

func (u *Matching) ScoreOpening(_ context.Context, c matching.CandidateProfile, o matching.RoleOpening, p matching.ProjectContext) int {
	return matching.Score(c, o, p)
}

// RankOpenings ranks the batch, serving repeated identical requests from the
// cache. Cache failures fall through to a fresh computation.
func (u *Matching) RankOpenings(ctx context.Context, c matching.CandidateProfile, pairings []matching.Pairing) []matching.ScoredOpening {
	key := RankCacheKey(c, pairings)

	if u.cache != nil {
		var cached []matching.ScoredOpening
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached
		}
	}

	out := matching.Rank(c, pairings)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, u.ttl)
	}
	return out
}
