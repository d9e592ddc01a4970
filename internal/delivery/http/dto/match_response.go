package dto

import "cast-match/internal/domain/matching"

type ScoredOpeningResponse struct {
	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	Gender      string `json:"gender,omitempty"`
	AgeMin      *int   `json:"age_min,omitempty"`
	AgeMax      *int   `json:"age_max,omitempty"`
	Experience  string `json:"experience,omitempty"`
	ProjectCity string `json:"project_city,omitempty"`
	MatchScore  int    `json:"match_score"`
}

type RankResponse struct {
	Results []ScoredOpeningResponse `json:"results"`
}

type ScoreResponse struct {
	MatchScore int `json:"match_score"`
}

func NewRankResponse(scored []matching.ScoredOpening) RankResponse {
	out := RankResponse{Results: make([]ScoredOpeningResponse, 0, len(scored))}
	for _, s := range scored {
		out.Results = append(out.Results, ScoredOpeningResponse{
			Title:       s.Opening.Title,
			Category:    s.Opening.Category,
			Gender:      s.Opening.Gender,
			AgeMin:      s.Opening.AgeMin,
			AgeMax:      s.Opening.AgeMax,
			Experience:  string(s.Opening.Experience),
			ProjectCity: s.Project.City,
			MatchScore:  s.MatchScore,
		})
	}
	return out
}
