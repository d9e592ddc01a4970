package dto

import (
	"github.com/go-playground/validator/v10"

	"cast-match/internal/domain/matching"
)

type CandidateProfileRequest struct {
	Category          string   `json:"category"`
	SecondaryCategory string   `json:"secondary_category"`
	Titles            string   `json:"titles"`
	SecondaryTitles   string   `json:"secondary_titles"`
	City              string   `json:"city"`
	Experience        string   `json:"experience" validate:"omitempty,oneof=debutant intermediaire confirme"`
	Skills            []string `json:"skills"`
	Gender            string   `json:"gender"`
	Age               *int     `json:"age" validate:"omitempty,min=0,max=150"`
}

type RoleOpeningRequest struct {
	Title      string `json:"title" validate:"required"`
	Category   string `json:"category"`
	Gender     string `json:"gender"`
	AgeMin     *int   `json:"age_min" validate:"omitempty,min=0"`
	AgeMax     *int   `json:"age_max" validate:"omitempty,min=0"`
	Experience string `json:"experience"`
}

type ProjectContextRequest struct {
	City string `json:"city"`
}

type RankOpeningItem struct {
	Opening RoleOpeningRequest     `json:"opening"`
	Project *ProjectContextRequest `json:"project"`
}

type RankRequest struct {
	Candidate CandidateProfileRequest `json:"candidate"`
	Openings  []RankOpeningItem       `json:"openings" validate:"dive"`
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

type ScoreRequest struct {
	Candidate CandidateProfileRequest `json:"candidate"`
	Opening   RoleOpeningRequest      `json:"opening"`
	Project   ProjectContextRequest   `json:"project"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

func (r CandidateProfileRequest) ToDomain() matching.CandidateProfile {
	return matching.CandidateProfile{
		Category:          r.Category,
		SecondaryCategory: r.SecondaryCategory,
		Titles:            r.Titles,
		SecondaryTitles:   r.SecondaryTitles,
		City:              r.City,
		Experience:        matching.ExperienceLevel(r.Experience),
		Skills:            r.Skills,
		Gender:            r.Gender,
		Age:               r.Age,
	}
}

func (r RoleOpeningRequest) ToDomain() matching.RoleOpening {
	return matching.RoleOpening{
		Title:      r.Title,
		Category:   r.Category,
		Gender:     r.Gender,
		AgeMin:     r.AgeMin,
		AgeMax:     r.AgeMax,
		Experience: matching.ExperienceLevel(r.Experience),
	}
}

func (r ProjectContextRequest) ToDomain() matching.ProjectContext {
	return matching.ProjectContext{City: r.City}
}

func (r RankRequest) Pairings() []matching.Pairing {
	out := make([]matching.Pairing, 0, len(r.Openings))
	for _, it := range r.Openings {
		p := matching.Pairing{Opening: it.Opening.ToDomain()}
		if it.Project != nil {
			pc := it.Project.ToDomain()
			p.Project = &pc
		}
		out = append(out, p)
	}
	return out
}
