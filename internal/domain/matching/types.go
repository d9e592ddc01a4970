package matching

// ExperienceLevel is the ordered candidate seniority scale.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "debutant"
	ExperienceIntermediate ExperienceLevel = "intermediaire"
	ExperienceConfirmed    ExperienceLevel = "confirme"
)

var experienceOrder = map[ExperienceLevel]int{
	ExperienceBeginner:     0,
	ExperienceIntermediate: 1,
	ExperienceConfirmed:    2,
}

// order returns the position of the level on the seniority scale. Unknown or
// empty levels fall back to beginner.
func (l ExperienceLevel) order() int {
	return experienceOrder[l]
}

// CandidateProfile carries the candidate attributes the scorer looks at.
// Every field except Category is optional; a missing attribute forfeits the
// related bonus instead of failing the match.
type CandidateProfile struct {
	Category          string          `json:"category"`
	SecondaryCategory string          `json:"secondary_category,omitempty"`
	Titles            string          `json:"titles,omitempty"`
	SecondaryTitles   string          `json:"secondary_titles,omitempty"`
	City              string          `json:"city,omitempty"`
	Experience        ExperienceLevel `json:"experience,omitempty"`
	Skills            []string        `json:"skills,omitempty"`
	Gender            string          `json:"gender,omitempty"`
	Age               *int            `json:"age,omitempty"`
}

// RoleOpening describes one role to score a candidate against. Gender and
// Experience accept the indifferent sentinel, meaning no requirement.
type RoleOpening struct {
	Title      string          `json:"title"`
	Category   string          `json:"category"`
	Gender     string          `json:"gender,omitempty"`
	AgeMin     *int            `json:"age_min,omitempty"`
	AgeMax     *int            `json:"age_max,omitempty"`
	Experience ExperienceLevel `json:"experience,omitempty"`
}

// ProjectContext is the project an opening belongs to. Only the city matters
// for scoring.
type ProjectContext struct {
	City string `json:"city"`
}

// Pairing is one (opening, project) item of a ranking batch. A pairing with
// no project scores zero.
type Pairing struct {
	Opening RoleOpening     `json:"opening"`
	Project *ProjectContext `json:"project,omitempty"`
}

// ScoredOpening is a ranked batch entry with its 0-100 match score attached.
type ScoredOpening struct {
	Opening    RoleOpening    `json:"opening"`
	Project    ProjectContext `json:"project"`
	MatchScore int            `json:"match_score"`
}
