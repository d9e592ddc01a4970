package matching

import (
	"math"
	"strings"
)

const (
	categoryPoints   = 40
	titlePoints      = 40
	locationPoints   = 20
	experiencePoints = 10
	skillPoints      = 10
	genderPoints     = 20
	agePoints        = 20

	scoreDenominator = 150

	defaultAgeMin = 0
	defaultAgeMax = 100
)

// Score computes the 0-100 match score of one candidate against one
// (opening, project) pair.
//
// The gender and age requirements are hard filters: a violation zeroes the
// whole score before any soft criterion is counted. Once past the guards the
// soft criteria are independently additive and the raw sum is scaled against
// a fixed denominator of 150, so a candidate matching everything can exceed
// the scale and gets clamped to 100.
//
// Score is a pure function of its inputs and never mutates them.
func Score(c CandidateProfile, o RoleOpening, p ProjectContext) int {
	if !genderAllowed(c, o) {
		return 0
	}
	if !ageAllowed(c, o) {
		return 0
	}

	sum := 0
	if categoryMatches(c, o) {
		sum += categoryPoints
	}
	if titleMatches(c, o) {
		sum += titlePoints
	}
	if locationMatches(c, p) {
		sum += locationPoints
	}
	if experienceMatches(c, o) {
		sum += experiencePoints
	}
	if skillMatches(c, o) {
		sum += skillPoints
	}

	// Passing a hard filter always earns its bonus: either the requirement
	// was indifferent/absent, or the candidate satisfied it.
	sum += genderPoints
	sum += agePoints

	score := int(math.Round(float64(sum) / scoreDenominator * 100))
	if score > 100 {
		score = 100
	}
	return score
}

func genderAllowed(c CandidateProfile, o RoleOpening) bool {
	if IsIndifferent(o.Gender) {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(c.Gender), strings.TrimSpace(o.Gender))
}

func ageAllowed(c CandidateProfile, o RoleOpening) bool {
	if c.Age == nil {
		return true
	}
	if o.AgeMin == nil && o.AgeMax == nil {
		return true
	}

	minAge, maxAge := defaultAgeMin, defaultAgeMax
	if o.AgeMin != nil {
		minAge = *o.AgeMin
	}
	if o.AgeMax != nil {
		maxAge = *o.AgeMax
	}
	return *c.Age >= minAge && *c.Age <= maxAge
}

func categoryMatches(c CandidateProfile, o RoleOpening) bool {
	cat := strings.TrimSpace(o.Category)
	if cat == "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(c.Category), cat) {
		return true
	}
	sec := strings.TrimSpace(c.SecondaryCategory)
	return sec != "" && strings.EqualFold(sec, cat)
}

func titleMatches(c CandidateProfile, o RoleOpening) bool {
	want := NormalizeText(o.Title)
	if want == "" {
		return false
	}
	for _, t := range splitTitleList(c.Titles, c.SecondaryTitles) {
		if NormalizeText(t) == want {
			return true
		}
	}
	return false
}

// splitTitleList flattens comma-separated title lists, dropping blanks.
func splitTitleList(lists ...string) []string {
	var out []string
	for _, l := range lists {
		for _, t := range strings.Split(l, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

func locationMatches(c CandidateProfile, p ProjectContext) bool {
	candidateCity := cityKey(c.City)
	projectCity := cityKey(p.City)
	if candidateCity == "" || projectCity == "" {
		return false
	}
	if candidateCity == projectCity {
		return true
	}
	return strings.Contains(candidateCity, projectCity) || strings.Contains(projectCity, candidateCity)
}

func experienceMatches(c CandidateProfile, o RoleOpening) bool {
	if IsIndifferent(string(o.Experience)) {
		return true
	}
	return c.Experience.order() >= o.Experience.order()
}

func skillMatches(c CandidateProfile, o RoleOpening) bool {
	title := strings.ToLower(o.Title)
	if title == "" {
		return false
	}
	for _, s := range c.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && strings.Contains(title, s) {
			return true
		}
	}
	return false
}
