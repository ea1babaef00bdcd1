// Package types provides type definitions for structured data used throughout the career-counselor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InterestCategories lists the canonical career interest categories presented
// to the user and scored by the interest profiler.
var InterestCategories = []string{
	"Technology & Engineering",
	"Healthcare & Medicine",
	"Business & Finance",
	"Arts & Creative",
	"Education & Training",
	"Science & Research",
	"Social Services",
	"Law & Government",
	"Sports & Recreation",
	"Agriculture & Environment",
}

// EducationLevels lists the accepted education level values.
var EducationLevels = []string{
	"High School",
	"Some College",
	"Associate Degree",
	"Bachelor's Degree",
	"Master's Degree",
	"Doctoral Degree",
	"Professional Degree",
	"Trade/Vocational School",
	"Other",
}

// Big Five trait names used as keys in personality responses and trait scores.
const (
	TraitOpenness          = "Openness to Experience"
	TraitConscientiousness = "Conscientiousness"
	TraitExtraversion      = "Extraversion"
	TraitAgreeableness     = "Agreeableness"
	TraitNeuroticism       = "Neuroticism"
)

// BigFiveTraits lists the Big Five trait names in canonical order.
var BigFiveTraits = []string{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

// UserInput is the raw user submission the pipeline consumes.
type UserInput struct {
	Name                 string             `json:"name" validate:"required,min=2,max=50"`
	Age                  *int               `json:"age,omitempty"`
	EducationLevel       string             `json:"education_level" validate:"required"`
	ResumeText           string             `json:"resume_text,omitempty"`
	Interests            []string           `json:"interests" validate:"required,min=1,max=10"`
	PersonalityResponses map[string]float64 `json:"personality_responses,omitempty"`
}

var namePattern = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)

// Validate checks the submission against the intake rules. It returns the
// first rule violation found; a nil error means the pipeline may run.
func (u *UserInput) Validate() error {
	validate := validator.New()
	if err := validate.Struct(u); err != nil {
		return err
	}

	if !namePattern.MatchString(strings.TrimSpace(u.Name)) {
		return fmt.Errorf("name can only contain letters, spaces, hyphens, and apostrophes")
	}

	if u.Age != nil && (*u.Age < 16 || *u.Age > 100) {
		return fmt.Errorf("age must be between 16 and 100")
	}

	if !isValidEducationLevel(u.EducationLevel) {
		return fmt.Errorf("education level must be one of: %s", strings.Join(EducationLevels, ", "))
	}

	for _, interest := range u.Interests {
		if strings.TrimSpace(interest) == "" {
			return fmt.Errorf("interest cannot be empty")
		}
		if len(interest) > 100 {
			return fmt.Errorf("interest description too long (max 100 characters)")
		}
	}

	for trait, score := range u.PersonalityResponses {
		if score < 1 || score > 5 {
			return fmt.Errorf("score for %s must be between 1 and 5", trait)
		}
	}

	if u.ResumeText != "" {
		trimmed := strings.TrimSpace(u.ResumeText)
		if len(trimmed) < 50 {
			return fmt.Errorf("resume text seems too short (minimum 50 characters)")
		}
		if len(u.ResumeText) > 50000 {
			return fmt.Errorf("resume text is too long (maximum 50,000 characters)")
		}
	}

	return nil
}

// HasPersonalityResponses reports whether a complete Big Five questionnaire
// was supplied. The personality mapper treats an incomplete questionnaire as
// a missing prerequisite.
func (u *UserInput) HasPersonalityResponses() bool {
	if len(u.PersonalityResponses) == 0 {
		return false
	}
	for _, trait := range BigFiveTraits {
		if _, ok := u.PersonalityResponses[trait]; !ok {
			return false
		}
	}
	return true
}

func isValidEducationLevel(level string) bool {
	for _, l := range EducationLevels {
		if l == level {
			return true
		}
	}
	return false
}
