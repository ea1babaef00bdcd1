package skills

import "github.com/jonathan/career-counselor/internal/types"

// FallbackProfile returns the static profile substituted when skill
// evaluation cannot complete: general foundational skills at intermediate
// proficiency.
func FallbackProfile() *types.SkillProfile {
	years := 0.0
	return &types.SkillProfile{
		TechnicalSkills: []string{"Communication", "Problem Solving", "Teamwork"},
		SoftSkills:      []string{"Leadership", "Time Management", "Adaptability"},
		SkillLevels: map[string]string{
			"Communication":   "Intermediate",
			"Problem Solving": "Intermediate",
			"Teamwork":        "Intermediate",
		},
		ExperienceYears: &years,
		Reasoning:       "Unable to analyze skills from provided information. Provided general foundational skills.",
	}
}
