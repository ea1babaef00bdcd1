package personality

import "github.com/jonathan/career-counselor/internal/types"

// FallbackProfile returns the static profile substituted when personality
// mapping cannot complete: neutral trait scores and balanced work
// preferences.
func FallbackProfile() *types.PersonalityProfile {
	return &types.PersonalityProfile{
		TraitScores: map[string]float64{
			types.TraitOpenness:          3.0,
			types.TraitConscientiousness: 3.0,
			types.TraitExtraversion:      3.0,
			types.TraitAgreeableness:     3.0,
			types.TraitNeuroticism:       3.0,
		},
		WorkStylePreferences: []string{
			"Collaborative environment",
			"Structured tasks",
			"Learning opportunities",
		},
		TeamDynamics: "Works well in balanced team environments with clear communication.",
		Reasoning:    "Unable to analyze personality responses. Provided balanced work preferences.",
	}
}
