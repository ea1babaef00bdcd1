package interests

import "github.com/jonathan/career-counselor/internal/types"

// FallbackProfile returns the static profile substituted when interest
// profiling cannot complete. It favors broadly applicable categories.
func FallbackProfile() *types.InterestProfile {
	return &types.InterestProfile{
		PrimaryInterests: []string{
			"Technology & Engineering",
			"Business & Finance",
			"Education & Training",
		},
		InterestScores: map[string]float64{
			"Technology & Engineering":  70,
			"Healthcare & Medicine":     30,
			"Business & Finance":        60,
			"Arts & Creative":           40,
			"Education & Training":      50,
			"Science & Research":        45,
			"Social Services":           35,
			"Law & Government":          25,
			"Sports & Recreation":       20,
			"Agriculture & Environment": 15,
		},
		Reasoning: "Unable to analyze interests fully. Provided general recommendations based on common career paths.",
	}
}
