package market

import "github.com/jonathan/career-counselor/internal/types"

// FallbackTrends returns the static trends substituted when market analysis
// cannot complete: general high-demand career paths with positive outlooks.
func FallbackTrends() *types.MarketTrends {
	return &types.MarketTrends{
		TrendingCareers: []string{
			"Data Analyst",
			"Software Developer",
			"Digital Marketing Specialist",
			"Project Manager",
			"UX/UI Designer",
		},
		GrowthSectors: []string{
			"Technology",
			"Healthcare",
			"Renewable Energy",
			"E-commerce",
			"Remote Services",
		},
		SalaryInsights: map[string]string{
			"Data Analyst":                 "$50,000 - $80,000 annually",
			"Software Developer":           "$60,000 - $120,000 annually",
			"Digital Marketing Specialist": "$40,000 - $70,000 annually",
			"Project Manager":              "$55,000 - $95,000 annually",
			"UX/UI Designer":               "$50,000 - $90,000 annually",
		},
		JobOutlook: map[string]string{
			"Data Analyst":                 "Very positive, high demand across industries",
			"Software Developer":           "Excellent, continued growth expected",
			"Digital Marketing Specialist": "Positive, growing digital presence needs",
			"Project Manager":              "Good, needed across all sectors",
			"UX/UI Designer":               "Positive, increasing focus on user experience",
		},
		Reasoning: "Unable to analyze specific market trends. Provided general high-demand career paths with positive outlooks.",
	}
}
