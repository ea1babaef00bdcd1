package recommend

import "github.com/jonathan/career-counselor/internal/types"

// FallbackRecommendations returns the static recommendations substituted
// when synthesis cannot complete: versatile career paths suitable for varied
// backgrounds.
func FallbackRecommendations() *types.CareerRecommendations {
	return &types.CareerRecommendations{
		TopRecommendations: []types.CareerRecommendation{
			{
				Title:                 "Business Analyst",
				MatchScore:            75,
				RequiredSkills:        []string{"Data Analysis", "Communication", "Problem Solving"},
				EducationRequirements: "Bachelor's degree preferred",
				SalaryRange:           "$50,000 - $80,000 annually",
				JobOutlook:            "Positive growth expected",
				WhyRecommended:        "Good match for analytical thinking and business interests",
			},
			{
				Title:                 "Project Coordinator",
				MatchScore:            70,
				RequiredSkills:        []string{"Organization", "Communication", "Time Management"},
				EducationRequirements: "Bachelor's degree or equivalent experience",
				SalaryRange:           "$45,000 - $70,000 annually",
				JobOutlook:            "Steady demand across industries",
				WhyRecommended:        "Suitable for organized individuals who enjoy coordinating tasks",
			},
			{
				Title:                 "Customer Success Specialist",
				MatchScore:            68,
				RequiredSkills:        []string{"Communication", "Empathy", "Problem Solving"},
				EducationRequirements: "Bachelor's degree preferred",
				SalaryRange:           "$40,000 - $65,000 annually",
				JobOutlook:            "Growing field with high demand",
				WhyRecommended:        "Perfect for people-oriented individuals who enjoy helping others",
			},
		},
		AlternativePaths: []string{
			"Sales Representative",
			"Administrative Assistant",
			"Marketing Coordinator",
		},
		NextSteps: []string{
			"Research the recommended career paths in detail",
			"Consider taking relevant online courses or certifications",
			"Network with professionals in these fields",
			"Update resume to highlight relevant skills",
			"Apply for entry-level positions or internships",
		},
		Reasoning: "Unable to provide detailed analysis. Recommended versatile career paths suitable for various backgrounds.",
	}
}
