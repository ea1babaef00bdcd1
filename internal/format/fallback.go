package format

import "github.com/jonathan/career-counselor/internal/types"

// FallbackOutput returns a generic formatted output used when the stage
// cannot produce a tailored one.
func FallbackOutput() *types.FormattedOutput {
	return &types.FormattedOutput{
		Summary: "Based on your profile, we have identified several promising career paths that align with your interests and skills. Review the detailed recommendations below and use the action plan to take concrete next steps.",
		DetailedReport: "Your career assessment considered your stated interests, skill profile, personality indicators, and current market conditions. " +
			"The recommended roles balance your strengths against realistic market demand. " +
			"Each recommendation includes the skills and education typically required so you can identify specific gaps to close. " +
			"We encourage you to research each role further and speak with professionals currently working in these fields.",
		ActionPlan: []string{
			"Research each recommended career in depth, including day-to-day responsibilities",
			"Identify skill gaps between your current profile and role requirements",
			"Enroll in relevant courses or certification programs",
			"Update your resume to highlight transferable skills",
			"Network with professionals in your target fields",
			"Set up informational interviews to learn about career paths firsthand",
		},
		Resources: []string{
			"LinkedIn Learning - online courses across technical and business skills",
			"Coursera and edX - university-backed certificates and specializations",
			"O*NET OnLine - detailed occupation profiles and outlook data",
			"Bureau of Labor Statistics Occupational Outlook Handbook",
			"Local professional associations and industry meetup groups",
		},
	}
}
