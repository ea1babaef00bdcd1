// Package types provides type definitions for structured data used throughout the career-counselor system.
package types

import "sort"

// CareerRecommendation is a single ranked career match.
type CareerRecommendation struct {
	Title                 string   `json:"title"`
	MatchScore            float64  `json:"match_score"`
	RequiredSkills        []string `json:"required_skills"`
	EducationRequirements string   `json:"education_requirements"`
	SalaryRange           string   `json:"salary_range"`
	JobOutlook            string   `json:"job_outlook"`
	WhyRecommended        string   `json:"why_recommended"`
}

// CareerRecommendations is the career recommender's output: an ordered list
// of 3-5 career matches plus alternatives and next steps.
type CareerRecommendations struct {
	TopRecommendations []CareerRecommendation `json:"top_recommendations"`
	AlternativePaths   []string               `json:"alternative_paths"`
	NextSteps          []string               `json:"next_steps"`
	Reasoning          string                 `json:"reasoning"`
}

// Normalize clamps all match scores into [0,100] and orders recommendations
// by descending score. The sort is stable so ties preserve the order the
// model returned.
func (c *CareerRecommendations) Normalize() {
	for i := range c.TopRecommendations {
		score := c.TopRecommendations[i].MatchScore
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		c.TopRecommendations[i].MatchScore = score
	}

	sort.SliceStable(c.TopRecommendations, func(i, j int) bool {
		return c.TopRecommendations[i].MatchScore > c.TopRecommendations[j].MatchScore
	})
}
