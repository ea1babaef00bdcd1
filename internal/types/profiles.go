// Package types provides type definitions for structured data used throughout the career-counselor system.
package types

// InterestProfile is the interest profiler's output: the user's primary
// interest categories with per-category scores.
type InterestProfile struct {
	PrimaryInterests []string           `json:"primary_interests"`
	InterestScores   map[string]float64 `json:"interest_scores"`
	Reasoning        string             `json:"reasoning"`
}

// SkillProfile is the skill evaluator's output extracted from resume text
// and declared education.
type SkillProfile struct {
	TechnicalSkills []string          `json:"technical_skills"`
	SoftSkills      []string          `json:"soft_skills"`
	SkillLevels     map[string]string `json:"skill_levels"`
	ExperienceYears *float64          `json:"experience_years,omitempty"`
	Reasoning       string            `json:"reasoning"`
}

// AllSkills returns technical and soft skills as a single list, technical first.
func (s *SkillProfile) AllSkills() []string {
	all := make([]string, 0, len(s.TechnicalSkills)+len(s.SoftSkills))
	all = append(all, s.TechnicalSkills...)
	all = append(all, s.SoftSkills...)
	return all
}

// PersonalityProfile maps Big Five questionnaire answers to work style
// preferences and team dynamics.
type PersonalityProfile struct {
	TraitScores          map[string]float64 `json:"trait_scores"`
	WorkStylePreferences []string           `json:"work_style_preferences"`
	TeamDynamics         string             `json:"team_dynamics"`
	Reasoning            string             `json:"reasoning"`
}

// MarketTrends is the market trend analyzer's output conditioned on the
// interest and skill profiles.
type MarketTrends struct {
	TrendingCareers []string          `json:"trending_careers"`
	GrowthSectors   []string          `json:"growth_sectors"`
	SalaryInsights  map[string]string `json:"salary_insights"`
	JobOutlook      map[string]string `json:"job_outlook"`
	Reasoning       string            `json:"reasoning"`
}

// FormattedOutput is the output formatter's structured result: the report
// building blocks rendered into the final text and JSON artifacts.
type FormattedOutput struct {
	Summary        string   `json:"summary"`
	DetailedReport string   `json:"detailed_report"`
	ActionPlan     []string `json:"action_plan"`
	Resources      []string `json:"resources"`
}
