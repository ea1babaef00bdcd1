// Package recommend implements the career recommender stage: it synthesizes
// the four upstream profiles into a ranked list of career matches.
package recommend

import (
	"context"
	"strings"

	"github.com/jonathan/career-counselor/internal/llm"
	"github.com/jonathan/career-counselor/internal/prompts"
	"github.com/jonathan/career-counselor/internal/schemas"
	"github.com/jonathan/career-counselor/internal/stage"
	"github.com/jonathan/career-counselor/internal/types"
)

// Config holds the stage's fallback recommendations and invocation bounds.
type Config struct {
	Call     stage.Call
	Fallback *types.CareerRecommendations
}

// DefaultConfig returns the stage defaults.
func DefaultConfig() Config {
	return Config{
		Call:     stage.DefaultCall(),
		Fallback: FallbackRecommendations(),
	}
}

// Recommender executes the career recommendation stage.
type Recommender struct {
	client llm.Client
	cfg    Config
}

// NewRecommender creates the stage with an explicit configuration.
func NewRecommender(client llm.Client, cfg Config) *Recommender {
	if cfg.Fallback == nil {
		cfg.Fallback = FallbackRecommendations()
	}
	return &Recommender{client: client, cfg: cfg}
}

// Execute synthesizes all prior profiles into ranked recommendations. The
// decoded response must pass the rationale check: the recommendation text has
// to reference at least one profiled interest and one profiled skill, so a
// response that ignored its inputs is rejected as a parse failure. Scores are
// clamped to [0,100] and sorted descending; ties keep the model's order.
func (r *Recommender) Execute(ctx context.Context, input *types.UserInput, interestProfile *types.InterestProfile, skillProfile *types.SkillProfile, personalityProfile *types.PersonalityProfile, trends *types.MarketTrends) (*types.CareerRecommendations, types.StageStatus) {
	prompt := r.buildPrompt(input, interestProfile, skillProfile, personalityProfile, trends)

	var recs types.CareerRecommendations
	attempts, err := stage.Invoke(ctx, r.client, r.cfg.Call, prompt, llm.TierAdvanced, func(payload string) error {
		recs = types.CareerRecommendations{}
		if err := stage.Decode(schemas.CareerRecommendations, payload, &recs); err != nil {
			return err
		}
		return validateRationale(&recs, interestProfile, skillProfile)
	})
	if err != nil {
		return r.cfg.Fallback, stage.Fallback(types.StageCareerRecommender, err, attempts)
	}

	recs.Normalize()

	return &recs, stage.OK(types.StageCareerRecommender, attempts)
}

func (r *Recommender) buildPrompt(input *types.UserInput, interestProfile *types.InterestProfile, skillProfile *types.SkillProfile, personalityProfile *types.PersonalityProfile, trends *types.MarketTrends) string {
	template := prompts.MustGet("recommend.json", "recommend-careers")

	return prompts.Format(template, map[string]string{
		"Name":               input.Name,
		"EducationLevel":     input.EducationLevel,
		"InterestProfile":    stage.FormatJSON(interestProfile),
		"SkillProfile":       stage.FormatJSON(skillProfile),
		"PersonalityProfile": stage.FormatJSON(personalityProfile),
		"MarketTrends":       stage.FormatJSON(trends),
	})
}

// validateRationale rejects recommendations whose rationale text does not
// reference the interest and skill profiles it was given.
func validateRationale(recs *types.CareerRecommendations, interestProfile *types.InterestProfile, skillProfile *types.SkillProfile) error {
	var sb strings.Builder
	for _, rec := range recs.TopRecommendations {
		sb.WriteString(rec.WhyRecommended)
		sb.WriteString("\n")
		sb.WriteString(strings.Join(rec.RequiredSkills, "\n"))
		sb.WriteString("\n")
	}
	sb.WriteString(recs.Reasoning)
	rationale := strings.ToLower(sb.String())

	if interestProfile != nil && len(interestProfile.PrimaryInterests) > 0 {
		if !mentionsAny(rationale, interestProfile.PrimaryInterests) {
			return &stage.ParseError{Message: "rationale does not reference any profiled interest"}
		}
	}

	if skillProfile != nil {
		if all := skillProfile.AllSkills(); len(all) > 0 && !mentionsAny(rationale, all) {
			return &stage.ParseError{Message: "rationale does not reference any profiled skill"}
		}
	}

	return nil
}

// mentionsAny reports whether the rationale contains any of the given terms.
// Category names like "Technology & Engineering" match on either half.
func mentionsAny(rationale string, terms []string) bool {
	for _, term := range terms {
		for _, part := range strings.Split(term, "&") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" && strings.Contains(rationale, part) {
				return true
			}
		}
	}
	return false
}
