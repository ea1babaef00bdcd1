// Package market implements the market trend analyzer stage: it produces
// trending-career and salary/outlook data conditioned on the interest and
// skill profiles.
package market

import (
	"context"

	"github.com/jonathan/career-counselor/internal/llm"
	"github.com/jonathan/career-counselor/internal/prompts"
	"github.com/jonathan/career-counselor/internal/schemas"
	"github.com/jonathan/career-counselor/internal/stage"
	"github.com/jonathan/career-counselor/internal/types"
)

// Config holds the stage's fallback profile and invocation bounds.
type Config struct {
	Call     stage.Call
	Fallback *types.MarketTrends
}

// DefaultConfig returns the stage defaults.
func DefaultConfig() Config {
	return Config{
		Call:     stage.DefaultCall(),
		Fallback: FallbackTrends(),
	}
}

// Analyzer executes the market trend analysis stage.
type Analyzer struct {
	client llm.Client
	cfg    Config
}

// NewAnalyzer creates the stage with an explicit configuration.
func NewAnalyzer(client llm.Client, cfg Config) *Analyzer {
	if cfg.Fallback == nil {
		cfg.Fallback = FallbackTrends()
	}
	return &Analyzer{client: client, cfg: cfg}
}

// Execute analyzes market trends for the profiled interests and skills.
func (a *Analyzer) Execute(ctx context.Context, input *types.UserInput, interestProfile *types.InterestProfile, skillProfile *types.SkillProfile) (*types.MarketTrends, types.StageStatus) {
	prompt := a.buildPrompt(input, interestProfile, skillProfile)

	var trends types.MarketTrends
	attempts, err := stage.Invoke(ctx, a.client, a.cfg.Call, prompt, llm.TierStandard, func(payload string) error {
		trends = types.MarketTrends{}
		return stage.Decode(schemas.MarketTrends, payload, &trends)
	})
	if err != nil {
		return a.cfg.Fallback, stage.Fallback(types.StageMarketTrendAnalyzer, err, attempts)
	}

	return &trends, stage.OK(types.StageMarketTrendAnalyzer, attempts)
}

func (a *Analyzer) buildPrompt(input *types.UserInput, interestProfile *types.InterestProfile, skillProfile *types.SkillProfile) string {
	template := prompts.MustGet("market.json", "analyze-trends")

	var primaryInterests []string
	if interestProfile != nil {
		primaryInterests = interestProfile.PrimaryInterests
	}

	var allSkills []string
	if skillProfile != nil {
		allSkills = skillProfile.AllSkills()
	}

	return prompts.Format(template, map[string]string{
		"PrimaryInterests": stage.FormatList(primaryInterests),
		"Skills":           stage.FormatList(allSkills),
		"EducationLevel":   input.EducationLevel,
	})
}
