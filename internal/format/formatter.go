// Package format implements the output formatter stage: it turns the final
// profile bundle into report building blocks (summary, detailed narrative,
// action plan, resources). The deterministic rendering of those blocks into
// report files lives in the report package.
package format

import (
	"context"

	"github.com/jonathan/career-counselor/internal/llm"
	"github.com/jonathan/career-counselor/internal/prompts"
	"github.com/jonathan/career-counselor/internal/schemas"
	"github.com/jonathan/career-counselor/internal/stage"
	"github.com/jonathan/career-counselor/internal/types"
)

// Config holds the stage's fallback output and invocation bounds.
type Config struct {
	Call     stage.Call
	Fallback *types.FormattedOutput
}

// DefaultConfig returns the stage defaults.
func DefaultConfig() Config {
	return Config{
		Call:     stage.DefaultCall(),
		Fallback: FallbackOutput(),
	}
}

// Formatter executes the output formatting stage.
type Formatter struct {
	client llm.Client
	cfg    Config
}

// NewFormatter creates the stage with an explicit configuration.
func NewFormatter(client llm.Client, cfg Config) *Formatter {
	if cfg.Fallback == nil {
		cfg.Fallback = FallbackOutput()
	}
	return &Formatter{client: client, cfg: cfg}
}

// Execute produces the formatted output blocks from the completed bundle.
func (f *Formatter) Execute(ctx context.Context, input *types.UserInput, interestProfile *types.InterestProfile, skillProfile *types.SkillProfile, personalityProfile *types.PersonalityProfile, recs *types.CareerRecommendations) (*types.FormattedOutput, types.StageStatus) {
	prompt := f.buildPrompt(input, interestProfile, skillProfile, personalityProfile, recs)

	var output types.FormattedOutput
	attempts, err := stage.Invoke(ctx, f.client, f.cfg.Call, prompt, llm.TierStandard, func(payload string) error {
		output = types.FormattedOutput{}
		return stage.Decode(schemas.FormattedOutput, payload, &output)
	})
	if err != nil {
		return f.cfg.Fallback, stage.Fallback(types.StageOutputFormatter, err, attempts)
	}

	return &output, stage.OK(types.StageOutputFormatter, attempts)
}

func (f *Formatter) buildPrompt(input *types.UserInput, interestProfile *types.InterestProfile, skillProfile *types.SkillProfile, personalityProfile *types.PersonalityProfile, recs *types.CareerRecommendations) string {
	template := prompts.MustGet("format.json", "format-output")

	return prompts.Format(template, map[string]string{
		"Name":                  input.Name,
		"CareerRecommendations": stage.FormatJSON(recs),
		"InterestProfile":       stage.FormatJSON(interestProfile),
		"SkillProfile":          stage.FormatJSON(skillProfile),
		"PersonalityProfile":    stage.FormatJSON(personalityProfile),
	})
}
