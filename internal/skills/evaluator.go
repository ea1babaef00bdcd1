// Package skills implements the skill evaluator stage: it extracts technical
// and soft skills from resume text and declared education, informed by the
// interest profile.
package skills

import (
	"context"
	"strings"

	"github.com/jonathan/career-counselor/internal/llm"
	"github.com/jonathan/career-counselor/internal/prompts"
	"github.com/jonathan/career-counselor/internal/schemas"
	"github.com/jonathan/career-counselor/internal/stage"
	"github.com/jonathan/career-counselor/internal/types"
)

// Config holds the stage's fallback profile and invocation bounds.
type Config struct {
	Call     stage.Call
	Fallback *types.SkillProfile
}

// DefaultConfig returns the stage defaults.
func DefaultConfig() Config {
	return Config{
		Call:     stage.DefaultCall(),
		Fallback: FallbackProfile(),
	}
}

// Evaluator executes the skill evaluation stage.
type Evaluator struct {
	client llm.Client
	cfg    Config
}

// NewEvaluator creates the stage with an explicit configuration.
func NewEvaluator(client llm.Client, cfg Config) *Evaluator {
	if cfg.Fallback == nil {
		cfg.Fallback = FallbackProfile()
	}
	return &Evaluator{client: client, cfg: cfg}
}

// Execute evaluates the user's skills. The interest profile is the only
// prior-stage input; it may be the interest stage's fallback but is never nil
// once that stage has run.
func (e *Evaluator) Execute(ctx context.Context, input *types.UserInput, interestProfile *types.InterestProfile) (*types.SkillProfile, types.StageStatus) {
	prompt := e.buildPrompt(input, interestProfile)

	var profile types.SkillProfile
	attempts, err := stage.Invoke(ctx, e.client, e.cfg.Call, prompt, llm.TierStandard, func(payload string) error {
		profile = types.SkillProfile{}
		return stage.Decode(schemas.SkillProfile, payload, &profile)
	})
	if err != nil {
		return e.cfg.Fallback, stage.Fallback(types.StageSkillEvaluator, err, attempts)
	}

	return &profile, stage.OK(types.StageSkillEvaluator, attempts)
}

func (e *Evaluator) buildPrompt(input *types.UserInput, interestProfile *types.InterestProfile) string {
	template := prompts.MustGet("skills.json", "evaluate-skills")

	resumeText := input.ResumeText
	if resumeText == "" {
		resumeText = "No resume provided"
	}

	return prompts.Format(template, map[string]string{
		"Name":              input.Name,
		"EducationLevel":    input.EducationLevel,
		"ResumeText":        resumeText,
		"AdditionalContext": additionalContext(input, interestProfile),
	})
}

func additionalContext(input *types.UserInput, interestProfile *types.InterestProfile) string {
	var parts []string

	if interestProfile != nil && len(interestProfile.PrimaryInterests) > 0 {
		parts = append(parts, "Primary interests: "+strings.Join(interestProfile.PrimaryInterests, ", "))
	} else if len(input.Interests) > 0 {
		parts = append(parts, "User stated interests: "+strings.Join(input.Interests, ", "))
	}

	parts = append(parts, "Education level: "+input.EducationLevel)

	return strings.Join(parts, " | ")
}
