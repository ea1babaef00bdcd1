// Package interests implements the interest profiler stage: it maps the
// user's raw interest selections to scored career interest categories.
package interests

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/career-counselor/internal/llm"
	"github.com/jonathan/career-counselor/internal/prompts"
	"github.com/jonathan/career-counselor/internal/schemas"
	"github.com/jonathan/career-counselor/internal/stage"
	"github.com/jonathan/career-counselor/internal/types"
)

// resumeContextLimit caps how much resume text is surfaced as profiling context.
const resumeContextLimit = 200

// Config holds the stage's fallback profile and invocation bounds.
type Config struct {
	Call     stage.Call
	Fallback *types.InterestProfile
}

// DefaultConfig returns the stage defaults, including the static fallback
// profile substituted when the stage cannot complete normally.
func DefaultConfig() Config {
	return Config{
		Call:     stage.DefaultCall(),
		Fallback: FallbackProfile(),
	}
}

// Profiler executes the interest profiling stage.
type Profiler struct {
	client llm.Client
	cfg    Config
}

// NewProfiler creates the stage with an explicit configuration. A nil
// fallback in cfg is replaced with the stage default.
func NewProfiler(client llm.Client, cfg Config) *Profiler {
	if cfg.Fallback == nil {
		cfg.Fallback = FallbackProfile()
	}
	return &Profiler{client: client, cfg: cfg}
}

// Execute builds the profiling prompt from the user submission, invokes the
// collaborator, and decodes the response. On any failure it returns the
// configured fallback profile; the returned status is the only signal the
// driver observes.
func (p *Profiler) Execute(ctx context.Context, input *types.UserInput) (*types.InterestProfile, types.StageStatus) {
	prompt := p.buildPrompt(input)

	var profile types.InterestProfile
	attempts, err := stage.Invoke(ctx, p.client, p.cfg.Call, prompt, llm.TierStandard, func(payload string) error {
		profile = types.InterestProfile{}
		return stage.Decode(schemas.InterestProfile, payload, &profile)
	})
	if err != nil {
		return p.cfg.Fallback, stage.Fallback(types.StageInterestProfiler, err, attempts)
	}

	return &profile, stage.OK(types.StageInterestProfiler, attempts)
}

func (p *Profiler) buildPrompt(input *types.UserInput) string {
	template := prompts.MustGet("interests.json", "profile-interests")

	age := "Not specified"
	if input.Age != nil {
		age = fmt.Sprintf("%d", *input.Age)
	}

	return prompts.Format(template, map[string]string{
		"Name":              input.Name,
		"Age":               age,
		"EducationLevel":    input.EducationLevel,
		"Interests":         stage.FormatList(input.Interests),
		"AdditionalContext": additionalContext(input),
		"Categories":        strings.Join(types.InterestCategories, ", "),
	})
}

// additionalContext surfaces hints from the rest of the submission without
// leaking later-stage outputs into the prompt.
func additionalContext(input *types.UserInput) string {
	var parts []string

	if input.ResumeText != "" {
		snippet := input.ResumeText
		if len(snippet) > resumeContextLimit {
			snippet = snippet[:resumeContextLimit] + "..."
		}
		parts = append(parts, "Resume mentions: "+snippet)
	}

	if len(input.PersonalityResponses) > 0 {
		parts = append(parts, "Personality responses provided")
	}

	if len(parts) == 0 {
		return "No additional context"
	}
	return strings.Join(parts, " | ")
}
