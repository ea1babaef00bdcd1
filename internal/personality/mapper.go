// Package personality implements the personality mapper stage: it converts
// Big Five questionnaire answers into trait scores, work style preferences,
// and team dynamics notes.
package personality

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/career-counselor/internal/llm"
	"github.com/jonathan/career-counselor/internal/prompts"
	"github.com/jonathan/career-counselor/internal/schemas"
	"github.com/jonathan/career-counselor/internal/stage"
	"github.com/jonathan/career-counselor/internal/types"
)

// maxContextSkills caps how many prior-stage skills feed the prompt context.
const maxContextSkills = 5

// Config holds the stage's fallback profile and invocation bounds.
type Config struct {
	Call     stage.Call
	Fallback *types.PersonalityProfile
}

// DefaultConfig returns the stage defaults.
func DefaultConfig() Config {
	return Config{
		Call:     stage.DefaultCall(),
		Fallback: FallbackProfile(),
	}
}

// Mapper executes the personality mapping stage.
type Mapper struct {
	client llm.Client
	cfg    Config
}

// NewMapper creates the stage with an explicit configuration.
func NewMapper(client llm.Client, cfg Config) *Mapper {
	if cfg.Fallback == nil {
		cfg.Fallback = FallbackProfile()
	}
	return &Mapper{client: client, cfg: cfg}
}

// Execute maps questionnaire responses to a personality profile. A complete
// Big Five questionnaire is a hard prerequisite: without it the fallback is
// substituted without attempting the collaborator call, and the status reason
// distinguishes the skip from a failed call.
func (m *Mapper) Execute(ctx context.Context, input *types.UserInput, interestProfile *types.InterestProfile, skillProfile *types.SkillProfile) (*types.PersonalityProfile, types.StageStatus) {
	if !input.HasPersonalityResponses() {
		err := &stage.PrerequisiteError{Missing: "personality questionnaire responses"}
		return m.cfg.Fallback, stage.Fallback(types.StagePersonalityMapper, err, 0)
	}

	prompt := m.buildPrompt(input, interestProfile, skillProfile)

	var profile types.PersonalityProfile
	attempts, err := stage.Invoke(ctx, m.client, m.cfg.Call, prompt, llm.TierStandard, func(payload string) error {
		profile = types.PersonalityProfile{}
		return stage.Decode(schemas.PersonalityProfile, payload, &profile)
	})
	if err != nil {
		return m.cfg.Fallback, stage.Fallback(types.StagePersonalityMapper, err, attempts)
	}

	normalizeTraitScores(&profile)

	return &profile, stage.OK(types.StagePersonalityMapper, attempts)
}

func (m *Mapper) buildPrompt(input *types.UserInput, interestProfile *types.InterestProfile, skillProfile *types.SkillProfile) string {
	template := prompts.MustGet("personality.json", "map-personality")

	return prompts.Format(template, map[string]string{
		"Name":              input.Name,
		"Openness":          formatScore(input.PersonalityResponses[types.TraitOpenness]),
		"Conscientiousness": formatScore(input.PersonalityResponses[types.TraitConscientiousness]),
		"Extraversion":      formatScore(input.PersonalityResponses[types.TraitExtraversion]),
		"Agreeableness":     formatScore(input.PersonalityResponses[types.TraitAgreeableness]),
		"Neuroticism":       formatScore(input.PersonalityResponses[types.TraitNeuroticism]),
		"AdditionalContext": additionalContext(input, interestProfile, skillProfile),
	})
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}

func additionalContext(input *types.UserInput, interestProfile *types.InterestProfile, skillProfile *types.SkillProfile) string {
	var parts []string

	if interestProfile != nil && len(interestProfile.PrimaryInterests) > 0 {
		parts = append(parts, "Primary interests: "+strings.Join(interestProfile.PrimaryInterests, ", "))
	}

	if skillProfile != nil {
		all := skillProfile.AllSkills()
		if len(all) > maxContextSkills {
			all = all[:maxContextSkills]
		}
		if len(all) > 0 {
			parts = append(parts, "Key skills: "+strings.Join(all, ", "))
		}
	}

	parts = append(parts, "Education level: "+input.EducationLevel)

	return strings.Join(parts, " | ")
}

// normalizeTraitScores drops trait names the model invented and fills any
// missing canonical trait with a neutral score.
func normalizeTraitScores(profile *types.PersonalityProfile) {
	normalized := make(map[string]float64, len(types.BigFiveTraits))
	for _, trait := range types.BigFiveTraits {
		if score, ok := profile.TraitScores[trait]; ok {
			normalized[trait] = score
		} else {
			normalized[trait] = 3.0
		}
	}
	profile.TraitScores = normalized
}
