package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-counselor/internal/format"
	"github.com/jonathan/career-counselor/internal/interests"
	"github.com/jonathan/career-counselor/internal/llm"
	"github.com/jonathan/career-counselor/internal/market"
	"github.com/jonathan/career-counselor/internal/personality"
	"github.com/jonathan/career-counselor/internal/recommend"
	"github.com/jonathan/career-counselor/internal/skills"
	"github.com/jonathan/career-counselor/internal/types"
)

// ProgressEvent is delivered to the progress callback twice per stage: once
// when the stage starts (Status nil) and once when it resolves.
type ProgressEvent struct {
	RunID  string
	Stage  string
	Index  int
	Total  int
	Status *types.StageStatus
}

// ProgressFunc receives progress events during a run. It is called from the
// run's goroutine, so it must not block for long.
type ProgressFunc func(ProgressEvent)

// RunOptions configures a pipeline run. Nil stage configs use that stage's
// defaults; OnProgress may be nil.
type RunOptions struct {
	Client      llm.Client
	Interests   *interests.Config
	Skills      *skills.Config
	Personality *personality.Config
	Market      *market.Config
	Recommend   *recommend.Config
	Format      *format.Config
	OnProgress  ProgressFunc
}

// Result is the outcome of a completed run. A run that completes always has
// all six profiles populated, by stage output or by fallback.
type Result struct {
	RunID   string
	Context Context
	Elapsed time.Duration
}

// RunPipeline executes the six stages in order against the given input.
// It returns an error only for invalid input, a missing client, or context
// cancellation between stages; stage-level failures resolve to fallbacks and
// never abort the run. On cancellation the returned result still carries the
// partial context accumulated so far, with no holes up to the last completed
// stage.
func RunPipeline(ctx context.Context, input *types.UserInput, opts RunOptions) (*Result, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("pipeline requires a collaborator client")
	}
	if input == nil {
		return nil, fmt.Errorf("pipeline requires user input")
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user input: %w", err)
	}

	runID := uuid.NewString()
	start := time.Now()
	total := len(types.StageOrder)

	notify := func(index int, stage string, st *types.StageStatus) {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{RunID: runID, Stage: stage, Index: index, Total: total, Status: st})
		}
	}
	checkpoint := func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	pc := NewContext(input)

	partial := func(err error) (*Result, error) {
		return &Result{RunID: runID, Context: pc, Elapsed: time.Since(start)}, err
	}

	notify(1, types.StageInterestProfiler, nil)
	interestProfile, st := interests.NewProfiler(opts.Client, stageConfig(opts.Interests, interests.DefaultConfig)).Execute(ctx, input)
	pc = pc.WithInterests(interestProfile, st)
	notify(1, types.StageInterestProfiler, &st)
	if err := checkpoint(); err != nil {
		return partial(err)
	}

	notify(2, types.StageSkillEvaluator, nil)
	skillProfile, st := skills.NewEvaluator(opts.Client, stageConfig(opts.Skills, skills.DefaultConfig)).Execute(ctx, input, pc.Interests)
	pc = pc.WithSkills(skillProfile, st)
	notify(2, types.StageSkillEvaluator, &st)
	if err := checkpoint(); err != nil {
		return partial(err)
	}

	notify(3, types.StagePersonalityMapper, nil)
	personalityProfile, st := personality.NewMapper(opts.Client, stageConfig(opts.Personality, personality.DefaultConfig)).Execute(ctx, input, pc.Interests, pc.Skills)
	pc = pc.WithPersonality(personalityProfile, st)
	notify(3, types.StagePersonalityMapper, &st)
	if err := checkpoint(); err != nil {
		return partial(err)
	}

	notify(4, types.StageMarketTrendAnalyzer, nil)
	trends, st := market.NewAnalyzer(opts.Client, stageConfig(opts.Market, market.DefaultConfig)).Execute(ctx, input, pc.Interests, pc.Skills)
	pc = pc.WithMarket(trends, st)
	notify(4, types.StageMarketTrendAnalyzer, &st)
	if err := checkpoint(); err != nil {
		return partial(err)
	}

	notify(5, types.StageCareerRecommender, nil)
	recs, st := recommend.NewRecommender(opts.Client, stageConfig(opts.Recommend, recommend.DefaultConfig)).Execute(ctx, input, pc.Interests, pc.Skills, pc.Personality, pc.Market)
	pc = pc.WithRecommendations(recs, st)
	notify(5, types.StageCareerRecommender, &st)
	if err := checkpoint(); err != nil {
		return partial(err)
	}

	notify(6, types.StageOutputFormatter, nil)
	output, st := format.NewFormatter(opts.Client, stageConfig(opts.Format, format.DefaultConfig)).Execute(ctx, input, pc.Interests, pc.Skills, pc.Personality, pc.Recommendations)
	pc = pc.WithOutput(output, st)
	notify(6, types.StageOutputFormatter, &st)

	return &Result{RunID: runID, Context: pc, Elapsed: time.Since(start)}, nil
}

// stageConfig resolves a possibly-nil override against the stage's defaults.
func stageConfig[T any](override *T, defaults func() T) T {
	if override != nil {
		return *override
	}
	return defaults()
}
