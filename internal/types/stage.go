// Package types provides type definitions for structured data used throughout the career-counselor system.
package types

// Stage names in pipeline order.
const (
	StageInterestProfiler    = "interest_profiler"
	StageSkillEvaluator      = "skill_evaluator"
	StagePersonalityMapper   = "personality_mapper"
	StageMarketTrendAnalyzer = "market_trend_analyzer"
	StageCareerRecommender   = "career_recommender"
	StageOutputFormatter     = "output_formatter"
)

// StageOrder lists the six stages in execution order.
var StageOrder = []string{
	StageInterestProfiler,
	StageSkillEvaluator,
	StagePersonalityMapper,
	StageMarketTrendAnalyzer,
	StageCareerRecommender,
	StageOutputFormatter,
}

// Status is the outcome of a completed stage. A stage always resolves to one
// of these two values; stage-level failures never propagate past the stage.
type Status string

// Stage status values.
const (
	// StatusOK means the stage produced its profile from a successful
	// collaborator call.
	StatusOK Status = "ok"
	// StatusFallback means the stage substituted its configured fallback
	// profile.
	StatusFallback Status = "fallback"
)

// FallbackReason records why a fallback profile was substituted.
type FallbackReason string

// Fallback reasons.
const (
	// ReasonNone marks a stage that completed normally.
	ReasonNone FallbackReason = ""
	// ReasonCallFailed means the collaborator call errored or timed out.
	ReasonCallFailed FallbackReason = "call_failed"
	// ReasonParseFailed means the response could not be decoded into the
	// stage's structured shape.
	ReasonParseFailed FallbackReason = "parse_failed"
	// ReasonPrerequisiteMissing means required user input was not supplied,
	// so the call was never attempted.
	ReasonPrerequisiteMissing FallbackReason = "prerequisite_missing"
)

// StageStatus is the per-stage status record the driver assembles for
// observability.
type StageStatus struct {
	Stage    string         `json:"stage"`
	Status   Status         `json:"status"`
	Reason   FallbackReason `json:"reason,omitempty"`
	Attempts int            `json:"attempts"`
}

// OK reports whether the stage completed without falling back.
func (s StageStatus) OK() bool {
	return s.Status == StatusOK
}
