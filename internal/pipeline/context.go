// Package pipeline runs the six counseling stages in order and accumulates
// their outputs into an immutable context that later stages read from.
package pipeline

import "github.com/jonathan/career-counselor/internal/types"

// Context is the accumulated state of a pipeline run. It is a value type:
// each With* method returns a copy with one field set, so a snapshot taken
// after stage N never changes when stage N+1 runs.
type Context struct {
	Input           *types.UserInput
	Interests       *types.InterestProfile
	Skills          *types.SkillProfile
	Personality     *types.PersonalityProfile
	Market          *types.MarketTrends
	Recommendations *types.CareerRecommendations
	Output          *types.FormattedOutput
	Statuses        []types.StageStatus
}

// NewContext starts a run context from validated user input.
func NewContext(input *types.UserInput) Context {
	return Context{Input: input}
}

// WithInterests returns a copy with the interest profile and its status set.
func (c Context) WithInterests(p *types.InterestProfile, st types.StageStatus) Context {
	c.Interests = p
	c.Statuses = appendStatus(c.Statuses, st)
	return c
}

// WithSkills returns a copy with the skill profile and its status set.
func (c Context) WithSkills(p *types.SkillProfile, st types.StageStatus) Context {
	c.Skills = p
	c.Statuses = appendStatus(c.Statuses, st)
	return c
}

// WithPersonality returns a copy with the personality profile and its status set.
func (c Context) WithPersonality(p *types.PersonalityProfile, st types.StageStatus) Context {
	c.Personality = p
	c.Statuses = appendStatus(c.Statuses, st)
	return c
}

// WithMarket returns a copy with the market trends and their status set.
func (c Context) WithMarket(t *types.MarketTrends, st types.StageStatus) Context {
	c.Market = t
	c.Statuses = appendStatus(c.Statuses, st)
	return c
}

// WithRecommendations returns a copy with the recommendations and their status set.
func (c Context) WithRecommendations(r *types.CareerRecommendations, st types.StageStatus) Context {
	c.Recommendations = r
	c.Statuses = appendStatus(c.Statuses, st)
	return c
}

// WithOutput returns a copy with the formatted output and its status set.
func (c Context) WithOutput(o *types.FormattedOutput, st types.StageStatus) Context {
	c.Output = o
	c.Statuses = appendStatus(c.Statuses, st)
	return c
}

// Complete reports whether all six stages have recorded a status.
func (c Context) Complete() bool {
	return len(c.Statuses) == len(types.StageOrder) && c.Output != nil
}

// FallbackCount returns the number of stages that substituted a fallback.
func (c Context) FallbackCount() int {
	n := 0
	for _, st := range c.Statuses {
		if !st.OK() {
			n++
		}
	}
	return n
}

// StatusFor returns the recorded status for a stage name.
func (c Context) StatusFor(name string) (types.StageStatus, bool) {
	for _, st := range c.Statuses {
		if st.Stage == name {
			return st, true
		}
	}
	return types.StageStatus{}, false
}

// appendStatus copies the slice before appending so earlier snapshots keep
// their own status lists.
func appendStatus(statuses []types.StageStatus, st types.StageStatus) []types.StageStatus {
	out := make([]types.StageStatus, len(statuses), len(statuses)+1)
	copy(out, statuses)
	return append(out, st)
}
