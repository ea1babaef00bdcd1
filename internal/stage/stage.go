// Package stage provides the shared invocation contract for pipeline stages:
// bounded retries, per-attempt timeouts, and strict decoding of collaborator
// responses. A stage never lets a failure escape its boundary; it resolves to
// either its decoded profile or its configured fallback.
package stage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jonathan/career-counselor/internal/llm"
	"github.com/jonathan/career-counselor/internal/schemas"
	"github.com/jonathan/career-counselor/internal/types"
)

// Call bounds a single stage's collaborator interaction.
type Call struct {
	// RetryLimit is the number of additional attempts after the first
	// failure. The total attempt count is 1+RetryLimit.
	RetryLimit int
	// Timeout bounds each individual collaborator call.
	Timeout time.Duration
}

// DefaultCall returns the default invocation bounds: one retry, then fall back.
func DefaultCall() Call {
	return Call{
		RetryLimit: 1,
		Timeout:    30 * time.Second,
	}
}

func (c Call) withDefaults() Call {
	if c.RetryLimit < 0 {
		c.RetryLimit = 0
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return c
}

// Invoke runs the collaborator call plus decode as a single attempt, retrying
// failed attempts up to the configured limit. It returns the number of
// attempts made and the last error, which is always a *CollaboratorError or
// *ParseError. Cancellation of the parent context stops retrying immediately.
func Invoke(ctx context.Context, client llm.Client, call Call, prompt string, tier llm.ModelTier, decode func(payload string) error) (int, error) {
	call = call.withDefaults()

	var lastErr error
	attempts := 0

	for attempts <= call.RetryLimit {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return attempts, lastErr
			}
			return attempts, &CollaboratorError{Message: "run cancelled", Cause: err}
		}

		attempts++

		payload, err := generate(ctx, client, call.Timeout, prompt, tier)
		if err != nil {
			lastErr = &CollaboratorError{Message: "failed to generate content", Cause: err}
			continue
		}

		if err := decode(payload); err != nil {
			lastErr = err
			continue
		}

		return attempts, nil
	}

	return attempts, lastErr
}

func generate(ctx context.Context, client llm.Client, timeout time.Duration, prompt string, tier llm.ModelTier) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.GenerateJSON(callCtx, prompt, tier)
}

// Decode validates a cleaned JSON payload against the named embedded schema
// and unmarshals it into v. Any failure is a *ParseError.
func Decode(schemaName, payload string, v any) error {
	if err := schemas.Validate(schemaName, payload); err != nil {
		return &ParseError{Message: "response does not match " + schemaName + " schema", Cause: err}
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return &ParseError{Message: "failed to unmarshal " + schemaName + " response", Cause: err}
	}
	return nil
}

// OK builds the status record for a stage that produced its profile normally.
func OK(name string, attempts int) types.StageStatus {
	return types.StageStatus{
		Stage:    name,
		Status:   types.StatusOK,
		Attempts: attempts,
	}
}

// Fallback builds the status record for a stage that substituted its fallback.
func Fallback(name string, err error, attempts int) types.StageStatus {
	return types.StageStatus{
		Stage:    name,
		Status:   types.StatusFallback,
		Reason:   ReasonFor(err),
		Attempts: attempts,
	}
}
