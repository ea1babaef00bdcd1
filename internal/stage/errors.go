package stage

import (
	"errors"
	"fmt"

	"github.com/jonathan/career-counselor/internal/types"
)

// CollaboratorError represents a failed or timed-out language model call
type CollaboratorError struct {
	Message string
	Cause   error
}

func (e *CollaboratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("collaborator call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("collaborator call failed: %s", e.Message)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Cause
}

// ParseError represents a response that could not be mapped to the stage's
// expected structured shape
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// PrerequisiteError means required user input for a stage was not supplied,
// so the collaborator call was never attempted
type PrerequisiteError struct {
	Missing string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("missing prerequisite: %s", e.Missing)
}

// ReasonFor maps a stage-level error to the fallback reason recorded in the
// stage status.
func ReasonFor(err error) types.FallbackReason {
	var collabErr *CollaboratorError
	var parseErr *ParseError
	var prereqErr *PrerequisiteError

	switch {
	case errors.As(err, &prereqErr):
		return types.ReasonPrerequisiteMissing
	case errors.As(err, &parseErr):
		return types.ReasonParseFailed
	case errors.As(err, &collabErr):
		return types.ReasonCallFailed
	default:
		return types.ReasonCallFailed
	}
}
