package render

import (
	"errors"
	"fmt"
)

// Error codes surfaced in API responses and callbacks.
const (
	ErrorCodeScriptNotApproved    = "SCRIPT_NOT_APPROVED"
	ErrorCodeJobNotFound          = "JOB_NOT_FOUND"
	ErrorCodeNoRenderSpecForRetry = "NO_RENDER_SPEC_FOR_RETRY"
	ErrorCodeEmptyRenderSpec      = "EMPTY_RENDER_SPEC"
	ErrorCodeRender               = "RENDER_ERROR"
)

var (
	// ErrJobNotFound is returned when no job matches the id.
	ErrJobNotFound = errors.New("render job not found")

	// ErrScriptNotApproved rejects job creation for unapproved scripts.
	ErrScriptNotApproved = errors.New("script is not approved")

	// ErrNoRenderSpecForRetry rejects retries of jobs that never snapshotted
	// a spec.
	ErrNoRenderSpecForRetry = errors.New("no render spec snapshot for retry")

	// ErrEmptyRenderSpec rejects specs without scenes.
	ErrEmptyRenderSpec = errors.New("render spec has no scenes")
)

// TransitionError is returned when an operation is not valid for the job's
// current status (e.g. retrying a COMPLETED job).
type TransitionError struct {
	JobID  string
	Status string
	Op     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s job %s in status %s", e.Op, e.JobID, e.Status)
}

// IsTransitionError checks if an error is a transition error.
func IsTransitionError(err error) bool {
	var te *TransitionError
	return errors.As(err, &te)
}
