package booking

import (
	"fmt"
	"strings"

	"telecare/models"
)

// ValidationError reports a commit attempted against an incomplete draft
// or malformed input. Recoverable: the caller should route the user back
// to the first missing wizard step.
type ValidationError struct {
	Message string
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: missing %s", e.Message, strings.Join(e.Missing, ", "))
	}
	return e.Message
}

// InvalidTransitionError reports a lifecycle transition blocked by the
// terminal-state invariant or by the permission rules. The record is
// never partially applied.
type InvalidTransitionError struct {
	AppointmentID string
	Current       models.AppointmentStatus
	Reason        string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition on appointment %s (status %s): %s",
		e.AppointmentID, e.Current, e.Reason)
}

// PersistenceError wraps a failed store or cache operation. It is
// propagated to the caller unchanged; retries belong to the calling layer.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// CommitInFlightError reports a duplicate commit submission while an
// earlier commit for the same session is still being processed.
type CommitInFlightError struct {
	SessionID string
}

func (e *CommitInFlightError) Error() string {
	return fmt.Sprintf("a commit for session %s is already in flight", e.SessionID)
}
