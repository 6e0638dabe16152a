package order

import (
	"fmt"

	"buyback/internal/pkg/errs"
)

// Status represents the lifecycle state of a buy-back order.
// It implements a state machine with defined transitions so that orders
// follow the correct business workflow.
//
// State transitions:
//
//	new ──> processing ──┬──> Completed
//	 ^          │        │
//	 │          v        │
//	 └──── rescheduled ──┴──> cancelled
//
// An order is claimed out of "new" into "processing" by a partner, may be
// rescheduled while in flight, and ends in one of the two terminal states.
// De-assignment by an administrator reverts a claimed order back to "new".
//
// cancelled and Completed are terminal: the only permitted "transition"
// out of them is the idempotent re-application of the same state, reported
// through the ErrAlreadyCancelled and ErrAlreadyCompleted sentinels so
// callers can surface an informational success instead of a hard failure.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status: the order is waiting to be claimed by a partner.
	New

	// Processing indicates the order has been claimed by a partner.
	Processing

	// Rescheduled indicates the pickup schedule was replaced after creation.
	Rescheduled

	// Cancelled is a terminal state reachable from any non-terminal state.
	Cancelled

	// Completed is a terminal state; the device was collected and the final
	// condition evidence recorded.
	Completed
)

// Idempotency sentinels. Re-applying a terminal state is not a hard
// failure; callers translate these into informational results.
var (
	ErrAlreadyCancelled = fmt.Errorf("order is already cancelled")
	ErrAlreadyCompleted = fmt.Errorf("order is already completed")
)

// getStatusStrings returns the external string representation of every
// Status value. The spelling of each state, including the capitalised
// "Completed", matches the persisted data format.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		New:         "new",
		Processing:  "processing",
		Rescheduled: "rescheduled",
		Cancelled:   "cancelled",
		Completed:   "Completed",
	}
}

// getValidStatusStrings returns only valid Status values, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:         "new",
		Processing:  "processing",
		Rescheduled: "rescheduled",
		Cancelled:   "cancelled",
		Completed:   "Completed",
	}
}

// StatusFromString parses the external representation of a status.
// Used when reconstructing orders from persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the external name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed out of s.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Completed
}

// Accept transitions the status to Processing.
//
// Valid transitions:
//   - new -> processing (a partner claims the order)
//
// Any other starting state is invalid: an order can only be claimed while
// it is waiting in "new".
func (s Status) Accept() (Status, error) {
	if s != New {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return Processing, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - new | processing | rescheduled -> cancelled
//
// Cancelling an already-cancelled order returns ErrAlreadyCancelled so the
// caller can report an informational success without repeating side
// effects. Cancelling a completed order is invalid.
func (s Status) Cancel() (Status, error) {
	if s == Cancelled {
		return 0, ErrAlreadyCancelled
	}
	if s == Completed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}

// Reschedule transitions the status to Rescheduled.
//
// Valid transitions:
//   - any non-terminal state -> rescheduled
func (s Status) Reschedule() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reschedule", s.String()),
		)
	}
	return Rescheduled, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - processing | rescheduled -> Completed
//
// Completing an already-completed order returns ErrAlreadyCompleted
// (idempotent no-op); completing a cancelled or unclaimed order is invalid.
func (s Status) Complete() (Status, error) {
	if s == Completed {
		return 0, ErrAlreadyCompleted
	}
	if s != Processing && s != Rescheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}

// Deassign reverts a claimed order back to New.
//
// Valid transitions:
//   - processing | rescheduled -> new
func (s Status) Deassign() (Status, error) {
	if s != Processing && s != Rescheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deassign", s.String()),
		)
	}
	return New, nil
}
