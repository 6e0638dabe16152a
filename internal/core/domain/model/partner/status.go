package partner

import (
	"fmt"

	"buyback/internal/pkg/errs"
)

// Status represents the account state of a partner.
// Blocked partners fail session authorization and cannot act.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Active is the normal operating state.
	Active

	// Blocked disables all partner activity until an administrator unblocks.
	Blocked
)

// getValidStatusStrings returns only valid Status values, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:  "active",
		Blocked: "blocked",
	}
}

// StatusFromString parses the external representation of a partner status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid partner status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid partner status", s))
	}
	return nil
}

// String returns the external name of the status.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
