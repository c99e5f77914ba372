package schedule

import (
	"fmt"

	"reporting/internal/pkg/errs"
)

// Status represents the lifecycle state of a report schedule.
//
// Active schedules are registered with the timer dispatcher and run on their
// cadence; inactive schedules keep their definition and watermark but are
// never fired, and run requests against them are ignored.
//
// Status is a value object that validates state values and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active indicates the schedule is armed and runs on its cadence.
	Active

	// Inactive indicates the schedule is retained but never fired.
	Inactive
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Active:   "active",
		Inactive: "inactive",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "active",
		Inactive: "inactive",
	}
}

// StatusFromString parses a Status from its string representation.
// Returns an error for anything other than "active" or "inactive".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Active, Inactive. Unknown (0) and any other values
// are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
