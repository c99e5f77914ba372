package schedule

import (
	"fmt"

	"reporting/internal/pkg/errs"
)

// Recurrence represents the base unit a schedule's cadence repeats on.
type Recurrence int

const (
	// RecurrenceUnknown represents an invalid or undefined recurrence.
	// This value (0) helps catch uninitialized Recurrence values.
	RecurrenceUnknown Recurrence = iota

	// Daily repeats every repeat-multiplier days.
	Daily

	// Weekly repeats every repeat-multiplier weeks, optionally pinned
	// to a specific weekday.
	Weekly

	// Monthly repeats every repeat-multiplier months, approximated as
	// 30-day blocks. Calendar-month arithmetic is deliberately not used.
	Monthly
)

func getRecurrenceStrings() map[Recurrence]string {
	return map[Recurrence]string{
		RecurrenceUnknown: "unknown",
		Daily:             "daily",
		Weekly:            "weekly",
		Monthly:           "monthly",
	}
}

func getValidRecurrenceStrings() map[Recurrence]string {
	//nolint:exhaustive // RecurrenceUnknown is intentionally excluded as it's invalid
	return map[Recurrence]string{
		Daily:   "daily",
		Weekly:  "weekly",
		Monthly: "monthly",
	}
}

// RecurrenceFromString parses a Recurrence from its string representation.
// Returns an error for anything other than "daily", "weekly", or "monthly".
func RecurrenceFromString(s string) (Recurrence, error) {
	for recurrence, str := range getValidRecurrenceStrings() {
		if str == s {
			return recurrence, nil
		}
	}
	return RecurrenceUnknown, errs.NewValueIsInvalidErrorWithCause(
		"recurrence",
		fmt.Errorf("%q is not a valid recurrence", s),
	)
}

// Validate checks if the Recurrence value is valid.
// Valid recurrences are: Daily, Weekly, Monthly.
func (r Recurrence) Validate() error {
	if _, ok := getValidRecurrenceStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("recurrence", fmt.Errorf("%d is not a valid recurrence", r))
	}
	return nil
}

// String returns the human-readable name of the recurrence.
// Safe to call on any Recurrence value, including invalid ones.
func (r Recurrence) String() string {
	if str, ok := getRecurrenceStrings()[r]; ok {
		return str
	}
	return "unknown"
}
