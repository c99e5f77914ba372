package kernel

import (
	"fmt"
	"time"

	"reporting/internal/pkg/errs"
)

// ErrTimeOfDayIsNotConstructed indicates that a TimeOfDay was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value TimeOfDay.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"TimeOfDay must be created via NewTimeOfDay or ParseTimeOfDay",
)

const (
	minHour   = 0
	maxHour   = 23
	minMinute = 0
	maxMinute = 59
)

// TimeOfDay is a value object representing a wall-clock time of day (HH:MM)
// with minute resolution. It carries no date and no time zone: the zone is
// supplied when the value is anchored to a concrete date via On.
//
// The zero value of TimeOfDay is invalid and must be constructed using
// NewTimeOfDay or ParseTimeOfDay. A schedule without a configured TimeOfDay
// is represented by a nil *TimeOfDay, not by the zero value.
//
// TimeOfDay is immutable and safe for concurrent use.
//
// Example usage:
//
//	at, err := kernel.ParseTimeOfDay("14:30")
//	if err != nil {
//	    // handle error
//	}
//	fire := at.On(time.Now()) // today at 14:30 in local time
type TimeOfDay struct {
	hour   int
	minute int

	isConstructed bool
}

// NewTimeOfDay creates a TimeOfDay from an hour (0-23) and minute (0-59).
// Returns a ValueIsOutOfRangeError if either component is outside its range.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < minHour || hour > maxHour {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, minHour, maxHour)
	}
	if minute < minMinute || minute > maxMinute {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, minMinute, maxMinute)
	}

	return TimeOfDay{
		hour:          hour,
		minute:        minute,
		isConstructed: true,
	}, nil
}

// ParseTimeOfDay parses a TimeOfDay from its "HH:MM" string representation.
// Accepts both zero-padded ("09:05") and unpadded ("9:05") hours.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("timeOfDay", err)
	}
	return NewTimeOfDay(hour, minute)
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return t.hour
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return t.minute
}

// On anchors the time of day to the date of the given instant, in that
// instant's location. The result is the same calendar day as ref with this
// value's hour and minute, seconds zeroed.
func (t TimeOfDay) On(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.hour, t.minute, 0, 0, ref.Location())
}

// String returns the zero-padded "HH:MM" representation.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// IsEqual compares two TimeOfDay values for equality.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.hour == other.hour && t.minute == other.minute
}

// Validate checks if the TimeOfDay was properly constructed.
// Returns ErrTimeOfDayIsNotConstructed for the zero value.
func (t TimeOfDay) Validate() error {
	if !t.isConstructed {
		return ErrTimeOfDayIsNotConstructed
	}
	return nil
}
