package schedule

import (
	"fmt"
	"time"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/pkg/errs"
)

const daysPerWeek = 7

// Cadence is a value object fully determining when a schedule fires: the
// recurrence unit, a repeat multiplier, the wall-clock time of day, and, for
// weekly schedules, an optional pinned weekday.
//
// A Cadence without a time of day is a valid "not configured" state: the
// schedule definition exists but no fire time can be computed and all
// scheduling operations treat it as a no-op.
//
// Cadence invariants:
//   - repeat multiplier is at least 1 (invalid input is clamped, not rejected)
//   - a weekday may only be pinned on a Weekly cadence
//
// Cadence is immutable; NextFireAfter is a pure function of the cadence and
// the reference instant, never of any run history.
type Cadence struct {
	recurrence  Recurrence
	repeatEvery int
	timeOfDay   *kernel.TimeOfDay
	weekday     *time.Weekday
}

// NewCadence creates a Cadence. A repeatEvery below 1 is clamped to 1.
// timeOfDay may be nil (the "not configured" state). A non-nil weekday is
// only allowed when recurrence is Weekly and must lie in Sunday..Saturday.
func NewCadence(
	recurrence Recurrence,
	repeatEvery int,
	timeOfDay *kernel.TimeOfDay,
	weekday *time.Weekday,
) (Cadence, error) {
	if err := recurrence.Validate(); err != nil {
		return Cadence{}, err
	}

	if timeOfDay != nil {
		if err := timeOfDay.Validate(); err != nil {
			return Cadence{}, err
		}
	}

	if weekday != nil {
		if recurrence != Weekly {
			return Cadence{}, errs.NewValueIsInvalidErrorWithCause(
				"weekday",
				fmt.Errorf("weekday may only be set for a weekly cadence, got %s", recurrence),
			)
		}
		if *weekday < time.Sunday || *weekday > time.Saturday {
			return Cadence{}, errs.NewValueIsOutOfRangeError(
				"weekday", int(*weekday), int(time.Sunday), int(time.Saturday),
			)
		}
	}

	if repeatEvery < 1 {
		repeatEvery = 1
	}

	return Cadence{
		recurrence:  recurrence,
		repeatEvery: repeatEvery,
		timeOfDay:   timeOfDay,
		weekday:     weekday,
	}, nil
}

// Recurrence returns the recurrence unit.
func (c Cadence) Recurrence() Recurrence {
	return c.recurrence
}

// RepeatEvery returns the repeat multiplier (always >= 1 for a constructed cadence).
func (c Cadence) RepeatEvery() int {
	return c.repeatEvery
}

// TimeOfDay returns the configured wall-clock fire time, or nil when the
// cadence is not configured.
func (c Cadence) TimeOfDay() *kernel.TimeOfDay {
	return c.timeOfDay
}

// Weekday returns the pinned weekday for weekly cadences, or nil.
func (c Cadence) Weekday() *time.Weekday {
	return c.weekday
}

// IsConfigured reports whether a fire time can be computed at all.
// A cadence with no time of day or no valid recurrence is "not configured"
// and every scheduling operation against it is a no-op.
func (c Cadence) IsConfigured() bool {
	return c.timeOfDay != nil && c.recurrence.Validate() == nil
}

// NextFireAfter computes the next fire instant strictly from the cadence and
// the given reference instant. The second return value is false when the
// cadence is not configured.
//
// The candidate is the reference instant's calendar day combined with the
// configured time of day:
//
//   - Daily: the candidate if still ahead, else the candidate advanced by
//     repeatEvery days.
//   - Weekly with a pinned weekday: the candidate advanced by
//     (weekday - weekdayOf(ref) + 7) mod 7 days; when that lands on today and
//     the candidate has already passed, exactly one week ahead regardless of
//     the repeat multiplier.
//   - Weekly without a weekday: the candidate if still ahead, else advanced
//     by repeatEvery weeks.
//   - Monthly: the candidate if still ahead, else advanced by
//     repeatEvery * 30 days.
func (c Cadence) NextFireAfter(now time.Time) (time.Time, bool) {
	if !c.IsConfigured() {
		return time.Time{}, false
	}

	candidate := c.timeOfDay.On(now)

	switch c.recurrence {
	case Daily:
		if candidate.After(now) {
			return candidate, true
		}
		return candidate.AddDate(0, 0, c.repeatEvery), true

	case Weekly:
		if c.weekday != nil {
			daysAhead := (int(*c.weekday) - int(now.Weekday()) + daysPerWeek) % daysPerWeek
			if daysAhead == 0 && !candidate.After(now) {
				daysAhead = daysPerWeek
			}
			return candidate.AddDate(0, 0, daysAhead), true
		}
		if candidate.After(now) {
			return candidate, true
		}
		return candidate.AddDate(0, 0, daysPerWeek*c.repeatEvery), true

	case Monthly:
		if candidate.After(now) {
			return candidate, true
		}
		return candidate.AddDate(0, 0, 30*c.repeatEvery), true

	default:
		return time.Time{}, false
	}
}

// Interval returns the nominal period between fires: repeatEvery days for
// Daily, repeatEvery weeks for Weekly, and repeatEvery 30-day blocks for
// Monthly. Evaluated just after a fire, NextFireAfter advances by exactly
// this amount; the value itself is surfaced for logging and diagnostics.
func (c Cadence) Interval() time.Duration {
	day := 24 * time.Hour
	switch c.recurrence {
	case Weekly:
		return time.Duration(c.repeatEvery) * daysPerWeek * day
	case Monthly:
		return time.Duration(c.repeatEvery) * 30 * day
	default:
		return time.Duration(c.repeatEvery) * day
	}
}

// Validate checks the cadence invariants. A zero-value Cadence is invalid.
func (c Cadence) Validate() error {
	if err := c.recurrence.Validate(); err != nil {
		return err
	}
	if c.repeatEvery < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"repeatEvery",
			fmt.Errorf("%d is not greater than 0", c.repeatEvery),
		)
	}
	return nil
}
