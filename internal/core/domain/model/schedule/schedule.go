package schedule

import (
	"errors"
	"time"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/pkg/errs"
)

var (
	// ErrScheduleIsNotConstructed is returned when a Schedule instance was not created
	// through the NewSchedule or RestoreSchedule factory methods. This ensures all
	// schedules are properly validated.
	ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule or RestoreSchedule")
)

// Schedule represents a recurring report export definition. It is the
// aggregate root owning the cadence, the record source binding, the exported
// field selection, the delivery settings, and the incremental-export
// watermark.
//
// Schedule follows these invariants:
//   - Must have a valid unique identifier and a valid record source identifier
//   - Cadence and Delivery are constructed value objects
//   - The watermark (last run instant) is monotonically non-decreasing and is
//     only advanced by completing a run, never computed analytically
//   - Can only be created through NewSchedule or RestoreSchedule
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Schedule struct {
	// id is the unique identifier for the schedule
	id kernel.UUID

	// title is the operator-facing display name
	title string

	// status controls whether the schedule is armed
	status Status

	// cadence determines when the schedule fires
	cadence Cadence

	// sourceID identifies the record source the export reads from
	sourceID kernel.UUID

	// fieldSelection is the ordered list of field ids determining export columns
	fieldSelection []string

	// delivery holds addressing and wording for the dispatched report
	delivery Delivery

	// lastRunAt is the incremental-export watermark (nil before the first run)
	lastRunAt *time.Time

	// isConstructed ensures the schedule was created via a factory method
	isConstructed bool
}

// NewSchedule creates a new Schedule with validation. The schedule starts
// Active with no watermark, so its first run exports every record.
func NewSchedule(
	id kernel.UUID,
	title string,
	cadence Cadence,
	sourceID kernel.UUID,
	fieldSelection []string,
	delivery Delivery,
) (*Schedule, error) {
	s := &Schedule{
		status:        Active,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTitle(title),
		s.setCadence(cadence),
		s.setSourceID(sourceID),
		s.setFieldSelection(fieldSelection),
		s.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSchedule reconstructs a Schedule from persistence, including its
// status and watermark. Used by repositories when mapping stored rows back
// to the domain.
func RestoreSchedule(
	id kernel.UUID,
	title string,
	status Status,
	cadence Cadence,
	sourceID kernel.UUID,
	fieldSelection []string,
	delivery Delivery,
	lastRunAt *time.Time,
) (*Schedule, error) {
	s, err := NewSchedule(id, title, cadence, sourceID, fieldSelection, delivery)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	s.status = status

	if lastRunAt != nil && !lastRunAt.IsZero() {
		at := *lastRunAt
		s.lastRunAt = &at
	}

	return s, nil
}

// Validate ensures the Schedule instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (s *Schedule) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScheduleIsNotConstructed
	}
	return nil
}

// IsEqual compares two schedules by their unique identifiers.
func (s *Schedule) IsEqual(other *Schedule) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the schedule's unique identifier.
func (s *Schedule) ID() kernel.UUID {
	return s.id
}

// Title returns the operator-facing display name.
func (s *Schedule) Title() string {
	return s.title
}

// Status returns the current status of the schedule.
func (s *Schedule) Status() Status {
	return s.status
}

// IsActive reports whether the schedule is armed for execution.
func (s *Schedule) IsActive() bool {
	return s.status == Active
}

// Cadence returns the schedule's cadence.
func (s *Schedule) Cadence() Cadence {
	return s.cadence
}

// SourceID returns the record source identifier.
func (s *Schedule) SourceID() kernel.UUID {
	return s.sourceID
}

// FieldSelection returns a copy of the ordered export field selection.
func (s *Schedule) FieldSelection() []string {
	out := make([]string, len(s.fieldSelection))
	copy(out, s.fieldSelection)
	return out
}

// Delivery returns the delivery settings.
func (s *Schedule) Delivery() Delivery {
	return s.delivery
}

// LastRunAt returns the incremental-export watermark, or nil before the
// first completed run.
func (s *Schedule) LastRunAt() *time.Time {
	if s.lastRunAt == nil {
		return nil
	}
	at := *s.lastRunAt
	return &at
}

// NextFireAfter computes the next fire instant for this schedule from the
// given reference instant. Pure: depends only on the cadence and now, never
// on the watermark. The second return value is false when the cadence is not
// configured.
func (s *Schedule) NextFireAfter(now time.Time) (time.Time, bool) {
	return s.cadence.NextFireAfter(now)
}

// MarkRun advances the watermark to the run's completion instant. The
// watermark never moves backwards: a completion instant earlier than the
// stored watermark leaves it unchanged.
func (s *Schedule) MarkRun(completedAt time.Time) error {
	if completedAt.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}
	if s.lastRunAt != nil && completedAt.Before(*s.lastRunAt) {
		return nil
	}

	at := completedAt
	s.lastRunAt = &at
	return nil
}

// Activate arms the schedule.
func (s *Schedule) Activate() {
	s.status = Active
}

// Deactivate disarms the schedule without losing its definition or watermark.
func (s *Schedule) Deactivate() {
	s.status = Inactive
}

// Reconfigure replaces the editable definition of the schedule while
// preserving its identity, status, and watermark. Used when an operator
// saves changes to an existing schedule.
func (s *Schedule) Reconfigure(
	title string,
	cadence Cadence,
	sourceID kernel.UUID,
	fieldSelection []string,
	delivery Delivery,
) error {
	return errors.Join(
		s.setTitle(title),
		s.setCadence(cadence),
		s.setSourceID(sourceID),
		s.setFieldSelection(fieldSelection),
		s.setDelivery(delivery),
	)
}

// setID validates and sets the schedule's unique identifier.
// This is a private method used only during construction.
func (s *Schedule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Schedule) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	s.title = title
	return nil
}

func (s *Schedule) setCadence(cadence Cadence) error {
	if err := cadence.Validate(); err != nil {
		return err
	}
	s.cadence = cadence
	return nil
}

func (s *Schedule) setSourceID(sourceID kernel.UUID) error {
	if err := sourceID.Validate(); err != nil {
		return err
	}
	s.sourceID = sourceID
	return nil
}

func (s *Schedule) setFieldSelection(fieldSelection []string) error {
	if len(fieldSelection) == 0 {
		return errs.NewValueIsRequiredError("fieldSelection")
	}
	selection := make([]string, len(fieldSelection))
	copy(selection, fieldSelection)
	s.fieldSelection = selection
	return nil
}

func (s *Schedule) setDelivery(delivery Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	s.delivery = delivery
	return nil
}
