package commands

import (
	"errors"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
	"reporting/internal/pkg/errs"
	"reporting/internal/pkg/guard"
)

var ErrUpdateScheduleCommandIsNotConstructed = errors.New(
	"UpdateScheduleCommand must be created via NewUpdateScheduleCommand constructor",
)

// UpdateScheduleCommand represents a request to save changes to an existing
// schedule: its definition and its activation status. The watermark is never
// touched by an update.
type UpdateScheduleCommand struct { //nolint:recvcheck //using for validation
	scheduleID     kernel.UUID
	title          string
	cadence        schedule.Cadence
	sourceID       kernel.UUID
	fieldSelection []string
	delivery       schedule.Delivery
	active         bool

	guard guard.ConstructorGuard
}

// NewUpdateScheduleCommand creates a command to save schedule changes.
func NewUpdateScheduleCommand(
	scheduleID kernel.UUID,
	title string,
	cadence schedule.Cadence,
	sourceID kernel.UUID,
	fieldSelection []string,
	delivery schedule.Delivery,
	active bool,
) (UpdateScheduleCommand, error) {
	command := UpdateScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setScheduleID(scheduleID),
		command.setTitle(title),
		command.setCadence(cadence),
		command.setSourceID(sourceID),
		command.setFieldSelection(fieldSelection),
		command.setDelivery(delivery),
	); err != nil {
		return UpdateScheduleCommand{}, err
	}

	command.active = active
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateScheduleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateScheduleCommandIsNotConstructed)
}

// ScheduleID returns the schedule ID from the command.
func (c UpdateScheduleCommand) ScheduleID() kernel.UUID {
	return c.scheduleID
}

// Title returns the schedule title from the command.
func (c UpdateScheduleCommand) Title() string {
	return c.title
}

// Cadence returns the schedule cadence from the command.
func (c UpdateScheduleCommand) Cadence() schedule.Cadence {
	return c.cadence
}

// SourceID returns the record source ID from the command.
func (c UpdateScheduleCommand) SourceID() kernel.UUID {
	return c.sourceID
}

// FieldSelection returns the ordered field selection from the command.
func (c UpdateScheduleCommand) FieldSelection() []string {
	selection := make([]string, len(c.fieldSelection))
	copy(selection, c.fieldSelection)
	return selection
}

// Delivery returns the delivery settings from the command.
func (c UpdateScheduleCommand) Delivery() schedule.Delivery {
	return c.delivery
}

// Active reports the requested activation status.
func (c UpdateScheduleCommand) Active() bool {
	return c.active
}

func (c *UpdateScheduleCommand) setScheduleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.scheduleID = id
	return nil
}

func (c *UpdateScheduleCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *UpdateScheduleCommand) setCadence(cadence schedule.Cadence) error {
	if err := cadence.Validate(); err != nil {
		return err
	}

	c.cadence = cadence
	return nil
}

func (c *UpdateScheduleCommand) setSourceID(sourceID kernel.UUID) error {
	if err := sourceID.Validate(); err != nil {
		return err
	}

	c.sourceID = sourceID
	return nil
}

func (c *UpdateScheduleCommand) setFieldSelection(fieldSelection []string) error {
	if len(fieldSelection) == 0 {
		return errs.NewValueIsRequiredError("fieldSelection")
	}

	selection := make([]string, len(fieldSelection))
	copy(selection, fieldSelection)
	c.fieldSelection = selection
	return nil
}

func (c *UpdateScheduleCommand) setDelivery(delivery schedule.Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}

	c.delivery = delivery
	return nil
}
