package commands

import (
	"errors"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
	"reporting/internal/pkg/errs"
	"reporting/internal/pkg/guard"
)

var (
	ErrCreateScheduleCommandIsNotConstructed = errors.New(
		"CreateScheduleCommand must be created via NewCreateScheduleCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// CreateScheduleCommand represents a request to register a new report
// schedule. Encapsulates everything needed to create the schedule aggregate:
// cadence, source binding, field selection, and delivery settings.
//
// Example:
//
//	cmd, err := NewCreateScheduleCommand("Weekly Leads", cadence, sourceID, fields, delivery)
//	if err != nil {
//	    return fmt.Errorf("invalid schedule data: %w", err)
//	}
//
//	handler := NewCreateScheduleCommandHandler(uowFactory, timers)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create schedule: %w", err)
//	}
//	fmt.Printf("Created schedule with ID: %s", cmd.ScheduleID())
type CreateScheduleCommand struct { //nolint:recvcheck //using for validation
	scheduleID     kernel.UUID
	title          string
	cadence        schedule.Cadence
	sourceID       kernel.UUID
	fieldSelection []string
	delivery       schedule.Delivery

	guard guard.ConstructorGuard
}

// NewCreateScheduleCommand creates a command to register a new schedule.
// Automatically generates a unique ID for the schedule.
func NewCreateScheduleCommand(
	title string,
	cadence schedule.Cadence,
	sourceID kernel.UUID,
	fieldSelection []string,
	delivery schedule.Delivery,
) (CreateScheduleCommand, error) {
	command := CreateScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setScheduleID(kernel.NewUUID()),
		command.setTitle(title),
		command.setCadence(cadence),
		command.setSourceID(sourceID),
		command.setFieldSelection(fieldSelection),
		command.setDelivery(delivery),
	); err != nil {
		return CreateScheduleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateScheduleCommandIsNotConstructed if validation fails.
func (c CreateScheduleCommand) Validate() error {
	return c.guard.Validate(ErrCreateScheduleCommandIsNotConstructed)
}

// ScheduleID returns the generated schedule ID from the command.
func (c CreateScheduleCommand) ScheduleID() kernel.UUID {
	return c.scheduleID
}

// Title returns the schedule title from the command.
func (c CreateScheduleCommand) Title() string {
	return c.title
}

// Cadence returns the schedule cadence from the command.
func (c CreateScheduleCommand) Cadence() schedule.Cadence {
	return c.cadence
}

// SourceID returns the record source ID from the command.
func (c CreateScheduleCommand) SourceID() kernel.UUID {
	return c.sourceID
}

// FieldSelection returns the ordered field selection from the command.
func (c CreateScheduleCommand) FieldSelection() []string {
	selection := make([]string, len(c.fieldSelection))
	copy(selection, c.fieldSelection)
	return selection
}

// Delivery returns the delivery settings from the command.
func (c CreateScheduleCommand) Delivery() schedule.Delivery {
	return c.delivery
}

func (c *CreateScheduleCommand) setScheduleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.scheduleID = id
	return nil
}

func (c *CreateScheduleCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateScheduleCommand) setCadence(cadence schedule.Cadence) error {
	if err := cadence.Validate(); err != nil {
		return err
	}

	c.cadence = cadence
	return nil
}

func (c *CreateScheduleCommand) setSourceID(sourceID kernel.UUID) error {
	if err := sourceID.Validate(); err != nil {
		return err
	}

	c.sourceID = sourceID
	return nil
}

func (c *CreateScheduleCommand) setFieldSelection(fieldSelection []string) error {
	if len(fieldSelection) == 0 {
		return errs.NewValueIsRequiredError("fieldSelection")
	}

	selection := make([]string, len(fieldSelection))
	copy(selection, fieldSelection)
	c.fieldSelection = selection
	return nil
}

func (c *CreateScheduleCommand) setDelivery(delivery schedule.Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}

	c.delivery = delivery
	return nil
}
