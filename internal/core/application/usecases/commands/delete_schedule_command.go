package commands

import (
	"errors"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/pkg/guard"
)

var ErrDeleteScheduleCommandIsNotConstructed = errors.New(
	"DeleteScheduleCommand must be created via NewDeleteScheduleCommand constructor",
)

// DeleteScheduleCommand represents a request to remove a schedule and cancel
// its pending timer. An in-flight run is not cancelled.
type DeleteScheduleCommand struct { //nolint:recvcheck //using for validation
	scheduleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteScheduleCommand creates a command to remove a schedule.
func NewDeleteScheduleCommand(scheduleID kernel.UUID) (DeleteScheduleCommand, error) {
	if err := scheduleID.Validate(); err != nil {
		return DeleteScheduleCommand{}, err
	}

	return DeleteScheduleCommand{
		scheduleID: scheduleID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteScheduleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteScheduleCommandIsNotConstructed)
}

// ScheduleID returns the schedule ID from the command.
func (c DeleteScheduleCommand) ScheduleID() kernel.UUID {
	return c.scheduleID
}
