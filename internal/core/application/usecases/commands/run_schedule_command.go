package commands

import (
	"errors"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/pkg/guard"
)

var ErrRunScheduleCommandIsNotConstructed = errors.New(
	"RunScheduleCommand must be created via NewRunScheduleCommand constructor",
)

// RunScheduleCommand represents a request to execute one report run for a
// schedule. Timer fires and manual triggers both issue this command; the run
// path is identical for either caller.
type RunScheduleCommand struct { //nolint:recvcheck //using for validation
	scheduleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRunScheduleCommand creates a command to execute one report run.
func NewRunScheduleCommand(scheduleID kernel.UUID) (RunScheduleCommand, error) {
	if err := scheduleID.Validate(); err != nil {
		return RunScheduleCommand{}, err
	}

	return RunScheduleCommand{
		scheduleID: scheduleID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RunScheduleCommand) Validate() error {
	return c.guard.Validate(ErrRunScheduleCommandIsNotConstructed)
}

// ScheduleID returns the schedule ID from the command.
func (c RunScheduleCommand) ScheduleID() kernel.UUID {
	return c.scheduleID
}
