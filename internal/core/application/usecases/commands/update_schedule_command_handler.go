package commands

import (
	"context"

	"reporting/internal/core/ports"
)

// UpdateScheduleCommandHandler handles the business logic for saving schedule
// changes. Persists the reconfigured aggregate and keeps its timer consistent
// with the new definition: re-armed when active and configured, disarmed
// otherwise.
type UpdateScheduleCommandHandler struct {
	uowFactory ScheduleUoWFactory
	timers     ports.TimerRegistry
}

// NewUpdateScheduleCommandHandler creates a handler for saving schedule changes.
func NewUpdateScheduleCommandHandler(
	uowFactory ScheduleUoWFactory,
	timers ports.TimerRegistry,
) UpdateScheduleCommandHandler {
	return UpdateScheduleCommandHandler{
		uowFactory: uowFactory,
		timers:     timers,
	}
}

// Handle processes the schedule update command.
// Loads the schedule, applies the new definition and activation status within
// a transaction, then reconciles the timer with the saved state.
func (h *UpdateScheduleCommandHandler) Handle(ctx context.Context, cmd UpdateScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduleRepository()
	aggregate, err := scheduleRepo.Get(ctx, cmd.ScheduleID())
	if err != nil {
		return err
	}

	if err = aggregate.Reconfigure(
		cmd.Title(),
		cmd.Cadence(),
		cmd.SourceID(),
		cmd.FieldSelection(),
		cmd.Delivery(),
	); err != nil {
		return err
	}

	if cmd.Active() {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = scheduleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if aggregate.IsActive() && aggregate.Cadence().IsConfigured() {
		return h.timers.Register(aggregate.ID(), aggregate.Cadence())
	}

	h.timers.Cancel(aggregate.ID())
	return nil
}
