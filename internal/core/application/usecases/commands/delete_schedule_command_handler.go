package commands

import (
	"context"

	"reporting/internal/core/ports"
)

// DeleteScheduleCommandHandler handles the business logic for schedule
// removal: the row is deleted and the pending timer cancelled.
type DeleteScheduleCommandHandler struct {
	uowFactory ScheduleUoWFactory
	timers     ports.TimerRegistry
}

// NewDeleteScheduleCommandHandler creates a handler for schedule removal.
func NewDeleteScheduleCommandHandler(
	uowFactory ScheduleUoWFactory,
	timers ports.TimerRegistry,
) DeleteScheduleCommandHandler {
	return DeleteScheduleCommandHandler{
		uowFactory: uowFactory,
		timers:     timers,
	}
}

// Handle processes the schedule deletion command.
// Removes the schedule within a transaction, then cancels its timer. The
// timer is cancelled only after a successful commit so a failed delete
// leaves the schedule armed.
func (h *DeleteScheduleCommandHandler) Handle(ctx context.Context, cmd DeleteScheduleCommand) error {
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
	if err := scheduleRepo.Delete(ctx, cmd.ScheduleID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.timers.Cancel(cmd.ScheduleID())
	return nil
}
