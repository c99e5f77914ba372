package commands

import (
	"context"

	"reporting/internal/core/domain/model/schedule"
	"reporting/internal/core/ports"
)

// CreateScheduleCommandHandler handles the business logic for schedule
// registration. Creates and persists the schedule aggregate and arms its
// timer.
//
// Example:
//
//	handler := NewCreateScheduleCommandHandler(uowFactory, timers)
//	cmd, _ := NewCreateScheduleCommand("Weekly Leads", cadence, sourceID, fields, delivery)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("schedule registration failed: %w", err)
//	}
type CreateScheduleCommandHandler struct {
	uowFactory ScheduleUoWFactory
	timers     ports.TimerRegistry
}

// NewCreateScheduleCommandHandler creates a handler for schedule registration.
func NewCreateScheduleCommandHandler(
	uowFactory ScheduleUoWFactory,
	timers ports.TimerRegistry,
) CreateScheduleCommandHandler {
	return CreateScheduleCommandHandler{
		uowFactory: uowFactory,
		timers:     timers,
	}
}

// Handle processes the schedule creation command.
// Persists the new schedule within a transaction, then arms its timer. A
// schedule whose cadence is not configured is stored but never armed.
func (h *CreateScheduleCommandHandler) Handle(ctx context.Context, cmd CreateScheduleCommand) error {
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
	aggregate, err := schedule.NewSchedule(
		cmd.ScheduleID(),
		cmd.Title(),
		cmd.Cadence(),
		cmd.SourceID(),
		cmd.FieldSelection(),
		cmd.Delivery(),
	)
	if err != nil {
		return err
	}

	if err = scheduleRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if aggregate.Cadence().IsConfigured() {
		return h.timers.Register(aggregate.ID(), aggregate.Cadence())
	}

	return nil
}
