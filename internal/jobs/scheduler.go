package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"reporting/internal/core/application/usecases/commands"
	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"

	"github.com/robfig/cron/v3"
)

// Scheduler arms one cron entry per active report schedule and fires report
// runs when a schedule's cadence comes due. It implements ports.TimerRegistry
// so command handlers can arm and disarm timers without knowing about cron.
type Scheduler struct {
	runHandler *commands.RunScheduleCommandHandler
	uowFactory commands.ScheduleUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger

	mu      sync.Mutex
	entries map[kernel.UUID]cron.EntryID
}

// NewScheduler creates a scheduler. The run handler is attached separately
// through SetRunHandler because the handler itself depends on the scheduler
// as its timer registry.
func NewScheduler(uowFactory commands.ScheduleUoWFactory, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "scheduler"),
		entries:    make(map[kernel.UUID]cron.EntryID),
	}
}

// SetRunHandler attaches the handler that due schedules fire through.
// Must be called before Start.
func (s *Scheduler) SetRunHandler(runHandler *commands.RunScheduleCommandHandler) {
	s.runHandler = runHandler
}

// Start begins firing armed schedules.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.InfoContext(context.Background(), "Report scheduler started")
}

// Stop stops the scheduler. Runs already in flight are not interrupted.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.InfoContext(context.Background(), "Report scheduler stopped")
}

// Register arms a timer for the schedule, replacing any existing entry for
// the same ID. Re-registering after a cadence change moves the next fire.
func (s *Scheduler) Register(id kernel.UUID, cadence schedule.Cadence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.entries[id]; ok {
		s.cron.Remove(entryID)
	}

	s.entries[id] = s.cron.Schedule(cadenceSchedule{cadence: cadence}, cron.FuncJob(func() {
		s.fire(id)
	}))

	s.logger.Info("Schedule armed",
		"scheduleId", id.String(),
		"recurrence", cadence.Recurrence().String(),
		"interval", cadence.Interval(),
	)
	return nil
}

// Cancel disarms the schedule's timer. Unknown IDs are a no-op.
func (s *Scheduler) Cancel(id kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.entries[id]; ok {
		s.cron.Remove(entryID)
		delete(s.entries, id)
	}
}

// Reconcile arms timers for every active schedule found in storage. Called
// once at startup so schedules survive process restarts.
func (s *Scheduler) Reconcile(ctx context.Context) error {
	uow := s.uowFactory.Create()
	schedules, err := uow.ScheduleRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	armed := 0
	for _, aggregate := range schedules {
		if !aggregate.Cadence().IsConfigured() {
			continue
		}
		if err := s.Register(aggregate.ID(), aggregate.Cadence()); err != nil {
			return err
		}
		armed++
	}

	s.logger.InfoContext(ctx, "Schedules reconciled", "armed", armed, "total", len(schedules))
	return nil
}

func (s *Scheduler) fire(id kernel.UUID) {
	ctx := context.Background()

	if s.runHandler == nil {
		s.logger.ErrorContext(ctx, "No run handler attached", "scheduleId", id.String())
		return
	}

	cmd, err := commands.NewRunScheduleCommand(id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to build run command", "scheduleId", id.String(), "error", err)
		return
	}

	outcome, err := s.runHandler.Handle(ctx, cmd)
	if err != nil {
		s.logger.ErrorContext(ctx, "Scheduled run failed", "scheduleId", id.String(), "error", err)
		return
	}

	s.logger.InfoContext(ctx, "Scheduled run finished",
		"scheduleId", id.String(),
		"ran", outcome.Ran,
		"records", outcome.RecordCount,
		"dispatched", outcome.Dispatched,
	)
}

// cadenceSchedule adapts a schedule cadence to the cron.Schedule interface.
// A cadence with no computable next occurrence never fires.
type cadenceSchedule struct {
	cadence schedule.Cadence
}

func (c cadenceSchedule) Next(t time.Time) time.Time {
	next, ok := c.cadence.NextFireAfter(t)
	if !ok {
		return time.Time{}
	}
	return next
}
