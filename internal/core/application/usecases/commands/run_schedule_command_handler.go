package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
	"reporting/internal/core/domain/model/source"
	"reporting/internal/core/domain/services"
	"reporting/internal/core/ports"
	"reporting/internal/pkg/errs"
)

// ErrRunInProgress is returned when a run is requested for a schedule that
// already has one in flight. Concurrent runs for the same schedule are
// rejected rather than queued: both would export overlapping record ranges
// and race on the watermark.
var ErrRunInProgress = errors.New("a run for this schedule is already in progress")

// RunOutcome summarizes one completed run for the caller. Ran is false when
// the run was skipped because the schedule is missing or inactive.
type RunOutcome struct {
	ScheduleID  kernel.UUID
	Ran         bool
	RecordCount int
	Attached    bool
	Dispatched  bool
	CompletedAt time.Time
}

// RunScheduleCommandHandler executes one report run end to end: export the
// records accumulated since the watermark, compose the message, dispatch it,
// advance the watermark, and re-arm the timer.
//
// The run is best effort throughout. A schema or record lookup failure
// exports an empty report with raw-id column labels; a file materialization
// failure dispatches without an attachment; a dispatch failure is logged.
// None of these block the watermark advance or the reschedule, so one bad
// run never stalls a schedule. Only watermark persistence failures surface
// as run errors.
//
// The export file lives exactly as long as the dispatch call: created before
// it, removed after it, whatever the dispatch outcome.
type RunScheduleCommandHandler struct {
	uowFactory   ScheduleUoWFactory
	recordSource ports.RecordSource
	sender       ports.MessageSender
	exports      ports.ExportStore
	timers       ports.TimerRegistry
	builder      services.ReportBuilder
	logger       *slog.Logger

	mu      sync.Mutex
	running map[kernel.UUID]struct{}
}

// NewRunScheduleCommandHandler creates a handler for executing report runs.
func NewRunScheduleCommandHandler(
	uowFactory ScheduleUoWFactory,
	recordSource ports.RecordSource,
	sender ports.MessageSender,
	exports ports.ExportStore,
	timers ports.TimerRegistry,
	logger *slog.Logger,
) *RunScheduleCommandHandler {
	return &RunScheduleCommandHandler{
		uowFactory:   uowFactory,
		recordSource: recordSource,
		sender:       sender,
		exports:      exports,
		timers:       timers,
		builder:      services.NewReportBuilder(),
		logger:       logger,
		running:      make(map[kernel.UUID]struct{}),
	}
}

// Handle executes one run for the schedule named by the command.
// Returns ErrRunInProgress when another run for the same schedule has not
// finished yet. A missing or inactive schedule is a no-op, reported through
// RunOutcome.Ran.
func (h *RunScheduleCommandHandler) Handle(ctx context.Context, cmd RunScheduleCommand) (RunOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return RunOutcome{}, err
	}

	if err := h.acquire(cmd.ScheduleID()); err != nil {
		return RunOutcome{}, err
	}
	defer h.release(cmd.ScheduleID())

	outcome := RunOutcome{ScheduleID: cmd.ScheduleID()}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RunOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduleRepository()
	aggregate, err := scheduleRepo.Get(ctx, cmd.ScheduleID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Info("run skipped, schedule not found", "scheduleId", cmd.ScheduleID())
			return outcome, nil
		}
		return RunOutcome{}, err
	}

	if !aggregate.IsActive() {
		h.logger.Info("run skipped, schedule inactive", "scheduleId", aggregate.ID())
		return outcome, nil
	}

	report, schema := h.export(ctx, aggregate.SourceID(), aggregate.FieldSelection(), aggregate.LastRunAt())
	outcome.RecordCount = report.RecordCount

	attachmentPath := h.materialize(aggregate.ID(), schema.Title, aggregate.Cadence(), report)
	outcome.Attached = attachmentPath != ""

	delivery := aggregate.Delivery()
	message := ports.Message{
		To:             delivery.Recipients(),
		From:           delivery.FromHeader(),
		Subject:        delivery.Subject(),
		Body:           delivery.ComposeBody(report.RecordCount),
		AttachmentPath: attachmentPath,
	}

	if err = h.sender.Send(ctx, message); err != nil {
		h.logger.Error("report dispatch failed",
			"scheduleId", aggregate.ID(), "recipients", len(message.To), "error", err)
	} else {
		outcome.Dispatched = true
	}

	if attachmentPath != "" {
		if err = h.exports.Remove(attachmentPath); err != nil {
			h.logger.Error("export file cleanup failed", "path", attachmentPath, "error", err)
		}
	}

	completedAt := time.Now()
	if err = aggregate.MarkRun(completedAt); err != nil {
		return RunOutcome{}, err
	}

	if err = scheduleRepo.Update(ctx, aggregate); err != nil {
		return RunOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RunOutcome{}, err
	}

	if aggregate.Cadence().IsConfigured() {
		if err = h.timers.Register(aggregate.ID(), aggregate.Cadence()); err != nil {
			h.logger.Error("timer re-arm failed", "scheduleId", aggregate.ID(), "error", err)
		}
	}

	outcome.Ran = true
	outcome.CompletedAt = completedAt
	return outcome, nil
}

// export reads the schema and the records accumulated since the watermark
// and projects them into a report. Lookup failures degrade to an empty
// schema or zero records instead of aborting the run.
func (h *RunScheduleCommandHandler) export(
	ctx context.Context,
	sourceID kernel.UUID,
	selection []string,
	since *time.Time,
) (services.Report, source.Schema) {
	schema, err := h.recordSource.GetSchema(ctx, sourceID)
	if err != nil {
		h.logger.Error("schema lookup failed", "sourceId", sourceID, "error", err)
		schema = source.Schema{}
	}

	records, err := h.recordSource.ListRecords(ctx, sourceID, since)
	if err != nil {
		h.logger.Error("record listing failed", "sourceId", sourceID, "error", err)
		records = nil
	}

	report, err := h.builder.Build(selection, schema, records)
	if err != nil {
		// Selection non-emptiness is an aggregate invariant; reaching this
		// means the stored row was tampered with. Degrade to an empty report.
		h.logger.Error("report projection failed", "sourceId", sourceID, "error", err)
		return services.Report{}, schema
	}

	return report, schema
}

// materialize writes the report to an export file and returns its path, or
// the empty string when no file could be created.
func (h *RunScheduleCommandHandler) materialize(
	scheduleID kernel.UUID,
	sourceTitle string,
	cadence schedule.Cadence,
	report services.Report,
) string {
	name := services.ExportFileName(scheduleID, sourceTitle, cadence.Recurrence(), time.Now())
	path, err := h.exports.Store(name, report.WriteCSV)
	if err != nil {
		h.logger.Error("export file materialization failed", "scheduleId", scheduleID, "error", err)
		return ""
	}
	return path
}

func (h *RunScheduleCommandHandler) acquire(id kernel.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, inFlight := h.running[id]; inFlight {
		return ErrRunInProgress
	}
	h.running[id] = struct{}{}
	return nil
}

func (h *RunScheduleCommandHandler) release(id kernel.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.running, id)
}
