package http

import (
	"errors"
	"net/http"

	"reporting/internal/core/application/usecases/commands"
	"reporting/internal/core/application/usecases/queries"
	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API for managing report schedules.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createScheduleHandler commands.CreateScheduleCommandHandler
	updateScheduleHandler commands.UpdateScheduleCommandHandler
	deleteScheduleHandler commands.DeleteScheduleCommandHandler
	runScheduleHandler    *commands.RunScheduleCommandHandler

	// Query handlers
	getAllSchedulesHandler queries.GetAllSchedulesQueryHandler
	getSourceFieldsHandler queries.GetSourceFieldsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createScheduleHandler commands.CreateScheduleCommandHandler,
	updateScheduleHandler commands.UpdateScheduleCommandHandler,
	deleteScheduleHandler commands.DeleteScheduleCommandHandler,
	runScheduleHandler *commands.RunScheduleCommandHandler,
	getAllSchedulesHandler queries.GetAllSchedulesQueryHandler,
	getSourceFieldsHandler queries.GetSourceFieldsQueryHandler,
) *Server {
	return &Server{
		createScheduleHandler:  createScheduleHandler,
		updateScheduleHandler:  updateScheduleHandler,
		deleteScheduleHandler:  deleteScheduleHandler,
		runScheduleHandler:     runScheduleHandler,
		getAllSchedulesHandler: getAllSchedulesHandler,
		getSourceFieldsHandler: getSourceFieldsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/schedules", s.GetSchedules)
	e.POST("/api/v1/schedules", s.CreateSchedule)
	e.PUT("/api/v1/schedules/:id", s.UpdateSchedule)
	e.DELETE("/api/v1/schedules/:id", s.DeleteSchedule)
	e.POST("/api/v1/schedules/:id/run", s.RunSchedule)
	e.GET("/api/v1/sources/:id/fields", s.GetSourceFields)
}

// GetSchedules handles GET /api/v1/schedules - retrieves all schedules.
func (s *Server) GetSchedules(ctx echo.Context) error {
	query := queries.NewGetAllSchedulesQuery()

	schedules, err := s.getAllSchedulesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve schedules",
		})
	}

	response := make([]Schedule, len(schedules))
	for i, item := range schedules {
		var weekday *int
		if item.Weekday != nil {
			day := int(*item.Weekday)
			weekday = &day
		}

		response[i] = Schedule{
			ID:          item.ID.String(),
			Title:       item.Title,
			Active:      item.Active,
			Recurrence:  item.Recurrence,
			RepeatEvery: item.RepeatEvery,
			TimeOfDay:   item.TimeOfDay,
			Weekday:     weekday,
			SourceID:    item.SourceID.String(),
			Recipients:  item.Recipients,
			LastRunAt:   item.LastRunAt,
			NextFireAt:  item.NextFireAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateSchedule handles POST /api/v1/schedules - registers a new schedule.
func (s *Server) CreateSchedule(ctx echo.Context) error {
	var req ScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	command, err := s.buildCreateCommand(req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := s.createScheduleHandler.Handle(ctx.Request().Context(), command); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create schedule",
		})
	}

	return ctx.JSON(http.StatusCreated, CreatedSchedule{ID: command.ScheduleID().String()})
}

// UpdateSchedule handles PUT /api/v1/schedules/:id - saves schedule changes.
func (s *Server) UpdateSchedule(ctx echo.Context) error {
	scheduleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid schedule ID",
		})
	}

	var req ScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	command, err := s.buildUpdateCommand(scheduleID, req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := s.updateScheduleHandler.Handle(ctx.Request().Context(), command); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Schedule not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update schedule",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteSchedule handles DELETE /api/v1/schedules/:id - removes a schedule.
func (s *Server) DeleteSchedule(ctx echo.Context) error {
	scheduleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid schedule ID",
		})
	}

	command, err := commands.NewDeleteScheduleCommand(scheduleID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := s.deleteScheduleHandler.Handle(ctx.Request().Context(), command); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Schedule not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete schedule",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RunSchedule handles POST /api/v1/schedules/:id/run - triggers a run now.
// Responds with 409 when a run for the same schedule is still in flight.
func (s *Server) RunSchedule(ctx echo.Context) error {
	scheduleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid schedule ID",
		})
	}

	command, err := commands.NewRunScheduleCommand(scheduleID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	// Handle re-arms the schedule's timer after a completed run, so a
	// manual trigger needs no extra registration here. A skipped run
	// (schedule missing or inactive) leaves no timer to re-arm.
	outcome, err := s.runScheduleHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		if errors.Is(err, commands.ErrRunInProgress) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "A run for this schedule is already in progress",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to run schedule",
		})
	}

	return ctx.JSON(http.StatusOK, RunResult{
		ScheduleID:  outcome.ScheduleID.String(),
		Ran:         outcome.Ran,
		RecordCount: outcome.RecordCount,
		Attached:    outcome.Attached,
		Dispatched:  outcome.Dispatched,
		CompletedAt: outcome.CompletedAt,
	})
}

// GetSourceFields handles GET /api/v1/sources/:id/fields - lists the
// selectable fields of a record source.
func (s *Server) GetSourceFields(ctx echo.Context) error {
	sourceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid source ID",
		})
	}

	query, err := queries.NewGetSourceFieldsQuery(sourceID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	options, err := s.getSourceFieldsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Source not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve source fields",
		})
	}

	response := make([]FieldOption, len(options))
	for i, option := range options {
		response[i] = FieldOption{ID: option.ID, Label: option.Label}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) buildCreateCommand(req ScheduleRequest) (commands.CreateScheduleCommand, error) {
	sourceID, err := kernel.UUIDFromString(req.SourceID)
	if err != nil {
		return commands.CreateScheduleCommand{}, err
	}

	cadence, err := cadenceFromRequest(req)
	if err != nil {
		return commands.CreateScheduleCommand{}, err
	}

	delivery, err := deliveryFromRequest(req)
	if err != nil {
		return commands.CreateScheduleCommand{}, err
	}

	return commands.NewCreateScheduleCommand(req.Title, cadence, sourceID, req.Fields, delivery)
}

func (s *Server) buildUpdateCommand(
	scheduleID kernel.UUID,
	req ScheduleRequest,
) (commands.UpdateScheduleCommand, error) {
	sourceID, err := kernel.UUIDFromString(req.SourceID)
	if err != nil {
		return commands.UpdateScheduleCommand{}, err
	}

	cadence, err := cadenceFromRequest(req)
	if err != nil {
		return commands.UpdateScheduleCommand{}, err
	}

	delivery, err := deliveryFromRequest(req)
	if err != nil {
		return commands.UpdateScheduleCommand{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return commands.NewUpdateScheduleCommand(
		scheduleID, req.Title, cadence, sourceID, req.Fields, delivery, active,
	)
}
