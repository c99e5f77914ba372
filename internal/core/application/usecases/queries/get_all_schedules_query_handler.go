package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
)

// GetAllSchedulesQueryHandler retrieves the schedule list from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The next fire time is computed from the stored cadence against the current
// wall clock rather than persisted, so the column is always fresh.
type GetAllSchedulesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllSchedulesQueryHandler creates a handler for schedule list queries.
// Requires a GORM database connection for query execution.
func NewGetAllSchedulesQueryHandler(db *gorm.DB) GetAllSchedulesQueryHandler {
	return GetAllSchedulesQueryHandler{db: db}
}

// Handle executes the query to retrieve all schedules.
// Returns a slice of schedule read models sorted by title.
func (h GetAllSchedulesQueryHandler) Handle(
	ctx context.Context,
	query GetAllSchedulesQuery,
) ([]GetAllSchedulesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	schedules := make([]GetAllSchedulesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			status,
			recurrence,
			repeat_every,
			time_of_day,
			weekday,
			source_id,
			recipients,
			last_run_at
		FROM schedules
		ORDER BY title
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()

	for rows.Next() {
		var response GetAllSchedulesQueryResponse
		var id, sourceID uuid.UUID
		var status, recurrence, recipients string
		var timeOfDay sql.NullString
		var weekday sql.NullInt16
		var lastRunAt sql.NullTime

		err = rows.Scan(
			&id,
			&response.Title,
			&status,
			&recurrence,
			&response.RepeatEvery,
			&timeOfDay,
			&weekday,
			&sourceID,
			&recipients,
			&lastRunAt,
		)
		if err != nil {
			return nil, err
		}

		scheduleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = scheduleID

		srcID, idErr := kernel.UUIDFromBytes(sourceID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.SourceID = srcID

		response.Active = status == schedule.Active.String()
		response.Recurrence = recurrence
		if recipients != "" {
			response.Recipients = strings.Split(recipients, ",")
		}
		if timeOfDay.Valid {
			response.TimeOfDay = timeOfDay.String
		}
		if weekday.Valid {
			wd := time.Weekday(weekday.Int16)
			response.Weekday = &wd
		}
		if lastRunAt.Valid {
			at := lastRunAt.Time
			response.LastRunAt = &at
		}

		if response.Active {
			response.NextFireAt = nextFireAt(
				recurrence, response.RepeatEvery, response.TimeOfDay, response.Weekday, now)
		}

		schedules = append(schedules, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// nextFireAt rebuilds the cadence from its stored parts and computes the next
// fire instant. Returns nil for rows whose cadence is incomplete.
func nextFireAt(
	recurrence string,
	repeatEvery int,
	timeOfDay string,
	weekday *time.Weekday,
	now time.Time,
) *time.Time {
	rec, err := schedule.RecurrenceFromString(recurrence)
	if err != nil {
		return nil
	}

	var at *kernel.TimeOfDay
	if timeOfDay != "" {
		parsed, parseErr := kernel.ParseTimeOfDay(timeOfDay)
		if parseErr != nil {
			return nil
		}
		at = &parsed
	}

	cadence, err := schedule.NewCadence(rec, repeatEvery, at, weekday)
	if err != nil {
		return nil
	}

	next, ok := cadence.NextFireAfter(now)
	if !ok {
		return nil
	}
	return &next
}
