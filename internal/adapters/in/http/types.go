package http

import (
	"time"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
)

// Error is the standard error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ScheduleRequest is the payload for creating or updating a schedule.
// Weekday uses time.Weekday numbering (Sunday = 0) and only matters for
// weekly recurrences. TimeOfDay is an optional "HH:MM" string.
type ScheduleRequest struct {
	Title       string   `json:"title"`
	Recurrence  string   `json:"recurrence"`
	RepeatEvery int      `json:"repeatEvery"`
	TimeOfDay   *string  `json:"timeOfDay,omitempty"`
	Weekday     *int     `json:"weekday,omitempty"`
	SourceID    string   `json:"sourceId"`
	Fields      []string `json:"fields"`
	Recipients  []string `json:"recipients"`
	FromName    string   `json:"fromName,omitempty"`
	FromAddress string   `json:"fromAddress,omitempty"`
	Subject     string   `json:"subject,omitempty"`
	Body        string   `json:"body,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// Schedule is a single schedule in list responses.
type Schedule struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Active      bool       `json:"active"`
	Recurrence  string     `json:"recurrence"`
	RepeatEvery int        `json:"repeatEvery"`
	TimeOfDay   string     `json:"timeOfDay,omitempty"`
	Weekday     *int       `json:"weekday,omitempty"`
	SourceID    string     `json:"sourceId"`
	Recipients  []string   `json:"recipients"`
	LastRunAt   *time.Time `json:"lastRunAt,omitempty"`
	NextFireAt  *time.Time `json:"nextFireAt,omitempty"`
}

// CreatedSchedule is returned after a successful create.
type CreatedSchedule struct {
	ID string `json:"id"`
}

// RunResult reports what a manually triggered run did.
type RunResult struct {
	ScheduleID  string    `json:"scheduleId"`
	Ran         bool      `json:"ran"`
	RecordCount int       `json:"recordCount"`
	Attached    bool      `json:"attached"`
	Dispatched  bool      `json:"dispatched"`
	CompletedAt time.Time `json:"completedAt"`
}

// FieldOption is one selectable column of a record source.
type FieldOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// cadenceFromRequest converts the flat request fields into a Cadence
// value object.
func cadenceFromRequest(req ScheduleRequest) (schedule.Cadence, error) {
	recurrence, err := schedule.RecurrenceFromString(req.Recurrence)
	if err != nil {
		return schedule.Cadence{}, err
	}

	var timeOfDay *kernel.TimeOfDay
	if req.TimeOfDay != nil && *req.TimeOfDay != "" {
		parsed, err := kernel.ParseTimeOfDay(*req.TimeOfDay)
		if err != nil {
			return schedule.Cadence{}, err
		}
		timeOfDay = &parsed
	}

	var weekday *time.Weekday
	if req.Weekday != nil {
		day := time.Weekday(*req.Weekday)
		weekday = &day
	}

	return schedule.NewCadence(recurrence, req.RepeatEvery, timeOfDay, weekday)
}

// deliveryFromRequest converts the flat request fields into a Delivery
// value object.
func deliveryFromRequest(req ScheduleRequest) (schedule.Delivery, error) {
	return schedule.NewDelivery(req.Recipients, req.FromName, req.FromAddress, req.Subject, req.Body)
}
