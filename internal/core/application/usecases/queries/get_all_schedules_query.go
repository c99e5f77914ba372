// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/pkg/guard"
)

var ErrGetAllSchedulesQueryIsNotConstructed = errors.New(
	"GetAllSchedulesQuery must be created via NewGetAllSchedulesQuery constructor",
)

// GetAllSchedulesQuery retrieves information about every report schedule.
// Returns the admin read model: definition, last run, and computed next fire.
//
// Example:
//
//	query := NewGetAllSchedulesQuery()
//	handler := NewGetAllSchedulesQueryHandler(db)
//
//	schedules, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve schedules: %w", err)
//	}
//
//	for _, s := range schedules {
//	    fmt.Printf("%s next fires at %v\n", s.Title, s.NextFireAt)
//	}
type GetAllSchedulesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllSchedulesQuery creates a query to retrieve all schedules.
// This is a parameterless query that fetches the complete schedule list.
func NewGetAllSchedulesQuery() GetAllSchedulesQuery {
	return GetAllSchedulesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllSchedulesQueryIsNotConstructed if validation fails.
func (q GetAllSchedulesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSchedulesQueryIsNotConstructed)
}

// GetAllSchedulesQueryResponse represents one schedule in the read model.
// NextFireAt is computed from the stored cadence at query time and is nil
// when the schedule is inactive or its cadence is not configured.
type GetAllSchedulesQueryResponse struct {
	ID          kernel.UUID
	Title       string
	Active      bool
	Recurrence  string
	RepeatEvery int
	TimeOfDay   string
	Weekday     *time.Weekday
	SourceID    kernel.UUID
	Recipients  []string
	LastRunAt   *time.Time
	NextFireAt  *time.Time
}
