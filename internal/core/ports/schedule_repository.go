package ports

import (
	"context"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
)

// ScheduleRepository defines the persistence contract for schedule
// aggregates. Provides methods for storing, retrieving, and querying
// schedules based on their activation status.
type ScheduleRepository interface {
	// Add persists a new schedule aggregate to storage.
	// The schedule must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *schedule.Schedule) error

	// Update persists changes to an existing schedule aggregate.
	// The schedule must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *schedule.Schedule) error

	// Get retrieves a schedule aggregate by its unique identifier.
	// Returns the complete schedule with its current status and watermark.
	Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error)

	// GetAllActive retrieves every schedule in active status.
	// Used at startup to reconcile timers with persisted state.
	GetAllActive(ctx context.Context) ([]*schedule.Schedule, error)

	// Delete removes a schedule aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
