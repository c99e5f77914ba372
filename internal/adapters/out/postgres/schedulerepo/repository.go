package schedulerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
	"reporting/internal/pkg/errs"
)

// GormScheduleRepository implements ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormScheduleRepository creates a new GORM schedule repository.
func NewGormScheduleRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduleRepository {
	return &GormScheduleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new schedule to the database.
func (r *GormScheduleRepository) Add(ctx context.Context, aggregate *schedule.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing schedule to the database.
func (r *GormScheduleRepository) Update(ctx context.Context, aggregate *schedule.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Select("*") forces every column to be written. A struct update would
	// skip zero values, leaving stale weekday or time_of_day columns after
	// a schedule is reconfigured to a cadence that clears them.
	result := r.db.WithContext(ctx).
		Model(&ScheduleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a schedule by ID.
func (r *GormScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("schedule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every schedule in active status.
func (r *GormScheduleRepository) GetAllActive(ctx context.Context) ([]*schedule.Schedule, error) {
	var dtos []ScheduleDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ?", schedule.Active.String()).Error; err != nil {
		return nil, err
	}

	schedules := make([]*schedule.Schedule, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	return schedules, nil
}

// Delete removes a schedule by ID.
func (r *GormScheduleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ScheduleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("schedule", id.String())
	}

	return nil
}
