// Package schedulerepo provides data transfer objects and mapping functions
// for schedule persistence. This package implements the repository pattern
// for the schedule domain aggregate, handling the conversion between domain
// entities and database representations.
package schedulerepo

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
)

// ScheduleDTO represents the database structure for persisting schedule
// aggregates. The cadence is flattened into columns; the field selection and
// recipient list are stored comma-joined, mirroring how they arrive from the
// admin form.
type ScheduleDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title          string
	Status         string  `gorm:"type:varchar(16);index"`
	Recurrence     string  `gorm:"type:varchar(16)"`
	RepeatEvery    int     `gorm:"type:smallint"`
	TimeOfDay      *string `gorm:"type:varchar(5)"`
	Weekday        *int16  `gorm:"type:smallint"`
	SourceID       uuid.UUID `gorm:"type:uuid;index"`
	FieldSelection string
	Recipients     string
	FromName       string
	FromAddress    string
	Subject        string
	Body           string
	LastRunAt      *time.Time
}

// TableName specifies the database table name for schedule entities.
func (ScheduleDTO) TableName() string {
	return "schedules"
}

// fromDomain converts a schedule domain aggregate to its database
// representation.
func fromDomain(aggregate *schedule.Schedule) ScheduleDTO {
	cadence := aggregate.Cadence()

	var timeOfDay *string
	if at := cadence.TimeOfDay(); at != nil {
		s := at.String()
		timeOfDay = &s
	}

	var weekday *int16
	if wd := cadence.Weekday(); wd != nil {
		w := int16(*wd)
		weekday = &w
	}

	delivery := aggregate.Delivery()

	return ScheduleDTO{
		ID:             aggregate.ID().Bytes(),
		Title:          aggregate.Title(),
		Status:         aggregate.Status().String(),
		Recurrence:     cadence.Recurrence().String(),
		RepeatEvery:    cadence.RepeatEvery(),
		TimeOfDay:      timeOfDay,
		Weekday:        weekday,
		SourceID:       aggregate.SourceID().Bytes(),
		FieldSelection: strings.Join(aggregate.FieldSelection(), ","),
		Recipients:     strings.Join(delivery.Recipients(), ","),
		FromName:       delivery.FromName(),
		FromAddress:    delivery.FromAddress(),
		Subject:        delivery.Subject(),
		Body:           delivery.Body(),
		LastRunAt:      aggregate.LastRunAt(),
	}
}

// toDomain converts a database DTO to a schedule domain aggregate.
// Reconstructs the complete aggregate including status and watermark using
// RestoreSchedule.
func toDomain(dto ScheduleDTO) (*schedule.Schedule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sourceID, err := kernel.UUIDFromBytes(dto.SourceID[:])
	if err != nil {
		return nil, err
	}

	status, err := schedule.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	recurrence, err := schedule.RecurrenceFromString(dto.Recurrence)
	if err != nil {
		return nil, err
	}

	var timeOfDay *kernel.TimeOfDay
	if dto.TimeOfDay != nil && *dto.TimeOfDay != "" {
		at, parseErr := kernel.ParseTimeOfDay(*dto.TimeOfDay)
		if parseErr != nil {
			return nil, parseErr
		}
		timeOfDay = &at
	}

	var weekday *time.Weekday
	if dto.Weekday != nil {
		wd := time.Weekday(*dto.Weekday)
		weekday = &wd
	}

	cadence, err := schedule.NewCadence(recurrence, dto.RepeatEvery, timeOfDay, weekday)
	if err != nil {
		return nil, err
	}

	delivery, err := schedule.NewDelivery(
		strings.Split(dto.Recipients, ","),
		dto.FromName,
		dto.FromAddress,
		dto.Subject,
		dto.Body,
	)
	if err != nil {
		return nil, err
	}

	return schedule.RestoreSchedule(
		id,
		dto.Title,
		status,
		cadence,
		sourceID,
		splitSelection(dto.FieldSelection),
		delivery,
		dto.LastRunAt,
	)
}

func splitSelection(joined string) []string {
	parts := strings.Split(joined, ",")
	selection := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			selection = append(selection, trimmed)
		}
	}
	return selection
}
