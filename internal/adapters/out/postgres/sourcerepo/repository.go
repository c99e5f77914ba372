package sourcerepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/source"
	"reporting/internal/pkg/errs"
)

// GormRecordSource implements the RecordSource port using GORM. Sources are
// read-only from the reporting side: entries are written by the capturing
// system, reports only drain them.
type GormRecordSource struct {
	db *gorm.DB
}

// NewGormRecordSource creates a new GORM record source adapter.
func NewGormRecordSource(db *gorm.DB) *GormRecordSource {
	return &GormRecordSource{db: db}
}

// GetSchema retrieves and decodes the schema describing one source.
func (r *GormRecordSource) GetSchema(ctx context.Context, sourceID kernel.UUID) (source.Schema, error) {
	if err := sourceID.Validate(); err != nil {
		return source.Schema{}, err
	}

	var dto SourceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", sourceID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return source.Schema{}, errs.NewObjectNotFoundError("source", sourceID.String())
		}
		return source.Schema{}, err
	}

	return toSchema(dto)
}

// ListRecords retrieves one source's records created at or after the given
// watermark, oldest first. A nil watermark retrieves every record.
func (r *GormRecordSource) ListRecords(
	ctx context.Context,
	sourceID kernel.UUID,
	since *time.Time,
) ([]source.Record, error) {
	if err := sourceID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("source_id = ?", sourceID.Bytes()).
		Order("created_at")
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	var dtos []EntryDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]source.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toRecord(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
