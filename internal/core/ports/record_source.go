package ports

import (
	"context"
	"time"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/source"
)

// RecordSource defines the read contract for the record stores reports are
// drawn from. Implementations expose a source's schema and its records
// filtered by creation time.
type RecordSource interface {
	// GetSchema retrieves the schema describing the given source.
	GetSchema(ctx context.Context, sourceID kernel.UUID) (source.Schema, error)

	// ListRecords retrieves the source's records created at or after the
	// given watermark. A nil watermark retrieves every record.
	ListRecords(ctx context.Context, sourceID kernel.UUID, since *time.Time) ([]source.Record, error)
}
