package queries

import (
	"errors"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/pkg/guard"
)

var ErrGetSourceFieldsQueryIsNotConstructed = errors.New(
	"GetSourceFieldsQuery must be created via NewGetSourceFieldsQuery constructor",
)

// GetSourceFieldsQuery retrieves the selectable export fields of one record
// source: the fixed system fields plus the source's own schema fields
// flattened with resolved labels. Feeds the field picker shown when a
// schedule is created or edited.
type GetSourceFieldsQuery struct { //nolint:recvcheck //using for validation
	sourceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSourceFieldsQuery creates a query for one source's field options.
func NewGetSourceFieldsQuery(sourceID kernel.UUID) (GetSourceFieldsQuery, error) {
	if err := sourceID.Validate(); err != nil {
		return GetSourceFieldsQuery{}, err
	}

	return GetSourceFieldsQuery{
		sourceID: sourceID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSourceFieldsQuery) Validate() error {
	return q.guard.Validate(ErrGetSourceFieldsQueryIsNotConstructed)
}

// SourceID returns the record source ID from the query.
func (q GetSourceFieldsQuery) SourceID() kernel.UUID {
	return q.sourceID
}

// GetSourceFieldsQueryResponse represents one selectable field in the read
// model: its exportable identifier and display label.
type GetSourceFieldsQueryResponse struct {
	ID    string
	Label string
}
