package queries

import (
	"context"

	"reporting/internal/core/ports"
)

// GetSourceFieldsQueryHandler resolves a source's selectable fields through
// the record source collaborator. Unlike the schedule list query this one
// does not read the database directly: schema decoding belongs to the record
// source adapter.
type GetSourceFieldsQueryHandler struct {
	recordSource ports.RecordSource
}

// NewGetSourceFieldsQueryHandler creates a handler for field option queries.
func NewGetSourceFieldsQueryHandler(recordSource ports.RecordSource) GetSourceFieldsQueryHandler {
	return GetSourceFieldsQueryHandler{recordSource: recordSource}
}

// Handle executes the query for one source's field options.
// System fields come first, then the schema's fields in declaration order
// with composite fields flattened to their sub-inputs.
func (h GetSourceFieldsQueryHandler) Handle(
	ctx context.Context,
	query GetSourceFieldsQuery,
) ([]GetSourceFieldsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	schema, err := h.recordSource.GetSchema(ctx, query.SourceID())
	if err != nil {
		return nil, err
	}

	options := schema.FieldOptions()
	responses := make([]GetSourceFieldsQueryResponse, 0, len(options))
	for _, option := range options {
		responses = append(responses, GetSourceFieldsQueryResponse{
			ID:    option.ID,
			Label: option.Label,
		})
	}

	return responses, nil
}
