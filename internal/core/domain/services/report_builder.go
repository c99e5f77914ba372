package services

import (
	"reporting/internal/core/domain/model/source"
	"reporting/internal/pkg/errs"
)

// ReportBuilder is a domain service that turns a schedule's field selection,
// the source's schema, and a batch of raw records into a tabular report
// ready for export.
//
// Key responsibilities:
//   - Resolving selected field identifiers to column labels
//   - Projecting each record onto the selected columns in order
//   - Substituting the empty string for values a record does not carry
//
// Business rules:
//   - Column order follows selection order exactly
//   - Label resolution never fails; unknown identifiers label as themselves
//   - A record missing a selected field still yields a full-width row
//
// Example usage:
//
//	builder := services.NewReportBuilder()
//	report, err := builder.Build([]string{"id", "2"}, schema, records)
//	if err != nil {
//	    // Empty field selection
//	    return
//	}
//	// report.Header, report.Rows, report.RecordCount ready for export
type ReportBuilder struct{}

// NewReportBuilder creates a new ReportBuilder instance.
//
// Returns:
//   - ReportBuilder: A new instance ready for report building operations
func NewReportBuilder() ReportBuilder {
	return ReportBuilder{}
}

// Build projects the given records onto the selected fields.
//
// Parameters:
//   - selection: Ordered field identifiers to export (must be non-empty)
//   - schema: The source schema used for column label resolution
//   - records: Raw records to project; may be empty
//
// Returns:
//   - Report: Header, rows, and record count for the selection
//   - error: A required-value error when the selection is empty
//
// The header always carries one label per selected field, even for an empty
// record batch, so an export with zero records still produces a valid file.
func (b ReportBuilder) Build(selection []string, schema source.Schema, records []source.Record) (Report, error) {
	if len(selection) == 0 {
		return Report{}, errs.NewValueIsRequiredError("fieldSelection")
	}

	header := make([]string, len(selection))
	for i, fieldID := range selection {
		header[i] = schema.ResolveLabel(fieldID)
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, len(selection))
		for i, fieldID := range selection {
			row[i] = record.Value(fieldID)
		}
		rows = append(rows, row)
	}

	return Report{
		Header:      header,
		Rows:        rows,
		RecordCount: len(records),
	}, nil
}
