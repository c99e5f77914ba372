package source

import "fmt"

// systemFieldLabels maps the identifiers every source exposes regardless of
// its schema to their fixed display labels. System labels always win over
// schema-defined labels.
var systemFieldLabels = map[string]string{
	"id":             "Entry ID",
	"date_created":   "Submission Date",
	"ip":             "IP Address",
	"source_url":     "Source URL",
	"user_agent":     "User Agent",
	"payment_status": "Payment Status",
	"payment_date":   "Payment Date",
	"transaction_id": "Transaction ID",
	"created_by":     "Created By (User ID)",
}

// systemFieldOrder fixes the presentation order of the system fields in
// field pickers.
var systemFieldOrder = []string{
	"id",
	"date_created",
	"ip",
	"source_url",
	"user_agent",
	"payment_status",
	"payment_date",
	"transaction_id",
	"created_by",
}

// ResolveLabel resolves a selected field identifier to its column label.
// System identifiers resolve to their fixed labels first. Then the schema is
// searched: a matching simple field yields its own label, and a matching
// sub-input of a composite field yields "Parent (Sub)". An identifier the
// schema does not know resolves to itself, so a stale selection still
// produces a readable column.
func (s Schema) ResolveLabel(fieldID string) string {
	if label, ok := systemFieldLabels[fieldID]; ok {
		return label
	}
	for _, f := range s.Fields {
		switch f.Kind {
		case Composite:
			for _, input := range f.SubInputs {
				if input.ID == fieldID {
					return compositeLabel(f.Label, input.Label)
				}
			}
		default:
			if f.ID == fieldID {
				return simpleLabel(f)
			}
		}
	}
	return fieldID
}

func compositeLabel(parent, sub string) string {
	return fmt.Sprintf("%s (%s)", parent, sub)
}

func simpleLabel(f FieldSpec) string {
	if f.Label == "" {
		return f.ID
	}
	return f.Label
}
