package source

import (
	"reporting/internal/pkg/errs"
)

// Record is one raw record of a source: a flat lookup from exportable field
// identifier to its stored value. Identifiers not present in the record
// export as the empty string.
type Record map[string]string

// Value returns the stored value for the given field identifier, or the
// empty string when the record carries no value for it.
func (r Record) Value(fieldID string) string {
	return r[fieldID]
}

// Schema describes a record source: its title and the fields its records
// may carry. The title feeds export filenames; the fields feed column label
// resolution and field pickers.
type Schema struct {
	Title  string
	Fields []FieldSpec
}

// NewSchema creates a Schema after validating every field.
func NewSchema(title string, fields []FieldSpec) (Schema, error) {
	if title == "" {
		return Schema{}, errs.NewValueIsRequiredError("title")
	}
	specs := make([]FieldSpec, len(fields))
	copy(specs, fields)
	for _, f := range specs {
		if err := f.Validate(); err != nil {
			return Schema{}, err
		}
	}
	return Schema{
		Title:  title,
		Fields: specs,
	}, nil
}

// FieldOption is one selectable entry of a field picker: an exportable
// identifier paired with its resolved display label.
type FieldOption struct {
	ID    string
	Label string
}

// FieldOptions flattens the schema into the full list of exportable
// identifiers with resolved labels: every system field, every simple field,
// and every sub-input of every composite field.
func (s Schema) FieldOptions() []FieldOption {
	options := make([]FieldOption, 0, len(systemFieldOrder)+len(s.Fields))
	for _, id := range systemFieldOrder {
		options = append(options, FieldOption{ID: id, Label: systemFieldLabels[id]})
	}
	for _, f := range s.Fields {
		switch f.Kind {
		case Composite:
			for _, input := range f.SubInputs {
				options = append(options, FieldOption{
					ID:    input.ID,
					Label: compositeLabel(f.Label, input.Label),
				})
			}
		default:
			options = append(options, FieldOption{ID: f.ID, Label: simpleLabel(f)})
		}
	}
	return options
}
