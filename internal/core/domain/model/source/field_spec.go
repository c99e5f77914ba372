package source

import (
	"fmt"

	"reporting/internal/pkg/errs"
)

// FieldKind tags the shape of a FieldSpec.
type FieldKind int

const (
	// FieldKindUnknown represents an invalid or undefined field kind.
	FieldKindUnknown FieldKind = iota

	// Simple is a leaf field exporting a single value.
	Simple

	// Composite is a field made of sub-inputs, each exporting its own value
	// under its own identifier.
	Composite
)

// String returns the human-readable name of the field kind.
func (k FieldKind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Composite:
		return "composite"
	default:
		return "unknown"
	}
}

// SubInput is one addressable input of a Composite field.
type SubInput struct {
	ID    string
	Label string
}

// FieldSpec describes one field of a record source's schema as a tagged
// variant: either a Simple leaf field, or a Composite field with sub-inputs.
// Field shape is carried explicitly by Kind rather than inferred from the
// presence of sub-inputs.
type FieldSpec struct {
	Kind      FieldKind
	ID        string
	Label     string
	SubInputs []SubInput
}

// NewSimpleField creates a Simple FieldSpec.
func NewSimpleField(id, label string) (FieldSpec, error) {
	if id == "" {
		return FieldSpec{}, errs.NewValueIsRequiredError("field id")
	}
	return FieldSpec{
		Kind:  Simple,
		ID:    id,
		Label: label,
	}, nil
}

// NewCompositeField creates a Composite FieldSpec. At least one sub-input is
// required; a composite field with nothing addressable is meaningless.
func NewCompositeField(id, label string, subInputs []SubInput) (FieldSpec, error) {
	if id == "" {
		return FieldSpec{}, errs.NewValueIsRequiredError("field id")
	}
	if len(subInputs) == 0 {
		return FieldSpec{}, errs.NewValueIsRequiredError("subInputs")
	}
	inputs := make([]SubInput, len(subInputs))
	copy(inputs, subInputs)
	return FieldSpec{
		Kind:      Composite,
		ID:        id,
		Label:     label,
		SubInputs: inputs,
	}, nil
}

// Validate checks the tagged-variant invariants: a valid kind, a non-empty
// id, and sub-inputs present exactly when the field is Composite.
func (f FieldSpec) Validate() error {
	if f.ID == "" {
		return errs.NewValueIsRequiredError("field id")
	}
	switch f.Kind {
	case Simple:
		if len(f.SubInputs) > 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"field",
				fmt.Errorf("simple field %q must not carry sub-inputs", f.ID),
			)
		}
	case Composite:
		if len(f.SubInputs) == 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"field",
				fmt.Errorf("composite field %q must carry sub-inputs", f.ID),
			)
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"field",
			fmt.Errorf("field %q has invalid kind %d", f.ID, f.Kind),
		)
	}
	return nil
}
