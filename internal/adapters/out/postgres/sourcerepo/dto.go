// Package sourcerepo provides read access to record sources: the schema a
// source describes itself with and the raw entries accumulated for it. The
// schema and entry values are stored as JSONB documents; this package owns
// their decoding into domain types.
package sourcerepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"reporting/internal/core/domain/model/source"
)

// SourceDTO represents the database structure of a record source.
type SourceDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title  string
	Schema []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for source entities.
func (SourceDTO) TableName() string {
	return "sources"
}

// EntryDTO represents one raw record captured for a source. Values holds the
// flat field id to value mapping as a JSONB document.
type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SourceID  uuid.UUID `gorm:"type:uuid;index:idx_entries_source_created,priority:1"`
	CreatedAt time.Time `gorm:"index:idx_entries_source_created,priority:2"`
	Values    []byte    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for source entries.
func (EntryDTO) TableName() string {
	return "source_entries"
}

// fieldSpecDoc is the JSON shape of one schema field.
type fieldSpecDoc struct {
	ID     string        `json:"id"`
	Label  string        `json:"label"`
	Type   string        `json:"type"`
	Inputs []subInputDoc `json:"inputs,omitempty"`
}

type subInputDoc struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// toSchema decodes a source row into the domain schema.
func toSchema(dto SourceDTO) (source.Schema, error) {
	var docs []fieldSpecDoc
	if len(dto.Schema) > 0 {
		if err := json.Unmarshal(dto.Schema, &docs); err != nil {
			return source.Schema{}, err
		}
	}

	fields := make([]source.FieldSpec, 0, len(docs))
	for _, doc := range docs {
		var field source.FieldSpec
		var err error

		if doc.Type == "composite" {
			inputs := make([]source.SubInput, 0, len(doc.Inputs))
			for _, input := range doc.Inputs {
				inputs = append(inputs, source.SubInput{ID: input.ID, Label: input.Label})
			}
			field, err = source.NewCompositeField(doc.ID, doc.Label, inputs)
		} else {
			field, err = source.NewSimpleField(doc.ID, doc.Label)
		}
		if err != nil {
			return source.Schema{}, err
		}

		fields = append(fields, field)
	}

	return source.NewSchema(dto.Title, fields)
}

// toRecord decodes an entry row into the domain record.
func toRecord(dto EntryDTO) (source.Record, error) {
	record := make(source.Record)
	if len(dto.Values) == 0 {
		return record, nil
	}

	if err := json.Unmarshal(dto.Values, &record); err != nil {
		return nil, err
	}
	return record, nil
}
