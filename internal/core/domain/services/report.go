package services

import (
	"encoding/csv"
	"io"
)

// Report is the tabular result of projecting source records onto a field
// selection. Header and each row have the same width.
type Report struct {
	Header      []string
	Rows        [][]string
	RecordCount int
}

// WriteCSV writes the report as RFC 4180 CSV: the header line first, then
// one line per row. Quoting and escaping are handled by the encoder.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(r.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(r.Rows); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
