package services_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
	"reporting/internal/core/domain/model/source"
	"reporting/internal/core/domain/services"
)

func testSchema(t *testing.T) source.Schema {
	t.Helper()

	name, err := source.NewCompositeField("1", "Name", []source.SubInput{
		{ID: "1.3", Label: "First"},
		{ID: "1.6", Label: "Last"},
	})
	require.NoError(t, err)

	email, err := source.NewSimpleField("2", "Email")
	require.NoError(t, err)

	schema, err := source.NewSchema("Contact Form", []source.FieldSpec{name, email})
	require.NoError(t, err)
	return schema
}

func Test_ReportBuilder_Build(t *testing.T) {
	builder := services.NewReportBuilder()
	records := []source.Record{
		{"id": "101", "1.3": "Jane", "1.6": "Doe", "2": "jane@example.com"},
		{"id": "102", "2": "anon@example.com"},
	}

	report, err := builder.Build([]string{"id", "1.3", "2"}, testSchema(t), records)

	require.NoError(t, err)
	assert.Equal(t, []string{"Entry ID", "Name (First)", "Email"}, report.Header)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, []string{"101", "Jane", "jane@example.com"}, report.Rows[0])
	assert.Equal(t, []string{"102", "", "anon@example.com"}, report.Rows[1])
	assert.Equal(t, 2, report.RecordCount)
}

func Test_ReportBuilder_Build_EmptySelection(t *testing.T) {
	builder := services.NewReportBuilder()

	_, err := builder.Build(nil, testSchema(t), nil)

	assert.Error(t, err)
}

func Test_ReportBuilder_Build_NoRecordsStillHasHeader(t *testing.T) {
	builder := services.NewReportBuilder()

	report, err := builder.Build([]string{"id", "date_created"}, testSchema(t), nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"Entry ID", "Submission Date"}, report.Header)
	assert.Empty(t, report.Rows)
	assert.Equal(t, 0, report.RecordCount)
}

func Test_Report_WriteCSV(t *testing.T) {
	report := services.Report{
		Header: []string{"Entry ID", "Comment"},
		Rows: [][]string{
			{"101", `said "hi", left`},
			{"102", ""},
		},
		RecordCount: 2,
	}

	var buf bytes.Buffer
	err := report.WriteCSV(&buf)

	require.NoError(t, err)
	want := "Entry ID,Comment\n" +
		"101,\"said \"\"hi\"\", left\"\n" +
		"102,\n"
	assert.Equal(t, want, buf.String())
}

func Test_ExportFileName(t *testing.T) {
	id := kernel.NewUUID()
	at := time.Date(2024, 3, 15, 9, 30, 0, 123456789, time.UTC)

	name := services.ExportFileName(id, "Contact Form/Main", schedule.Weekly, at)

	assert.True(t, strings.HasPrefix(name, "report-"+id.String()+"-CONTACT-FORM-MAIN-weekly-2024-03-15-"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}

func Test_ExportFileName_DistinctPerInstant(t *testing.T) {
	id := kernel.NewUUID()
	first := services.ExportFileName(id, "Contact Form", schedule.Daily, time.Unix(0, 1))
	second := services.ExportFileName(id, "Contact Form", schedule.Daily, time.Unix(0, 2))

	assert.NotEqual(t, first, second)
}
