package excel

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"propfilter/domain/project"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() []project.ProjectRecord {
	return []project.ProjectRecord{
		{
			Code:        project.Text("A1"),
			Developer:   project.Text("Emaar"),
			Project:     project.Text("Mivida"),
			Area:        project.Text("Cairo"),
			DeliverDate: project.Date(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)),
		},
		{
			Code:        project.Number(42),
			Project:     project.Text("Westown"),
			DeliverDate: project.Number(2027),
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, exportFixture()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ExportSheet}, f.GetSheetList())

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ExportColumns, rows[0])
	assert.Equal(t, []string{"A1", "Emaar", "Mivida", "Cairo", "2025-06-30 00:00:00"}, rows[1])
	assert.Equal(t, exportFixture()[0].DeliverDate.String(), rows[1][4], "exported dates read like the filter options")
	assert.Equal(t, "42", rows[2][0])
	assert.Equal(t, "", rows[2][1])
	assert.Equal(t, "Westown", rows[2][2])
	assert.Equal(t, "2027", rows[2][4])
}

func TestWriteXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{ExportColumns}, rows)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, exportFixture()))

	lines, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		ExportColumns,
		{"A1", "Emaar", "Mivida", "Cairo", "2025-06-30 00:00:00"},
		{"42", "", "Westown", "", "2027"},
	}, lines)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, "pdf", nil))
}

func TestContentTypeAndFileName(t *testing.T) {
	assert.Equal(t, "Filtered_Projects.xlsx", FileName(FormatXLSX))
	assert.Equal(t, "Filtered_Projects.csv", FileName(FormatCSV))
	assert.Contains(t, ContentType(FormatXLSX), "spreadsheetml")
	assert.Contains(t, ContentType(FormatCSV), "text/csv")
}
