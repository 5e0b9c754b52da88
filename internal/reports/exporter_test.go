package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samajconnect/portal-backend/internal/member"
)

func sampleMembers() []member.Member {
	return []member.Member{
		{ID: 1, FamilyHeadName: "Agarwal", Name: "Ramesh", FirmCity: "Jaipur", TotalMembers: 4, Status: "active"},
		{ID: 2, FamilyHeadName: "Mehta", Name: "Suresh", City: "Udaipur", TotalMembers: 2, Status: "active"},
	}
}

func TestExportMembers_CSV(t *testing.T) {
	e := NewExporter()

	data, filename, contentType, err := e.ExportMembers(FormatCSV, sampleMembers())
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.True(t, strings.HasPrefix(filename, "members_report_"), filename)
	assert.True(t, strings.HasSuffix(filename, ".csv"), filename)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows
	assert.Equal(t, memberHeaders, records[0])
	assert.Equal(t, "Agarwal", records[1][1])
	assert.Equal(t, "Mehta", records[2][1])
}

func TestExportMembers_Excel(t *testing.T) {
	e := NewExporter()

	data, filename, contentType, err := e.ExportMembers(FormatExcel, sampleMembers())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"), filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	// xlsx files are zip archives.
	assert.Equal(t, "PK", string(data[:2]))
}

func TestExportMembers_PDF(t *testing.T) {
	e := NewExporter()

	data, filename, contentType, err := e.ExportMembers(FormatPDF, sampleMembers())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, strings.HasSuffix(filename, ".pdf"), filename)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportMembers_UnknownFormat(t *testing.T) {
	e := NewExporter()

	_, _, _, err := e.ExportMembers("docx", nil)
	assert.Error(t, err)
}

func TestExportMembers_EmptySetStillProducesHeader(t *testing.T) {
	e := NewExporter()

	data, _, _, err := e.ExportMembers(FormatCSV, nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, memberHeaders, records[0])
}
