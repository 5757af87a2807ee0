package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/models"
	"fueldelivery/utils"
)

func TestFileNames(t *testing.T) {
	now := time.Date(2025, 1, 9, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "rekap_do_20250109.xlsx", ReportFileName(FormatXLSX, now))
	assert.Equal(t, "dbase_backup_20250109.csv", BackupFileName(FormatCSV, now))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, "", fixture()[:2]))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, models.Columns, records[0])
	assert.Equal(t, "010124-01", records[1][3])
	assert.Equal(t, "2024-03-01", records[1][4])
	assert.Equal(t, "1000", records[1][14])
}

func TestWriteXLSXUsesSheetName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, utils.ReportSheet, fixture()))

	got, err := utils.ReadOrdersWorkbook(bytes.NewReader(buf.Bytes()), utils.ReportSheet)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	assert.Equal(t, "2024-03-01", got[0].Date.String())
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "pdf", "", nil))
}
