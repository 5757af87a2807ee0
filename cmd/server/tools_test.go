package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/models"
	"fueldelivery/report"
)

func exportRows() []models.DeliveryOrder {
	o := models.NewOrder("010125-01", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), "PT. SHA Solo", models.FuelBiosolarB40)
	o.No = 1
	o.Qty = models.NewQuantity(5000)
	return []models.DeliveryOrder{o}
}

func TestWriteExportToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), report.ReportFileName(report.FormatCSV, time.Now()))
	var stdout bytes.Buffer
	require.NoError(t, writeExport(out, report.FormatCSV, &stdout, exportRows()))
	assert.Zero(t, stdout.Len())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "010125-01", records[1][3])
}

func TestWriteExportToStdout(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, writeExport("-", report.FormatCSV, &stdout, exportRows()))
	assert.Contains(t, stdout.String(), "010125-01")
}

func TestWriteExportCreateFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "rekap.csv")
	err := writeExport(out, report.FormatCSV, &bytes.Buffer{}, exportRows())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create export file")
}
