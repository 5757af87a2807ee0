package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentifier(t *testing.T) {
	assert.Equal(t, "1234", NormalizeIdentifier("1234.0"))
	assert.Equal(t, "010125-01", NormalizeIdentifier("010125-01"))
	assert.Equal(t, "12.05", NormalizeIdentifier("12.05"))
	assert.Equal(t, "", NormalizeIdentifier(""))
}

func TestOrderFromCellsNormalizesIdentifiers(t *testing.T) {
	cells := []string{"7", "January", "55.0", "010125-01", "2025-01-01", "TBBM", "PT. SHA Solo",
		"PT Client", "Jl. Raya 1", "Blok B", "9876.0", "2024-12-30", "4400123.0", "Budi",
		"8000", FuelBiosolarB40, "1234.0", "Slamet", "urgent"}

	o := OrderFromCells(Columns, cells)
	assert.Equal(t, int64(7), o.No)
	assert.Equal(t, "55", o.SPOLetter)
	assert.Equal(t, "9876", o.POClient)
	assert.Equal(t, "4400123", o.POPertamina)
	assert.Equal(t, "1234", o.FleetNumber)
	assert.Equal(t, 8000.0, o.Qty.Value)
	assert.Equal(t, "2024-12-30", o.POClientDate.String())
	assert.Equal(t, "urgent", o.Remarks)
}

func TestOrderFromCellsShortRow(t *testing.T) {
	o := OrderFromCells(Columns, []string{"3.0", "", "", "020125-04"})
	assert.Equal(t, int64(3), o.No)
	assert.Equal(t, "020125-04", o.DONumber)
	assert.Equal(t, Absent, o.Date.State)
	assert.Equal(t, Absent, o.Qty.State)
}

func TestCellsRoundTrip(t *testing.T) {
	o := NewOrder("150325-02", time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), "PT. SHA Solo", FuelPertadex)
	o.No = 12
	o.Client = "PT Tambang"
	o.Qty = NewQuantity(16000)

	cells := o.Cells()
	require.Len(t, cells, len(Columns))
	assert.Equal(t, "12", cells[0])
	assert.Equal(t, "March", cells[1])
	assert.Equal(t, "2025-03-15", cells[4])
	assert.Equal(t, "16000", cells[14])

	assert.Equal(t, o, OrderFromCells(Columns, cells))
}
