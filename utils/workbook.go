package utils

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"fueldelivery/models"
)

// Sheet names used by the exports.
const (
	ReportSheet = "Data Rekap"
	BackupSheet = "Data Backup"
)

// OrderRowValues is one order as typed cell values in column order. Dates
// are plain YYYY-MM-DD text; numbers stay numeric when they are valid.
func OrderRowValues(o models.DeliveryOrder) []interface{} {
	cells := o.Cells()
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if o.No > 0 {
		values[0] = o.No
	}
	if o.Qty.Valid() {
		values[14] = o.Qty.Value
	}
	return values
}

// NewOrdersWorkbook builds a workbook holding a single sheet of orders with
// a bold header row.
func NewOrdersWorkbook(sheet string, orders []models.DeliveryOrder) (*excelize.File, error) {
	f := excelize.NewFile()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			f.Close()
			return nil, errors.Wrap(err, "error naming sheet")
		}
	}

	header := make([]interface{}, len(models.Columns))
	for i, c := range models.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "error writing header")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err == nil {
		f.SetRowStyle(sheet, 1, 1, headerStyle)
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := OrderRowValues(o)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "error writing row %d", i+2)
		}
	}

	last, _ := excelize.ColumnNumberToName(len(models.Columns))
	f.SetColWidth(sheet, "A", last, 18)
	return f, nil
}

// WriteOrdersWorkbook streams the workbook produced by NewOrdersWorkbook.
func WriteOrdersWorkbook(w io.Writer, sheet string, orders []models.DeliveryOrder) error {
	f, err := NewOrdersWorkbook(sheet, orders)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "error writing Excel file")
	}
	return nil
}

// ReadOrdersWorkbook parses a sheet whose first row is the header. Blank
// rows are skipped. A missing sheet reads as an empty table.
func ReadOrdersWorkbook(r io.Reader, sheet string) ([]models.DeliveryOrder, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "error opening workbook")
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "error reading rows")
	}
	return OrdersFromRows(rows), nil
}

// OrdersFromRows converts a header row plus data rows into orders.
func OrdersFromRows(rows [][]string) []models.DeliveryOrder {
	if len(rows) < 2 {
		return nil
	}
	header := rows[0]
	orders := make([]models.DeliveryOrder, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		orders = append(orders, models.OrderFromCells(header, cells))
	}
	return orders
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
