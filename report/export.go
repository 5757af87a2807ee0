package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"fueldelivery/models"
	"fueldelivery/utils"
)

// Export formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// ContentType returns the MIME type of an export format.
func ContentType(format string) string {
	if format == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ReportFileName is rekap_do_YYYYMMDD.<format>.
func ReportFileName(format string, now time.Time) string {
	return fmt.Sprintf("rekap_do_%s.%s", now.Format("20060102"), format)
}

// BackupFileName is dbase_backup_YYYYMMDD.<format>.
func BackupFileName(format string, now time.Time) string {
	return fmt.Sprintf("dbase_backup_%s.%s", now.Format("20060102"), format)
}

// Write renders orders in format to w using the given sheet name for XLSX.
func Write(w io.Writer, format, sheet string, orders []models.DeliveryOrder) error {
	switch format {
	case FormatXLSX:
		return utils.WriteOrdersWorkbook(w, sheet, orders)
	case FormatCSV:
		return WriteCSV(w, orders)
	default:
		return models.ValidationError("unknown export format " + format)
	}
}

// WriteCSV writes the header row and one line per order in column order.
func WriteCSV(w io.Writer, orders []models.DeliveryOrder) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.Columns); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, o := range orders {
		if err := cw.Write(o.Cells()); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
