package handlers

import (
	"bytes"
	"net/http"
	"time"

	"fueldelivery/models"
	"fueldelivery/report"
	"fueldelivery/service"
	"fueldelivery/utils"
)

type ReportHandler struct {
	Service *service.OrderService
	Now     func() time.Time
}

func (h *ReportHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Report returns the filtered rows, totals and filter options.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	f, err := report.ParseFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.Service.Report(r.Context(), f)
	if err != nil {
		writeDegraded(w, r, err, view)
		return
	}
	writeOK(w, "", view)
}

// Export returns a handler downloading the filtered rows as format.
func (h *ReportHandler) Export(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := report.ParseFilter(r.URL.Query())
		if err != nil {
			writeError(w, r, err)
			return
		}
		view, err := h.Service.Report(r.Context(), f)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeExport(w, r, format, utils.ReportSheet, report.ReportFileName(format, h.now()), view.Rows)
	}
}

func writeExport(w http.ResponseWriter, r *http.Request, format, sheet, filename string, rows []models.DeliveryOrder) {
	var buf bytes.Buffer
	if err := report.Write(&buf, format, sheet, rows); err != nil {
		writeError(w, r, err)
		return
	}
	writeFile(w, report.ContentType(format), filename, buf.Bytes())
}
