package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"fueldelivery/service"
)

type PDFHandler struct {
	Service *service.ReceiptService
}

// OrderPDF renders the delivery receipt of a saved order. With
// ?archive=true the PDF is also uploaded; an upload failure is reported in
// a header and does not fail the download.
func (h *PDFHandler) OrderPDF(w http.ResponseWriter, r *http.Request) {
	archive, _ := strconv.ParseBool(r.URL.Query().Get("archive"))

	rc, err := h.Service.Render(r.Context(), r.PathValue("do"), archive)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if rc.ArchiveURL != "" {
		w.Header().Set("X-Archive-URL", rc.ArchiveURL)
	}
	if rc.ArchiveErr != nil {
		log.Warn().Err(rc.ArchiveErr).Str("file", rc.FileName).Msg("receipt served without archive")
		w.Header().Set("X-Archive-Error", rc.ArchiveErr.Error())
	}
	writeFile(w, "application/pdf", rc.FileName, rc.PDF)
}
