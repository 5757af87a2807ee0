package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"fueldelivery/models"
	"fueldelivery/report"
	"fueldelivery/service"
	"fueldelivery/utils"
)

const maxHeaderUpload = 10 << 20

type SettingsHandler struct {
	Service *service.SettingsService
	Now     func() time.Time
}

func (h *SettingsHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Company(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", p)
}

func (h *SettingsHandler) SaveCompany(w http.ResponseWriter, r *http.Request) {
	var p models.CompanyProfile
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, err)
		return
	}
	saved, err := h.Service.SaveCompany(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "Company profile saved", saved)
}

// GetHeader serves the receipt header image as stored.
func (h *SettingsHandler) GetHeader(w http.ResponseWriter, r *http.Request) {
	img, err := h.Service.Header(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeFile(w, mimetype.Detect(img).String(), "", img)
}

// UploadHeader takes a multipart "file" field holding a PNG or JPEG.
func (h *SettingsHandler) UploadHeader(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxHeaderUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, models.ValidationError("missing file: "+err.Error()))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, models.ValidationError("read upload: "+err.Error()))
		return
	}
	if err := h.Service.SaveHeader(r.Context(), data); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "Header image updated", nil)
}

// Backup returns a handler downloading the whole table as format.
func (h *SettingsHandler) Backup(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := h.Service.Backup(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		now := time.Now()
		if h.Now != nil {
			now = h.Now()
		}
		writeExport(w, r, format, utils.BackupSheet, report.BackupFileName(format, now), orders)
	}
}
