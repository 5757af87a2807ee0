package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"fueldelivery/models"
	"fueldelivery/service"
)

// DraftHandler exposes edit sessions. Each draft belongs to the client that
// created it and lives until it is submitted, discarded or left idle.
type DraftHandler struct {
	Service *service.OrderService
}

func draftID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, models.ValidationError("invalid draft id")
	}
	return id, nil
}

// CreateDraft opens a blank form, or a copy of ?from=<do>.
func (h *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	d, err := h.Service.NewDraft(r.Context(), r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: d})
}

func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, err := draftID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	d, err := h.Service.GetDraft(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", d)
}

func (h *DraftHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	id, err := draftID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var order models.DeliveryOrder
	if err := decodeJSON(r, &order); err != nil {
		writeError(w, r, err)
		return
	}
	d, err := h.Service.UpdateDraft(r.Context(), id, order)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", d)
}

func (h *DraftHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	id, err := draftID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Service.DiscardDraft(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "Draft discarded", nil)
}

// SubmitDraft saves the draft. The draft survives a failed save so the
// operator can retry without retyping.
func (h *DraftHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	id, err := draftID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.Service.SubmitDraft(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	msg := "DO " + res.Order.DONumber + " updated"
	if res.Created {
		msg = "DO " + res.Order.DONumber + " saved"
	}
	writeOK(w, msg, res)
}
