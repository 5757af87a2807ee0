package handlers

import (
	"net/http"

	"fueldelivery/models"
	"fueldelivery/service"
)

type OrderHandler struct {
	Service *service.OrderService
}

// ListOrders returns the whole table. A store outage still answers with an
// empty list so the page can render.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.ListOrders(r.Context())
	if err != nil {
		writeDegraded(w, r, err, []models.DeliveryOrder{})
		return
	}
	if orders == nil {
		orders = []models.DeliveryOrder{}
	}
	writeOK(w, "", orders)
}

func (h *OrderHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	next, err := h.Service.NextDONumber(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", map[string]string{"do_number": next})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.Service.GetOrder(r.Context(), r.PathValue("do"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", o)
}

// PutOrder saves the body under the DO number of the path.
func (h *OrderHandler) PutOrder(w http.ResponseWriter, r *http.Request) {
	var order models.DeliveryOrder
	if err := decodeJSON(r, &order); err != nil {
		writeError(w, r, err)
		return
	}
	order.DONumber = r.PathValue("do")

	res, err := h.Service.SaveOrder(r.Context(), order)
	if err != nil {
		writeError(w, r, err)
		return
	}
	status, msg := http.StatusOK, "Order updated"
	if res.Created {
		status, msg = http.StatusCreated, "Order created"
	}
	writeJSON(w, status, ApiResponse{Success: true, Message: msg, Data: res})
}

// DeleteOrder answers 200 even when the DO number was not in the table.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	do := r.PathValue("do")
	deleted, err := h.Service.DeleteOrder(r.Context(), do)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeOK(w, "DO "+do+" not found, nothing deleted", map[string]bool{"deleted": false})
		return
	}
	writeOK(w, "DO "+do+" deleted", map[string]bool{"deleted": true})
}
