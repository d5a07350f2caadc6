package handlers

import (
	"encoding/json"
	"net/http"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/services"
	"salesdash-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type OrderHandler struct {
	Service *services.OrderService
}

func NewOrderHandler(s *services.OrderService) *OrderHandler {
	return &OrderHandler{Service: s}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, orders)
}

// EditOrder updates an order's lines or status. The total is recomputed
// server-side from the submitted lines.
func (h *OrderHandler) EditOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.EditOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	for _, line := range req.Products {
		if line.Quantity < 1 {
			utils.Error(w, http.StatusBadRequest, "line quantity must be at least 1")
			return
		}
	}

	updated, err := h.Service.Edit(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
