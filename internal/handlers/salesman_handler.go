package handlers

import (
	"encoding/json"
	"net/http"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/services"
	"salesdash-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type SalesmanHandler struct {
	Service *services.SalesmanService
}

func NewSalesmanHandler(s *services.SalesmanService) *SalesmanHandler {
	return &SalesmanHandler{Service: s}
}

func (h *SalesmanHandler) ListSalesmen(w http.ResponseWriter, r *http.Request) {
	salesmen, err := h.Service.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, salesmen)
}

func (h *SalesmanHandler) EditSalesman(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.EditSalesmanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Service.Edit(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *SalesmanHandler) DeleteSalesman(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdjustPoints resets or shifts a salesman's reward points.
func (h *SalesmanHandler) AdjustPoints(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.AdjustPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Service.AdjustPoints(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}
