package handlers

import (
	"net/http"

	"salesdash-backend/internal/services"
	"salesdash-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ReturnHandler struct {
	Service *services.ReturnService
}

func NewReturnHandler(s *services.ReturnService) *ReturnHandler {
	return &ReturnHandler{Service: s}
}

func (h *ReturnHandler) ListReturns(w http.ResponseWriter, r *http.Request) {
	returns, err := h.Service.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, returns)
}

func (h *ReturnHandler) ApproveReturn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Approve(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "Approved"})
}

func (h *ReturnHandler) RejectReturn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Reject(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "Rejected"})
}
