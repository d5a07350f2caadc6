package handlers

import (
	"encoding/json"
	"net/http"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/services"
	"salesdash-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type RewardHandler struct {
	Service *services.RewardService
}

func NewRewardHandler(s *services.RewardService) *RewardHandler {
	return &RewardHandler{Service: s}
}

func (h *RewardHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.Service.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rewards)
}

func (h *RewardHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	var req models.RewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RewardName == "" || req.PointsRequired <= 0 {
		utils.Error(w, http.StatusBadRequest, "rewardName and a positive pointsRequired are required")
		return
	}

	created, err := h.Service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *RewardHandler) EditReward(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.RewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.Edit(r.Context(), id, req); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *RewardHandler) DeleteReward(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRedemptions serves the redemption request queue.
func (h *RewardHandler) ListRedemptions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.RefreshRedemptions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rows)
}

func (h *RewardHandler) ApproveRedemption(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.ApproveRedemption(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": models.RedemptionApproved})
}

func (h *RewardHandler) RejectRedemption(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.RejectRedemption(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": models.RedemptionRejected})
}
