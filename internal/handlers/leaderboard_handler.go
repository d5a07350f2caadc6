package handlers

import (
	"net/http"

	"salesdash-backend/internal/services"
	"salesdash-backend/pkg/utils"
)

type LeaderboardHandler struct {
	Service *services.LeaderboardService
}

func NewLeaderboardHandler(s *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{Service: s}
}

func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.Fetch(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, page)
}

// ExportLeaderboard serves the standings as a CSV download.
func (h *LeaderboardHandler) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.ExportCSV(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.Attachment(w, "text/csv", "leaderboard.csv", data)
}
