package handlers

import (
	"errors"
	"net/http"

	"salesdash-backend/internal/services"
	"salesdash-backend/internal/upstream"
	"salesdash-backend/internal/view"
	"salesdash-backend/pkg/utils"
)

// writeServiceError maps service and upstream failures onto HTTP statuses.
// Upstream rejections of the stored credential surface as 401 so the
// dashboard treats them exactly like a lapsed session.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, upstream.ErrUnauthenticated):
		utils.Error(w, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, upstream.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, view.ErrRowNotFound):
		utils.Error(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, view.ErrNotActionable):
		utils.Error(w, http.StatusConflict, "Request already resolved")
	case errors.Is(err, view.ErrRowBusy):
		utils.Error(w, http.StatusConflict, "Action already in progress")
	case errors.Is(err, services.ErrUnknownProduct):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		utils.Error(w, http.StatusBadGateway, err.Error())
	}
}
