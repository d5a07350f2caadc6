package handlers

import (
	"encoding/json"
	"net/http"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/session"
	"salesdash-backend/internal/upstream"
	"salesdash-backend/pkg/utils"
)

type AuthHandler struct {
	API     *upstream.Client
	Session *session.Store
}

func NewAuthHandler(api *upstream.Client, store *session.Store) *AuthHandler {
	return &AuthHandler{API: api, Session: store}
}

// Login authenticates against the tracking API and stores the issued
// credential. The credential itself never leaves the server.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "name and password are required")
		return
	}

	token, err := h.API.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.Session.Login(r.Context(), token); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to store session")
		return
	}

	adminID, _ := h.Session.AdminID()
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"adminId":       adminID,
	})
}

// Logout clears the stored credential.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout(r.Context())
	utils.JSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
}

// Status reports whether a usable credential is stored right now.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	authenticated := h.Session.CheckAuth(r.Context())
	resp := map[string]interface{}{"authenticated": authenticated}
	if authenticated {
		if adminID, ok := h.Session.AdminID(); ok {
			resp["adminId"] = adminID
		}
	}
	utils.JSON(w, http.StatusOK, resp)
}
