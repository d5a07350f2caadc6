package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"salesdash-backend/internal/services"
	"salesdash-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type MessageHandler struct {
	Service *services.MessageService
}

func NewMessageHandler(s *services.MessageService) *MessageHandler {
	return &MessageHandler{Service: s}
}

// GetConversation fetches the thread with one salesman.
func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	salesmanID := mux.Vars(r)["salesmanId"]

	messages, err := h.Service.Conversation(r.Context(), salesmanID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, messages)
}

// SendMessage posts a message to one salesman.
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	salesmanID := mux.Vars(r)["salesmanId"]

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sent, err := h.Service.Send(r.Context(), salesmanID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			utils.Error(w, http.StatusBadRequest, "message text is required")
			return
		}
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, sent)
}
