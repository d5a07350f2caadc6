package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/upstream"
)

// ErrEmptyMessage is returned when a send carries no text.
var ErrEmptyMessage = errors.New("message text is empty")

// AdminIdentity yields the admin id embedded in the stored credential.
type AdminIdentity interface {
	AdminID() (string, bool)
}

// MessageService manages admin-salesman conversations. Threads live
// upstream; fetching a conversation is always a round trip.
type MessageService struct {
	API      *upstream.Client
	Identity AdminIdentity
}

// NewMessageService creates a new message service
func NewMessageService(api *upstream.Client, identity AdminIdentity) *MessageService {
	return &MessageService{API: api, Identity: identity}
}

// Conversation fetches the thread between the logged-in admin and one
// salesman, in whatever order the upstream returns it.
func (s *MessageService) Conversation(ctx context.Context, salesmanID string) ([]models.Message, error) {
	adminID, ok := s.Identity.AdminID()
	if !ok {
		return nil, upstream.ErrUnauthenticated
	}
	messages, err := s.API.FetchMessages(ctx, adminID, salesmanID)
	if err != nil {
		return nil, fmt.Errorf("fetch conversation with %s: %w", salesmanID, err)
	}
	return messages, nil
}

// Send posts a message to a salesman, tagged with the admin sender type.
func (s *MessageService) Send(ctx context.Context, salesmanID, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	adminID, ok := s.Identity.AdminID()
	if !ok {
		return nil, upstream.ErrUnauthenticated
	}
	sent, err := s.API.SendMessage(ctx, models.SendMessageRequest{
		SenderID:   adminID,
		ReceiverID: salesmanID,
		Message:    text,
		SenderType: models.SenderTypeAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("send message to %s: %w", salesmanID, err)
	}
	return sent, nil
}
