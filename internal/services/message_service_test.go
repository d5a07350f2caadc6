package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/upstream"
)

func TestSendTagsAdminSender(t *testing.T) {
	var submitted models.SendMessageRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/api/messages/sendmsg", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&submitted)
		json.NewEncoder(w).Encode(models.Message{ID: "m1", Message: submitted.Message})
	})

	svc := NewMessageService(newTestAPI(t, mux), fixedIdentity{id: "admin1", ok: true})
	sent, err := svc.Send(context.Background(), "s1", "visit the Pune client today")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if sent.ID != "m1" {
		t.Fatalf("sent id = %q, want m1", sent.ID)
	}
	if submitted.SenderID != "admin1" || submitted.ReceiverID != "s1" {
		t.Fatalf("sender/receiver = %q/%q", submitted.SenderID, submitted.ReceiverID)
	}
	if submitted.SenderType != models.SenderTypeAdmin {
		t.Fatalf("senderType = %q, want %q", submitted.SenderType, models.SenderTypeAdmin)
	}
}

func TestSendRejectsEmptyText(t *testing.T) {
	svc := NewMessageService(nil, fixedIdentity{id: "admin1", ok: true})
	if _, err := svc.Send(context.Background(), "s1", "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
}

func TestConversationNeedsIdentity(t *testing.T) {
	svc := NewMessageService(nil, fixedIdentity{ok: false})
	if _, err := svc.Conversation(context.Background(), "s1"); !errors.Is(err, upstream.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestConversationQueriesBothParties(t *testing.T) {
	var sender, receiver string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/messages/getmsg", func(w http.ResponseWriter, r *http.Request) {
		sender = r.URL.Query().Get("senderId")
		receiver = r.URL.Query().Get("receiverId")
		json.NewEncoder(w).Encode([]models.Message{{ID: "m1"}})
	})

	svc := NewMessageService(newTestAPI(t, mux), fixedIdentity{id: "admin1", ok: true})
	msgs, err := svc.Conversation(context.Background(), "s9")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if sender != "admin1" || receiver != "s9" {
		t.Fatalf("query = %q/%q, want admin1/s9", sender, receiver)
	}
}
