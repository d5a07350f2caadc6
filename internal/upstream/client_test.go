package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salesdash-backend/internal/models"
)

// staticCreds is a CredentialSource with a fixed answer.
type staticCreds struct {
	token string
	ok    bool
}

func (s staticCreds) Credential() (string, bool) { return s.token, s.ok }

func newTestClient(t *testing.T, handler http.Handler, creds CredentialSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, creds)
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.SalesmanListResponse{})
	})

	c := newTestClient(t, handler, staticCreds{token: "tok123", ok: true})
	if _, err := c.FetchSalesmen(context.Background()); err != nil {
		t.Fatalf("FetchSalesmen: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("Authorization = %q, want Bearer tok123", gotAuth)
	}
}

func TestNoHeaderWithoutCredential(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.SalesmanListResponse{})
	})

	c := newTestClient(t, handler, staticCreds{ok: false})
	c.FetchSalesmen(context.Background())
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want empty", gotAuth)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthenticated},
		{http.StatusForbidden, ErrUnauthenticated},
		{http.StatusNotFound, ErrNotFound},
	}
	for _, tt := range tests {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		c := newTestClient(t, handler, staticCreds{ok: false})
		_, err := c.FetchClients(context.Background())
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: err = %v, want %v", tt.status, err, tt.want)
		}
	}
}

func TestServerErrorIsGeneric(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	c := newTestClient(t, handler, staticCreds{ok: false})
	_, err := c.FetchClients(context.Background())
	if err == nil || errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want generic error", err)
	}
}

func TestLogin(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/admin/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var req models.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Name != "admin" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(models.LoginResponse{Token: "issued-token"})
	})

	c := newTestClient(t, handler, staticCreds{ok: false})
	token, err := c.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "issued-token" {
		t.Fatalf("token = %q", token)
	}

	if _, err := c.Login(context.Background(), "admin", "wrong"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("bad login err = %v, want ErrUnauthenticated", err)
	}
}

func TestContextCancellationAbortsRequest(t *testing.T) {
	blocked := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	})
	c := newTestClient(t, handler, staticCreds{ok: false})
	defer close(blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.FetchOrders(ctx)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestMessagesQueryParams(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("senderId") != "admin-1" || q.Get("receiverId") != "sm-2" {
			t.Errorf("query = %v", q)
		}
		json.NewEncoder(w).Encode([]models.Message{{ID: "m1", Message: "hi"}})
	})
	c := newTestClient(t, handler, staticCreds{token: "t", ok: true})
	msgs, err := c.FetchMessages(context.Background(), "admin-1", "sm-2")
	if err != nil {
		t.Fatalf("FetchMessages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Message != "hi" {
		t.Fatalf("messages = %+v", msgs)
	}
}
