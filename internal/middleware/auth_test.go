package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubSession bool

func (s stubSession) Authenticated() bool { return bool(s) }

func TestAuthenticateBlocksWithoutSession(t *testing.T) {
	m := NewAuthMiddleware(stubSession(false))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler reached without a session")
	})

	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, httptest.NewRequest("GET", "/api/salesmen", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not authenticated") {
		t.Fatalf("body = %q, want error message", rec.Body.String())
	}
}

func TestAuthenticatePassesWithSession(t *testing.T) {
	m := NewAuthMiddleware(stubSession(true))
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, httptest.NewRequest("GET", "/api/salesmen", nil))

	if !called {
		t.Fatal("next handler not reached")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
