package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salesdash-backend/internal/upstream"
)

// fixedCreds satisfies upstream.CredentialSource with a static token.
type fixedCreds struct{}

func (fixedCreds) Credential() (string, bool) { return "test-token", true }

// fixedIdentity satisfies AdminIdentity with a static admin id.
type fixedIdentity struct {
	id string
	ok bool
}

func (f fixedIdentity) AdminID() (string, bool) { return f.id, f.ok }

func newTestAPI(t *testing.T, handler http.Handler) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return upstream.NewClient(srv.URL, 2*time.Second, fixedCreds{})
}
