package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store answers "is there a currently valid credential?" and hands that
// credential to the upstream client. It is the single place where the
// embedded expiry is checked; nothing else re-derives it.
type Store struct {
	backend Backend

	mu            sync.RWMutex
	credential    string
	authenticated bool
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// CheckAuth loads the stored credential and resolves the authentication
// state. A missing, malformed, or expired credential clears storage and
// resolves to unauthenticated; it never returns an error for those cases.
func (s *Store) CheckAuth(ctx context.Context) bool {
	credential, err := s.backend.Load(ctx)
	if err != nil || isExpired(credential) {
		if err != nil && err != ErrNoCredential {
			log.Printf("[Session] Storage read failed: %v", err)
		}
		s.backend.Clear(ctx)
		s.setState("", false)
		return false
	}

	s.setState(credential, true)
	return true
}

// Login persists the credential issued by the upstream and marks the
// session authenticated.
func (s *Store) Login(ctx context.Context, credential string) error {
	if err := s.backend.Save(ctx, credential); err != nil {
		return err
	}
	s.setState(credential, true)
	log.Printf("[Session] Credential stored, session authenticated")
	return nil
}

// Logout clears storage and marks the session unauthenticated.
func (s *Store) Logout(ctx context.Context) {
	if err := s.backend.Clear(ctx); err != nil {
		log.Printf("[Session] Storage clear failed: %v", err)
	}
	s.setState("", false)
	log.Printf("[Session] Session cleared")
}

// Credential returns the current credential and whether it is still valid.
// Expiry is re-checked on every call so a token that lapses mid-session
// stops being attached to outgoing requests.
func (s *Store) Credential() (string, bool) {
	s.mu.RLock()
	credential, authenticated := s.credential, s.authenticated
	s.mu.RUnlock()

	if !authenticated || isExpired(credential) {
		return "", false
	}
	return credential, true
}

// Authenticated reports the last resolved state without touching storage.
func (s *Store) Authenticated() bool {
	_, ok := s.Credential()
	return ok
}

// AdminID extracts the admin identifier embedded in the credential.
// Trust-on-read: the payload is decoded without signature verification,
// same as the expiry check.
func (s *Store) AdminID() (string, bool) {
	credential, ok := s.Credential()
	if !ok {
		return "", false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return "", false
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Watch polls the backend so a credential cleared or replaced out-of-band
// (another replica, an operator flushing the key) is reflected here.
// Best-effort, not authoritative. Blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stored, err := s.backend.Load(ctx)
			if err != nil {
				stored = ""
			}
			s.mu.RLock()
			current := s.credential
			s.mu.RUnlock()
			if stored != current {
				log.Printf("[Session] Stored credential changed externally, re-resolving")
				s.CheckAuth(ctx)
			}
		}
	}
}

func (s *Store) setState(credential string, authenticated bool) {
	s.mu.Lock()
	s.credential = credential
	s.authenticated = authenticated
	s.mu.Unlock()
}

// isExpired decodes the credential's exp claim without verifying the
// signature. A credential that cannot be decoded counts as expired.
func isExpired(credential string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}
