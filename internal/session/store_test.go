package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func expiredToken(t *testing.T) string {
	return mintToken(t, jwt.MapClaims{
		"id":  "admin-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
}

func validToken(t *testing.T) string {
	return mintToken(t, jwt.MapClaims{
		"id":  "admin-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
}

func TestCheckAuthExpiredCredentialClearsStorage(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	backend.Save(ctx, expiredToken(t))

	store := NewStore(backend)
	if store.CheckAuth(ctx) {
		t.Fatal("expired credential resolved as authenticated")
	}
	if _, err := backend.Load(ctx); err != ErrNoCredential {
		t.Fatalf("storage not cleared, err = %v", err)
	}
	if _, ok := store.Credential(); ok {
		t.Fatal("credential still served after failed check")
	}
}

func TestCheckAuthValidCredential(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	token := validToken(t)
	backend.Save(ctx, token)

	store := NewStore(backend)
	if !store.CheckAuth(ctx) {
		t.Fatal("valid credential resolved as unauthenticated")
	}
	got, ok := store.Credential()
	if !ok || got != token {
		t.Fatalf("Credential() = %q, %v; want stored token", got, ok)
	}
}

func TestCheckAuthMalformedTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	for _, credential := range []string{"", "garbage", "a.b", "x.y.z"} {
		backend := NewMemoryBackend()
		backend.Save(ctx, credential)

		store := NewStore(backend)
		if store.CheckAuth(ctx) {
			t.Errorf("malformed credential %q resolved as authenticated", credential)
		}
		if _, err := backend.Load(ctx); err != ErrNoCredential {
			t.Errorf("storage not cleared for %q", credential)
		}
	}
}

func TestCheckAuthAbsentCredential(t *testing.T) {
	store := NewStore(NewMemoryBackend())
	if store.CheckAuth(context.Background()) {
		t.Fatal("empty backend resolved as authenticated")
	}
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	store := NewStore(backend)

	token := validToken(t)
	if err := store.Login(ctx, token); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !store.Authenticated() {
		t.Fatal("not authenticated after login")
	}
	if stored, _ := backend.Load(ctx); stored != token {
		t.Fatal("credential not persisted on login")
	}

	store.Logout(ctx)
	if store.Authenticated() {
		t.Fatal("still authenticated after logout")
	}
	if _, err := backend.Load(ctx); err != ErrNoCredential {
		t.Fatal("storage not cleared on logout")
	}
}

func TestCredentialLapsesMidSession(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryBackend())

	token := mintToken(t, jwt.MapClaims{
		"id":  "admin-1",
		"exp": time.Now().Add(150 * time.Millisecond).Unix(),
	})
	if err := store.Login(ctx, token); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// exp has one-second resolution, wait out the full window
	time.Sleep(1200 * time.Millisecond)
	if _, ok := store.Credential(); ok {
		t.Fatal("lapsed credential still served")
	}
}

func TestAdminID(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryBackend())
	store.Login(ctx, validToken(t))

	id, ok := store.AdminID()
	if !ok || id != "admin-1" {
		t.Fatalf("AdminID() = %q, %v; want admin-1", id, ok)
	}

	store.Logout(ctx)
	if _, ok := store.AdminID(); ok {
		t.Fatal("AdminID available after logout")
	}
}

func TestWatchPicksUpExternalClear(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := NewMemoryBackend()
	store := NewStore(backend)
	store.Login(ctx, validToken(t))

	go store.Watch(ctx, 10*time.Millisecond)

	// Simulate another process clearing the stored credential.
	backend.Clear(ctx)

	deadline := time.After(time.Second)
	for store.Authenticated() {
		select {
		case <-deadline:
			t.Fatal("watcher never picked up external clear")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
