package middleware

import (
	"net/http"

	"salesdash-backend/pkg/utils"
)

// SessionChecker reports whether a usable admin credential is stored.
type SessionChecker interface {
	Authenticated() bool
}

type AuthMiddleware struct {
	session SessionChecker
}

func NewAuthMiddleware(session SessionChecker) *AuthMiddleware {
	return &AuthMiddleware{session: session}
}

// Authenticate gates dashboard routes on the stored admin credential. The
// session store re-checks expiry itself, so an expired credential turns
// into a 401 here without any extra timer.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.session.Authenticated() {
			utils.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}
