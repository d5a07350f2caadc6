package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"salesdash-backend/pkg/utils"
)

// PanicRecovery converts a handler panic into a 500 JSON error, so a
// single bad request never takes the gateway down.
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[Recovery] panic on %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
				utils.Error(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
