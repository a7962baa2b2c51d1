package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID assigns a correlation ID to every request that does not already
// carry one, and echoes it on the response. Error envelopes include it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
