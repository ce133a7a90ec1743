package middleware

import (
	"net/http"
	"time"

	"clubraise/pkg/requestcontext"
)

// RequestTime captures the current time at the start of the request so every
// operation within it sees the same "now". Domain timestamps and audit
// events stay consistent even when a handler spans several writes.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
