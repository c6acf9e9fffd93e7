// Package middleware provides HTTP middleware for the web server.
package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/velvetbloom/catalog/internal/logging"
)

// RequestIDHeader is the header used to propagate request IDs.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns a unique ID to each request. An incoming
// X-Request-ID is honored so IDs survive proxy hops; otherwise a new
// UUID is generated. The ID is stored in the request context for log
// correlation and echoed in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
