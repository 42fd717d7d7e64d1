package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"NUTRIPLAN_BACK-END/internal/logger"
)

const requestIDKey contextKey = "request_id"

// RequestIDHeader is the header a caller may use to supply its own id
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, echoes it back in the response
// headers and logs the request line.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		logger.Info("request", "id", id, "method", r.Method, "path", r.URL.Path)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request id set by RequestID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
