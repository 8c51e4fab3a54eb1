package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const requestIDKey contextKey = "request_id"

// RequestLogMiddleware assigns each request an ID and logs the outcome.
// It is the outermost wrapper on every route.
type RequestLogMiddleware struct{}

// NewRequestLogMiddleware creates a new request logging middleware
func NewRequestLogMiddleware() *RequestLogMiddleware {
	return &RequestLogMiddleware{}
}

// Wrap wraps an HTTP handler with request ID assignment and logging
func (m *RequestLogMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)

		w.Header().Set("X-Request-ID", requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r.WithContext(ctx))

		log.Printf("[HTTP] %s %s -> %d (%s) request_id=%s",
			r.Method, r.URL.Path, recorder.status, time.Since(start), requestID)
	})
}

// GetRequestID extracts the request ID from a request context.
// Returns an empty string if no ID was assigned.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
