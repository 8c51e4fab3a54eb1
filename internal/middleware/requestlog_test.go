package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLogMiddleware_AssignsRequestID(t *testing.T) {
	m := NewRequestLogMiddleware()

	var seenID string
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/items", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if seenID == "" {
		t.Error("Handler should see a request ID in its context")
	}
	if got := w.Header().Get("X-Request-ID"); got != seenID {
		t.Errorf("X-Request-ID header %q should match context ID %q", got, seenID)
	}
}

func TestRequestLogMiddleware_UniquePerRequest(t *testing.T) {
	m := NewRequestLogMiddleware()
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/items", nil))
		ids[w.Header().Get("X-Request-ID")] = true
	}

	if len(ids) != 5 {
		t.Errorf("Expected 5 unique request IDs, got %d", len(ids))
	}
}

func TestGetRequestID_MissingReturnsEmpty(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := GetRequestID(req.Context()); id != "" {
		t.Errorf("Expected empty request ID, got %q", id)
	}
}
