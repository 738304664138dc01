package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/mkolosov/noteflow-srs/pkg/ctxutil"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	var fromCtx string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = ctxutil.RequestIDFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	got := rec.Header().Get("X-Request-Id")
	if got == "" {
		t.Fatal("response is missing X-Request-Id")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("generated id %q is not a UUID: %v", got, err)
	}
	if fromCtx != got {
		t.Errorf("context id %q differs from header id %q", fromCtx, got)
	}
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	t.Parallel()

	const incoming = "client-supplied-id"

	var fromCtx string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = ctxutil.RequestIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", incoming)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != incoming {
		t.Errorf("header id = %q, want %q", got, incoming)
	}
	if fromCtx != incoming {
		t.Errorf("context id = %q, want %q", fromCtx, incoming)
	}
}
