package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeChecker struct {
	err error
}

func (c *fakeChecker) Ping(ctx context.Context) error {
	return c.err
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(nil)
	rec := httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body HealthResponse
	decodeBody(t, rec, &body)
	if body.Status != "ok" {
		t.Errorf("expected status ok, got %s", body.Status)
	}
}

func TestReadyz_Healthy(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&fakeChecker{})
	rec := httptest.NewRecorder()
	h.Readyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body HealthResponse
	decodeBody(t, rec, &body)
	if body.Checks["postgres"] != "ok" {
		t.Errorf("expected postgres ok, got %s", body.Checks["postgres"])
	}
}

func TestReadyz_StorageDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&fakeChecker{err: errors.New("connection refused")})
	rec := httptest.NewRecorder()
	h.Readyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var body HealthResponse
	decodeBody(t, rec, &body)
	if body.Status != "unhealthy" {
		t.Errorf("expected unhealthy, got %s", body.Status)
	}
}
