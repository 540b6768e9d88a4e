package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelease/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func TestRoot_ServesBanner(t *testing.T) {
	router := httprouter.New()
	NewStatusHandler(nil, testLogger()).RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("expected plain text content type, got %q", ct)
	}
	if rec.Body.String() != Banner {
		t.Errorf("expected banner body, got %q", rec.Body.String())
	}
}

func TestHealth_ReportsOK(t *testing.T) {
	router := httprouter.New()
	NewStatusHandler(nil, testLogger()).RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
}
