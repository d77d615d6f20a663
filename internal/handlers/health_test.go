package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Mock health checker for testing
type mockHealthChecker struct {
	healthy bool
	err     error
}

func (m *mockHealthChecker) Health(ctx context.Context) error {
	if !m.healthy {
		return m.err
	}
	return nil
}

func TestHealthHandler_Health_RedisHealthy(t *testing.T) {
	handler := NewHealthHandler(&mockHealthChecker{healthy: true})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %q", response.Status)
	}
	if response.Checks["redis"] != "healthy" {
		t.Errorf("expected redis 'healthy', got %q", response.Checks["redis"])
	}
	if response.Checks["engine"] != "healthy" {
		t.Errorf("expected engine 'healthy', got %q", response.Checks["engine"])
	}
	if response.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestHealthHandler_Health_RedisDisabled(t *testing.T) {
	handler := NewHealthHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Checks["redis"] != "disabled" {
		t.Errorf("expected redis 'disabled', got %q", response.Checks["redis"])
	}
}

func TestHealthHandler_Health_RedisUnhealthy(t *testing.T) {
	handler := NewHealthHandler(&mockHealthChecker{healthy: false, err: errors.New("connection timeout")})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler.Health(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rr.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Status != "unhealthy" {
		t.Errorf("expected status 'unhealthy', got %q", response.Status)
	}
	if response.Checks["redis"] != "unhealthy: connection timeout" {
		t.Errorf("unexpected redis check %q", response.Checks["redis"])
	}
}

func TestHealthHandler_Health_ContentType(t *testing.T) {
	handler := NewHealthHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler.Health(rr, req)

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type: application/json, got %q", ct)
	}
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name   string
		redis  HealthChecker
		status int
		body   string
	}{
		{"no redis", nil, http.StatusOK, "ready"},
		{"redis healthy", &mockHealthChecker{healthy: true}, http.StatusOK, "ready"},
		{"redis down", &mockHealthChecker{healthy: false, err: errors.New("error")}, http.StatusServiceUnavailable, "not ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.redis)

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			rr := httptest.NewRecorder()

			handler.Ready(rr, req)

			if rr.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, rr.Code)
			}
			if rr.Body.String() != tt.body {
				t.Errorf("expected body %q, got %q", tt.body, rr.Body.String())
			}
		})
	}
}

func TestHealthHandler_Live(t *testing.T) {
	handler := NewHealthHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rr := httptest.NewRecorder()

	handler.Live(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if rr.Body.String() != "alive" {
		t.Errorf("expected body 'alive', got %q", rr.Body.String())
	}
}
