package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter struct {
	n   int
	err error
}

func (s stubCounter) Count(context.Context) (int, error) { return s.n, s.err }

type stubProvider struct{ name, state string }

func (s stubProvider) Name() string         { return s.name }
func (s stubProvider) CircuitState() string { return s.state }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		handler    *HealthHandler
		wantStatus int
		wantBody   string
	}{
		{
			name: "healthy",
			handler: &HealthHandler{
				History:    stubCounter{n: 3},
				Summarizer: stubProvider{name: "openai", state: "closed"},
				Version:    "1.2.3",
			},
			wantStatus: http.StatusOK,
			wantBody:   "healthy",
		},
		{
			name: "breaker half-open is still healthy",
			handler: &HealthHandler{
				History:    stubCounter{},
				Summarizer: stubProvider{name: "claude", state: "half-open"},
			},
			wantStatus: http.StatusOK,
			wantBody:   "healthy",
		},
		{
			name: "breaker open",
			handler: &HealthHandler{
				History:    stubCounter{},
				Summarizer: stubProvider{name: "openai", state: "open"},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "unhealthy",
		},
		{
			name: "history error",
			handler: &HealthHandler{
				History:    stubCounter{err: errors.New("context canceled")},
				Summarizer: stubProvider{name: "noop", state: "disabled"},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "unhealthy",
		},
		{
			name:       "not configured",
			handler:    &HealthHandler{},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "no-cache, no-store, must-revalidate", rr.Header().Get("Cache-Control"))

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantBody, resp.Status)
			assert.NotEmpty(t, resp.Timestamp)
			assert.Contains(t, resp.Checks, "history")
			assert.Contains(t, resp.Checks, "summarizer")
		})
	}
}

func TestHealthHandler_Details(t *testing.T) {
	h := &HealthHandler{
		History:    stubCounter{n: 7},
		Summarizer: stubProvider{name: "ollama", state: "closed"},
		Version:    "v0.1.0",
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "v0.1.0", resp.Version)
	assert.EqualValues(t, 7, resp.Checks["history"].Details["entries"])
	assert.Equal(t, "ollama", resp.Checks["summarizer"].Details["provider"])
	assert.Equal(t, "closed", resp.Checks["summarizer"].Details["circuit_breaker"])
}

func TestLiveHandler_ServeHTTP(t *testing.T) {
	rr := httptest.NewRecorder()
	LiveHandler{}.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"alive"}`, rr.Body.String())
}
