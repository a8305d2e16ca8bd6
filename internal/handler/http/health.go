// Package http provides the HTTP middleware, health endpoints and metrics
// shared by the summary API.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"summary-api/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// HistoryCounter reports how many results the history holds.
type HistoryCounter interface {
	Count(ctx context.Context) (int, error)
}

// ProviderStatus describes the configured summarization provider.
type ProviderStatus interface {
	Name() string
	CircuitState() string
}

// HealthHandler reports history size and summarizer availability.
// It answers 503 while the summarizer circuit breaker is open.
type HealthHandler struct {
	History    HistoryCounter
	Summarizer ProviderStatus
	Version    string
}

// ServeHTTP ヘルスチェック
// @Summary      ヘルスチェック
// @Description  履歴ストアと要約プロバイダの状態を返します
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{
		"history":    h.checkHistory(ctx),
		"summarizer": h.checkSummarizer(),
	}

	status := "healthy"
	statusCode := http.StatusOK
	for _, c := range checks {
		if c.Status != "healthy" {
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkHistory(ctx context.Context) CheckStatus {
	if h.History == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	n, err := h.History.Count(ctx)
	if err != nil {
		slog.WarnContext(ctx, "health: history count failed", slog.String("error", err.Error()))
		return CheckStatus{Status: "unhealthy", Message: err.Error()}
	}
	return CheckStatus{Status: "healthy", Details: map[string]any{"entries": n}}
}

func (h *HealthHandler) checkSummarizer() CheckStatus {
	if h.Summarizer == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	state := h.Summarizer.CircuitState()
	details := map[string]any{
		"provider":        h.Summarizer.Name(),
		"circuit_breaker": state,
	}
	if state == "open" {
		return CheckStatus{Status: "unhealthy", Message: "circuit breaker open", Details: details}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// LiveHandler answers liveness probes; it always returns 200 while the
// process can serve requests.
type LiveHandler struct{}

// ServeHTTP Liveness probe
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /live [get]
func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
