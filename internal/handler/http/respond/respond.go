// Package respond writes JSON response bodies and maps errors to the
// {"error": "..."} envelope used by every endpoint.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the envelope of every error response.
type ErrorBody struct {
	Error string `json:"error" example:"Invalid input. 'text' field is required."`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// ヘッダー送信済みのためログのみ
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error writes {"error": err.Error()} with the given status code. The
// message is returned to the client unchanged; callers log the failure with
// SanitizeError so that credentials never reach the logs.
func Error(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	JSON(w, code, ErrorBody{Error: err.Error()})
}

// Message writes {"error": msg} without logging. It is used where the client
// must not see the underlying cause, e.g. recovered panics.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Error: msg})
}
