package respond

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{
			name:         "map body",
			code:         http.StatusOK,
			data:         map[string]string{"status": "alive"},
			expectedBody: `{"status":"alive"}`,
		},
		{
			name:         "struct body",
			code:         http.StatusOK,
			data:         struct{ ID int64 `json:"id"` }{ID: 1},
			expectedBody: `{"id":1}`,
		},
		{
			name:         "nil body",
			code:         http.StatusNoContent,
			data:         nil,
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			JSON(rec, tt.code, tt.data)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestError_ReturnsMessageVerbatim(t *testing.T) {
	tests := []struct {
		name string
		code int
		err  error
		want string
	}{
		{
			name: "bad request",
			code: http.StatusBadRequest,
			err:  errors.New("Invalid input. 'text' field is required."),
			want: `{"error":"Invalid input. 'text' field is required."}`,
		},
		{
			name: "internal failure keeps wrapped message",
			code: http.StatusInternalServerError,
			err:  fmt.Errorf("summarize: %w", errors.New("openai api error: 429 rate limited")),
			want: `{"error":"summarize: openai api error: 429 rate limited"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			Error(rec, tt.code, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestError_NilIsNoop(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusInternalServerError, nil)

	assert.Zero(t, rec.Body.Len())
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	Message(rec, http.StatusInternalServerError, "internal error")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}
