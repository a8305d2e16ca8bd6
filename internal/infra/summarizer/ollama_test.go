package summarizer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"summary-api/internal/infra/summarizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOllama(t *testing.T, hostSuffix string, handler http.HandlerFunc) *summarizer.Ollama {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := summarizer.NewOllamaClient(srv.URL+hostSuffix, srv.Client())
	require.NoError(t, err)
	return summarizer.NewOllama(client, "llama3.2", summarizer.WithMetrics(&stubMetrics{}))
}

func TestOllama_Summarize(t *testing.T) {
	for _, suffix := range []string{"", "/", "/v1"} {
		t.Run("host suffix "+suffix, func(t *testing.T) {
			var got struct {
				Model    string `json:"model"`
				Stream   *bool  `json:"stream"`
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			s := newOllama(t, suffix, func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"model":"llama3.2","created_at":"2025-01-01T00:00:00Z","message":{"role":"assistant","content":"A short summary."},"done":true}` + "\n"))
			})

			summary, err := s.Summarize(context.Background(), "Long text to summarize.")

			require.NoError(t, err)
			assert.Equal(t, "A short summary.", summary)
			assert.Equal(t, "llama3.2", got.Model)
			require.NotNil(t, got.Stream)
			assert.False(t, *got.Stream)
			require.Len(t, got.Messages, 2)
			assert.Equal(t, summarizer.SystemPrompt, got.Messages[0].Content)
			assert.Equal(t, summarizer.BuildPrompt("Long text to summarize."), got.Messages[1].Content)
		})
	}
}

func TestOllama_Summarize_ServerError(t *testing.T) {
	s := newOllama(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model \"llama3.2\" not found, try pulling it first"}`))
	})

	_, err := s.Summarize(context.Background(), "text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama api error")
	assert.Contains(t, err.Error(), "not found")
}

func TestNewOllamaClient_InvalidHost(t *testing.T) {
	_, err := summarizer.NewOllamaClient("http://[::1", nil)
	assert.Error(t, err)
}
