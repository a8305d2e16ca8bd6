package summarizer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"summary-api/internal/resilience/circuitbreaker"
)

// NewOllamaClient creates a client for the Ollama server at host
// (e.g. http://localhost:11434). A trailing "/v1" used by the
// OpenAI-compatible endpoint is stripped because the native API lives at the root.
func NewOllamaClient(host string, httpClient *http.Client) (*api.Client, error) {
	base := strings.TrimSuffix(strings.TrimSuffix(host, "/"), "/v1")
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse ollama host %q: %w", host, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return api.NewClient(u, httpClient), nil
}

// Ollama summarizes text with a model served by a local Ollama server.
type Ollama struct {
	guard
	client *api.Client
	model  string
}

// NewOllama creates an Ollama summarizer.
func NewOllama(client *api.Client, model string, opts ...Option) *Ollama {
	return &Ollama{
		guard:  newGuard("ollama", circuitbreaker.OllamaAPIConfig(), opts),
		client: client,
		model:  model,
	}
}

// Summarize implements Summarizer.
func (o *Ollama) Summarize(ctx context.Context, text string) (string, error) {
	return o.summarize(ctx, text, o.complete)
}

func (o *Ollama) complete(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model: o.model,
		Messages: []api.Message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
		Stream: &stream,
	}

	var (
		content  strings.Builder
		received bool
	)
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		received = true
		content.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama api error: %w", err)
	}
	if !received {
		return "", fmt.Errorf("ollama api returned no message: %w", ErrEmptyResponse)
	}
	return content.String(), nil
}
