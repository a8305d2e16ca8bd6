package summarizer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"summary-api/internal/resilience/circuitbreaker"
)

// NewClaudeClient creates an Anthropic client with the SDK's automatic
// retries turned off; failed calls surface immediately.
func NewClaudeClient(apiKey, baseURL string) anthropic.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return anthropic.NewClient(opts...)
}

// Claude summarizes text with the Anthropic Messages API.
type Claude struct {
	guard
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewClaude creates a Claude summarizer.
func NewClaude(client anthropic.Client, model string, maxTokens int, opts ...Option) *Claude {
	return &Claude{
		guard:     newGuard("claude", circuitbreaker.ClaudeAPIConfig(), opts),
		client:    client,
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

// Summarize implements Summarizer.
func (c *Claude) Summarize(ctx context.Context, text string) (string, error) {
	return c.summarize(ctx, text, c.complete)
}

func (c *Claude) complete(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: SystemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude api error: %w", err)
	}

	slog.DebugContext(ctx, "claude usage",
		slog.String("model", string(message.Model)),
		slog.Int64("input_tokens", message.Usage.InputTokens),
		slog.Int64("output_tokens", message.Usage.OutputTokens))

	// 最初の text ブロックを要約として使う
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			return tb.Text, nil
		}
	}
	return "", fmt.Errorf("claude api returned no text content: %w", ErrEmptyResponse)
}
