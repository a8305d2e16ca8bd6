package summarizer

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"summary-api/internal/resilience/circuitbreaker"
)

// NewOpenAIClient creates a go-openai client. A non-empty baseURL points the
// client at an OpenAI-compatible endpoint instead of api.openai.com.
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// OpenAI summarizes text with the OpenAI chat completion API.
type OpenAI struct {
	guard
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI summarizer using the given model (e.g. "gpt-4o-mini").
func NewOpenAI(client *openai.Client, model string, opts ...Option) *OpenAI {
	return &OpenAI{
		guard:  newGuard("openai", circuitbreaker.OpenAIAPIConfig(), opts),
		client: client,
		model:  model,
	}
}

// Summarize implements Summarizer.
func (o *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	return o.summarize(ctx, text, o.complete)
}

// complete requests a single completion and returns the first choice.
func (o *OpenAI) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		N:     1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	// choices が空の場合の配列アクセス防止
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned no choices: %w", ErrEmptyResponse)
	}

	slog.DebugContext(ctx, "openai usage",
		slog.String("model", resp.Model),
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens))

	// refusal や tool call は content が null になるため要約として扱わない
	msg := resp.Choices[0].Message
	if msg.Refusal != "" {
		return "", fmt.Errorf("openai api refused: %s: %w", msg.Refusal, ErrEmptyResponse)
	}
	if len(msg.ToolCalls) > 0 {
		return "", fmt.Errorf("openai api returned tool calls instead of content: %w", ErrEmptyResponse)
	}

	return msg.Content, nil
}
