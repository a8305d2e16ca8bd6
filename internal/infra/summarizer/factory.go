package summarizer

import (
	"fmt"
	"log/slog"

	"summary-api/internal/config"
)

// New builds the provider selected by cfg.Provider.
func New(cfg config.SummarizerConfig) (Provider, error) {
	opts := []Option{WithTimeout(cfg.Timeout)}
	if !cfg.CircuitBreakerEnabled {
		opts = append(opts, WithCircuitBreaker(nil))
	}

	var (
		p     Provider
		model string
	)
	switch cfg.Provider {
	case config.ProviderOpenAI:
		model = cfg.OpenAI.Model
		p = NewOpenAI(NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL), model, opts...)
	case config.ProviderClaude:
		model = cfg.Claude.Model
		p = NewClaude(NewClaudeClient(cfg.Claude.APIKey, cfg.Claude.BaseURL), model, cfg.Claude.MaxTokens, opts...)
	case config.ProviderOllama:
		client, err := NewOllamaClient(cfg.Ollama.Host, nil)
		if err != nil {
			return nil, err
		}
		model = cfg.Ollama.Model
		p = NewOllama(client, model, opts...)
	case config.ProviderNoOp:
		p = NewNoOp()
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}

	slog.Info("Initialized summarizer",
		slog.String("provider", p.Name()),
		slog.String("model", model),
		slog.Duration("timeout", cfg.Timeout),
		slog.String("circuit_breaker", p.CircuitState()))

	return p, nil
}
