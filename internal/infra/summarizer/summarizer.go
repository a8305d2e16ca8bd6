// Package summarizer produces short summaries of text through a chat
// completion provider (OpenAI, Anthropic Claude or a local Ollama server).
//
// Every provider sends the same two-turn conversation (SystemPrompt and
// BuildPrompt) and shares one call path that applies the per-call timeout,
// the optional circuit breaker, structured logging and metrics.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"summary-api/internal/resilience/circuitbreaker"
	"summary-api/internal/utils/text"
)

// Summarizer returns a summary of the given text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Provider is a Summarizer that can describe itself for health reporting.
type Provider interface {
	Summarizer
	// Name returns the provider identifier, e.g. "openai".
	Name() string
	// CircuitState returns the circuit breaker state ("closed", "half-open",
	// "open") or CircuitDisabled.
	CircuitState() string
}

// CircuitDisabled is reported by providers running without a circuit breaker.
const CircuitDisabled = "disabled"

// DefaultTimeout bounds a single provider call unless overridden.
const DefaultTimeout = 60 * time.Second

var (
	// ErrEmptyResponse is returned when the provider answered without any
	// completion to use as the summary.
	ErrEmptyResponse = errors.New("empty response")

	// ErrCircuitOpen is returned while the circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// Option customizes a provider.
type Option func(*guard)

// WithTimeout sets the per-call timeout. Zero disables it; the request
// context still applies.
func WithTimeout(d time.Duration) Option {
	return func(g *guard) { g.timeout = d }
}

// WithCircuitBreaker replaces the provider's default circuit breaker.
// Passing nil disables the breaker.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(g *guard) { g.breaker = cb }
}

// WithMetrics replaces the Prometheus recorder, mainly for tests.
func WithMetrics(m SummaryMetricsRecorder) Option {
	return func(g *guard) { g.metrics = m }
}

// completeFunc performs one vendor API call for an already built prompt.
type completeFunc func(ctx context.Context, prompt string) (string, error)

// guard is the call path shared by all remote providers.
type guard struct {
	name    string
	timeout time.Duration
	breaker *circuitbreaker.CircuitBreaker
	metrics SummaryMetricsRecorder
}

func newGuard(name string, breaker circuitbreaker.Config, opts []Option) guard {
	g := guard{
		name:    name,
		timeout: DefaultTimeout,
		breaker: circuitbreaker.New(breaker),
		metrics: NewPrometheusSummaryMetrics(),
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Name implements Provider.
func (g *guard) Name() string { return g.name }

// CircuitState implements Provider.
func (g *guard) CircuitState() string {
	if g.breaker == nil {
		return CircuitDisabled
	}
	return g.breaker.State().String()
}

// summarize runs complete under the timeout and circuit breaker.
// No retry is attempted; a failed call is returned to the caller as is.
func (g *guard) summarize(ctx context.Context, inputText string, complete completeFunc) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	if g.breaker == nil {
		return g.observe(ctx, inputText, complete)
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.observe(ctx, inputText, complete)
	})
	if err != nil {
		if circuitbreaker.IsOpenStateError(err) {
			slog.WarnContext(ctx, "summarizer circuit breaker open, request rejected",
				slog.String("provider", g.name),
				slog.String("state", g.breaker.State().String()))
			return "", fmt.Errorf("%s api unavailable: %w", g.name, ErrCircuitOpen)
		}
		return "", err
	}
	return result.(string), nil
}

// observe performs the call with logging and metrics around it.
func (g *guard) observe(ctx context.Context, inputText string, complete completeFunc) (string, error) {
	slog.InfoContext(ctx, "Starting summarization",
		slog.String("provider", g.name),
		slog.Int("input_words", text.CountWords(inputText)),
		slog.Int("input_length", text.CountRunes(inputText)))

	start := time.Now()
	summary, err := complete(ctx, BuildPrompt(inputText))
	duration := time.Since(start)
	g.metrics.RecordDuration(g.name, duration)

	if err != nil {
		slog.ErrorContext(ctx, "Summarization failed",
			slog.String("provider", g.name),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", err
	}

	words := text.CountWords(summary)
	withinLimit := words < WordLimit

	slog.InfoContext(ctx, "Summarization completed",
		slog.String("provider", g.name),
		slog.Int("summary_words", words),
		slog.Int("word_limit", WordLimit),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	g.metrics.RecordWordCount(words)
	if !withinLimit {
		// soft limit: 記録のみ、拒否しない
		slog.WarnContext(ctx, "Summary exceeds word limit",
			slog.String("provider", g.name),
			slog.Int("summary_words", words),
			slog.Int("limit", WordLimit))
		g.metrics.RecordLimitExceeded()
	}

	return summary, nil
}
