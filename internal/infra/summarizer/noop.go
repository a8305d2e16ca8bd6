package summarizer

import (
	"context"

	"summary-api/internal/utils/text"
)

// NoOp is a summarizer that needs no external service. It returns the first
// WordLimit-1 words of the input, which keeps the service usable for local
// development without an API key.
type NoOp struct{}

// NewNoOp creates a new NoOp summarizer.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Summarize returns the leading words of text.
func (n *NoOp) Summarize(ctx context.Context, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return text.FirstWords(input, WordLimit-1), nil
}

// Name implements Provider.
func (n *NoOp) Name() string { return "noop" }

// CircuitState implements Provider.
func (n *NoOp) CircuitState() string { return CircuitDisabled }
