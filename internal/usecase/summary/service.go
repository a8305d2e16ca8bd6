package summary

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"summary-api/internal/domain/entity"
	"summary-api/internal/observability/logging"
	"summary-api/internal/observability/metrics"
	"summary-api/internal/observability/tracing"
	"summary-api/internal/repository"
)

// Summarizer produces a summary of text. Implementations live in
// internal/infra/summarizer.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Service provides the summary use cases.
type Service struct {
	Summarizer Summarizer
	Repo       repository.HistoryRepository
}

// Process summarizes text and records the result. The stored summary is the
// summarizer output trimmed of surrounding whitespace. Nothing is stored when
// summarization fails.
func (s *Service) Process(ctx context.Context, text string) (*entity.StoredResult, error) {
	if s.Summarizer == nil || s.Repo == nil {
		return nil, ErrNotConfigured
	}

	ctx, span := tracing.GetTracer().Start(ctx, "summary.Process")
	defer span.End()

	raw, err := s.Summarizer.Summarize(ctx, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "summarize failed")
		metrics.RecordSummaryResult(false)
		return nil, fmt.Errorf("summarize: %w", err)
	}

	saved, err := s.Repo.Add(ctx, entity.NewStoredResult(text, raw))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failed")
		metrics.RecordSummaryResult(false)
		return nil, fmt.Errorf("store result: %w", err)
	}
	span.SetAttributes(attribute.Int64("summary.id", saved.ID))

	metrics.RecordSummaryResult(true)
	if n, err := s.Repo.Count(ctx); err == nil {
		metrics.UpdateHistoryEntries(n)
	}

	logging.WithRequestID(ctx, slog.Default()).InfoContext(ctx, "summary stored",
		slog.Int64("id", saved.ID),
		slog.Int("input_length", len(saved.InputText)),
		slog.Int("summary_length", len(saved.Summary)))

	return saved, nil
}

// History returns every stored result in ascending id order.
func (s *Service) History(ctx context.Context) ([]*entity.StoredResult, error) {
	if s.Repo == nil {
		return nil, ErrNotConfigured
	}
	results, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return results, nil
}

// Count returns the number of stored results.
func (s *Service) Count(ctx context.Context) (int, error) {
	if s.Repo == nil {
		return 0, ErrNotConfigured
	}
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return n, nil
}
