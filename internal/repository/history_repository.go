// Package repository declares the storage ports used by the use case layer.
package repository

import (
	"context"

	"summary-api/internal/domain/entity"
)

// HistoryRepository stores processed results.
//
// Implementations must be safe for concurrent use and must assign IDs
// monotonically starting at 1, never reusing one.
type HistoryRepository interface {
	// Add assigns the next ID to result, stores it and returns the stored copy.
	Add(ctx context.Context, result *entity.StoredResult) (*entity.StoredResult, error)
	// List returns every stored result in insertion (ascending ID) order.
	// The returned values are copies; mutating them does not affect the store.
	List(ctx context.Context) ([]*entity.StoredResult, error)
	// Get returns the result with the given ID, or entity.ErrNotFound.
	Get(ctx context.Context, id int64) (*entity.StoredResult, error)
	// Count returns the number of stored results.
	Count(ctx context.Context) (int, error)
}
