// Package memory provides process-local implementations of repository interfaces.
// Nothing stored here survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"summary-api/internal/domain/entity"
	"summary-api/internal/repository"
)

// HistoryRepo implements the HistoryRepository interface in memory.
// A single RWMutex guards the ID counter and both indexes so that ID
// assignment and insertion happen atomically.
type HistoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	order  []*entity.StoredResult
	byID   map[int64]*entity.StoredResult
	now    func() time.Time
}

// NewHistoryRepo creates an empty in-memory history repository.
func NewHistoryRepo() *HistoryRepo {
	return &HistoryRepo{
		nextID: 1,
		byID:   make(map[int64]*entity.StoredResult),
		now:    time.Now,
	}
}

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// Add stores a copy of result under the next sequential ID.
func (r *HistoryRepo) Add(ctx context.Context, result *entity.StoredResult) (*entity.StoredResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := *result

	r.mu.Lock()
	defer r.mu.Unlock()

	stored.ID = r.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now()
	}
	r.nextID++

	r.order = append(r.order, &stored)
	r.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

// List returns copies of all stored results in ascending ID order.
func (r *HistoryRepo) List(ctx context.Context) ([]*entity.StoredResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.StoredResult, 0, len(r.order))
	for _, res := range r.order {
		c := *res
		out = append(out, &c)
	}
	return out, nil
}

// Get returns a copy of the result with the given ID.
func (r *HistoryRepo) Get(ctx context.Context, id int64) (*entity.StoredResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	c := *res
	return &c, nil
}

// Count returns the number of stored results.
func (r *HistoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}
