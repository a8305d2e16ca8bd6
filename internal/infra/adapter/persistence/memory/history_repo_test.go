package memory

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summary-api/internal/domain/entity"
)

func TestHistoryRepo_AddAssignsSequentialIDs(t *testing.T) {
	repo := NewHistoryRepo()
	ctx := context.Background()

	first, err := repo.Add(ctx, entity.NewStoredResult("one", "s1"))
	require.NoError(t, err)
	second, err := repo.Add(ctx, entity.NewStoredResult("two", "s2"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestHistoryRepo_AddDoesNotMutateInput(t *testing.T) {
	repo := NewHistoryRepo()
	in := entity.NewStoredResult("text", "summary")

	_, err := repo.Add(context.Background(), in)
	require.NoError(t, err)

	assert.Zero(t, in.ID)
}

func TestHistoryRepo_ListInsertionOrder(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := NewHistoryRepo()
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		_, err := repo.Add(ctx, entity.NewStoredResult(text, "sum "+text))
		require.NoError(t, err)
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)

	want := []*entity.StoredResult{
		{ID: 1, InputText: "a", Summary: "sum a", CreatedAt: fixed},
		{ID: 2, InputText: "b", Summary: "sum b", CreatedAt: fixed},
		{ID: 3, InputText: "c", Summary: "sum c", CreatedAt: fixed},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryRepo_ListEmpty(t *testing.T) {
	repo := NewHistoryRepo()

	got, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHistoryRepo_ListReturnsCopies(t *testing.T) {
	repo := NewHistoryRepo()
	ctx := context.Background()
	_, err := repo.Add(ctx, entity.NewStoredResult("text", "summary"))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Summary = "tampered"

	again, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "summary", again.Summary)
}

func TestHistoryRepo_Get(t *testing.T) {
	repo := NewHistoryRepo()
	ctx := context.Background()
	_, err := repo.Add(ctx, entity.NewStoredResult("text", "summary"))
	require.NoError(t, err)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "text", got.InputText)

	_, err = repo.Get(ctx, 2)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestHistoryRepo_CanceledContext(t *testing.T) {
	repo := NewHistoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Add(ctx, entity.NewStoredResult("text", "summary"))
	assert.ErrorIs(t, err, context.Canceled)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHistoryRepo_ConcurrentAddsYieldUniqueIDs(t *testing.T) {
	const workers = 64
	repo := NewHistoryRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan int64, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := repo.Add(ctx, entity.NewStoredResult("text", "summary"))
			if err != nil {
				t.Errorf("Add() error = %v", err)
				return
			}
			ids <- res.ID
		}()
	}
	wg.Wait()
	close(ids)

	got := make([]int64, 0, workers)
	for id := range ids {
		got = append(got, id)
	}
	want := make([]int64, workers)
	for i := range want {
		want[i] = int64(i + 1)
	}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b int64) bool { return a < b })); diff != "" {
		t.Errorf("assigned IDs mismatch (-want +got):\n%s", diff)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, workers)
	assert.True(t, sort.SliceIsSorted(list, func(i, j int) bool { return list[i].ID < list[j].ID }))
}
