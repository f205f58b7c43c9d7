package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	first, err := repo.SaveEmployee(ctx, testEmployee(0))
	require.NoError(t, err)
	second, err := repo.SaveEmployee(ctx, testEmployee(0))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	first.Location = "Paris"
	_, err = repo.SaveEmployee(ctx, first)
	require.NoError(t, err)

	got, err := repo.GetEmployeeByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	require.NoError(t, repo.DeleteEmployee(ctx, first.ID))

	_, err = repo.GetEmployeeByID(ctx, first.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	employees, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Employee{second}, employees)

	// identifiers of deleted rows are not handed out again
	third, err := repo.SaveEmployee(ctx, testEmployee(0))
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

func TestMemoryRepository_Missing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	_, err := repo.GetEmployeeByID(ctx, 99999)
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.SaveEmployee(ctx, testEmployee(5))
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, repo.DeleteEmployee(ctx, 5), repository.ErrNotFound)

	employees, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)

	require.NoError(t, repo.Ping(ctx))
}

func TestMemoryRepository_ConcurrentInsertsGetUniqueIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	const workers = 50
	ids := make(chan int, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			saved, err := repo.SaveEmployee(ctx, testEmployee(0))
			assert.NoError(t, err)
			ids <- saved.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, workers)
	for id := range ids {
		assert.Positive(t, id)
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
