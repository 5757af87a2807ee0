package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/cache"
	"fueldelivery/models"
)

func TestCachedOrderRepoServesListFromCache(t *testing.T) {
	ctx := context.Background()
	store := &memTable{rows: []models.DeliveryOrder{order(1, "010125-01", "A")}}
	repo := NewCachedOrderRepo(NewSnapshotOrderRepo(store, nil), cache.NewMemoryCache(), time.Minute)

	for i := 0; i < 3; i++ {
		rows, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
	}
	got, err := repo.Get(ctx, "010125-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2025-01-01", got.Date.String())
	assert.Equal(t, 1, store.reads)
}

func TestCachedOrderRepoWritesInvalidate(t *testing.T) {
	ctx := context.Background()
	store := &memTable{rows: []models.DeliveryOrder{order(1, "010125-01", "A")}}
	repo := NewCachedOrderRepo(NewSnapshotOrderRepo(store, nil), cache.NewMemoryCache(), time.Minute)

	_, err := repo.List(ctx)
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, order(0, "010125-02", "B"))
	require.NoError(t, err)
	rows, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "a save is visible on the next list")

	ok, err := repo.Delete(ctx, "010125-01")
	require.NoError(t, err)
	assert.True(t, ok)
	rows, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCachedOrderRepoDoesNotCacheFailures(t *testing.T) {
	ctx := context.Background()
	store := &memTable{readErr: models.StoreError("read", assert.AnError)}
	repo := NewCachedOrderRepo(NewSnapshotOrderRepo(store, nil), cache.NewMemoryCache(), time.Minute)

	_, err := repo.List(ctx)
	require.Error(t, err)

	store.readErr = nil
	store.rows = []models.DeliveryOrder{order(1, "010125-01", "A")}
	rows, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCachedOrderRepoKeepsInvalidValues(t *testing.T) {
	ctx := context.Background()
	bad := order(1, "010125-01", "A")
	bad.Date = models.ParseDate("31/31/2025")
	bad.Qty = models.ParseQuantity("sepuluh")
	store := &memTable{rows: []models.DeliveryOrder{bad}}
	repo := NewCachedOrderRepo(NewSnapshotOrderRepo(store, nil), cache.NewMemoryCache(), time.Minute)

	_, err := repo.List(ctx)
	require.NoError(t, err)
	rows, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Invalid, rows[0].Date.State)
	assert.Equal(t, "31/31/2025", rows[0].Date.Raw)
	assert.Equal(t, models.Invalid, rows[0].Qty.State)
}
