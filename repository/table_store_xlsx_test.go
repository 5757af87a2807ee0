package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/models"
)

func TestXLSXTableStoreMissingFileIsEmpty(t *testing.T) {
	store := NewXLSXTableStore(filepath.Join(t.TempDir(), "dbase.xlsx"), "")
	rows, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestXLSXTableStoreBacksSnapshotRepo(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "dbase.xlsx")
	repo := NewSnapshotOrderRepo(NewXLSXTableStore(path, "Sheet1"), nil)

	first := order(0, "010125-01", "PT. Satu")
	first.Qty = models.NewQuantity(16000)
	_, err := repo.Upsert(ctx, first)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, order(0, "010125-02", "PT. Dua"))
	require.NoError(t, err)

	edit := order(0, "010125-01", "PT. Satu Baru")
	res, err := repo.Upsert(ctx, edit)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Order.No)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "010125-02", rows[0].DONumber)
	assert.Equal(t, "PT. Satu Baru", rows[1].Client)
	assert.Equal(t, "2025-01-01", rows[1].Date.String())
	assert.Equal(t, models.Present, rows[1].Qty.State)

	ok, err := repo.Delete(ctx, "010125-02")
	require.NoError(t, err)
	assert.True(t, ok)
	rows, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
