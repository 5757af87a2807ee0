package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fueldelivery/models"
)

func newGormRepo(t *testing.T) *GormOrderRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "orders.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	repo, err := NewGormOrderRepo(db)
	require.NoError(t, err)
	return repo
}

func TestGormOrderRepoUpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newGormRepo(t)

	a := order(0, "010125-01", "A")
	a.Qty = models.NewQuantity(1234)
	res, err := repo.Upsert(ctx, a)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, int64(1), res.Order.No)

	res, err = repo.Upsert(ctx, order(0, "010125-02", "B"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Order.No)

	edit := order(0, "010125-01", "A2")
	edit.Qty = models.ParseQuantity("x")
	res, err = repo.Upsert(ctx, edit)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, int64(1), res.Order.No)

	got, err := repo.Get(ctx, "010125-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A2", got.Client)
	assert.Equal(t, models.Absent, got.Qty.State, "invalid quantities are stored as NULL")
	assert.Equal(t, "2025-01-01", got.Date.String())

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "010125-01", rows[0].DONumber)

	ok, err := repo.Delete(ctx, "010125-02")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Delete(ctx, "010125-02")
	require.NoError(t, err)
	assert.False(t, ok)

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
