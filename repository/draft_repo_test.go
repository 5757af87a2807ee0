package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/models"
)

func TestMemoryDraftRepoLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDraftRepo(time.Hour)

	d := &models.Draft{Order: order(0, "010125-01", "A")}
	require.NoError(t, repo.Create(ctx, d))
	require.NotEqual(t, uuid.Nil, d.ID)

	got, err := repo.Get(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	got.Order.Client = "changed"

	again, err := repo.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Order.Client, "drafts are copied out")

	require.NoError(t, repo.Update(ctx, got))
	again, err = repo.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", again.Order.Client)

	ok, err := repo.Delete(ctx, d.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Delete(ctx, d.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryDraftRepoUpdateUnknown(t *testing.T) {
	err := NewMemoryDraftRepo(0).Update(context.Background(), &models.Draft{ID: uuid.New()})
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestMemoryDraftRepoExpiry(t *testing.T) {
	ctx := context.Background()
	now := today
	repo := NewMemoryDraftRepo(time.Hour)
	repo.now = func() time.Time { return now }

	d := &models.Draft{}
	require.NoError(t, repo.Create(ctx, d))

	now = now.Add(2 * time.Hour)
	got, err := repo.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryDraftRepoSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDraftRepo(time.Hour)
	a := &models.Draft{Order: order(0, "010125-01", "A")}
	b := &models.Draft{Order: order(0, "010125-01", "B")}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	ga, _ := repo.Get(ctx, a.ID)
	gb, _ := repo.Get(ctx, b.ID)
	assert.Equal(t, "A", ga.Order.Client)
	assert.Equal(t, "B", gb.Order.Client)
}
