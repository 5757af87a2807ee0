package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"fueldelivery/cache"
	"fueldelivery/models"
)

const ordersCacheKey = "orders:all"

// CachedOrderRepo serves List and Get from a cached copy of the table for
// TTL. Writes go straight through and drop the cached copy before returning.
type CachedOrderRepo struct {
	Repo  OrderRepository
	Cache cache.Cache
	TTL   time.Duration
}

func NewCachedOrderRepo(repo OrderRepository, c cache.Cache, ttl time.Duration) *CachedOrderRepo {
	return &CachedOrderRepo{Repo: repo, Cache: c, TTL: ttl}
}

func (r *CachedOrderRepo) List(ctx context.Context) ([]models.DeliveryOrder, error) {
	var orders []models.DeliveryOrder
	err := r.Cache.Get(ctx, ordersCacheKey, &orders)
	if err == nil {
		return orders, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Msg("order cache read failed")
	}

	orders, err = r.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Set(ctx, ordersCacheKey, orders, r.TTL); err != nil {
		log.Warn().Err(err).Msg("order cache write failed")
	}
	return orders, nil
}

func (r *CachedOrderRepo) Get(ctx context.Context, doNumber string) (*models.DeliveryOrder, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return findOrder(orders, doNumber), nil
}

func (r *CachedOrderRepo) Upsert(ctx context.Context, order models.DeliveryOrder) (models.UpsertResult, error) {
	res, err := r.Repo.Upsert(ctx, order)
	r.Invalidate(ctx)
	return res, err
}

func (r *CachedOrderRepo) Delete(ctx context.Context, doNumber string) (bool, error) {
	ok, err := r.Repo.Delete(ctx, doNumber)
	r.Invalidate(ctx)
	return ok, err
}

// Invalidate drops the cached table.
func (r *CachedOrderRepo) Invalidate(ctx context.Context) {
	if err := r.Cache.Delete(ctx, ordersCacheKey); err != nil {
		log.Warn().Err(err).Msg("order cache invalidate failed")
	}
}
