package repository

import (
	"context"

	"fueldelivery/models"
)

// OrderRepository is the DO table keyed by DO number.
type OrderRepository interface {
	List(ctx context.Context) ([]models.DeliveryOrder, error)
	// Get returns nil, nil when the DO number is not in the table.
	Get(ctx context.Context, doNumber string) (*models.DeliveryOrder, error)
	Upsert(ctx context.Context, order models.DeliveryOrder) (models.UpsertResult, error)
	// Delete reports false, and writes nothing, when the DO number is absent.
	Delete(ctx context.Context, doNumber string) (bool, error)
}

// TableStore reads and rewrites a whole order table at once.
type TableStore interface {
	ReadAll(ctx context.Context) ([]models.DeliveryOrder, error)
	ReplaceAll(ctx context.Context, orders []models.DeliveryOrder) error
}

func findOrder(orders []models.DeliveryOrder, doNumber string) *models.DeliveryOrder {
	for i := range orders {
		if orders[i].DONumber == doNumber {
			o := orders[i]
			return &o
		}
	}
	return nil
}

// UnavailableOrderRepo fails every call with the same error. It stands in
// when the configured store cannot be opened so the rest of the API still
// serves.
type UnavailableOrderRepo struct {
	Err error
}

func (r UnavailableOrderRepo) List(context.Context) ([]models.DeliveryOrder, error) {
	return nil, r.Err
}

func (r UnavailableOrderRepo) Get(context.Context, string) (*models.DeliveryOrder, error) {
	return nil, r.Err
}

func (r UnavailableOrderRepo) Upsert(context.Context, models.DeliveryOrder) (models.UpsertResult, error) {
	return models.UpsertResult{}, r.Err
}

func (r UnavailableOrderRepo) Delete(context.Context, string) (bool, error) {
	return false, r.Err
}
