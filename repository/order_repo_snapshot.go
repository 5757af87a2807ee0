package repository

import (
	"context"

	"github.com/rs/zerolog/log"

	"fueldelivery/models"
)

// SnapshotOrderRepo implements OrderRepository over a TableStore by reading
// the whole table, editing it in memory and writing it back. There is no
// locking: concurrent writers lose updates, last writer wins.
type SnapshotOrderRepo struct {
	Store TableStore
	// Mirror, when set, receives a copy of the table after every successful
	// write. Its failures are logged only.
	Mirror TableStore
}

func NewSnapshotOrderRepo(store, mirror TableStore) *SnapshotOrderRepo {
	return &SnapshotOrderRepo{Store: store, Mirror: mirror}
}

func (r *SnapshotOrderRepo) List(ctx context.Context) ([]models.DeliveryOrder, error) {
	return r.Store.ReadAll(ctx)
}

func (r *SnapshotOrderRepo) Get(ctx context.Context, doNumber string) (*models.DeliveryOrder, error) {
	orders, err := r.Store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return findOrder(orders, doNumber), nil
}

// Upsert replaces every row carrying the same DO number with order, keeping
// the first replaced row's No. New rows get max(No)+1.
func (r *SnapshotOrderRepo) Upsert(ctx context.Context, order models.DeliveryOrder) (models.UpsertResult, error) {
	rows, err := r.Store.ReadAll(ctx)
	if err != nil {
		return models.UpsertResult{}, err
	}

	var (
		keptNo int64
		maxNo  int64
		found  bool
	)
	kept := make([]models.DeliveryOrder, 0, len(rows)+1)
	for _, row := range rows {
		if row.No > maxNo {
			maxNo = row.No
		}
		if row.DONumber == order.DONumber {
			if !found {
				keptNo = row.No
			}
			found = true
			continue
		}
		kept = append(kept, row)
	}
	if keptNo > 0 {
		order.No = keptNo
	} else {
		order.No = maxNo + 1
	}
	kept = append(kept, order)

	if err := r.Store.ReplaceAll(ctx, kept); err != nil {
		return models.UpsertResult{}, err
	}
	r.mirror(ctx, kept)

	log.Info().Str("do_number", order.DONumber).Int64("no", order.No).Bool("created", !found).Msg("order saved")
	return models.UpsertResult{Order: order, Created: !found}, nil
}

func (r *SnapshotOrderRepo) Delete(ctx context.Context, doNumber string) (bool, error) {
	rows, err := r.Store.ReadAll(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]models.DeliveryOrder, 0, len(rows))
	for _, row := range rows {
		if row.DONumber != doNumber {
			kept = append(kept, row)
		}
	}
	if len(kept) == len(rows) {
		return false, nil
	}

	if err := r.Store.ReplaceAll(ctx, kept); err != nil {
		return false, err
	}
	r.mirror(ctx, kept)

	log.Info().Str("do_number", doNumber).Int("removed", len(rows)-len(kept)).Msg("order deleted")
	return true, nil
}

func (r *SnapshotOrderRepo) mirror(ctx context.Context, rows []models.DeliveryOrder) {
	if r.Mirror == nil {
		return
	}
	if err := r.Mirror.ReplaceAll(ctx, rows); err != nil {
		log.Warn().Err(err).Msg("local mirror write failed")
	}
}
