package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"fueldelivery/models"
)

// GormOrderRepo stores orders through gorm. It backs the embedded SQLite
// mode.
type GormOrderRepo struct {
	DB *gorm.DB
}

func NewGormOrderRepo(db *gorm.DB) (*GormOrderRepo, error) {
	if err := db.AutoMigrate(&orderRecord{}); err != nil {
		return nil, models.StoreError("migrate orders", err)
	}
	return &GormOrderRepo{DB: db}, nil
}

func (r *GormOrderRepo) List(ctx context.Context) ([]models.DeliveryOrder, error) {
	var recs []orderRecord
	if err := r.DB.WithContext(ctx).Order("row_no, do_number").Find(&recs).Error; err != nil {
		return nil, models.StoreError("list orders", err)
	}
	orders := make([]models.DeliveryOrder, len(recs))
	for i, rec := range recs {
		orders[i] = rec.order()
	}
	return orders, nil
}

func (r *GormOrderRepo) Get(ctx context.Context, doNumber string) (*models.DeliveryOrder, error) {
	var rec orderRecord
	err := r.DB.WithContext(ctx).Where("do_number = ?", doNumber).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.StoreError("get order", err)
	}
	o := rec.order()
	return &o, nil
}

func (r *GormOrderRepo) Upsert(ctx context.Context, order models.DeliveryOrder) (models.UpsertResult, error) {
	created := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing orderRecord
		err := tx.Where("do_number = ?", order.DONumber).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
		case err != nil:
			return err
		}

		if !created && existing.No > 0 {
			order.No = existing.No
		} else {
			var maxNo int64
			if err := tx.Model(&orderRecord{}).Select("COALESCE(MAX(row_no), 0)").Scan(&maxNo).Error; err != nil {
				return err
			}
			order.No = maxNo + 1
		}

		rec := newOrderRecord(order)
		if created {
			return tx.Create(&rec).Error
		}
		return tx.Save(&rec).Error
	})
	if err != nil {
		return models.UpsertResult{}, models.StoreError("save order", err)
	}

	log.Info().Str("do_number", order.DONumber).Int64("no", order.No).Bool("created", created).Msg("order saved")
	return models.UpsertResult{Order: order, Created: created}, nil
}

func (r *GormOrderRepo) Delete(ctx context.Context, doNumber string) (bool, error) {
	res := r.DB.WithContext(ctx).Where("do_number = ?", doNumber).Delete(&orderRecord{})
	if res.Error != nil {
		return false, models.StoreError("delete order", res.Error)
	}
	return res.RowsAffected > 0, nil
}
