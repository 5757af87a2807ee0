package repository

import (
	"context"

	"github.com/rs/zerolog/log"

	"fueldelivery/models"
)

// ReceiptRepository gathers what a receipt needs from the other stores.
type ReceiptRepository struct {
	Orders  OrderRepository
	Company CompanyRepository
	Assets  AssetRepository
}

func NewReceiptRepository(orders OrderRepository, company CompanyRepository, assets AssetRepository) *ReceiptRepository {
	return &ReceiptRepository{
		Orders:  orders,
		Company: company,
		Assets:  assets,
	}
}

// GetOrderForReceipt fetches a single order by DO number.
func (r *ReceiptRepository) GetOrderForReceipt(ctx context.Context, doNumber string) (*models.DeliveryOrder, error) {
	return r.Orders.Get(ctx, doNumber)
}

func (r *ReceiptRepository) GetCompanyForReceipt(ctx context.Context) (models.CompanyProfile, error) {
	return r.Company.Get(ctx)
}

// GetHeaderForReceipt never fails; a receipt without header prints the
// company name instead.
func (r *ReceiptRepository) GetHeaderForReceipt(ctx context.Context) []byte {
	if r.Assets == nil {
		return nil
	}
	img, err := r.Assets.Header(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("header image unavailable")
		return nil
	}
	return img
}
