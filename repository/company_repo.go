package repository

import (
	"context"

	"fueldelivery/models"
)

// CompanyRepository stores the company identity printed on receipts. Get
// returns the defaults when nothing has been saved yet.
type CompanyRepository interface {
	Get(ctx context.Context) (models.CompanyProfile, error)
	Save(ctx context.Context, profile models.CompanyProfile) error
}
