package service

import (
	"context"
	"strings"

	"fueldelivery/models"
	"fueldelivery/repository"
)

type SettingsService struct {
	company repository.CompanyRepository
	assets  repository.AssetRepository
	orders  repository.OrderRepository
}

func NewSettingsService(company repository.CompanyRepository, assets repository.AssetRepository, orders repository.OrderRepository) *SettingsService {
	return &SettingsService{company: company, assets: assets, orders: orders}
}

func (s *SettingsService) Company(ctx context.Context) (models.CompanyProfile, error) {
	return s.company.Get(ctx)
}

func (s *SettingsService) SaveCompany(ctx context.Context, p models.CompanyProfile) (models.CompanyProfile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return models.CompanyProfile{}, models.ValidationError("company name is required")
	}
	if err := s.company.Save(ctx, p); err != nil {
		return models.CompanyProfile{}, err
	}
	return p, nil
}

// Header returns the current receipt header image, or models.ErrNotFound.
func (s *SettingsService) Header(ctx context.Context) ([]byte, error) {
	img, err := s.assets.Header(ctx)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, models.ErrNotFound
	}
	return img, nil
}

func (s *SettingsService) SaveHeader(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return models.ValidationError("empty upload")
	}
	return s.assets.SaveHeader(ctx, data)
}

// Backup returns the full table for download.
func (s *SettingsService) Backup(ctx context.Context) ([]models.DeliveryOrder, error) {
	return s.orders.List(ctx)
}
