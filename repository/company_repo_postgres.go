package repository

import (
	"context"
	"database/sql"

	"fueldelivery/models"
)

// PostgresCompanyRepo keeps the profile as the single row id=1 of
// company_profile.
type PostgresCompanyRepo struct {
	DB *sql.DB
}

func NewPostgresCompanyRepo(db *sql.DB) *PostgresCompanyRepo {
	return &PostgresCompanyRepo{DB: db}
}

func (r *PostgresCompanyRepo) Save(ctx context.Context, p models.CompanyProfile) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO company_profile (id, name, address, phone, email, website, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name=EXCLUDED.name, address=EXCLUDED.address, phone=EXCLUDED.phone,
			email=EXCLUDED.email, website=EXCLUDED.website, updated_at=EXCLUDED.updated_at
	`, p.Name, p.Address, p.Phone, p.Email, p.Website)
	if err != nil {
		return models.StoreError("save company", err)
	}
	return nil
}

func (r *PostgresCompanyRepo) Get(ctx context.Context) (models.CompanyProfile, error) {
	var p models.CompanyProfile
	err := r.DB.QueryRowContext(ctx, `
		SELECT name, address, phone, email, website
		FROM company_profile
		WHERE id = 1
	`).Scan(&p.Name, &p.Address, &p.Phone, &p.Email, &p.Website)
	if err == sql.ErrNoRows {
		return models.DefaultCompanyProfile(), nil
	}
	if err != nil {
		return models.CompanyProfile{}, models.StoreError("get company", err)
	}
	return p, nil
}
