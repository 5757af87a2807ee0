package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"fueldelivery/models"
)

type PostgresOperatorRepo struct {
	DB *sql.DB
}

func NewPostgresOperatorRepo(db *sql.DB) *PostgresOperatorRepo {
	return &PostgresOperatorRepo{DB: db}
}

// CreateOperator rejects a username that already exists.
func (r *PostgresOperatorRepo) CreateOperator(ctx context.Context, username, password string) error {
	cred, err := hashOperatorPassword(username, password)
	if err != nil {
		return err
	}

	existing, err := r.GetOperator(ctx, cred.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.ValidationError("username already exists")
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO operators (username, password_hash, created_at)
		VALUES ($1, $2, $3)
	`, cred.Username, cred.PasswordHash, cred.CreatedAt)
	return errors.Wrap(err, "insert operator")
}

func (r *PostgresOperatorRepo) GetOperator(ctx context.Context, username string) (*models.OperatorCredential, error) {
	cred := &models.OperatorCredential{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT username, password_hash, created_at
		FROM operators
		WHERE username=$1
	`, username).Scan(&cred.Username, &cred.PasswordHash, &cred.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, models.StoreError("get operator", err)
	}
	return cred, nil
}
