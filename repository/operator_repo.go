package repository

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"fueldelivery/models"
)

// OperatorRepository looks up the staff allowed to sign in.
type OperatorRepository interface {
	// CreateOperator hashes password and stores a new login.
	CreateOperator(ctx context.Context, username, password string) error
	// GetOperator returns nil, nil for an unknown username.
	GetOperator(ctx context.Context, username string) (*models.OperatorCredential, error)
}

// StaticOperatorRepo is the single operator from configuration.
type StaticOperatorRepo struct {
	Username     string
	PasswordHash string
}

func (r StaticOperatorRepo) CreateOperator(context.Context, string, string) error {
	return errors.New("operators are fixed by configuration")
}

func (r StaticOperatorRepo) GetOperator(_ context.Context, username string) (*models.OperatorCredential, error) {
	if !strings.EqualFold(username, r.Username) || r.PasswordHash == "" {
		return nil, nil
	}
	return &models.OperatorCredential{Username: r.Username, PasswordHash: r.PasswordHash}, nil
}

func hashOperatorPassword(username, password string) (*models.OperatorCredential, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, models.ValidationError("username cannot be empty")
	}
	if password == "" {
		return nil, models.ValidationError("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &models.OperatorCredential{
		Username:     username,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}, nil
}
