package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fueldelivery/models"
	"fueldelivery/repository"
)

func testHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLoginAndVerify(t *testing.T) {
	ops := repository.StaticOperatorRepo{Username: "admin", PasswordHash: testHash(t, "s3cret")}
	svc := NewAuthService(ops, "signing-key", time.Hour)

	token, op, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", op.Username)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.WithinDuration(t, op.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ops := repository.StaticOperatorRepo{Username: "admin", PasswordHash: testHash(t, "s3cret")}
	svc := NewAuthService(ops, "signing-key", time.Hour)

	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	assert.True(t, errors.Is(err, ErrUnauthorized))

	_, _, err = svc.Login(context.Background(), "nobody", "s3cret")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestLoginStoreFailure(t *testing.T) {
	ops := new(MockOperatorRepository)
	ops.On("GetOperator", mock.Anything, "admin").Return(nil, models.StoreError("query", assert.AnError))
	svc := NewAuthService(ops, "signing-key", time.Hour)

	_, _, err := svc.Login(context.Background(), "admin", "x")
	assert.True(t, errors.Is(err, models.ErrStoreUnavailable))
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestVerifyRejectsForeignTokens(t *testing.T) {
	svc := NewAuthService(repository.StaticOperatorRepo{}, "signing-key", time.Hour)

	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("another-key"))
	require.NoError(t, err)
	_, err = svc.Verify(other)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("signing-key"))
	require.NoError(t, err)
	_, err = svc.Verify(expired)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	_, err = svc.Verify("not-a-token")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}
