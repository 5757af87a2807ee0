package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"fueldelivery/models"
	"fueldelivery/repository"
)

// ErrUnauthorized is returned for bad credentials and bad tokens alike.
var ErrUnauthorized = errors.New("unauthorized")

const tokenIssuer = "fueldelivery"

type AuthService struct {
	operators repository.OperatorRepository
	secret    []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewAuthService(operators repository.OperatorRepository, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{operators: operators, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Login checks the password and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, models.Operator, error) {
	cred, err := s.operators.GetOperator(ctx, username)
	if err != nil {
		return "", models.Operator{}, err
	}
	if cred == nil {
		return "", models.Operator{}, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", models.Operator{}, ErrUnauthorized
	}

	now := s.now()
	op := models.Operator{Username: cred.Username, ExpiresAt: now.Add(s.ttl)}
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   op.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(op.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", models.Operator{}, errors.Wrap(err, "sign token")
	}
	return token, op, nil
}

// Verify parses a session token issued by Login.
func (s *AuthService) Verify(token string) (*models.Operator, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrUnauthorized, err.Error())
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Issuer != tokenIssuer || claims.Subject == "" {
		return nil, ErrUnauthorized
	}
	op := &models.Operator{Username: claims.Subject}
	if claims.ExpiresAt != nil {
		op.ExpiresAt = claims.ExpiresAt.Time
	}
	return op, nil
}
