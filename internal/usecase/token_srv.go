package usecase

import (
	"fmt"
	"time"

	"micron-api/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the signed payload of a bearer token.
type TokenClaims struct {
	ID int64 `json:"id"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Issue(userID int64) (string, time.Time, error)
	Verify(token string) (*utils.Identity, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(config utils.JWTConfig) TokenService {
	return &tokenService{
		secret: []byte(config.Secret),
		ttl:    time.Duration(config.ExpiryHours) * time.Hour,
		now:    time.Now,
	}
}

// Issue signs an HS256 token for userID valid for the configured lifetime.
func (s *tokenService) Issue(userID int64) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := TokenClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks signature and expiry. Every failure is reported as ErrTokenInvalid.
func (s *tokenService) Verify(token string) (*utils.Identity, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}

	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !parsed.Valid || claims.ID <= 0 {
		return nil, ErrTokenInvalid
	}

	return &utils.Identity{
		UserID:    claims.ID,
		TokenID:   claims.RegisteredClaims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
