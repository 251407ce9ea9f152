package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Induma-Magammana/FitLife-Tracker/internal/auth/service TokenGenerator

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
)

// TokenGenerator issues and verifies bearer tokens.
type TokenGenerator interface {
	Generate(userID string) (string, error)
	Verify(tokenString string) (string, error)
	Lifetime() time.Duration
}

// TokenService signs stateless HS256 tokens embedding the user identifier.
// Validity is determined entirely by signature and expiry; there is no
// server-side revocation.
type TokenService struct {
	Secret      string
	TokenExpiry time.Duration
}

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{
		Secret:      secret,
		TokenExpiry: lifetime,
	}
}

func (ts *TokenService) Generate(userID string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the given token string and returns the
// embedded user identifier. A missing, malformed, tampered or expired token
// always surfaces as ErrInvalidToken.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", apperrors.ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(ts.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidToken
	}

	return claims.UserID, nil
}

func (ts *TokenService) Lifetime() time.Duration {
	return ts.TokenExpiry
}
