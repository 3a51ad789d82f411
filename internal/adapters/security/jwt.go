package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/ports"
)

// JWTSigner implements HS256 token signing/parsing against the shared service
// secret. The key lives at adapter level so the application layer stays
// crypto-library agnostic.
type JWTSigner struct {
	secret []byte
	leeway time.Duration
}

// NewJWTSigner builds a signer from the configured secret. An empty secret is
// a configuration failure: the process cannot serve authenticated routes.
func NewJWTSigner(secret string) (*JWTSigner, error) {
	if secret == "" {
		return nil, errors.New("jwt signing secret is required")
	}
	return &JWTSigner{
		secret: []byte(secret),
		leeway: 30 * time.Second,
	}, nil
}

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (s *JWTSigner) Sign(claims ports.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Email: claims.Email,
		Role:  claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        claims.TokenID.String(),
			Subject:   claims.Email,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})
	return token.SignedString(s.secret)
}

func (s *JWTSigner) ParseAndValidate(raw string) (ports.Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(s.leeway), jwt.WithExpirationRequired())
	if err != nil {
		return ports.Claims{}, err
	}
	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid {
		return ports.Claims{}, errors.New("invalid token claims")
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return ports.Claims{}, fmt.Errorf("parse jti: %w", err)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return ports.Claims{}, errors.New("token missing iat/exp")
	}

	return ports.Claims{
		TokenID:   tokenID,
		Email:     claims.Email,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time.UTC(),
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}
