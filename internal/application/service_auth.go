package application

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/domain"
	"github.com/newsflare/newsflare-api/internal/ports"
)

// IssueToken mints a signed credential for an existing account. The claim is
// built from the stored record, never from the caller's body, so issuance
// cannot be used to forge roles or identities.
func (s *Service) IssueToken(ctx context.Context, email string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}

	now := s.nowFn()
	token, err := s.signer.Sign(ports.Claims{
		TokenID:   uuid.New(),
		Email:     user.Email,
		Role:      string(user.Role),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ValidateToken verifies signature and expiry, then checks the revocation
// store. Every failure collapses to ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, raw string) (ports.Claims, error) {
	claims, err := s.signer.ParseAndValidate(raw)
	if err != nil {
		return ports.Claims{}, domain.ErrUnauthorized
	}
	revoked, err := s.revocations.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return ports.Claims{}, fmt.Errorf("revocation check: %w", err)
	}
	if revoked {
		return ports.Claims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

// Logout marks the credential revoked until its natural expiry.
func (s *Service) Logout(ctx context.Context, actor ports.Claims) error {
	return s.revocations.MarkRevoked(ctx, actor.TokenID, actor.ExpiresAt)
}

// RequireAdmin re-reads the account for the validated claim and demands the
// admin role. The token's role claim is deliberately ignored: roles can change
// after issuance, and the store is the source of truth. An empty claim means
// the guard ran without prior authentication, which fails closed.
func (s *Service) RequireAdmin(ctx context.Context, actor ports.Claims) error {
	if actor.Email == "" {
		return domain.ErrUnauthorized
	}
	user, err := s.users.GetByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	if user.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// IsAdmin answers the self-service admin check: the requested email must be
// the caller's own, then the stored role decides.
func (s *Service) IsAdmin(ctx context.Context, email string, actor ports.Claims) (bool, error) {
	if !strings.EqualFold(email, actor.Email) {
		return false, domain.ErrForbidden
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == domain.RoleAdmin, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	return email, nil
}
