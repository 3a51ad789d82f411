package application

import (
	"context"
	"errors"
	"testing"

	"github.com/newsflare/newsflare-api/internal/domain"
)

func TestIssueValidateLogoutLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.seedUser("reader@example.com", domain.RoleUser)

	token, err := f.service.IssueToken(ctx, "Reader@Example.com")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if token == "" {
		t.Fatalf("issued token should not be empty")
	}

	claims, err := f.service.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("validate token failed: %v", err)
	}
	if claims.Email != "reader@example.com" {
		t.Fatalf("expected normalized email in claims, got %q", claims.Email)
	}
	if claims.Role != string(domain.RoleUser) {
		t.Fatalf("expected stored role in claims, got %q", claims.Role)
	}

	if err := f.service.Logout(ctx, claims); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := f.service.ValidateToken(ctx, token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized after logout, got %v", err)
	}
}

func TestIssueTokenUnknownAccount(t *testing.T) {
	t.Parallel()

	f := newFixture()
	if _, err := f.service.IssueToken(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown account, got %v", err)
	}
}

func TestIssueTokenRejectsMalformedEmail(t *testing.T) {
	t.Parallel()

	f := newFixture()
	for _, raw := range []string{"", "   ", "not-an-email"} {
		if _, err := f.service.IssueToken(context.Background(), raw); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("email %q: expected invalid input, got %v", raw, err)
		}
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	f := newFixture()
	if _, err := f.service.ValidateToken(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown token, got %v", err)
	}
}

func TestRequireAdminReadsStoreNotClaims(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.seedUser("reader@example.com", domain.RoleUser)
	f.seedUser("boss@example.com", domain.RoleAdmin)

	// A forged admin claim must not pass when the stored role is "user".
	forged := f.claimsFor("reader@example.com", domain.RoleAdmin)
	if err := f.service.RequireAdmin(ctx, forged); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for forged admin claim, got %v", err)
	}

	// A stale user claim must pass once the store says admin.
	stale := f.claimsFor("boss@example.com", domain.RoleUser)
	if err := f.service.RequireAdmin(ctx, stale); err != nil {
		t.Fatalf("expected admin from store to pass, got %v", err)
	}

	// Gate is repeatable: a second evaluation gives the same answer.
	if err := f.service.RequireAdmin(ctx, stale); err != nil {
		t.Fatalf("expected repeated admin check to pass, got %v", err)
	}
}

func TestRequireAdminFailsClosed(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if err := f.service.RequireAdmin(ctx, f.claimsFor("", domain.RoleAdmin)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for empty claim, got %v", err)
	}
	if err := f.service.RequireAdmin(ctx, f.claimsFor("gone@example.com", domain.RoleAdmin)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for deleted account, got %v", err)
	}
}

func TestIsAdminOwnershipGate(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.seedUser("boss@example.com", domain.RoleAdmin)

	ok, err := f.service.IsAdmin(ctx, "boss@example.com", f.claimsFor("boss@example.com", domain.RoleAdmin))
	if err != nil || !ok {
		t.Fatalf("expected admin=true for own admin account, got %v %v", ok, err)
	}

	if _, err := f.service.IsAdmin(ctx, "boss@example.com", f.claimsFor("other@example.com", domain.RoleUser)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for cross-user admin check, got %v", err)
	}

	ok, err = f.service.IsAdmin(ctx, "gone@example.com", f.claimsFor("gone@example.com", domain.RoleUser))
	if err != nil || ok {
		t.Fatalf("expected admin=false for missing account, got %v %v", ok, err)
	}
}
