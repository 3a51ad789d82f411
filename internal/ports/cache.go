package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenRevocationStore keeps revocation markers with token-aligned TTL.
// This gives logout immediate effect without persisting per-token state
// beyond the credential's own lifetime.
type TokenRevocationStore interface {
	MarkRevoked(ctx context.Context, tokenID uuid.UUID, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID uuid.UUID) (bool, error)
}
