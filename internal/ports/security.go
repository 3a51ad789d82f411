package ports

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the decoded credential payload. Role is carried for downstream
// convenience only; admin gates always re-read it from the user store because
// roles can change after issuance.
type Claims struct {
	TokenID   uuid.UUID `json:"jti"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type TokenSigner interface {
	Sign(claims Claims) (string, error)
	ParseAndValidate(token string) (Claims, error)
}
