package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment is the settled purchase record. Amount is integer minor currency
// units; decimal amounts are rejected at the boundary rather than truncated.
type Payment struct {
	ID          uuid.UUID
	PayerEmail  string
	Amount      int64
	Currency    string
	CartItemIDs []uuid.UUID
	CreatedAt   time.Time
}

// CartItem is created when a user adds an article to their cart and is
// destroyed exactly when its owning payment settles.
type CartItem struct {
	ID         uuid.UUID
	OwnerEmail string
	ArticleID  uuid.UUID
	AddedAt    time.Time
}

// ValidatePayment checks settlement preconditions: a positive amount and a
// non-empty item set, since every recorded payment derives from a cart checkout.
func ValidatePayment(p Payment) error {
	if p.PayerEmail == "" {
		return ErrInvalidInput
	}
	if p.Amount <= 0 {
		return ErrInvalidInput
	}
	if len(p.CartItemIDs) == 0 {
		return ErrInvalidInput
	}
	return nil
}
