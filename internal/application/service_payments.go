package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/domain"
	"github.com/newsflare/newsflare-api/internal/ports"
)

// CreateIntent converts a decimal price to integer minor units with checked
// rounding and requests a provider authorization. Non-finite and non-positive
// prices are rejected here, never silently truncated into a zero-amount call.
func (s *Service) CreateIntent(ctx context.Context, price float64) (CreateIntentResult, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return CreateIntentResult{}, fmt.Errorf("%w: price must be a finite number", domain.ErrInvalidInput)
	}
	if price <= 0 {
		return CreateIntentResult{}, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return CreateIntentResult{}, fmt.Errorf("%w: price rounds to zero minor units", domain.ErrInvalidInput)
	}

	intent, err := s.provider.CreateIntent(ctx, amount, s.cfg.Currency)
	if err != nil {
		return CreateIntentResult{}, fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}
	return CreateIntentResult{ClientSecret: intent.ClientSecret}, nil
}

// RecordPayment runs the settlement saga: insert the payment record, then
// purge the purchased cart items. The writes are ordered so a crash in between
// leaves a recorded payment with items still in the cart (retryable) rather
// than a purged cart with no payment evidence. The payment id is the
// idempotency key: a retry that hits an existing record skips the insert and
// completes the purge. A cancelled caller must not strand the store mid-saga,
// so both writes run on a non-cancellable context.
func (s *Service) RecordPayment(ctx context.Context, actor ports.Claims, req RecordPaymentRequest) (SettlementResult, error) {
	payerEmail, err := normalizeEmail(req.Email)
	if err != nil {
		return SettlementResult{}, err
	}
	if !strings.EqualFold(payerEmail, actor.Email) {
		return SettlementResult{}, domain.ErrForbidden
	}

	cartIDs := make([]uuid.UUID, 0, len(req.CartIDs))
	for _, raw := range req.CartIDs {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return SettlementResult{}, fmt.Errorf("%w: invalid cart item id %q", domain.ErrInvalidInput, raw)
		}
		cartIDs = append(cartIDs, id)
	}

	paymentID := uuid.New()
	if req.PaymentID != "" {
		paymentID, err = uuid.Parse(req.PaymentID)
		if err != nil {
			return SettlementResult{}, fmt.Errorf("%w: invalid payment id", domain.ErrInvalidInput)
		}
	}

	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.cfg.Currency
	}
	payment := domain.Payment{
		ID:          paymentID,
		PayerEmail:  payerEmail,
		Amount:      req.Amount,
		Currency:    currency,
		CartItemIDs: cartIDs,
		CreatedAt:   s.nowFn(),
	}
	if err := domain.ValidatePayment(payment); err != nil {
		return SettlementResult{}, fmt.Errorf("%w: amount must be positive and cart must not be empty", err)
	}

	ctx = context.WithoutCancel(ctx)

	inserted := true
	if err := s.payments.Insert(ctx, payment); err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			return SettlementResult{}, fmt.Errorf("insert payment: %w", err)
		}
		existing, getErr := s.payments.GetByID(ctx, payment.ID)
		if getErr != nil {
			return SettlementResult{}, fmt.Errorf("load replayed payment: %w", getErr)
		}
		if !strings.EqualFold(existing.PayerEmail, payerEmail) {
			return SettlementResult{}, domain.ErrForbidden
		}
		payment = existing
		inserted = false
	}

	result := SettlementResult{
		Payment:       payment,
		Inserted:      inserted,
		ExpectedCount: int64(len(payment.CartItemIDs)),
	}
	deleted, err := s.cart.DeleteByIDs(ctx, payment.CartItemIDs)
	if err != nil {
		// The payment is already durable; surface the incomplete purge so
		// reconciliation can act instead of pretending the settlement finished.
		return result, fmt.Errorf("%w: payment %s recorded, cart purge failed: %v",
			domain.ErrPartialSettlement, payment.ID, err)
	}
	result.DeletedCount = deleted
	return result, nil
}

// PaymentHistory is self-access only; there is no admin override.
func (s *Service) PaymentHistory(ctx context.Context, email string, actor ports.Claims) ([]domain.Payment, error) {
	if !strings.EqualFold(email, actor.Email) {
		return nil, domain.ErrForbidden
	}
	return s.payments.ListByPayer(ctx, strings.ToLower(email))
}

// AddToCart records a pending purchase for the caller. The article must exist.
func (s *Service) AddToCart(ctx context.Context, actor ports.Claims, req AddToCartRequest) (domain.CartItem, error) {
	articleID, err := uuid.Parse(req.ArticleID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("%w: invalid article id", domain.ErrInvalidInput)
	}
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return domain.CartItem{}, err
	}
	return s.cart.Add(ctx, domain.CartItem{
		OwnerEmail: strings.ToLower(actor.Email),
		ArticleID:  articleID,
		AddedAt:    s.nowFn(),
	})
}

// CartItems lists the caller's own cart; the route email must match the claim.
func (s *Service) CartItems(ctx context.Context, email string, actor ports.Claims) ([]domain.CartItem, error) {
	if !strings.EqualFold(email, actor.Email) {
		return nil, domain.ErrForbidden
	}
	return s.cart.ListByOwner(ctx, strings.ToLower(email))
}
