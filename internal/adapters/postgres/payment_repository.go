package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/domain"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

func (r *cartRepository) Add(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	rec := cartItemModel{
		OwnerEmail: item.OwnerEmail,
		ArticleID:  item.ArticleID,
		AddedAt:    item.AddedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.CartItem{}, err
	}
	return domain.CartItem{
		ID:         rec.CartItemID,
		OwnerEmail: rec.OwnerEmail,
		ArticleID:  rec.ArticleID,
		AddedAt:    rec.AddedAt,
	}, nil
}

func (r *cartRepository) ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	var recs []cartItemModel
	if err := r.db.WithContext(ctx).
		Where("owner_email = ?", email).
		Order("added_at ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	items := make([]domain.CartItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, domain.CartItem{
			ID:         rec.CartItemID,
			OwnerEmail: rec.OwnerEmail,
			ArticleID:  rec.ArticleID,
			AddedAt:    rec.AddedAt,
		})
	}
	return items, nil
}

func (r *cartRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("cart_item_id IN ?", ids).
		Delete(&cartItemModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

type paymentRepository struct {
	db *gorm.DB
}

func (r *paymentRepository) Insert(ctx context.Context, payment domain.Payment) error {
	encoded, err := encodeCartItemIDs(payment.CartItemIDs)
	if err != nil {
		return err
	}
	rec := paymentModel{
		PaymentID:   payment.ID,
		PayerEmail:  payment.PayerEmail,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		CartItemIDs: encoded,
		CreatedAt:   payment.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Payment, error) {
	var rec paymentModel
	if err := r.db.WithContext(ctx).Where("payment_id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Payment{}, domain.ErrNotFound
		}
		return domain.Payment{}, err
	}
	return toDomainPayment(rec)
}

func (r *paymentRepository) ListByPayer(ctx context.Context, email string) ([]domain.Payment, error) {
	var recs []paymentModel
	if err := r.db.WithContext(ctx).
		Where("payer_email = ?", email).
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(recs))
	for _, rec := range recs {
		payment, err := toDomainPayment(rec)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
