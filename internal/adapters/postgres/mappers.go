package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/domain"
	"gorm.io/gorm"
)

func toDomainUser(rec userModel) domain.User {
	return domain.User{
		ID:        rec.UserID,
		Email:     rec.Email,
		Name:      rec.Name,
		PhotoURL:  rec.PhotoURL,
		Role:      domain.Role(rec.Role),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toDomainArticle(rec articleModel) domain.Article {
	return domain.Article{
		ID:          rec.ArticleID,
		Title:       rec.Title,
		Description: rec.Description,
		ImageURL:    rec.ImageURL,
		Publisher:   rec.Publisher,
		AuthorEmail: rec.AuthorEmail,
		AuthorName:  rec.AuthorName,
		AuthorPhoto: rec.AuthorPhoto,
		Status:      domain.ArticleStatus(rec.Status),
		IsPremium:   rec.IsPremium,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func toDomainPayment(rec paymentModel) (domain.Payment, error) {
	var ids []uuid.UUID
	if rec.CartItemIDs != "" {
		if err := json.Unmarshal([]byte(rec.CartItemIDs), &ids); err != nil {
			return domain.Payment{}, fmt.Errorf("decode cart item ids: %w", err)
		}
	}
	return domain.Payment{
		ID:          rec.PaymentID,
		PayerEmail:  rec.PayerEmail,
		Amount:      rec.Amount,
		Currency:    rec.Currency,
		CartItemIDs: ids,
		CreatedAt:   rec.CreatedAt,
	}, nil
}

func encodeCartItemIDs(ids []uuid.UUID) (string, error) {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode cart item ids: %w", err)
	}
	return string(raw), nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
