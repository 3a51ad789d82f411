package postgres

import (
	"context"

	"github.com/newsflare/newsflare-api/internal/domain"
	"gorm.io/gorm"
)

type publisherRepository struct {
	db *gorm.DB
}

func (r *publisherRepository) Create(ctx context.Context, publisher domain.Publisher) (domain.Publisher, error) {
	rec := publisherModel{
		Name:      publisher.Name,
		LogoURL:   publisher.LogoURL,
		CreatedAt: publisher.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Publisher{}, domain.ErrConflict
		}
		return domain.Publisher{}, err
	}
	return domain.Publisher{
		ID:        rec.PublisherID,
		Name:      rec.Name,
		LogoURL:   rec.LogoURL,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (r *publisherRepository) List(ctx context.Context) ([]domain.Publisher, error) {
	var recs []publisherModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	publishers := make([]domain.Publisher, 0, len(recs))
	for _, rec := range recs {
		publishers = append(publishers, domain.Publisher{
			ID:        rec.PublisherID,
			Name:      rec.Name,
			LogoURL:   rec.LogoURL,
			CreatedAt: rec.CreatedAt,
		})
	}
	return publishers, nil
}

type subscriptionRepository struct {
	db *gorm.DB
}

func (r *subscriptionRepository) Create(ctx context.Context, sub domain.Subscription) (domain.Subscription, error) {
	rec := subscriptionModel{
		Email:     sub.Email,
		Plan:      sub.Plan,
		ExpiresAt: sub.ExpiresAt,
		CreatedAt: sub.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Subscription{}, err
	}
	return domain.Subscription{
		ID:        rec.SubscriptionID,
		Email:     rec.Email,
		Plan:      rec.Plan,
		ExpiresAt: rec.ExpiresAt,
		CreatedAt: rec.CreatedAt,
	}, nil
}
