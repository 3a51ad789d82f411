package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/domain"
	"github.com/newsflare/newsflare-api/internal/ports"
	"gorm.io/gorm"
)

type articleRepository struct {
	db *gorm.DB
}

func (r *articleRepository) Create(ctx context.Context, article domain.Article) (domain.Article, error) {
	rec := articleModel{
		Title:       article.Title,
		Description: article.Description,
		ImageURL:    article.ImageURL,
		Publisher:   article.Publisher,
		AuthorEmail: article.AuthorEmail,
		AuthorName:  article.AuthorName,
		AuthorPhoto: article.AuthorPhoto,
		Status:      string(article.Status),
		IsPremium:   article.IsPremium,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Article{}, err
	}
	return toDomainArticle(rec), nil
}

func (r *articleRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	var rec articleModel
	if err := r.db.WithContext(ctx).Where("article_id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Article{}, domain.ErrNotFound
		}
		return domain.Article{}, err
	}
	return toDomainArticle(rec), nil
}

func (r *articleRepository) List(ctx context.Context) ([]domain.Article, error) {
	var recs []articleModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainArticles(recs), nil
}

func (r *articleRepository) SearchByTitle(ctx context.Context, query string) ([]domain.Article, error) {
	var recs []articleModel
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ?", "%"+query+"%").
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainArticles(recs), nil
}

func (r *articleRepository) ListByAuthor(ctx context.Context, email string) ([]domain.Article, error) {
	var recs []articleModel
	if err := r.db.WithContext(ctx).
		Where("author_email = ?", email).
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainArticles(recs), nil
}

func (r *articleRepository) Update(ctx context.Context, id uuid.UUID, update ports.ArticleUpdate, updatedAt time.Time) error {
	fields := map[string]any{"updated_at": updatedAt}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.ImageURL != nil {
		fields["image_url"] = *update.ImageURL
	}
	if update.Publisher != nil {
		fields["publisher"] = *update.Publisher
	}
	if update.Status != nil {
		fields["status"] = string(*update.Status)
	}
	if update.IsPremium != nil {
		fields["is_premium"] = *update.IsPremium
	}

	res := r.db.WithContext(ctx).
		Model(&articleModel{}).
		Where("article_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("article_id = ?", id).Delete(&articleModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *articleRepository) CountByPublisher(ctx context.Context) ([]domain.PublisherStat, error) {
	var stats []domain.PublisherStat
	err := r.db.WithContext(ctx).
		Model(&articleModel{}).
		Select("publisher AS publisher, COUNT(*) AS quantity").
		Group("publisher").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func toDomainArticles(recs []articleModel) []domain.Article {
	articles := make([]domain.Article, 0, len(recs))
	for _, rec := range recs {
		articles = append(articles, toDomainArticle(rec))
	}
	return articles
}
