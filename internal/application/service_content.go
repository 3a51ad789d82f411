package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/domain"
	"github.com/newsflare/newsflare-api/internal/ports"
)

func (s *Service) CreatePublisher(ctx context.Context, req CreatePublisherRequest) (domain.Publisher, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Publisher{}, fmt.Errorf("%w: publisher name is required", domain.ErrInvalidInput)
	}
	return s.publishers.Create(ctx, domain.Publisher{
		Name:      name,
		LogoURL:   req.LogoURL,
		CreatedAt: s.nowFn(),
	})
}

func (s *Service) ListPublishers(ctx context.Context) ([]domain.Publisher, error) {
	return s.publishers.List(ctx)
}

func (s *Service) CreateArticle(ctx context.Context, req CreateArticleRequest) (domain.Article, error) {
	if strings.TrimSpace(req.Title) == "" {
		return domain.Article{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	authorEmail, err := normalizeEmail(req.AuthorEmail)
	if err != nil {
		return domain.Article{}, err
	}
	now := s.nowFn()
	return s.articles.Create(ctx, domain.Article{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Publisher:   strings.TrimSpace(req.Publisher),
		AuthorEmail: authorEmail,
		AuthorName:  req.AuthorName,
		AuthorPhoto: req.AuthorPhoto,
		Status:      domain.ArticleStatusPending,
		IsPremium:   req.IsPremium,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Service) ListArticles(ctx context.Context) ([]domain.Article, error) {
	return s.articles.List(ctx)
}

// SearchArticles matches the query case-insensitively against titles.
// An empty query returns everything, mirroring an unfiltered listing.
func (s *Service) SearchArticles(ctx context.Context, query string) ([]domain.Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.articles.List(ctx)
	}
	return s.articles.SearchByTitle(ctx, query)
}

func (s *Service) GetArticle(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	return s.articles.GetByID(ctx, id)
}

func (s *Service) UpdateArticle(ctx context.Context, id uuid.UUID, req UpdateArticleRequest) error {
	update := ports.ArticleUpdate{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Publisher:   req.Publisher,
		IsPremium:   req.IsPremium,
	}
	if req.Status != nil {
		status := domain.ArticleStatus(strings.ToLower(strings.TrimSpace(*req.Status)))
		switch status {
		case domain.ArticleStatusPending, domain.ArticleStatusApproved, domain.ArticleStatusDeclined:
		default:
			return fmt.Errorf("%w: unknown article status %q", domain.ErrInvalidInput, *req.Status)
		}
		update.Status = &status
	}
	return s.articles.Update(ctx, id, update, s.nowFn())
}

func (s *Service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	return s.articles.Delete(ctx, id)
}

// MyArticles lists the caller's own articles; the route email must match the
// validated claim.
func (s *Service) MyArticles(ctx context.Context, email string, actor ports.Claims) ([]domain.Article, error) {
	if !strings.EqualFold(email, actor.Email) {
		return nil, domain.ErrForbidden
	}
	return s.articles.ListByAuthor(ctx, strings.ToLower(email))
}

func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) (domain.Subscription, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return domain.Subscription{}, err
	}
	if req.Days <= 0 {
		return domain.Subscription{}, fmt.Errorf("%w: subscription period must be positive", domain.ErrInvalidInput)
	}
	now := s.nowFn()
	return s.subscriptions.Create(ctx, domain.Subscription{
		Email:     email,
		Plan:      strings.TrimSpace(req.Plan),
		ExpiresAt: now.Add(time.Duration(req.Days) * 24 * time.Hour),
		CreatedAt: now,
	})
}
