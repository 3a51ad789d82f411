package application

import (
	"context"

	"github.com/newsflare/newsflare-api/internal/domain"
)

// PublisherStats groups all articles by publisher name and counts rows.
// The result is recomputed per call and carries no defined order.
func (s *Service) PublisherStats(ctx context.Context) ([]domain.PublisherStat, error) {
	return s.articles.CountByPublisher(ctx)
}
