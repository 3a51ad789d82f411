package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/newsflare/newsflare-api/internal/domain"
)

func TestCreateArticleStartsPending(t *testing.T) {
	t.Parallel()

	f := newFixture()
	article, err := f.service.CreateArticle(context.Background(), CreateArticleRequest{
		Title:       "  Breaking Story  ",
		Publisher:   "Daily Times",
		AuthorEmail: "Writer@Example.com",
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	if article.Status != domain.ArticleStatusPending {
		t.Fatalf("new articles must start pending, got %q", article.Status)
	}
	if article.Title != "Breaking Story" {
		t.Fatalf("expected trimmed title, got %q", article.Title)
	}
	if article.AuthorEmail != "writer@example.com" {
		t.Fatalf("expected normalized author email, got %q", article.AuthorEmail)
	}
}

func TestUpdateArticleValidatesStatus(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	article, _ := f.articles.Create(ctx, domain.Article{Title: "Story", Status: domain.ArticleStatusPending})

	bad := "published"
	err := f.service.UpdateArticle(ctx, article.ID, UpdateArticleRequest{Status: &bad})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown status, got %v", err)
	}

	good := "Approved"
	if err := f.service.UpdateArticle(ctx, article.ID, UpdateArticleRequest{Status: &good}); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	updated, _ := f.articles.GetByID(ctx, article.ID)
	if updated.Status != domain.ArticleStatusApproved {
		t.Fatalf("expected approved status, got %q", updated.Status)
	}
	if updated.Title != "Story" {
		t.Fatalf("status-only update must not touch other fields, got title %q", updated.Title)
	}
}

func TestSearchArticlesEmptyQueryListsAll(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.articles.Create(ctx, domain.Article{Title: "Go Shipping"})
	f.articles.Create(ctx, domain.Article{Title: "Rust Shipping"})

	all, err := f.service.SearchArticles(ctx, "   ")
	if err != nil {
		t.Fatalf("empty search failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("empty query should list everything, got %d", len(all))
	}

	matched, err := f.service.SearchArticles(ctx, "go ship")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matched) != 1 || matched[0].Title != "Go Shipping" {
		t.Fatalf("expected one case-insensitive title match, got %+v", matched)
	}
}

func TestMyArticlesOwnershipGate(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.articles.Create(ctx, domain.Article{Title: "Mine", AuthorEmail: "writer@example.com"})
	f.articles.Create(ctx, domain.Article{Title: "Theirs", AuthorEmail: "other@example.com"})

	mine, err := f.service.MyArticles(ctx, "Writer@Example.com", f.claimsFor("writer@example.com", domain.RoleUser))
	if err != nil {
		t.Fatalf("my articles failed: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Mine" {
		t.Fatalf("expected only own articles, got %+v", mine)
	}

	if _, err := f.service.MyArticles(ctx, "writer@example.com", f.claimsFor("other@example.com", domain.RoleUser)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden cross-author listing, got %v", err)
	}
}

func TestSubscribeComputesExpiry(t *testing.T) {
	t.Parallel()

	f := newFixture()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.service.nowFn = func() time.Time { return fixed }

	sub, err := f.service.Subscribe(context.Background(), SubscribeRequest{
		Email: "reader@example.com",
		Plan:  "monthly",
		Days:  30,
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if want := fixed.Add(30 * 24 * time.Hour); !sub.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, sub.ExpiresAt)
	}

	if _, err := f.service.Subscribe(context.Background(), SubscribeRequest{Email: "reader@example.com", Days: 0}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero days, got %v", err)
	}
}

func TestCreatePublisherRejectsDuplicates(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if _, err := f.service.CreatePublisher(ctx, CreatePublisherRequest{Name: "Daily Times"}); err != nil {
		t.Fatalf("create publisher failed: %v", err)
	}
	if _, err := f.service.CreatePublisher(ctx, CreatePublisherRequest{Name: "daily times"}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict for duplicate name, got %v", err)
	}
	if _, err := f.service.CreatePublisher(ctx, CreatePublisherRequest{Name: "   "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank name, got %v", err)
	}
}
