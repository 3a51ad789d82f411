package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/domain"
)

// UserRepository defines persistence operations for account identities.
// Create returns domain.ErrConflict when the email is already registered.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role, updatedAt time.Time) error
}

type PublisherRepository interface {
	Create(ctx context.Context, publisher domain.Publisher) (domain.Publisher, error)
	List(ctx context.Context) ([]domain.Publisher, error)
}

// ArticleUpdate carries the mutable article fields. Nil pointers leave the
// stored value untouched so moderation (status/premium flags) and full author
// edits share one repository operation.
type ArticleUpdate struct {
	Title       *string
	Description *string
	ImageURL    *string
	Publisher   *string
	Status      *domain.ArticleStatus
	IsPremium   *bool
}

type ArticleRepository interface {
	Create(ctx context.Context, article domain.Article) (domain.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
	SearchByTitle(ctx context.Context, query string) ([]domain.Article, error)
	ListByAuthor(ctx context.Context, email string) ([]domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, update ArticleUpdate, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CountByPublisher groups all articles by publisher name and counts rows.
	// Result order is unspecified.
	CountByPublisher(ctx context.Context) ([]domain.PublisherStat, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub domain.Subscription) (domain.Subscription, error)
}

// CartRepository manages pending purchase items. DeleteByIDs reports how many
// rows were actually removed; already-absent ids are not an error, the caller
// compares the count against its expectation.
type CartRepository interface {
	Add(ctx context.Context, item domain.CartItem) (domain.CartItem, error)
	ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// PaymentRepository stores settled payments. Insert returns domain.ErrConflict
// when the payment id already exists; the id doubles as the settlement
// idempotency key so retries never double-insert.
type PaymentRepository interface {
	Insert(ctx context.Context, payment domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Payment, error)
	ListByPayer(ctx context.Context, email string) ([]domain.Payment, error)
}
