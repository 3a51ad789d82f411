package postgres

import (
	"github.com/newsflare/newsflare-api/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Users         ports.UserRepository
	Publishers    ports.PublisherRepository
	Articles      ports.ArticleRepository
	Subscriptions ports.SubscriptionRepository
	Cart          ports.CartRepository
	Payments      ports.PaymentRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:         &userRepository{db: db},
		Publishers:    &publisherRepository{db: db},
		Articles:      &articleRepository{db: db},
		Subscriptions: &subscriptionRepository{db: db},
		Cart:          &cartRepository{db: db},
		Payments:      &paymentRepository{db: db},
	}
}
