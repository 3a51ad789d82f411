package application

import (
	"time"

	"github.com/newsflare/newsflare-api/internal/ports"
)

type Config struct {
	// TokenTTL bounds every issued credential; expired tokens fail
	// verification regardless of revocation state.
	TokenTTL time.Duration
	// Currency is the fixed settlement currency for payment intents.
	Currency string
}

// Service holds every use case behind explicit port dependencies. Nothing in
// here reaches for ambient state; all collaborators are injected at
// construction so tests can swap them for in-memory fakes.
type Service struct {
	cfg           Config
	users         ports.UserRepository
	publishers    ports.PublisherRepository
	articles      ports.ArticleRepository
	subscriptions ports.SubscriptionRepository
	cart          ports.CartRepository
	payments      ports.PaymentRepository
	revocations   ports.TokenRevocationStore
	provider      ports.PaymentProvider
	signer        ports.TokenSigner
	nowFn         func() time.Time
}

type Dependencies struct {
	Config        Config
	Users         ports.UserRepository
	Publishers    ports.PublisherRepository
	Articles      ports.ArticleRepository
	Subscriptions ports.SubscriptionRepository
	Cart          ports.CartRepository
	Payments      ports.PaymentRepository
	Revocations   ports.TokenRevocationStore
	Provider      ports.PaymentProvider
	Signer        ports.TokenSigner
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	return &Service{
		cfg:           cfg,
		users:         deps.Users,
		publishers:    deps.Publishers,
		articles:      deps.Articles,
		subscriptions: deps.Subscriptions,
		cart:          deps.Cart,
		payments:      deps.Payments,
		revocations:   deps.Revocations,
		provider:      deps.Provider,
		signer:        deps.Signer,
		nowFn:         func() time.Time { return time.Now().UTC() },
	}
}
