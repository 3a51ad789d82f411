package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/domain"
	"github.com/newsflare/newsflare-api/internal/ports"
)

type fixture struct {
	service     *Service
	users       *fakeUsers
	articles    *fakeArticles
	cart        *fakeCart
	payments    *fakePayments
	revocations *fakeRevocations
	provider    *fakeProvider
	signer      *fakeSigner
}

func newFixture() *fixture {
	return newFixtureWithConfig(Config{
		TokenTTL: time.Hour,
		Currency: "usd",
	})
}

func newFixtureWithConfig(cfg Config) *fixture {
	users := &fakeUsers{
		byEmail: make(map[string]domain.User),
		byID:    make(map[uuid.UUID]domain.User),
	}
	publishers := &fakePublishers{}
	articles := &fakeArticles{byID: make(map[uuid.UUID]domain.Article)}
	subscriptions := &fakeSubscriptions{}
	cart := &fakeCart{byID: make(map[uuid.UUID]domain.CartItem)}
	payments := &fakePayments{byID: make(map[uuid.UUID]domain.Payment)}
	revocations := &fakeRevocations{revoked: make(map[uuid.UUID]bool)}
	provider := &fakeProvider{secret: "pi_test_secret"}
	signer := &fakeSigner{tokens: make(map[string]ports.Claims)}

	svc := NewService(Dependencies{
		Config:        cfg,
		Users:         users,
		Publishers:    publishers,
		Articles:      articles,
		Subscriptions: subscriptions,
		Cart:          cart,
		Payments:      payments,
		Revocations:   revocations,
		Provider:      provider,
		Signer:        signer,
	})

	return &fixture{
		service:     svc,
		users:       users,
		articles:    articles,
		cart:        cart,
		payments:    payments,
		revocations: revocations,
		provider:    provider,
		signer:      signer,
	}
}

func (f *fixture) seedUser(email string, role domain.Role) domain.User {
	user, err := f.users.Create(context.Background(), domain.User{
		Email: email,
		Name:  "Seeded User",
		Role:  role,
	})
	if err != nil {
		panic(err)
	}
	return user
}

func (f *fixture) claimsFor(email string, role domain.Role) ports.Claims {
	now := time.Now().UTC()
	return ports.Claims{
		TokenID:   uuid.New(),
		Email:     email,
		Role:      string(role),
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]domain.User
	byID    map[uuid.UUID]domain.User
}

func (f *fakeUsers) Create(_ context.Context, user domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, ok := f.byEmail[key]; ok {
		return domain.User{}, domain.ErrConflict
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.byEmail[key] = user
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsers) List(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.User, 0, len(f.byID))
	for _, user := range f.byID {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	delete(f.byEmail, strings.ToLower(user.Email))
	return nil
}

func (f *fakeUsers) SetRole(_ context.Context, id uuid.UUID, role domain.Role, updatedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.Role = role
	user.UpdatedAt = updatedAt
	f.byID[id] = user
	f.byEmail[strings.ToLower(user.Email)] = user
	return nil
}

type fakePublishers struct {
	mu    sync.Mutex
	items []domain.Publisher
}

func (f *fakePublishers) Create(_ context.Context, publisher domain.Publisher) (domain.Publisher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if strings.EqualFold(existing.Name, publisher.Name) {
			return domain.Publisher{}, domain.ErrConflict
		}
	}
	if publisher.ID == uuid.Nil {
		publisher.ID = uuid.New()
	}
	f.items = append(f.items, publisher)
	return publisher, nil
}

func (f *fakePublishers) List(_ context.Context) ([]domain.Publisher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Publisher(nil), f.items...), nil
}

type fakeArticles struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Article
}

func (f *fakeArticles) Create(_ context.Context, article domain.Article) (domain.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	f.byID[article.ID] = article
	return article, nil
}

func (f *fakeArticles) GetByID(_ context.Context, id uuid.UUID) (domain.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	article, ok := f.byID[id]
	if !ok {
		return domain.Article{}, domain.ErrNotFound
	}
	return article, nil
}

func (f *fakeArticles) List(_ context.Context) ([]domain.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Article, 0, len(f.byID))
	for _, article := range f.byID {
		out = append(out, article)
	}
	return out, nil
}

func (f *fakeArticles) SearchByTitle(_ context.Context, query string) ([]domain.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Article, 0)
	for _, article := range f.byID {
		if strings.Contains(strings.ToLower(article.Title), strings.ToLower(query)) {
			out = append(out, article)
		}
	}
	return out, nil
}

func (f *fakeArticles) ListByAuthor(_ context.Context, email string) ([]domain.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Article, 0)
	for _, article := range f.byID {
		if strings.EqualFold(article.AuthorEmail, email) {
			out = append(out, article)
		}
	}
	return out, nil
}

func (f *fakeArticles) Update(_ context.Context, id uuid.UUID, update ports.ArticleUpdate, updatedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	article, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	if update.Title != nil {
		article.Title = *update.Title
	}
	if update.Description != nil {
		article.Description = *update.Description
	}
	if update.ImageURL != nil {
		article.ImageURL = *update.ImageURL
	}
	if update.Publisher != nil {
		article.Publisher = *update.Publisher
	}
	if update.Status != nil {
		article.Status = *update.Status
	}
	if update.IsPremium != nil {
		article.IsPremium = *update.IsPremium
	}
	article.UpdatedAt = updatedAt
	f.byID[id] = article
	return nil
}

func (f *fakeArticles) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeArticles) CountByPublisher(_ context.Context) ([]domain.PublisherStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, article := range f.byID {
		counts[article.Publisher]++
	}
	out := make([]domain.PublisherStat, 0, len(counts))
	for publisher, quantity := range counts {
		out = append(out, domain.PublisherStat{Publisher: publisher, Quantity: quantity})
	}
	return out, nil
}

type fakeSubscriptions struct {
	mu    sync.Mutex
	items []domain.Subscription
}

func (f *fakeSubscriptions) Create(_ context.Context, sub domain.Subscription) (domain.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	f.items = append(f.items, sub)
	return sub, nil
}

type fakeCart struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]domain.CartItem
	deleteErr error
}

func (f *fakeCart) Add(_ context.Context, item domain.CartItem) (domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.byID[item.ID] = item
	return item, nil
}

func (f *fakeCart) ListByOwner(_ context.Context, email string) ([]domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.CartItem, 0)
	for _, item := range f.byID {
		if strings.EqualFold(item.OwnerEmail, email) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCart) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var deleted int64
	for _, id := range ids {
		if _, ok := f.byID[id]; ok {
			delete(f.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakePayments struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Payment
}

func (f *fakePayments) Insert(_ context.Context, payment domain.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[payment.ID]; ok {
		return domain.ErrConflict
	}
	f.byID[payment.ID] = payment
	return nil
}

func (f *fakePayments) GetByID(_ context.Context, id uuid.UUID) (domain.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.byID[id]
	if !ok {
		return domain.Payment{}, domain.ErrNotFound
	}
	return payment, nil
}

func (f *fakePayments) ListByPayer(_ context.Context, email string) ([]domain.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Payment, 0)
	for _, payment := range f.byID {
		if strings.EqualFold(payment.PayerEmail, email) {
			out = append(out, payment)
		}
	}
	return out, nil
}

type fakeRevocations struct {
	mu      sync.Mutex
	revoked map[uuid.UUID]bool
}

func (f *fakeRevocations) MarkRevoked(_ context.Context, tokenID uuid.UUID, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeRevocations) IsRevoked(_ context.Context, tokenID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[tokenID], nil
}

type fakeProvider struct {
	mu         sync.Mutex
	secret     string
	err        error
	lastAmount int64
	lastCurr   string
	calls      int
}

func (f *fakeProvider) CreateIntent(_ context.Context, amount int64, currency string) (ports.PaymentIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastAmount = amount
	f.lastCurr = currency
	if f.err != nil {
		return ports.PaymentIntent{}, f.err
	}
	return ports.PaymentIntent{ClientSecret: f.secret}, nil
}

type fakeSigner struct {
	mu     sync.Mutex
	tokens map[string]ports.Claims
	seq    int
}

func (f *fakeSigner) Sign(claims ports.Claims) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	token := fmt.Sprintf("token-%d", f.seq)
	f.tokens[token] = claims
	return token, nil
}

func (f *fakeSigner) ParseAndValidate(token string) (ports.Claims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	claims, ok := f.tokens[token]
	if !ok {
		return ports.Claims{}, fmt.Errorf("unknown token")
	}
	if time.Now().UTC().After(claims.ExpiresAt) {
		return ports.Claims{}, fmt.Errorf("token expired")
	}
	return claims, nil
}
