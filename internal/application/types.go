package application

import (
	"github.com/newsflare/newsflare-api/internal/domain"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// CreateUserResult distinguishes a fresh insert from the create-if-absent
// short circuit so the handler can keep the historical response envelope.
type CreateUserResult struct {
	User    domain.User
	Created bool
}

type CreatePublisherRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoURL"`
}

type CreateArticleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL"`
	Publisher   string `json:"publisher"`
	AuthorEmail string `json:"authorEmail"`
	AuthorName  string `json:"authorName"`
	AuthorPhoto string `json:"authorPhoto"`
	IsPremium   bool   `json:"isPremium"`
}

type UpdateArticleRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageURL"`
	Publisher   *string `json:"publisher"`
	Status      *string `json:"status"`
	IsPremium   *bool   `json:"isPremium"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
	Plan  string `json:"plan"`
	Days  int    `json:"days"`
}

type AddToCartRequest struct {
	ArticleID string `json:"articleId"`
}

type RecordPaymentRequest struct {
	PaymentID string   `json:"paymentId"`
	Email     string   `json:"email"`
	Amount    int64    `json:"amount"`
	Currency  string   `json:"currency"`
	CartIDs   []string `json:"cartIds"`
}

type CreateIntentResult struct {
	ClientSecret string
}

// SettlementResult reports both halves of the two-write settlement so a
// caller can detect partial completion (DeletedCount < ExpectedCount).
type SettlementResult struct {
	Payment       domain.Payment
	Inserted      bool
	DeletedCount  int64
	ExpectedCount int64
}
