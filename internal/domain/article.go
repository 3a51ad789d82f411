package domain

import (
	"time"

	"github.com/google/uuid"
)

type ArticleStatus string

const (
	ArticleStatusPending  ArticleStatus = "pending"
	ArticleStatusApproved ArticleStatus = "approved"
	ArticleStatusDeclined ArticleStatus = "declined"
)

// Article is the published content record. Only Publisher (grouping key)
// and AuthorEmail (ownership) carry invariants; the rest is presentation
// data passed through to clients.
type Article struct {
	ID          uuid.UUID
	Title       string
	Description string
	ImageURL    string
	Publisher   string
	AuthorEmail string
	AuthorName  string
	AuthorPhoto string
	Status      ArticleStatus
	IsPremium   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Publisher struct {
	ID        uuid.UUID
	Name      string
	LogoURL   string
	CreatedAt time.Time
}

type Subscription struct {
	ID        uuid.UUID
	Email     string
	Plan      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// PublisherStat is a derived row: articles counted per publisher.
// It is recomputed on every query and never persisted. Output order is
// unspecified; callers sort client-side if they need one.
type PublisherStat struct {
	Publisher string `json:"publisher"`
	Quantity  int64  `json:"quantity"`
}
