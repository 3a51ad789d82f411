package postgres

import (
	"time"

	"github.com/google/uuid"
)

type userModel struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email     string    `gorm:"column:email"`
	Name      string    `gorm:"column:name"`
	PhotoURL  string    `gorm:"column:photo_url"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type publisherModel struct {
	PublisherID uuid.UUID `gorm:"column:publisher_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name"`
	LogoURL     string    `gorm:"column:logo_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (publisherModel) TableName() string { return "publishers" }

type articleModel struct {
	ArticleID   uuid.UUID `gorm:"column:article_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	ImageURL    string    `gorm:"column:image_url"`
	Publisher   string    `gorm:"column:publisher"`
	AuthorEmail string    `gorm:"column:author_email"`
	AuthorName  string    `gorm:"column:author_name"`
	AuthorPhoto string    `gorm:"column:author_photo"`
	Status      string    `gorm:"column:status"`
	IsPremium   bool      `gorm:"column:is_premium"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (articleModel) TableName() string { return "articles" }

type subscriptionModel struct {
	SubscriptionID uuid.UUID `gorm:"column:subscription_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email          string    `gorm:"column:email"`
	Plan           string    `gorm:"column:plan"`
	ExpiresAt      time.Time `gorm:"column:expires_at"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (subscriptionModel) TableName() string { return "subscriptions" }

type cartItemModel struct {
	CartItemID uuid.UUID `gorm:"column:cart_item_id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerEmail string    `gorm:"column:owner_email"`
	ArticleID  uuid.UUID `gorm:"column:article_id"`
	AddedAt    time.Time `gorm:"column:added_at"`
}

func (cartItemModel) TableName() string { return "cart_items" }

type paymentModel struct {
	PaymentID   uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey"`
	PayerEmail  string    `gorm:"column:payer_email"`
	Amount      int64     `gorm:"column:amount"`
	Currency    string    `gorm:"column:currency"`
	CartItemIDs string    `gorm:"column:cart_item_ids;type:jsonb"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payments" }
