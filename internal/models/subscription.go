package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is the current lifecycle state of one subscriber, kept up
// to date by the billing webhook.
type Subscription struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExternalID         string    `gorm:"index;size:255" json:"external_id"`
	ProductID          string    `gorm:"size:255" json:"product_id"`
	Status             string    `gorm:"not null;default:'inactive';size:50" json:"status"`
	CurrentPeriodStart time.Time `json:"current_period_start"`
	CurrentPeriodEnd   time.Time `json:"current_period_end"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	User               User      `gorm:"foreignKey:UserID" json:"-"`
}

// SubscriptionEvent is an append-only lifecycle transition row. The
// revenue aggregation replays these; they are never updated or deleted.
type SubscriptionEvent struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ExternalID string    `gorm:"index;size:255" json:"external_id"`
	Type       string    `gorm:"size:30;not null;index" json:"type"`
	ProductID  string    `gorm:"size:255" json:"product_id"`
	Price      float64   `json:"price"`
	Currency   string    `gorm:"size:10" json:"currency"`
	OccurredAt time.Time `gorm:"not null;index" json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}
