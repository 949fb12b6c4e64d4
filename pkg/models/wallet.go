package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeTopUp    TransactionType = "topup"
	TransactionTypePurchase TransactionType = "purchase"
	TransactionTypeEarn     TransactionType = "earn"
)

type Wallet struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Balance   float64   `gorm:"type:numeric(12,2);default:0" json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Transaction struct {
	ID            string          `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string          `gorm:"type:uuid;not null;index" json:"user_id"`
	ItineraryID   *string         `gorm:"type:uuid;index" json:"itinerary_id,omitempty"`
	Type          TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount        float64         `gorm:"type:numeric(12,2);not null" json:"amount"`
	BalanceBefore float64         `gorm:"type:numeric(12,2)" json:"balance_before"`
	BalanceAfter  float64         `gorm:"type:numeric(12,2)" json:"balance_after"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Purchase struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_purchase_user_itinerary" json:"user_id"`
	ItineraryID string    `gorm:"type:uuid;not null;uniqueIndex:idx_purchase_user_itinerary" json:"itinerary_id"`
	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type VerificationOrder struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderID   string    `gorm:"uniqueIndex;not null" json:"order_id"`
	PaymentID string    `json:"payment_id"`
	Amount    int64     `gorm:"not null" json:"amount"`
	Currency  string    `gorm:"type:varchar(8)" json:"currency"`
	Status    string    `gorm:"type:varchar(20);default:'created'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

func (v *VerificationOrder) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
