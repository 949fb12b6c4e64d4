package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WalletModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Balance   float64   `gorm:"type:numeric(12,2);default:0" json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WalletModel) TableName() string {
	return "wallets"
}

func (w *WalletModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

type TransactionModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ItineraryID   *string   `gorm:"type:uuid;index" json:"itinerary_id,omitempty"`
	Type          string    `gorm:"type:varchar(20);not null" json:"type"`
	Amount        float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	BalanceBefore float64   `gorm:"type:numeric(12,2)" json:"balance_before"`
	BalanceAfter  float64   `gorm:"type:numeric(12,2)" json:"balance_after"`
	CreatedAt     time.Time `json:"created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type PurchaseModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_purchase_user_itinerary" json:"user_id"`
	ItineraryID string    `gorm:"type:uuid;not null;uniqueIndex:idx_purchase_user_itinerary" json:"itinerary_id"`
	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

func (p *PurchaseModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PurchaseRow is a purchase joined with its itinerary title.
type PurchaseRow struct {
	ID             string
	UserID         string
	ItineraryID    string
	ItineraryTitle string
	Amount         float64
	CreatedAt      time.Time
}
