package entity

import "time"

type TransactionType string

const (
	TransactionTypeTopUp    TransactionType = "topup"
	TransactionTypePurchase TransactionType = "purchase"
	TransactionTypeEarn     TransactionType = "earn"
)

type Wallet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Transaction struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	ItineraryID   string          `json:"itinerary_id,omitempty"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	BalanceBefore float64         `json:"balance_before"`
	BalanceAfter  float64         `json:"balance_after"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Purchase struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ItineraryID    string    `json:"itinerary_id"`
	ItineraryTitle string    `json:"itinerary_title,omitempty"`
	Amount         float64   `json:"amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// Listing is the part of an itinerary a purchase needs.
type Listing struct {
	ID          string
	CreatorID   string
	Title       string
	Price       float64
	IsPublished bool
	IsApproved  bool
}

func (l *Listing) Purchasable() bool {
	return l.IsPublished && l.IsApproved
}
