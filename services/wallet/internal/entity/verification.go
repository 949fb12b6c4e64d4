package entity

import "time"

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
)

type VerificationStatus string

const (
	VerificationIdle     VerificationStatus = "idle"
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
)

type VerificationOrder struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	OrderID   string      `json:"order_id"`
	PaymentID string      `json:"payment_id,omitempty"`
	Amount    int64       `json:"amount"`
	Currency  string      `json:"currency"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Checkout is what the browser payment widget is opened with.
type Checkout struct {
	OrderID  string `json:"id"`
	Key      string `json:"key"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Account struct {
	ID                 string
	Username           string
	Role               string
	IsVerified         bool
	VerificationStatus VerificationStatus
}
