package model

import (
	"time"

	"gorm.io/gorm"
)

// Read-only views over tables owned by the itinerary, wallet and auth services.

type ItineraryModel struct {
	ID            string         `gorm:"column:id;type:uuid;primaryKey"`
	CreatorID     string         `gorm:"column:creator_id;type:uuid;not null"`
	Title         string         `gorm:"column:title;type:varchar(255)"`
	Price         float64        `gorm:"column:price;type:numeric(10,2)"`
	IsPublished   bool           `gorm:"column:is_published"`
	IsApproved    bool           `gorm:"column:is_approved"`
	AverageRating float64        `gorm:"column:average_rating;type:numeric(3,2)"`
	ReviewCount   int            `gorm:"column:review_count"`
	Views         int            `gorm:"column:views"`
	SalesCount    int            `gorm:"column:sales_count"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (ItineraryModel) TableName() string {
	return "itineraries"
}

type TransactionModel struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID      string    `gorm:"column:user_id;type:uuid;not null"`
	ItineraryID *string   `gorm:"column:itinerary_id;type:uuid"`
	Type        string    `gorm:"column:type;type:varchar(20);not null"`
	Amount      float64   `gorm:"column:amount;type:numeric(12,2);not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

type PurchaseModel struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID      string    `gorm:"column:user_id;type:uuid;not null"`
	ItineraryID string    `gorm:"column:itinerary_id;type:uuid;not null"`
	Amount      float64   `gorm:"column:amount;type:numeric(10,2)"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

type UserModel struct {
	ID         string `gorm:"column:id;type:uuid;primaryKey"`
	Role       string `gorm:"column:role;type:varchar(20)"`
	IsVerified bool   `gorm:"column:is_verified"`
}

func (UserModel) TableName() string {
	return "users"
}

// EarningRow is the creator's earn ledger summed per itinerary.
type EarningRow struct {
	ItineraryID string
	Revenue     float64
}
