package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationOrderModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	OrderID   string    `gorm:"uniqueIndex;not null"`
	PaymentID string
	Amount    int64  `gorm:"not null"`
	Currency  string `gorm:"type:varchar(8)"`
	Status    string `gorm:"type:varchar(20);default:'created'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (VerificationOrderModel) TableName() string {
	return "verification_orders"
}

func (v *VerificationOrderModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// UserModel covers the account columns wallet reads and the verification
// flags it writes.
type UserModel struct {
	ID                 string `gorm:"primary_key"`
	Username           string
	Role               string
	IsVerified         bool
	VerificationStatus string `gorm:"default:'idle'"`
	UpdatedAt          time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type ItineraryModel struct {
	ID          string `gorm:"primary_key"`
	CreatorID   string
	Title       string
	Price       float64
	IsPublished bool
	IsApproved  bool
	SalesCount  int
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ItineraryModel) TableName() string {
	return "itineraries"
}
