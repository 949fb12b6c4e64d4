package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExpenseModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	ItineraryID string    `gorm:"type:uuid;not null;index" json:"itinerary_id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	DayNumber   int       `gorm:"not null" json:"day_number"`
	Amount      float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Category    string    `gorm:"type:varchar(50);default:'other'" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ExpenseModel) TableName() string {
	return "expenses"
}

func (m *ExpenseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// ItineraryBudgetModel reads the columns the budget summary depends on.
type ItineraryBudgetModel struct {
	ID           string `gorm:"primary_key"`
	DurationDays int
	Content      datatypes.JSON
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (ItineraryBudgetModel) TableName() string {
	return "itineraries"
}
