package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Expense struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	ItineraryID string    `gorm:"type:uuid;not null;index" json:"itinerary_id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	DayNumber   int       `gorm:"not null" json:"day_number"`
	Amount      float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Category    string    `gorm:"type:varchar(50);default:'other'" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
