package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	ItineraryID string    `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_itinerary" json:"itinerary_id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_itinerary" json:"user_id"`
	Rating      int       `gorm:"not null" json:"rating"`
	Comment     string    `gorm:"type:text" json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
