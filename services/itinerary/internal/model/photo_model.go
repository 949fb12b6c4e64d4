package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TravelerPhotoModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	ItineraryID  string    `gorm:"type:uuid;not null;index" json:"itinerary_id"`
	UserID       string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ImageURL     string    `gorm:"type:varchar(500);not null" json:"image_url"`
	ThumbnailURL string    `gorm:"type:varchar(500)" json:"thumbnail_url"`
	Caption      string    `gorm:"type:text" json:"caption"`
	CreatedAt    time.Time `json:"created_at"`
}

func (TravelerPhotoModel) TableName() string {
	return "traveler_photos"
}

func (m *TravelerPhotoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// PurchaseModel is read here only to decide who gets the full guide.
type PurchaseModel struct {
	ID          string    `gorm:"type:uuid;primary_key"`
	UserID      string    `gorm:"type:uuid;not null"`
	ItineraryID string    `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

type CreatorModel struct {
	ID         string `gorm:"type:uuid;primary_key"`
	Username   string
	FullName   string
	IsVerified bool
}

func (CreatorModel) TableName() string {
	return "users"
}
