package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	ItineraryID string    `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_itinerary" json:"itinerary_id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_itinerary" json:"user_id"`
	Rating      int       `gorm:"not null" json:"rating"`
	Comment     string    `gorm:"type:text" json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

func (m *ReviewModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// ReviewRow is a review joined with its author's username.
type ReviewRow struct {
	ReviewModel
	Username string
}

type ItineraryModel struct {
	ID            string  `gorm:"type:uuid;primary_key"`
	CreatorID     string  `gorm:"type:uuid;not null"`
	Title         string  `gorm:"type:varchar(255);not null"`
	AverageRating float64 `gorm:"type:numeric(3,2);default:0"`
	ReviewCount   int     `gorm:"default:0"`
	DeletedAt     gorm.DeletedAt
}

func (ItineraryModel) TableName() string {
	return "itineraries"
}

type UserModel struct {
	ID       string `gorm:"type:uuid;primary_key"`
	Username string
}

func (UserModel) TableName() string {
	return "users"
}
