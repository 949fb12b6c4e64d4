package model

import (
	"time"

	"gorm.io/gorm"
)

// ItineraryModel maps the columns moderation reads and writes.
type ItineraryModel struct {
	ID          string `gorm:"primary_key"`
	CreatorID   string `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Location    string
	Price       float64
	IsPublished bool
	IsApproved  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ItineraryModel) TableName() string {
	return "itineraries"
}

type CreatorModel struct {
	ID       string `gorm:"primary_key"`
	Username string
}

func (CreatorModel) TableName() string {
	return "users"
}

// SubmissionRow is the joined projection.
type SubmissionRow struct {
	ID          string
	CreatorID   string
	CreatorName string
	Title       string
	Location    string
	Price       float64
	IsPublished bool
	IsApproved  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
