package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Itinerary struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	CreatorID     string         `gorm:"type:uuid;not null;index" json:"creator_id"`
	Title         string         `gorm:"type:varchar(255);not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Location      string         `gorm:"type:varchar(255)" json:"location"`
	Price         float64        `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	DurationDays  int            `gorm:"default:0" json:"duration_days"`
	Content       datatypes.JSON `gorm:"type:jsonb" json:"content"`
	IsPublished   bool           `gorm:"default:false;index" json:"is_published"`
	IsApproved    bool           `gorm:"default:false;index" json:"is_approved"`
	AverageRating float64        `gorm:"type:numeric(3,2);default:0" json:"average_rating"`
	ReviewCount   int            `gorm:"default:0" json:"review_count"`
	Views         int            `gorm:"default:0" json:"views"`
	SalesCount    int            `gorm:"default:0" json:"sales_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Visible mirrors the discovery rule: only published and approved rows are listed.
func (i *Itinerary) Visible() bool {
	return i.IsPublished && i.IsApproved && !i.DeletedAt.Valid
}

func (i *Itinerary) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
