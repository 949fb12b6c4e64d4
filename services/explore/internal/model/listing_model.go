package model

import (
	"time"

	"github.com/lib/pq"
)

// ListingRow is the projection the discovery query scans into. Creator
// columns stay zero when the users join is skipped.
type ListingRow struct {
	ID              string
	CreatorID       string
	CreatorName     string
	CreatorVerified bool
	Title           string
	Description     string
	Location        string
	CoverImage      string
	Price           float64
	Tags            pq.StringArray `gorm:"type:text[]"`
	DurationDays    int
	AverageRating   float64
	ReviewCount     int
	Views           int
	SalesCount      int
	CreatedAt       time.Time
}
