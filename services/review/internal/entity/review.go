package entity

import "time"

type Review struct {
	ID          string    `json:"id"`
	ItineraryID string    `json:"itinerary_id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Target is the reviewed itinerary.
type Target struct {
	ID            string
	CreatorID     string
	Title         string
	AverageRating float64
	ReviewCount   int
}

type ReviewList struct {
	Reviews       []*Review `json:"reviews"`
	Count         int       `json:"count"`
	AverageRating float64   `json:"average_rating"`
}
