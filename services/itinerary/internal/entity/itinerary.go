package entity

import "time"

type Itinerary struct {
	ID            string           `json:"id"`
	CreatorID     string           `json:"creator_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	Price         float64          `json:"price"`
	Tags          []string         `json:"tags"`
	DurationDays  int              `json:"duration_days"`
	Content       ItineraryContent `json:"content"`
	IsPublished   bool             `json:"is_published"`
	IsApproved    bool             `json:"is_approved"`
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int              `json:"review_count"`
	Views         int              `json:"views"`
	SalesCount    int              `json:"sales_count"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type TravelerPhoto struct {
	ID           string    `json:"id"`
	ItineraryID  string    `json:"itinerary_id"`
	UserID       string    `json:"user_id"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Caption      string    `json:"caption"`
	CreatedAt    time.Time `json:"created_at"`
}
