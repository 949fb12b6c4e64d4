package entity

import "time"

// Listing is an itinerary as shown on the discovery page, denormalized with
// its creator's public profile.
type Listing struct {
	ID              string    `json:"id"`
	CreatorID       string    `json:"creator_id"`
	CreatorName     string    `json:"creator_name"`
	CreatorVerified bool      `json:"creator_verified"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	CoverImage      string    `json:"cover_image"`
	Price           float64   `json:"price"`
	Tags            []string  `json:"tags"`
	DurationDays    int       `json:"duration_days"`
	AverageRating   float64   `json:"average_rating"`
	ReviewCount     int       `json:"review_count"`
	Views           int       `json:"views"`
	SalesCount      int       `json:"sales_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
