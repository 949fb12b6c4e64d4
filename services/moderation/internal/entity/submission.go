package entity

import "time"

// Submission is an itinerary as the admin review queue sees it.
type Submission struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creator_id"`
	CreatorName string    `json:"creator_name"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	IsPublished bool      `json:"is_published"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusPending  StatusFilter = "pending"
	StatusApproved StatusFilter = "approved"
)

func (f StatusFilter) Valid() bool {
	switch f {
	case StatusAll, StatusPending, StatusApproved:
		return true
	}
	return false
}

func (f StatusFilter) Matches(s *Submission) bool {
	switch f {
	case StatusPending:
		return !s.IsApproved
	case StatusApproved:
		return s.IsApproved
	default:
		return true
	}
}
