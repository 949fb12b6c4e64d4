package entity

// ItineraryStats is one itinerary as seen from its creator's dashboard.
type ItineraryStats struct {
	ID            string  `json:"itinerary_id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	IsPublished   bool    `json:"is_published"`
	IsApproved    bool    `json:"is_approved"`
	Sales         int     `json:"sales"`
	Revenue       float64 `json:"revenue"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
	Views         int     `json:"views"`

	CreatorID string `json:"-"`
}

type CreatorStats struct {
	TotalItineraries int     `json:"total_itineraries"`
	Published        int     `json:"published"`
	Approved         int     `json:"approved"`
	TotalSales       int     `json:"total_sales"`
	TotalRevenue     float64 `json:"total_revenue"`
	AverageRating    float64 `json:"average_rating"`
	TotalReviews     int     `json:"total_reviews"`
	TotalViews       int     `json:"total_views"`
}

type ItineraryRevenue struct {
	ItineraryID string  `json:"itinerary_id"`
	Title       string  `json:"title"`
	Sales       int     `json:"sales"`
	Revenue     float64 `json:"revenue"`
}

type Revenue struct {
	TotalRevenue float64             `json:"total_revenue"`
	TotalSales   int                 `json:"total_sales"`
	ByItinerary  []*ItineraryRevenue `json:"by_itinerary"`
}

type Overview struct {
	PendingApprovals int64   `json:"pending_approvals"`
	TotalUsers       int64   `json:"total_users"`
	TotalCreators    int64   `json:"total_creators"`
	VerifiedCreators int64   `json:"verified_creators"`
	TotalPurchases   int64   `json:"total_purchases"`
	GrossVolume      float64 `json:"gross_volume"`
}
