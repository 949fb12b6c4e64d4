package entity

import "time"

type Expense struct {
	ID          string    `json:"id"`
	ItineraryID string    `json:"itinerary_id"`
	UserID      string    `json:"user_id"`
	DayNumber   int       `json:"day_number"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// BudgetSource is what the tracker needs from the itinerary it follows.
type BudgetSource struct {
	DurationDays  int
	DaysInContent int
	DailyBudget   string
}

type Summary struct {
	TotalSpent       float64            `json:"total_spent"`
	ByCategory       map[string]float64 `json:"by_category"`
	ByDay            map[int]float64    `json:"by_day"`
	DailyBudget      float64            `json:"daily_budget"`
	DailyBudgetText  string             `json:"daily_budget_text"`
	TripDays         int                `json:"trip_days"`
	RecommendedTotal float64            `json:"recommended_total"`
	Remaining        float64            `json:"remaining"`
	OverBudget       bool               `json:"over_budget"`
}
