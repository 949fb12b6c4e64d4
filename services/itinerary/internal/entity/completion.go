package entity

import (
	"math"
	"sort"
)

// TotalSteps is the number of builder steps, fifteen content sections plus
// pricing and the final review.
const TotalSteps = 17

type Step struct {
	ID      int    `json:"id"`
	Key     string `json:"key"`
	Title   string `json:"title"`
	Section string `json:"section,omitempty"`
}

var Steps = []Step{
	{ID: 1, Key: "cover", Title: "Cover", Section: "cover"},
	{ID: 2, Key: "pre-trip", Title: "Pre-Trip Planning", Section: "preTrip"},
	{ID: 3, Key: "logistics", Title: "Logistics", Section: "logistics"},
	{ID: 4, Key: "arrival", Title: "Arrival", Section: "arrival"},
	{ID: 5, Key: "daily", Title: "Daily Itinerary", Section: "dailyItinerary"},
	{ID: 6, Key: "food", Title: "Food & Drink", Section: "food"},
	{ID: 7, Key: "transport", Title: "Getting Around", Section: "transport"},
	{ID: 8, Key: "secrets", Title: "Local Secrets", Section: "secrets"},
	{ID: 9, Key: "safety", Title: "Safety", Section: "safety"},
	{ID: 10, Key: "customization", Title: "Customization", Section: "customization"},
	{ID: 11, Key: "shopping", Title: "Shopping", Section: "shopping"},
	{ID: 12, Key: "departure", Title: "Departure", Section: "departure"},
	{ID: 13, Key: "post-trip", Title: "Post-Trip", Section: "postTrip"},
	{ID: 14, Key: "bonus", Title: "Bonus", Section: "bonus"},
	{ID: 15, Key: "affiliate", Title: "Recommended Gear", Section: "affiliateProducts"},
	{ID: 16, Key: "pricing", Title: "Pricing & Summary"},
	{ID: 17, Key: "publish", Title: "Review & Publish"},
}

type Progress struct {
	CompletedSteps []int `json:"completed_steps"`
	Percent        int   `json:"percent"`
	TotalSteps     int   `json:"total_steps"`
}

// CheckSectionCompletion reports whether the section behind a builder step has
// enough content to count as done. Unknown steps are never complete.
func CheckSectionCompletion(step int, c *ItineraryContent) bool {
	if c == nil {
		return false
	}

	switch step {
	case 1:
		return nonEmpty(c.Cover.Title) && nonEmpty(c.Cover.Destination)
	case 2:
		return nonEmpty(c.PreTrip.BestTimeToVisit) || anyNonEmpty(c.PreTrip.PackingList)
	case 3:
		return len(c.Logistics.Accommodation) > 0 || nonEmpty(c.Logistics.Flights)
	case 4:
		return nonEmpty(c.Arrival.AirportTransfer)
	case 5:
		return len(c.DailyItinerary) > 0
	case 6:
		return len(c.Food.MustTry) > 0 || len(c.Food.Restaurants) > 0
	case 7:
		return len(c.Transport.Options) > 0
	case 8:
		return len(c.Secrets) > 0
	case 9:
		return len(c.Safety.EmergencyNumbers) > 0 || anyNonEmpty(c.Safety.Scams)
	case 10:
		cu := c.Customization
		return nonEmpty(cu.BudgetVersion, cu.LuxuryVersion, cu.FamilyTips, cu.SoloTips)
	case 11:
		return len(c.Shopping.Markets) > 0 || anyNonEmpty(c.Shopping.Souvenirs)
	case 12:
		return nonEmpty(c.Departure.CheckoutTips, c.Departure.AirportTips)
	case 13:
		return nonEmpty(c.PostTrip.PhotoTips, c.PostTrip.ReviewReminder) || anyNonEmpty(c.PostTrip.NextDestinations)
	case 14:
		return len(c.Bonus.Phrases) > 0 || anyNonEmpty(c.Bonus.Playlists) || anyNonEmpty(c.Bonus.Resources)
	case 15:
		return len(c.AffiliateProducts) > 0
	case 16:
		return nonEmpty(c.Cover.Description) && c.Cover.Price != nil && *c.Cover.Price >= 0
	case 17:
		return CheckSectionCompletion(1, c) && CheckSectionCompletion(5, c)
	}
	return false
}

// CompletedSteps recomputes the finished steps from scratch, ascending.
func CompletedSteps(c *ItineraryContent) []int {
	done := make([]int, 0, TotalSteps)
	for _, s := range Steps {
		if CheckSectionCompletion(s.ID, c) {
			done = append(done, s.ID)
		}
	}
	sort.Ints(done)
	return done
}

func CompletionPercent(c *ItineraryContent) int {
	return percentOf(len(CompletedSteps(c)))
}

func ProgressOf(c *ItineraryContent) Progress {
	done := CompletedSteps(c)
	return Progress{
		CompletedSteps: done,
		Percent:        percentOf(len(done)),
		TotalSteps:     TotalSteps,
	}
}

func percentOf(done int) int {
	return int(math.Round(float64(done) * 100 / TotalSteps))
}

// ReadyToPublish is the gate for flipping is_published on.
func ReadyToPublish(c *ItineraryContent) bool {
	return CheckSectionCompletion(17, c)
}
