package entity

import "strings"

// ItineraryContent is the full guide a creator assembles in the builder. It is
// replaced wholesale on every save.
type ItineraryContent struct {
	Cover             Cover              `json:"cover"`
	PreTrip           PreTrip            `json:"preTrip"`
	Logistics         Logistics          `json:"logistics"`
	Arrival           Arrival            `json:"arrival"`
	DailyItinerary    []Day              `json:"dailyItinerary"`
	Food              Food               `json:"food"`
	Transport         Transport          `json:"transport"`
	Secrets           []Secret           `json:"secrets"`
	Safety            Safety             `json:"safety"`
	Customization     Customization      `json:"customization"`
	Shopping          Shopping           `json:"shopping"`
	Departure         Departure          `json:"departure"`
	PostTrip          PostTrip           `json:"postTrip"`
	Bonus             Bonus              `json:"bonus"`
	AffiliateProducts []AffiliateProduct `json:"affiliateProducts"`
}

type Cover struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Destination string   `json:"destination"`
	Duration    string   `json:"duration"`
	CoverImage  string   `json:"coverImage"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
}

type BudgetEstimate struct {
	Daily    string `json:"daily"`
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type PreTrip struct {
	BestTimeToVisit  string         `json:"bestTimeToVisit"`
	VisaRequirements string         `json:"visaRequirements"`
	Vaccinations     string         `json:"vaccinations"`
	PackingList      []string       `json:"packingList"`
	BudgetEstimate   BudgetEstimate `json:"budgetEstimate"`
	BookingTips      string         `json:"bookingTips"`
}

type Accommodation struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Area        string `json:"area"`
	PriceRange  string `json:"priceRange"`
	BookingLink string `json:"bookingLink"`
	Notes       string `json:"notes"`
}

type Logistics struct {
	Flights       string          `json:"flights"`
	Accommodation []Accommodation `json:"accommodation"`
	Insurance     string          `json:"insurance"`
	SimCard       string          `json:"simCard"`
	Currency      string          `json:"currency"`
}

type Arrival struct {
	AirportTransfer string `json:"airportTransfer"`
	FirstDayTips    string `json:"firstDayTips"`
	CheckInTips     string `json:"checkInTips"`
}

type Activity struct {
	Time        string `json:"time"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Cost        string `json:"cost"`
	Duration    string `json:"duration"`
}

type Day struct {
	DayNumber     int        `json:"dayNumber"`
	Title         string     `json:"title"`
	Morning       string     `json:"morning"`
	Afternoon     string     `json:"afternoon"`
	Evening       string     `json:"evening"`
	Meals         string     `json:"meals"`
	Tips          string     `json:"tips"`
	EstimatedCost string     `json:"estimatedCost"`
	Activities    []Activity `json:"activities"`
}

type Dish struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Where       string `json:"where"`
	Price       string `json:"price"`
}

type Restaurant struct {
	Name       string `json:"name"`
	Cuisine    string `json:"cuisine"`
	PriceRange string `json:"priceRange"`
	Location   string `json:"location"`
	MustOrder  string `json:"mustOrder"`
}

type Food struct {
	MustTry     []Dish       `json:"mustTry"`
	Restaurants []Restaurant `json:"restaurants"`
	DietaryTips string       `json:"dietaryTips"`
}

type TransportOption struct {
	Mode string `json:"mode"`
	Cost string `json:"cost"`
	Tips string `json:"tips"`
}

type Transport struct {
	Options []TransportOption `json:"options"`
	Apps    []string          `json:"apps"`
	Passes  string            `json:"passes"`
}

type Secret struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type EmergencyNumber struct {
	Service string `json:"service"`
	Number  string `json:"number"`
}

type Safety struct {
	EmergencyNumbers []EmergencyNumber `json:"emergencyNumbers"`
	Scams            []string          `json:"scams"`
	HealthTips       string            `json:"healthTips"`
	AreasToAvoid     string            `json:"areasToAvoid"`
}

type Customization struct {
	BudgetVersion string `json:"budgetVersion"`
	LuxuryVersion string `json:"luxuryVersion"`
	FamilyTips    string `json:"familyTips"`
	SoloTips      string `json:"soloTips"`
}

type Market struct {
	Name    string `json:"name"`
	BestFor string `json:"bestFor"`
	Hours   string `json:"hours"`
}

type Shopping struct {
	Markets        []Market `json:"markets"`
	Souvenirs      []string `json:"souvenirs"`
	BargainingTips string   `json:"bargainingTips"`
}

type Departure struct {
	CheckoutTips string `json:"checkoutTips"`
	AirportTips  string `json:"airportTips"`
	LastMinute   string `json:"lastMinute"`
}

type PostTrip struct {
	PhotoTips        string   `json:"photoTips"`
	ReviewReminder   string   `json:"reviewReminder"`
	NextDestinations []string `json:"nextDestinations"`
}

type Phrase struct {
	Phrase  string `json:"phrase"`
	Meaning string `json:"meaning"`
}

type Bonus struct {
	Phrases   []Phrase `json:"phrases"`
	Playlists []string `json:"playlists"`
	Resources []string `json:"resources"`
}

type AffiliateProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	Price       string `json:"price"`
}

// NormalizeDays renumbers the daily plan so that dayNumber == position+1.
func (c *ItineraryContent) NormalizeDays() {
	for i := range c.DailyItinerary {
		c.DailyItinerary[i].DayNumber = i + 1
	}
}

// Preview is what a visitor without access sees: the cover, the pre-trip
// basics and the first maxDays days. Every other section stays empty.
func (c ItineraryContent) Preview(maxDays int) ItineraryContent {
	if maxDays < 0 {
		maxDays = 0
	}
	n := min(maxDays, len(c.DailyItinerary))

	p := ItineraryContent{Cover: c.Cover, PreTrip: c.PreTrip}
	if c.PreTrip.PackingList != nil {
		p.PreTrip.PackingList = append([]string(nil), c.PreTrip.PackingList...)
	}
	if n > 0 {
		p.DailyItinerary = make([]Day, n)
		copy(p.DailyItinerary, c.DailyItinerary[:n])
	}
	return p
}

func nonEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func anyNonEmpty(values []string) bool {
	return nonEmpty(values...)
}
