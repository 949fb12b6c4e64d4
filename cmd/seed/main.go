package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"itinera/pkg/cache"
	"itinera/pkg/config"
	"itinera/pkg/database"
	"itinera/pkg/logger"
	"itinera/pkg/models"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedUser struct {
	email    string
	username string
	fullName string
	role     models.UserRole
	verified bool
	balance  float64
}

type seedItinerary struct {
	title       string
	subtitle    string
	location    string
	description string
	price       float64
	tags        []string
	budget      string
	days        []map[string]interface{}
}

var demoUsers = []seedUser{
	{"admin@itinera.test", "admin", "Site Admin", models.RoleAdmin, false, 0},
	{"yuki@itinera.test", "yuki_travels", "Yuki Tanaka", models.RoleCreator, true, 0},
	{"sam@itinera.test", "sam_explores", "Sam Rivera", models.RoleTraveler, false, 500},
}

var demoItineraries = []seedItinerary{
	{
		title:       "Kyoto Secrets",
		subtitle:    "Temples, tea houses and quiet lanes",
		location:    "Kyoto, Japan",
		description: "Five slow days away from the tour buses, built around early mornings and local food.",
		price:       29,
		tags:        []string{"culture", "food", "asia"},
		budget:      "$100-150/day",
		days: []map[string]interface{}{
			day("Higashiyama at dawn", "Kiyomizu-dera before the crowds", "Sannenzaka and Ninenzaka", "Gion walk"),
			day("Arashiyama", "Bamboo grove at 7am", "Okochi Sanso villa", "Kaiseki dinner"),
			day("Fushimi Inari", "Full summit hike", "Sake tasting in Fushimi", "Pontocho alley"),
			day("Tea country", "Uji day trip", "Matcha workshop", "Riverside izakaya"),
			day("Northern hills", "Kurama to Kibune hike", "Onsen at Kurama", "Farewell yakitori"),
		},
	},
	{
		title:       "Paris Nights",
		subtitle:    "The city after dark",
		location:    "Paris, France",
		description: "Three evenings of jazz cellars, late bistros and rooftop views.",
		price:       19,
		tags:        []string{"nightlife", "food", "europe"},
		budget:      "€120/day",
		days: []map[string]interface{}{
			day("Left Bank", "Luxembourg Gardens", "Shakespeare and Company", "Jazz at Caveau de la Huchette"),
			day("Montmartre", "Sacré-Cœur steps", "Painters of Place du Tertre", "Cabaret and late supper"),
			day("Canal Saint-Martin", "Market breakfast", "Canal-side picnic", "Rooftop bar in Belleville"),
		},
	},
}

func day(title, morning, afternoon, evening string) map[string]interface{} {
	return map[string]interface{}{
		"title":      title,
		"morning":    morning,
		"afternoon":  afternoon,
		"evening":    evening,
		"activities": []interface{}{},
	}
}

func main() {
	var password string
	flag.StringVar(&password, "password", "password123", "Password for every demo account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, cfg, password, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	// Explore listings are cached, so drop them after new rows land.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, explore cache not cleared: %v", err)
	} else {
		defer redisClient.Close()
		if err := cache.InvalidateExplore(context.Background(), redisClient); err != nil {
			log.Warn("Failed to clear explore cache: %v", err)
		}
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, cfg *config.Config, password string, log *logger.Logger) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	var creatorID, travelerID string
	for _, u := range demoUsers {
		id, err := ensureUser(db, cfg, u, string(hashedPassword), log)
		if err != nil {
			return err
		}
		switch u.role {
		case models.RoleCreator:
			creatorID = id
		case models.RoleTraveler:
			travelerID = id
		}
	}

	if creatorID == "" || travelerID == "" {
		return errors.New("demo creator and traveler are required")
	}

	var first *models.Itinerary
	for _, it := range demoItineraries {
		row, err := ensureItinerary(db, creatorID, it, log)
		if err != nil {
			return err
		}
		if first == nil {
			first = row
		}
	}

	return seedActivity(db, first, travelerID, log)
}

func ensureUser(db *gorm.DB, cfg *config.Config, u seedUser, hashedPassword string, log *logger.Logger) (string, error) {
	var existing models.User
	result := db.Where("email = ? OR username = ?", u.email, u.username).First(&existing)
	if result.Error == nil {
		log.Info("User %s already exists, skipping", u.username)
		return existing.ID, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to look up %s: %w", u.username, result.Error)
	}

	status := models.VerificationIdle
	if u.verified {
		status = models.VerificationVerified
	}

	user := &models.User{
		Email:              u.email,
		Username:           u.username,
		Password:           hashedPassword,
		FullName:           u.fullName,
		Role:               u.role,
		IsVerified:         u.verified,
		VerificationStatus: status,
		IsActive:           true,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.username, err)
		}
		wallet := &models.Wallet{UserID: user.ID, Balance: u.balance}
		if err := tx.Create(wallet).Error; err != nil {
			return fmt.Errorf("failed to create wallet for %s: %w", u.username, err)
		}
		if u.balance > 0 {
			topup := &models.Transaction{
				UserID:       user.ID,
				Type:         models.TransactionTypeTopUp,
				Amount:       u.balance,
				BalanceAfter: u.balance,
			}
			if err := tx.Create(topup).Error; err != nil {
				return fmt.Errorf("failed to record top-up for %s: %w", u.username, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if u.verified {
		order := &models.VerificationOrder{
			UserID:   user.ID,
			OrderID:  "seed_" + user.ID[:8],
			Amount:   cfg.VerificationFee,
			Currency: cfg.PaymentCurrency,
			Status:   "paid",
		}
		if err := db.Create(order).Error; err != nil {
			log.Warn("Failed to record verification order for %s: %v", u.username, err)
		}
	}

	log.Info("Created %s: %s (%s)", u.role, u.username, u.email)
	return user.ID, nil
}

func ensureItinerary(db *gorm.DB, creatorID string, it seedItinerary, log *logger.Logger) (*models.Itinerary, error) {
	var existing models.Itinerary
	result := db.Where("creator_id = ? AND title = ?", creatorID, it.title).First(&existing)
	if result.Error == nil {
		log.Info("Itinerary %q already exists, skipping", it.title)
		return &existing, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up %q: %w", it.title, result.Error)
	}

	for i := range it.days {
		it.days[i]["dayNumber"] = i + 1
	}

	content, err := json.Marshal(map[string]interface{}{
		"cover": map[string]interface{}{
			"title":       it.title,
			"subtitle":    it.subtitle,
			"destination": it.location,
			"duration":    fmt.Sprintf("%d days", len(it.days)),
			"description": it.description,
			"price":       it.price,
		},
		"preTrip": map[string]interface{}{
			"budgetEstimate": map[string]interface{}{"daily": it.budget},
		},
		"dailyItinerary": it.days,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q: %w", it.title, err)
	}

	row := &models.Itinerary{
		CreatorID:    creatorID,
		Title:        it.title,
		Description:  it.description,
		Location:     it.location,
		Price:        it.price,
		Tags:         pq.StringArray(it.tags),
		DurationDays: len(it.days),
		Content:      datatypes.JSON(content),
		IsPublished:  true,
		IsApproved:   true,
	}
	if err := db.Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", it.title, err)
	}

	log.Info("Created itinerary: %s", it.title)
	return row, nil
}

// seedActivity has the traveler buy, review and start budgeting the first
// guide, moving money between wallets the same way a real purchase does.
func seedActivity(db *gorm.DB, it *models.Itinerary, travelerID string, log *logger.Logger) error {
	var count int64
	if err := db.Model(&models.Purchase{}).Where("user_id = ? AND itinerary_id = ?", travelerID, it.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up purchase: %w", err)
	}
	if count > 0 {
		log.Info("Demo purchase already exists, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var buyer, seller models.Wallet
		if err := tx.Where("user_id = ?", travelerID).First(&buyer).Error; err != nil {
			return fmt.Errorf("failed to load traveler wallet: %w", err)
		}
		if err := tx.Where("user_id = ?", it.CreatorID).First(&seller).Error; err != nil {
			return fmt.Errorf("failed to load creator wallet: %w", err)
		}

		itineraryID := it.ID
		entries := []*models.Transaction{
			{UserID: travelerID, ItineraryID: &itineraryID, Type: models.TransactionTypePurchase, Amount: it.Price,
				BalanceBefore: buyer.Balance, BalanceAfter: buyer.Balance - it.Price},
			{UserID: it.CreatorID, ItineraryID: &itineraryID, Type: models.TransactionTypeEarn, Amount: it.Price,
				BalanceBefore: seller.Balance, BalanceAfter: seller.Balance + it.Price},
		}
		for _, e := range entries {
			if err := tx.Create(e).Error; err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}
		}

		if err := tx.Model(&buyer).Update("balance", buyer.Balance-it.Price).Error; err != nil {
			return err
		}
		if err := tx.Model(&seller).Update("balance", seller.Balance+it.Price).Error; err != nil {
			return err
		}

		if err := tx.Create(&models.Purchase{UserID: travelerID, ItineraryID: it.ID, Amount: it.Price}).Error; err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}

		if err := tx.Create(&models.Review{ItineraryID: it.ID, UserID: travelerID, Rating: 5, Comment: "Worth every yen."}).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		expense := &models.Expense{ItineraryID: it.ID, UserID: travelerID, DayNumber: 1, Amount: 42.5, Category: "food", Description: "Tofu lunch in Higashiyama"}
		if err := tx.Create(expense).Error; err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}

		if err := tx.Model(&models.Itinerary{}).Where("id = ?", it.ID).Updates(map[string]interface{}{
			"sales_count":    gorm.Expr("sales_count + 1"),
			"average_rating": 5,
			"review_count":   1,
		}).Error; err != nil {
			return fmt.Errorf("failed to update itinerary counters: %w", err)
		}

		log.Info("Seeded purchase, review and expense for %q", it.Title)
		return nil
	})
}
