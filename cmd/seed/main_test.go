package main

import (
	"testing"

	"itinera/pkg/config"
	"itinera/pkg/logger"
	"itinera/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:seed?mode=memory&cache=shared"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	// sqlite has no array columns, so tags are stored as the literal text.
	require.NoError(t, db.Exec(`CREATE TABLE itineraries (
		id TEXT PRIMARY KEY, creator_id TEXT NOT NULL, title TEXT NOT NULL, description TEXT,
		location TEXT, price NUMERIC NOT NULL DEFAULT 0, tags TEXT, duration_days INTEGER DEFAULT 0,
		content TEXT, is_published BOOLEAN DEFAULT FALSE, is_approved BOOLEAN DEFAULT FALSE,
		average_rating NUMERIC DEFAULT 0, review_count INTEGER DEFAULT 0, views INTEGER DEFAULT 0,
		sales_count INTEGER DEFAULT 0, created_at DATETIME, updated_at DATETIME, deleted_at DATETIME)`).Error)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Wallet{}, &models.Transaction{},
		&models.Purchase{}, &models.VerificationOrder{}, &models.Review{}, &models.Expense{},
	))
	return db
}

func TestSeedDatabase_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{VerificationFee: 49900, PaymentCurrency: "INR"}
	log := logger.New()

	require.NoError(t, seedDatabase(db, cfg, "password123", log))
	require.NoError(t, seedDatabase(db, cfg, "password123", log))

	var users, itineraries, purchases int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Itinerary{}).Count(&itineraries)
	db.Model(&models.Purchase{}).Count(&purchases)
	assert.Equal(t, int64(len(demoUsers)), users)
	assert.Equal(t, int64(len(demoItineraries)), itineraries)
	assert.Equal(t, int64(1), purchases)

	var creator models.User
	require.NoError(t, db.Where("role = ?", models.RoleCreator).First(&creator).Error)
	assert.True(t, creator.IsVerified)
	assert.Equal(t, models.VerificationVerified, creator.VerificationStatus)

	var kyoto models.Itinerary
	require.NoError(t, db.Where("title = ?", "Kyoto Secrets").First(&kyoto).Error)
	assert.True(t, kyoto.Visible())
	assert.Equal(t, 5, kyoto.DurationDays)
	assert.Equal(t, 1, kyoto.SalesCount)
	assert.Equal(t, 1, kyoto.ReviewCount)
	assert.Contains(t, string(kyoto.Content), "$100-150/day")

	var traveler, creatorWallet models.Wallet
	require.NoError(t, db.Joins("JOIN users ON users.id = wallets.user_id").Where("users.role = ?", models.RoleTraveler).First(&traveler).Error)
	require.NoError(t, db.Where("user_id = ?", creator.ID).First(&creatorWallet).Error)
	assert.InDelta(t, 500-kyoto.Price, traveler.Balance, 0.001)
	assert.InDelta(t, kyoto.Price, creatorWallet.Balance, 0.001)
}
