package persistent

import (
	"fmt"
	"strings"
	"testing"

	"itinera/services/analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.ItineraryModel{},
		&model.TransactionModel{},
		&model.PurchaseModel{},
		&model.UserModel{},
	))
	return db
}

func strPtr(s string) *string { return &s }

func seed(t *testing.T, db *gorm.DB) {
	rows := []interface{}{
		&model.UserModel{ID: "admin", Role: "admin"},
		&model.UserModel{ID: "creator-1", Role: "creator", IsVerified: true},
		&model.UserModel{ID: "creator-2", Role: "creator"},
		&model.UserModel{ID: "traveler-1", Role: "traveler"},

		&model.ItineraryModel{ID: "kyoto", CreatorID: "creator-1", Title: "Kyoto Secrets", Price: 1500, IsPublished: true, IsApproved: true, SalesCount: 2, AverageRating: 4.5, ReviewCount: 2, Views: 40},
		&model.ItineraryModel{ID: "osaka", CreatorID: "creator-1", Title: "Osaka Eats", Price: 800, IsPublished: true},
		&model.ItineraryModel{ID: "paris", CreatorID: "creator-2", Title: "Paris Nights", Price: 2000, IsApproved: true, SalesCount: 1},

		&model.TransactionModel{ID: "t1", UserID: "creator-1", ItineraryID: strPtr("kyoto"), Type: "earn", Amount: 1500},
		&model.TransactionModel{ID: "t2", UserID: "creator-1", ItineraryID: strPtr("kyoto"), Type: "earn", Amount: 1500},
		&model.TransactionModel{ID: "t3", UserID: "traveler-1", ItineraryID: strPtr("kyoto"), Type: "purchase", Amount: -1500},
		&model.TransactionModel{ID: "t4", UserID: "creator-1", Type: "topup", Amount: 100},
		&model.TransactionModel{ID: "t5", UserID: "creator-2", ItineraryID: strPtr("paris"), Type: "earn", Amount: 2000},

		&model.PurchaseModel{ID: "p1", UserID: "traveler-1", ItineraryID: "kyoto", Amount: 1500},
		&model.PurchaseModel{ID: "p2", UserID: "admin", ItineraryID: "kyoto", Amount: 1500},
		&model.PurchaseModel{ID: "p3", UserID: "traveler-1", ItineraryID: "paris", Amount: 2000},
	}
	for _, row := range rows {
		require.NoError(t, db.Create(row).Error)
	}
}

func TestGetCreatorItineraries_RevenueFromEarnLedger(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db)
	repo := NewAnalyticsRepository(db)

	stats, err := repo.GetCreatorItineraries("creator-1")
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byID := map[string]float64{}
	for _, s := range stats {
		byID[s.ID] = s.Revenue
	}
	assert.Equal(t, 3000.0, byID["kyoto"])
	assert.Equal(t, 0.0, byID["osaka"])
}

func TestGetItinerary(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db)
	repo := NewAnalyticsRepository(db)

	s, err := repo.GetItinerary("paris")
	require.NoError(t, err)
	assert.Equal(t, "creator-2", s.CreatorID)
	assert.Equal(t, 2000.0, s.Revenue)
	assert.Equal(t, 1, s.Sales)

	_, err = repo.GetItinerary("nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOverview(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db)
	repo := NewAnalyticsRepository(db)

	o, err := repo.GetOverview()
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.PendingApprovals)
	assert.Equal(t, int64(4), o.TotalUsers)
	assert.Equal(t, int64(2), o.TotalCreators)
	assert.Equal(t, int64(1), o.VerifiedCreators)
	assert.Equal(t, int64(3), o.TotalPurchases)
	assert.Equal(t, 5000.0, o.GrossVolume)
}
