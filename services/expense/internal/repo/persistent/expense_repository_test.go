package persistent

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"itinera/services/expense/internal/entity"
	"itinera/services/expense/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
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

	require.NoError(t, db.AutoMigrate(&model.ExpenseModel{}, &model.ItineraryBudgetModel{}))
	return db
}

func TestCreateAndList_OrderedByCreatedAt(t *testing.T) {
	repo := NewExpenseRepository(setupTestDB(t))
	base := time.Now().Add(-time.Hour)

	late := &entity.Expense{ItineraryID: "it-1", UserID: "u1", DayNumber: 2, Amount: 30, Category: "food", CreatedAt: base.Add(2 * time.Minute)}
	early := &entity.Expense{ItineraryID: "it-1", UserID: "u1", DayNumber: 1, Amount: 10, Category: "transport", CreatedAt: base}
	other := &entity.Expense{ItineraryID: "it-1", UserID: "u2", DayNumber: 1, Amount: 99, Category: "food", CreatedAt: base}

	for _, e := range []*entity.Expense{late, early, other} {
		require.NoError(t, repo.Create(e))
		assert.NotEmpty(t, e.ID)
	}

	got, err := repo.ListByItinerary("u1", "it-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
}

func TestDelete_ScopedToUser(t *testing.T) {
	repo := NewExpenseRepository(setupTestDB(t))

	e := &entity.Expense{ItineraryID: "it-1", UserID: "u1", DayNumber: 1, Amount: 10, Category: "food"}
	require.NoError(t, repo.Create(e))

	assert.ErrorIs(t, repo.Delete(e.ID, "intruder"), ErrNotFound)

	got, err := repo.ListByItinerary("u1", "it-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NoError(t, repo.Delete(e.ID, "u1"))
	got, err = repo.ListByItinerary("u1", "it-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetBudgetSource(t *testing.T) {
	db := setupTestDB(t)
	content := `{"preTrip":{"budgetEstimate":{"daily":"$100-150/day"}},"dailyItinerary":[{"dayNumber":1},{"dayNumber":2}]}`
	require.NoError(t, db.Create(&model.ItineraryBudgetModel{ID: "it-1", Content: datatypes.JSON(content)}).Error)

	repo := NewExpenseRepository(db)
	src, err := repo.GetBudgetSource("it-1")
	require.NoError(t, err)
	assert.Equal(t, "$100-150/day", src.DailyBudget)
	assert.Equal(t, 2, src.DaysInContent)
	assert.Equal(t, 0, src.DurationDays)

	_, err = repo.GetBudgetSource("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
