package persistent

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"itinera/services/moderation/internal/model"

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
	require.NoError(t, db.AutoMigrate(&model.ItineraryModel{}, &model.CreatorModel{}))

	now := time.Now()
	require.NoError(t, db.Create(&model.CreatorModel{ID: "u1", Username: "aiko"}).Error)
	require.NoError(t, db.Create([]model.ItineraryModel{
		{ID: "kyoto", CreatorID: "u1", Title: "Kyoto Secrets", Price: 1500, IsPublished: true, CreatedAt: now.Add(-time.Hour)},
		{ID: "paris", CreatorID: "u1", Title: "Paris Nights", Price: 6000, IsPublished: true, IsApproved: true, CreatedAt: now},
		{ID: "orphan", CreatorID: "ghost", Title: "Orphan", CreatedAt: now.Add(-2 * time.Hour)},
	}).Error)
	return db
}

func TestListSubmissions(t *testing.T) {
	repo := NewModerationRepository(setupTestDB(t))

	got, err := repo.ListSubmissions()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "paris", got[0].ID)
	assert.Equal(t, "aiko", got[0].CreatorName)
	assert.Equal(t, "", got[2].CreatorName)
}

func TestSetApproved_OnlyTouchesOneRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewModerationRepository(db)

	require.NoError(t, repo.SetApproved("kyoto", true))

	kyoto, err := repo.GetSubmission("kyoto")
	require.NoError(t, err)
	assert.True(t, kyoto.IsApproved)

	orphan, err := repo.GetSubmission("orphan")
	require.NoError(t, err)
	assert.False(t, orphan.IsApproved)

	require.NoError(t, repo.SetApproved("paris", false))
	paris, err := repo.GetSubmission("paris")
	require.NoError(t, err)
	assert.False(t, paris.IsApproved)
}

func TestSetApproved_Missing(t *testing.T) {
	repo := NewModerationRepository(setupTestDB(t))

	assert.ErrorIs(t, repo.SetApproved("nope", true), ErrNotFound)
	_, err := repo.GetSubmission("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetApproved_SkipsDeleted(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Delete(&model.ItineraryModel{ID: "kyoto"}).Error)

	repo := NewModerationRepository(db)
	assert.ErrorIs(t, repo.SetApproved("kyoto", true), ErrNotFound)
}
