package usecase

import (
	"errors"
	"testing"

	"itinera/pkg/logger"
	"itinera/services/analytics/internal/entity"
	"itinera/services/analytics/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAnalyticsRepository struct {
	mock.Mock
}

var _ persistent.AnalyticsRepository = (*MockAnalyticsRepository)(nil)

func (m *MockAnalyticsRepository) GetCreatorItineraries(creatorID string) ([]*entity.ItineraryStats, error) {
	args := m.Called(creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ItineraryStats), args.Error(1)
}

func (m *MockAnalyticsRepository) GetItinerary(itineraryID string) (*entity.ItineraryStats, error) {
	args := m.Called(itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ItineraryStats), args.Error(1)
}

func (m *MockAnalyticsRepository) GetOverview() (*entity.Overview, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Overview), args.Error(1)
}

func dashboard() []*entity.ItineraryStats {
	return []*entity.ItineraryStats{
		{ID: "kyoto", Title: "Kyoto Secrets", IsPublished: true, IsApproved: true, Sales: 3, Revenue: 4500, AverageRating: 5, ReviewCount: 3, Views: 100},
		{ID: "osaka", Title: "Osaka Eats", IsPublished: true, Sales: 0, Revenue: 0, Views: 10},
		{ID: "nara", Title: "Nara Day Trip", IsPublished: true, IsApproved: true, Sales: 1, Revenue: 600, AverageRating: 3, ReviewCount: 1, Views: 20},
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize(dashboard())

	assert.Equal(t, 3, stats.TotalItineraries)
	assert.Equal(t, 3, stats.Published)
	assert.Equal(t, 2, stats.Approved)
	assert.Equal(t, 4, stats.TotalSales)
	assert.Equal(t, 5100.0, stats.TotalRevenue)
	assert.Equal(t, 4, stats.TotalReviews)
	assert.Equal(t, 130, stats.TotalViews)
	// (5*3 + 3*1) / 4
	assert.Equal(t, 4.5, stats.AverageRating)
}

func TestSummarize_NoReviews(t *testing.T) {
	stats := Summarize([]*entity.ItineraryStats{{ID: "a"}, nil})

	assert.Equal(t, 1, stats.TotalItineraries)
	assert.Zero(t, stats.AverageRating)
}

func TestGetItineraryStats(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := NewAnalyticsUseCase(repo, logger.New())

	repo.On("GetItinerary", "kyoto").Return(&entity.ItineraryStats{ID: "kyoto", CreatorID: "creator-1"}, nil)
	repo.On("GetItinerary", "gone").Return(nil, persistent.ErrNotFound)

	stats, err := uc.GetItineraryStats("kyoto", "creator-1")
	require.NoError(t, err)
	assert.Equal(t, "kyoto", stats.ID)

	_, err = uc.GetItineraryStats("kyoto", "creator-2")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.GetItineraryStats("gone", "creator-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRevenue_SortedByRevenue(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := NewAnalyticsUseCase(repo, logger.New())

	repo.On("GetCreatorItineraries", "creator-1").Return(dashboard(), nil)

	rev, err := uc.GetRevenue("creator-1")
	require.NoError(t, err)
	assert.Equal(t, 5100.0, rev.TotalRevenue)
	assert.Equal(t, 4, rev.TotalSales)
	require.Len(t, rev.ByItinerary, 3)
	assert.Equal(t, "kyoto", rev.ByItinerary[0].ItineraryID)
	assert.Equal(t, "nara", rev.ByItinerary[1].ItineraryID)
	assert.Equal(t, "osaka", rev.ByItinerary[2].ItineraryID)
}

func TestGetCreatorStats_RepoError(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := NewAnalyticsUseCase(repo, logger.New())

	repo.On("GetCreatorItineraries", "creator-1").Return(nil, errors.New("timeout"))

	_, err := uc.GetCreatorStats("creator-1")
	assert.ErrorContains(t, err, "timeout")
}
