package usecase

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"itinera/pkg/logger"
	"itinera/services/analytics/internal/entity"
	"itinera/services/analytics/internal/repo/persistent"
)

var (
	ErrNotFound  = errors.New("itinerary not found")
	ErrForbidden = errors.New("you can only view stats for your own itineraries")
)

type AnalyticsUseCase interface {
	GetCreatorStats(creatorID string) (*entity.CreatorStats, error)
	GetItineraryStats(itineraryID, creatorID string) (*entity.ItineraryStats, error)
	GetRevenue(creatorID string) (*entity.Revenue, error)
	GetOverview() (*entity.Overview, error)
}

type analyticsUseCase struct {
	analyticsRepo persistent.AnalyticsRepository
	logger        *logger.Logger
}

func NewAnalyticsUseCase(analyticsRepo persistent.AnalyticsRepository, logger *logger.Logger) AnalyticsUseCase {
	return &analyticsUseCase{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// Summarize folds per-itinerary stats into the creator dashboard. The average
// rating is weighted by each itinerary's review count.
func Summarize(items []*entity.ItineraryStats) entity.CreatorStats {
	var out entity.CreatorStats
	var weighted float64

	for _, it := range items {
		if it == nil {
			continue
		}
		out.TotalItineraries++
		if it.IsPublished {
			out.Published++
		}
		if it.IsApproved {
			out.Approved++
		}
		out.TotalSales += it.Sales
		out.TotalRevenue += it.Revenue
		out.TotalReviews += it.ReviewCount
		out.TotalViews += it.Views
		weighted += it.AverageRating * float64(it.ReviewCount)
	}

	if out.TotalReviews > 0 {
		out.AverageRating = math.Round(weighted/float64(out.TotalReviews)*100) / 100
	}
	return out
}

func (uc *analyticsUseCase) GetCreatorStats(creatorID string) (*entity.CreatorStats, error) {
	items, err := uc.analyticsRepo.GetCreatorItineraries(creatorID)
	if err != nil {
		uc.logger.Error("Failed to get creator itineraries: %v", err)
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := Summarize(items)
	return &stats, nil
}

func (uc *analyticsUseCase) GetItineraryStats(itineraryID, creatorID string) (*entity.ItineraryStats, error) {
	stats, err := uc.analyticsRepo.GetItinerary(itineraryID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get itinerary stats: %w", err)
	}

	if stats.CreatorID != creatorID {
		return nil, ErrForbidden
	}
	return stats, nil
}

func (uc *analyticsUseCase) GetRevenue(creatorID string) (*entity.Revenue, error) {
	items, err := uc.analyticsRepo.GetCreatorItineraries(creatorID)
	if err != nil {
		uc.logger.Error("Failed to get revenue: %v", err)
		return nil, fmt.Errorf("failed to get revenue: %w", err)
	}

	rev := &entity.Revenue{ByItinerary: make([]*entity.ItineraryRevenue, 0, len(items))}
	for _, it := range items {
		rev.TotalRevenue += it.Revenue
		rev.TotalSales += it.Sales
		rev.ByItinerary = append(rev.ByItinerary, &entity.ItineraryRevenue{
			ItineraryID: it.ID,
			Title:       it.Title,
			Sales:       it.Sales,
			Revenue:     it.Revenue,
		})
	}
	sort.SliceStable(rev.ByItinerary, func(i, j int) bool {
		return rev.ByItinerary[i].Revenue > rev.ByItinerary[j].Revenue
	})

	return rev, nil
}

func (uc *analyticsUseCase) GetOverview() (*entity.Overview, error) {
	o, err := uc.analyticsRepo.GetOverview()
	if err != nil {
		uc.logger.Error("Failed to get overview: %v", err)
		return nil, fmt.Errorf("failed to get overview: %w", err)
	}
	return o, nil
}
