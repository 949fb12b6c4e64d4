package persistent

import (
	"itinera/services/analytics/internal/entity"
	"itinera/services/analytics/internal/model"
)

func ToItineraryStats(m *model.ItineraryModel, revenue float64) *entity.ItineraryStats {
	if m == nil {
		return nil
	}
	return &entity.ItineraryStats{
		ID:            m.ID,
		CreatorID:     m.CreatorID,
		Title:         m.Title,
		Price:         m.Price,
		IsPublished:   m.IsPublished,
		IsApproved:    m.IsApproved,
		Sales:         m.SalesCount,
		Revenue:       revenue,
		AverageRating: m.AverageRating,
		ReviewCount:   m.ReviewCount,
		Views:         m.Views,
	}
}
