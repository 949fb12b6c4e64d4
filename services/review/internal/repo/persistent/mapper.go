package persistent

import (
	"itinera/services/review/internal/entity"
	"itinera/services/review/internal/model"
)

func ToReviewEntity(m *model.ReviewModel) *entity.Review {
	if m == nil {
		return nil
	}
	return &entity.Review{
		ID:          m.ID,
		ItineraryID: m.ItineraryID,
		UserID:      m.UserID,
		Rating:      m.Rating,
		Comment:     m.Comment,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToReviewEntityFromRow(row *model.ReviewRow) *entity.Review {
	e := ToReviewEntity(&row.ReviewModel)
	e.Username = row.Username
	return e
}

func ToTargetEntity(m *model.ItineraryModel) *entity.Target {
	return &entity.Target{
		ID:            m.ID,
		CreatorID:     m.CreatorID,
		Title:         m.Title,
		AverageRating: m.AverageRating,
		ReviewCount:   m.ReviewCount,
	}
}
