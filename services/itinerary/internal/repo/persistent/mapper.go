package persistent

import (
	"encoding/json"
	"fmt"

	"itinera/services/itinerary/internal/entity"
	"itinera/services/itinerary/internal/model"

	"gorm.io/datatypes"
)

func ToItineraryEntity(m *model.ItineraryModel) (*entity.Itinerary, error) {
	if m == nil {
		return nil, nil
	}

	it := &entity.Itinerary{
		ID:            m.ID,
		CreatorID:     m.CreatorID,
		Title:         m.Title,
		Description:   m.Description,
		Location:      m.Location,
		Price:         m.Price,
		Tags:          []string(m.Tags),
		DurationDays:  m.DurationDays,
		IsPublished:   m.IsPublished,
		IsApproved:    m.IsApproved,
		AverageRating: m.AverageRating,
		ReviewCount:   m.ReviewCount,
		Views:         m.Views,
		SalesCount:    m.SalesCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if it.Tags == nil {
		it.Tags = []string{}
	}

	if len(m.Content) > 0 {
		if err := json.Unmarshal(m.Content, &it.Content); err != nil {
			return nil, fmt.Errorf("decode content of itinerary %s: %w", m.ID, err)
		}
	}

	return it, nil
}

func ToItineraryModel(e *entity.Itinerary) (*model.ItineraryModel, error) {
	if e == nil {
		return nil, nil
	}

	content, err := json.Marshal(e.Content)
	if err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}

	return &model.ItineraryModel{
		ID:            e.ID,
		CreatorID:     e.CreatorID,
		Title:         e.Title,
		Description:   e.Description,
		Location:      e.Location,
		Price:         e.Price,
		Tags:          e.Tags,
		DurationDays:  e.DurationDays,
		Content:       datatypes.JSON(content),
		IsPublished:   e.IsPublished,
		IsApproved:    e.IsApproved,
		AverageRating: e.AverageRating,
		ReviewCount:   e.ReviewCount,
		Views:         e.Views,
		SalesCount:    e.SalesCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}, nil
}

func ToPhotoEntity(m *model.TravelerPhotoModel) *entity.TravelerPhoto {
	if m == nil {
		return nil
	}

	return &entity.TravelerPhoto{
		ID:           m.ID,
		ItineraryID:  m.ItineraryID,
		UserID:       m.UserID,
		ImageURL:     m.ImageURL,
		ThumbnailURL: m.ThumbnailURL,
		Caption:      m.Caption,
		CreatedAt:    m.CreatedAt,
	}
}

func ToPhotoModel(e *entity.TravelerPhoto) *model.TravelerPhotoModel {
	if e == nil {
		return nil
	}

	return &model.TravelerPhotoModel{
		ID:           e.ID,
		ItineraryID:  e.ItineraryID,
		UserID:       e.UserID,
		ImageURL:     e.ImageURL,
		ThumbnailURL: e.ThumbnailURL,
		Caption:      e.Caption,
		CreatedAt:    e.CreatedAt,
	}
}
