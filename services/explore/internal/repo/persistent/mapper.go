package persistent

import (
	"itinera/services/explore/internal/entity"
	"itinera/services/explore/internal/model"
)

func ToListingEntity(m *model.ListingRow) *entity.Listing {
	if m == nil {
		return nil
	}

	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Listing{
		ID:              m.ID,
		CreatorID:       m.CreatorID,
		CreatorName:     m.CreatorName,
		CreatorVerified: m.CreatorVerified,
		Title:           m.Title,
		Description:     m.Description,
		Location:        m.Location,
		CoverImage:      m.CoverImage,
		Price:           m.Price,
		Tags:            tags,
		DurationDays:    m.DurationDays,
		AverageRating:   m.AverageRating,
		ReviewCount:     m.ReviewCount,
		Views:           m.Views,
		SalesCount:      m.SalesCount,
		CreatedAt:       m.CreatedAt,
	}
}

func ToListingEntities(rows []model.ListingRow) []*entity.Listing {
	out := make([]*entity.Listing, 0, len(rows))
	for i := range rows {
		out = append(out, ToListingEntity(&rows[i]))
	}
	return out
}
