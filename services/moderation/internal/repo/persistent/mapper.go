package persistent

import (
	"itinera/services/moderation/internal/entity"
	"itinera/services/moderation/internal/model"
)

func ToSubmissionEntity(m *model.SubmissionRow) *entity.Submission {
	if m == nil {
		return nil
	}
	return &entity.Submission{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		CreatorName: m.CreatorName,
		Title:       m.Title,
		Location:    m.Location,
		Price:       m.Price,
		IsPublished: m.IsPublished,
		IsApproved:  m.IsApproved,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
