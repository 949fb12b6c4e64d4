package persistent

import (
	"errors"

	"itinera/services/moderation/internal/entity"
	"itinera/services/moderation/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("itinerary not found")

type ModerationRepository interface {
	ListSubmissions() ([]*entity.Submission, error)
	GetSubmission(id string) (*entity.Submission, error)
	SetApproved(id string, approved bool) error
}

type moderationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) submissions() *gorm.DB {
	return r.db.Table("itineraries").
		Select("itineraries.id, itineraries.creator_id, users.username AS creator_name, itineraries.title, " +
			"itineraries.location, itineraries.price, itineraries.is_published, itineraries.is_approved, " +
			"itineraries.created_at, itineraries.updated_at").
		Joins("LEFT JOIN users ON users.id = itineraries.creator_id").
		Where("itineraries.deleted_at IS NULL")
}

func (r *moderationRepository) ListSubmissions() ([]*entity.Submission, error) {
	var rows []model.SubmissionRow
	if err := r.submissions().Order("itineraries.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*entity.Submission, 0, len(rows))
	for i := range rows {
		out = append(out, ToSubmissionEntity(&rows[i]))
	}
	return out, nil
}

func (r *moderationRepository) GetSubmission(id string) (*entity.Submission, error) {
	var rows []model.SubmissionRow
	if err := r.submissions().Where("itineraries.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return ToSubmissionEntity(&rows[0]), nil
}

// SetApproved touches exactly one row.
func (r *moderationRepository) SetApproved(id string, approved bool) error {
	res := r.db.Model(&model.ItineraryModel{}).Where("id = ?", id).Update("is_approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
