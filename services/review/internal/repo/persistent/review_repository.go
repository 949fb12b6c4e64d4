package persistent

import (
	"errors"
	"time"

	"itinera/services/review/internal/entity"
	"itinera/services/review/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type ReviewRepository interface {
	GetTarget(itineraryID string) (*entity.Target, error)
	// Upsert creates or replaces the caller's review and refreshes the
	// itinerary's rating aggregates in the same transaction.
	Upsert(review *entity.Review) (*entity.Review, bool, error)
	ListByItinerary(itineraryID string) ([]*entity.Review, error)
	GetByUser(itineraryID, userID string) (*entity.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetTarget(itineraryID string) (*entity.Target, error) {
	var m model.ItineraryModel
	if err := r.db.Where("id = ?", itineraryID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToTargetEntity(&m), nil
}

// AVG over an integer column is numeric in Postgres and real in SQLite, both
// accept ROUND(x, 2).
const refreshAggregatesSQL = `UPDATE itineraries SET
	average_rating = COALESCE((SELECT ROUND(AVG(rating), 2) FROM reviews WHERE itinerary_id = ?), 0),
	review_count = (SELECT COUNT(*) FROM reviews WHERE itinerary_id = ?)
WHERE id = ?`

func (r *reviewRepository) Upsert(review *entity.Review) (*entity.Review, bool, error) {
	var saved model.ReviewModel
	created := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("itinerary_id = ? AND user_id = ?", review.ItineraryID, review.UserID).First(&saved).Error
		switch {
		case err == nil:
			if err := tx.Model(&saved).Updates(map[string]interface{}{
				"rating":     review.Rating,
				"comment":    review.Comment,
				"updated_at": time.Now(),
			}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			saved = model.ReviewModel{
				ItineraryID: review.ItineraryID,
				UserID:      review.UserID,
				Rating:      review.Rating,
				Comment:     review.Comment,
			}
			if err := tx.Create(&saved).Error; err != nil {
				return err
			}
			created = true
		default:
			return err
		}

		id := review.ItineraryID
		if err := tx.Exec(refreshAggregatesSQL, id, id, id).Error; err != nil {
			return err
		}

		return tx.First(&saved, "id = ?", saved.ID).Error
	})
	if err != nil {
		return nil, false, err
	}

	return ToReviewEntity(&saved), created, nil
}

func (r *reviewRepository) ListByItinerary(itineraryID string) ([]*entity.Review, error) {
	var rows []*model.ReviewRow
	err := r.db.Table("reviews").
		Select("reviews.*, users.username").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Where("reviews.itinerary_id = ?", itineraryID).
		Order("reviews.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*entity.Review, len(rows))
	for i, row := range rows {
		reviews[i] = ToReviewEntityFromRow(row)
	}
	return reviews, nil
}

func (r *reviewRepository) GetByUser(itineraryID, userID string) (*entity.Review, error) {
	var m model.ReviewModel
	if err := r.db.Where("itinerary_id = ? AND user_id = ?", itineraryID, userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToReviewEntity(&m), nil
}
