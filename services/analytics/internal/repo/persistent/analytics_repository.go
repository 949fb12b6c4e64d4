package persistent

import (
	"errors"

	"itinera/services/analytics/internal/entity"
	"itinera/services/analytics/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

const earnType = "earn"

type AnalyticsRepository interface {
	GetCreatorItineraries(creatorID string) ([]*entity.ItineraryStats, error)
	GetItinerary(itineraryID string) (*entity.ItineraryStats, error)
	GetOverview() (*entity.Overview, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) earnings(creatorID string, itineraryIDs ...string) (map[string]float64, error) {
	var rows []model.EarningRow
	query := r.db.Model(&model.TransactionModel{}).
		Select("itinerary_id, COALESCE(SUM(amount), 0) AS revenue").
		Where("user_id = ? AND type = ? AND itinerary_id IS NOT NULL", creatorID, earnType)
	if len(itineraryIDs) > 0 {
		query = query.Where("itinerary_id IN ?", itineraryIDs)
	}
	if err := query.Group("itinerary_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.ItineraryID] = row.Revenue
	}
	return out, nil
}

func (r *analyticsRepository) GetCreatorItineraries(creatorID string) ([]*entity.ItineraryStats, error) {
	var models []model.ItineraryModel
	if err := r.db.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	revenue, err := r.earnings(creatorID)
	if err != nil {
		return nil, err
	}

	stats := make([]*entity.ItineraryStats, len(models))
	for i := range models {
		stats[i] = ToItineraryStats(&models[i], revenue[models[i].ID])
	}
	return stats, nil
}

func (r *analyticsRepository) GetItinerary(itineraryID string) (*entity.ItineraryStats, error) {
	var m model.ItineraryModel
	if err := r.db.Where("id = ?", itineraryID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	revenue, err := r.earnings(m.CreatorID, m.ID)
	if err != nil {
		return nil, err
	}
	return ToItineraryStats(&m, revenue[m.ID]), nil
}

func (r *analyticsRepository) GetOverview() (*entity.Overview, error) {
	var o entity.Overview

	if err := r.db.Model(&model.ItineraryModel{}).
		Where("is_approved = ?", false).
		Count(&o.PendingApprovals).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.UserModel{}).Count(&o.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.UserModel{}).Where("role = ?", "creator").Count(&o.TotalCreators).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.UserModel{}).
		Where("role = ? AND is_verified = ?", "creator", true).
		Count(&o.VerifiedCreators).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.PurchaseModel{}).Count(&o.TotalPurchases).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.PurchaseModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&o.GrossVolume).Error; err != nil {
		return nil, err
	}

	return &o, nil
}
