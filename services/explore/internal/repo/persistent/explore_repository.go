package persistent

import (
	"itinera/services/explore/internal/entity"
	"itinera/services/explore/internal/model"

	"gorm.io/gorm"
)

const listingColumns = "itineraries.id, itineraries.creator_id, itineraries.title, itineraries.description, " +
	"itineraries.location, itineraries.content->'cover'->>'coverImage' AS cover_image, itineraries.price, itineraries.tags, " +
	"itineraries.duration_days, itineraries.average_rating, itineraries.review_count, itineraries.views, " +
	"itineraries.sales_count, itineraries.created_at"

type ExploreRepository interface {
	// ListPublished returns every visible itinerary, newest first. The
	// second result is false when creator profiles could not be joined.
	ListPublished() ([]*entity.Listing, bool, error)
}

type exploreRepository struct {
	db *gorm.DB
}

func NewExploreRepository(db *gorm.DB) ExploreRepository {
	return &exploreRepository{db: db}
}

func (r *exploreRepository) visible() *gorm.DB {
	return r.db.Table("itineraries").
		Where("itineraries.is_published = ? AND itineraries.is_approved = ? AND itineraries.deleted_at IS NULL", true, true).
		Order("itineraries.created_at DESC")
}

func (r *exploreRepository) ListPublished() ([]*entity.Listing, bool, error) {
	var rows []model.ListingRow
	err := r.visible().
		Select(listingColumns+", users.username AS creator_name, COALESCE(users.is_verified, false) AS creator_verified").
		Joins("LEFT JOIN users ON users.id = itineraries.creator_id").
		Scan(&rows).Error
	if err == nil {
		return ToListingEntities(rows), true, nil
	}

	rows = nil
	if err := r.visible().Select(listingColumns).Scan(&rows).Error; err != nil {
		return nil, false, err
	}
	return ToListingEntities(rows), false, nil
}
