package persistent

import (
	"errors"
	"time"

	"itinera/services/itinerary/internal/entity"
	"itinera/services/itinerary/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type ItineraryRepository interface {
	Create(it *entity.Itinerary) error
	GetByID(id string) (*entity.Itinerary, error)
	Update(it *entity.Itinerary) error
	SetPublished(id string, published bool) error
	Delete(id string) error
	ListByCreator(creatorID string) ([]*entity.Itinerary, error)
	IncrementViews(id string) error
	HasPurchased(userID, itineraryID string) (bool, error)
	GetCreatorName(creatorID string) (string, error)
	CreatePhoto(photo *entity.TravelerPhoto) error
	ListPhotos(itineraryID string) ([]*entity.TravelerPhoto, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(it *entity.Itinerary) error {
	m, err := ToItineraryModel(it)
	if err != nil {
		return err
	}

	if err := r.db.Create(m).Error; err != nil {
		return err
	}

	created, err := ToItineraryEntity(m)
	if err != nil {
		return err
	}
	*it = *created
	return nil
}

func (r *itineraryRepository) GetByID(id string) (*entity.Itinerary, error) {
	var m model.ItineraryModel
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToItineraryEntity(&m)
}

// Update writes builder-owned columns only; moderation and counters stay untouched.
func (r *itineraryRepository) Update(it *entity.Itinerary) error {
	m, err := ToItineraryModel(it)
	if err != nil {
		return err
	}
	m.UpdatedAt = time.Now()

	res := r.db.Model(&model.ItineraryModel{}).
		Where("id = ?", it.ID).
		Select("title", "description", "location", "price", "tags", "duration_days", "content", "updated_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	it.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *itineraryRepository) SetPublished(id string, published bool) error {
	res := r.db.Model(&model.ItineraryModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_published": published, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itineraryRepository) Delete(id string) error {
	return r.db.Delete(&model.ItineraryModel{}, "id = ?", id).Error
}

func (r *itineraryRepository) ListByCreator(creatorID string) ([]*entity.Itinerary, error) {
	var models []model.ItineraryModel
	if err := r.db.Where("creator_id = ?", creatorID).
		Order("updated_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entity.Itinerary, 0, len(models))
	for i := range models {
		it, err := ToItineraryEntity(&models[i])
		if err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	return result, nil
}

func (r *itineraryRepository) IncrementViews(id string) error {
	return r.db.Model(&model.ItineraryModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *itineraryRepository) HasPurchased(userID, itineraryID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PurchaseModel{}).
		Where("user_id = ? AND itinerary_id = ?", userID, itineraryID).
		Count(&count).Error
	return count > 0, err
}

func (r *itineraryRepository) GetCreatorName(creatorID string) (string, error) {
	var creator model.CreatorModel
	if err := r.db.Select("id", "username", "full_name").Where("id = ?", creatorID).First(&creator).Error; err != nil {
		return "", err
	}
	if creator.FullName != "" {
		return creator.FullName, nil
	}
	return creator.Username, nil
}

func (r *itineraryRepository) CreatePhoto(photo *entity.TravelerPhoto) error {
	m := ToPhotoModel(photo)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	*photo = *ToPhotoEntity(m)
	return nil
}

func (r *itineraryRepository) ListPhotos(itineraryID string) ([]*entity.TravelerPhoto, error) {
	var models []model.TravelerPhotoModel
	if err := r.db.Where("itinerary_id = ?", itineraryID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	photos := make([]*entity.TravelerPhoto, len(models))
	for i := range models {
		photos[i] = ToPhotoEntity(&models[i])
	}
	return photos, nil
}
