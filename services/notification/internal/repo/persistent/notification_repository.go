package persistent

import (
	"itinera/services/notification/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	GetDisplayName(userID string) (string, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetDisplayName(userID string) (string, error) {
	var actor model.ActorModel
	err := r.db.Select("id", "username", "full_name").Where("id = ? AND deleted_at IS NULL", userID).First(&actor).Error
	if err != nil {
		return "", err
	}
	return ToDisplayName(&actor), nil
}
