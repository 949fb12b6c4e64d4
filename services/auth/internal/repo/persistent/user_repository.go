package persistent

import (
	"errors"

	"itinera/services/auth/internal/entity"
	"itinera/services/auth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdateProfile(id, fullName, bio string) (*entity.User, error)
	MarkVerified(id string) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) first(query string, arg string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where(query, arg).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	return r.first("email = ?", email)
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	return r.first("id = ?", id)
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	return r.first("username = ?", username)
}

func (r *userRepository) update(id string, fields map[string]interface{}) (*entity.User, error) {
	res := r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *userRepository) UpdateProfile(id, fullName, bio string) (*entity.User, error) {
	return r.update(id, map[string]interface{}{
		"full_name": fullName,
		"bio":       bio,
	})
}

// MarkVerified flips both the badge and the status in one statement.
func (r *userRepository) MarkVerified(id string) (*entity.User, error) {
	return r.update(id, map[string]interface{}{
		"is_verified":         true,
		"verification_status": string(entity.VerificationVerified),
	})
}
