package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID                 string         `gorm:"type:uuid;primary_key" json:"id"`
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	Username           string         `gorm:"uniqueIndex;not null" json:"username"`
	Password           string         `gorm:"not null" json:"-"`
	FullName           string         `gorm:"type:varchar(255)" json:"full_name"`
	Bio                string         `gorm:"type:text" json:"bio"`
	Role               string         `gorm:"type:varchar(20);default:'traveler'" json:"role"`
	IsVerified         bool           `gorm:"default:false" json:"is_verified"`
	VerificationStatus string         `gorm:"type:varchar(20);default:'idle'" json:"verification_status"`
	IsActive           bool           `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
