package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleTraveler UserRole = "traveler"
	RoleCreator  UserRole = "creator"
	RoleAdmin    UserRole = "admin"
)

type VerificationStatus string

const (
	VerificationIdle     VerificationStatus = "idle"
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
)

type User struct {
	ID                 string             `gorm:"type:uuid;primary_key" json:"id"`
	Email              string             `gorm:"uniqueIndex;not null" json:"email"`
	Username           string             `gorm:"uniqueIndex;not null" json:"username"`
	Password           string             `gorm:"not null" json:"-"`
	FullName           string             `json:"full_name"`
	Bio                string             `gorm:"type:text" json:"bio"`
	Role               UserRole           `gorm:"type:varchar(20);default:'traveler'" json:"role"`
	IsVerified         bool               `gorm:"default:false" json:"is_verified"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:'idle'" json:"verification_status"`
	IsActive           bool               `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
