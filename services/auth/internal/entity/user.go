package entity

import "time"

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
	ID                 string             `json:"id"`
	Email              string             `json:"email"`
	Username           string             `json:"username"`
	Password           string             `json:"-"`
	FullName           string             `json:"full_name"`
	Bio                string             `json:"bio"`
	Role               UserRole           `json:"role"`
	IsVerified         bool               `json:"is_verified"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	IsActive           bool               `json:"is_active"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// Profile is what other users get to see.
type Profile struct {
	ID                 string             `json:"id"`
	Username           string             `json:"username"`
	FullName           string             `json:"full_name"`
	Bio                string             `json:"bio"`
	Role               UserRole           `json:"role"`
	IsVerified         bool               `json:"is_verified"`
	VerificationStatus VerificationStatus `json:"verification_status"`
}

func (u *User) Profile() *Profile {
	return &Profile{
		ID:                 u.ID,
		Username:           u.Username,
		FullName:           u.FullName,
		Bio:                u.Bio,
		Role:               u.Role,
		IsVerified:         u.IsVerified,
		VerificationStatus: u.VerificationStatus,
	}
}
