package persistent

import (
	"itinera/services/auth/internal/entity"
	"itinera/services/auth/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	status := entity.VerificationStatus(m.VerificationStatus)
	if status == "" {
		status = entity.VerificationIdle
	}

	return &entity.User{
		ID:                 m.ID,
		Email:              m.Email,
		Username:           m.Username,
		Password:           m.Password,
		FullName:           m.FullName,
		Bio:                m.Bio,
		Role:               entity.UserRole(m.Role),
		IsVerified:         m.IsVerified,
		VerificationStatus: status,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 e.ID,
		Email:              e.Email,
		Username:           e.Username,
		Password:           e.Password,
		FullName:           e.FullName,
		Bio:                e.Bio,
		Role:               string(e.Role),
		IsVerified:         e.IsVerified,
		VerificationStatus: string(e.VerificationStatus),
		IsActive:           e.IsActive,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
