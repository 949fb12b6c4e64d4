package usecase

import (
	"errors"
	"fmt"
	"strings"

	"itinera/pkg/jwt"
	"itinera/pkg/logger"
	"itinera/services/auth/internal/entity"
	"itinera/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDeactivated        = errors.New("account is deactivated")
	ErrNotFound           = errors.New("user not found")
	ErrNotCreator         = errors.New("only creators can be verified")
)

const maxBioLength = 1000

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type ProfileInput struct {
	FullName string `json:"full_name" binding:"max=255"`
	Bio      string `json:"bio"`
}

type AuthUseCase interface {
	Register(in RegisterInput) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	GetProfile(userID string) (*entity.Profile, error)
	UpdateProfile(userID string, in ProfileInput) (*entity.User, error)
	VerifyCreator(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// ResolveRole turns the requested signup role into a stored one. Admins are
// only ever created by the seeder.
func ResolveRole(requested string) (entity.UserRole, error) {
	switch entity.UserRole(strings.ToLower(strings.TrimSpace(requested))) {
	case "", entity.RoleTraveler:
		return entity.RoleTraveler, nil
	case entity.RoleCreator:
		return entity.RoleCreator, nil
	default:
		return "", fmt.Errorf("%w: role must be traveler or creator", ErrValidation)
	}
}

func (uc *authUseCase) Register(in RegisterInput) (*entity.User, string, error) {
	role, err := ResolveRole(in.Role)
	if err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", fmt.Errorf("%w: user with this email", ErrConflict)
	} else if !errors.Is(err, persistent.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, "", fmt.Errorf("%w: username taken", ErrConflict)
	} else if !errors.Is(err, persistent.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:              email,
		Username:           username,
		Password:           string(hashedPassword),
		Role:               role,
		VerificationStatus: entity.VerificationIdle,
		IsActive:           true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	uc.logger.Info("Registered %s %s", user.Role, user.ID)
	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", ErrDeactivated
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) lookup(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	return uc.lookup(userID)
}

func (uc *authUseCase) GetProfile(userID string) (*entity.Profile, error) {
	user, err := uc.lookup(userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

func (uc *authUseCase) UpdateProfile(userID string, in ProfileInput) (*entity.User, error) {
	bio := strings.TrimSpace(in.Bio)
	if len(bio) > maxBioLength {
		return nil, fmt.Errorf("%w: bio is limited to %d characters", ErrValidation, maxBioLength)
	}

	user, err := uc.userRepo.UpdateProfile(userID, strings.TrimSpace(in.FullName), bio)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	user.Password = ""
	return user, nil
}

// VerifyCreator is the admin override of the paid flow. Repeating it is a no-op.
func (uc *authUseCase) VerifyCreator(userID string) (*entity.User, error) {
	user, err := uc.lookup(userID)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleCreator {
		return nil, ErrNotCreator
	}
	if user.IsVerified && user.VerificationStatus == entity.VerificationVerified {
		return user, nil
	}

	user, err = uc.userRepo.MarkVerified(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify creator: %w", err)
	}

	uc.logger.Info("Creator %s verified by admin", userID)
	user.Password = ""
	return user, nil
}
