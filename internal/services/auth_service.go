package services

import (
	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/repositories"
	"github.com/Gob26/beautycity/internal/services/dto"
	"github.com/Gob26/beautycity/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, userID string) (*dto.AuthResponse, error)
	GetProfile(db *gorm.DB, userID string) (*dto.UserDTO, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Role == auth.RoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrConflict(nil, "auth", "Email is already registered")
	} else if err != repositories.ErrUserNotFound {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}
	if req.CityID != "" {
		user.CityID = &req.CityID
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusBlocked {
		return nil, apperrors.NewForbiddenError("Account is blocked")
	}

	return s.buildAuthResponse(user)
}

// Refresh re-reads the account so a blocked user cannot keep extending
// an old token.
func (s *authService) Refresh(db *gorm.DB, userID string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Status == models.UserStatusBlocked {
		return nil, apperrors.NewForbiddenError("Account is blocked")
	}

	return s.buildAuthResponse(user)
}

func (s *authService) GetProfile(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.UserToDTO(user)
	return &out, nil
}

func (s *authService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		User:        dto.UserToDTO(user),
	}, nil
}
