package dto

import (
	"time"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/models"
)

type RegisterRequest struct {
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required,min=8"`
	Role     auth.Role `json:"role" validate:"required,is-user-role"`
	Name     string    `json:"name" validate:"required,min=2"`
	Phone    string    `json:"phone,omitempty"`
	CityID   string    `json:"city_id,omitempty" validate:"omitempty,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

type UserDTO struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone,omitempty"`
	Role      auth.Role         `json:"role"`
	Status    models.UserStatus `json:"status"`
	CityID    *string           `json:"city_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func UserToDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CityID:    u.CityID,
		CreatedAt: u.CreatedAt,
	}
}
