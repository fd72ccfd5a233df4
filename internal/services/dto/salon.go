package dto

import (
	"time"

	"github.com/Gob26/beautycity/internal/models"
)

type CreateSalonRequest struct {
	CityID      string `json:"city_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=128"`
	Slug        string `json:"slug" validate:"required,min=2,max=128"`
	Description string `json:"description" validate:"max=4000"`
	Address     string `json:"address" validate:"max=256"`
	Phone       string `json:"phone" validate:"max=32"`
}

type UpdateSalonRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=128"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=4000"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=256"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type SalonDTO struct {
	ID          string    `json:"id"`
	CityID      string    `json:"city_id"`
	City        *CityDTO  `json:"city,omitempty"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	IsActive    bool      `json:"is_active"`
	MainPhoto   *PhotoDTO `json:"main_photo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func SalonToDTO(s *models.Salon) SalonDTO {
	out := SalonDTO{
		ID:          s.ID,
		CityID:      s.CityID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Address:     s.Address,
		Phone:       s.Phone,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
	if s.City != nil {
		city := CityToDTO(s.City)
		out.City = &city
	}
	return out
}
