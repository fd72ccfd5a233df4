package dto

import (
	"time"

	"github.com/Gob26/beautycity/internal/models"
)

type CreateMasterRequest struct {
	CityID      string `json:"city_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=128"`
	Slug        string `json:"slug" validate:"required,min=2,max=128"`
	Description string `json:"description" validate:"max=4000"`
	Experience  int    `json:"experience" validate:"min=0,max=80"`
}

type UpdateMasterRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=128"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=4000"`
	Experience  *int    `json:"experience,omitempty" validate:"omitempty,min=0,max=80"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type MasterDTO struct {
	ID          string    `json:"id"`
	CityID      string    `json:"city_id"`
	City        *CityDTO  `json:"city,omitempty"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Experience  int       `json:"experience"`
	IsActive    bool      `json:"is_active"`
	MainPhoto   *PhotoDTO `json:"main_photo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func MasterToDTO(m *models.Master) MasterDTO {
	out := MasterDTO{
		ID:          m.ID,
		CityID:      m.CityID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Experience:  m.Experience,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
	if m.City != nil {
		city := CityToDTO(m.City)
		out.City = &city
	}
	return out
}
