package dto

import "github.com/Gob26/beautycity/internal/models"

type CreateCityRequest struct {
	Name string `json:"name" validate:"required,min=2,max=64"`
	Slug string `json:"slug" validate:"required,min=2,max=64"`
}

type UpdateCityRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=64"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type CityDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
}

func CityToDTO(c *models.City) CityDTO {
	return CityDTO{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		IsActive: c.IsActive,
	}
}
