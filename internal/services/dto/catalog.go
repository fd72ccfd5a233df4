package dto

import (
	"github.com/Gob26/beautycity/internal/models"
)

type CreateCategoryRequest struct {
	Name              string                 `json:"name" validate:"required,min=2,max=128"`
	Slug              string                 `json:"slug" validate:"required,min=2,max=128"`
	AttributeTemplate map[string]interface{} `json:"attribute_template,omitempty"`
}

type CategoryDTO struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Slug              string                 `json:"slug"`
	AttributeTemplate map[string]interface{} `json:"attribute_template,omitempty"`
}

func CategoryToDTO(c *models.ServiceCategory) CategoryDTO {
	return CategoryDTO{
		ID:                c.ID,
		Name:              c.Name,
		Slug:              c.Slug,
		AttributeTemplate: c.AttributeTemplate,
	}
}

// CreateServiceRequest attaches a service to exactly one of SalonID or
// MasterID; the service layer rejects both-or-neither.
type CreateServiceRequest struct {
	CategoryID  string                 `json:"category_id" validate:"required,uuid"`
	SalonID     *string                `json:"salon_id,omitempty" validate:"omitempty,uuid"`
	MasterID    *string                `json:"master_id,omitempty" validate:"omitempty,uuid"`
	Name        string                 `json:"name" validate:"required,min=2,max=128"`
	Description string                 `json:"description" validate:"max=4000"`
	PriceCents  int64                  `json:"price_cents" validate:"min=0"`
	DurationMin int                    `json:"duration_min" validate:"min=0,max=1440"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
}

type UpdateServiceRequest struct {
	Name        *string                `json:"name,omitempty" validate:"omitempty,min=2,max=128"`
	Description *string                `json:"description,omitempty" validate:"omitempty,max=4000"`
	PriceCents  *int64                 `json:"price_cents,omitempty" validate:"omitempty,min=0"`
	DurationMin *int                   `json:"duration_min,omitempty" validate:"omitempty,min=0,max=1440"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
	IsActive    *bool                  `json:"is_active,omitempty"`
}

type ServiceDTO struct {
	ID          string                 `json:"id"`
	CategoryID  string                 `json:"category_id"`
	Category    *CategoryDTO           `json:"category,omitempty"`
	SalonID     *string                `json:"salon_id,omitempty"`
	MasterID    *string                `json:"master_id,omitempty"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	PriceCents  int64                  `json:"price_cents"`
	DurationMin int                    `json:"duration_min"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
	IsActive    bool                   `json:"is_active"`
}

func ServiceToDTO(s *models.Service) ServiceDTO {
	out := ServiceDTO{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		SalonID:     s.SalonID,
		MasterID:    s.MasterID,
		Name:        s.Name,
		Description: s.Description,
		PriceCents:  s.PriceCents,
		DurationMin: s.DurationMin,
		Attributes:  s.Attributes,
		IsActive:    s.IsActive,
	}
	if s.Category != nil {
		category := CategoryToDTO(s.Category)
		out.Category = &category
	}
	return out
}
