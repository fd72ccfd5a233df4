package models

import "gorm.io/datatypes"

// ServiceCategory groups services and carries the attribute template that
// concrete services of this category fill in (e.g. duration, coating type).
type ServiceCategory struct {
	BaseModel
	Name              string            `gorm:"not null" json:"name"`
	Slug              string            `gorm:"uniqueIndex;not null" json:"slug"`
	AttributeTemplate datatypes.JSONMap `gorm:"type:jsonb" json:"attribute_template"`
}

// Service is a concrete offering attached to exactly one salon or master.
type Service struct {
	BaseModelWithDeleted
	CategoryID string  `gorm:"type:uuid;not null;index" json:"category_id"`
	SalonID    *string `gorm:"type:uuid;index" json:"salon_id,omitempty"`
	MasterID   *string `gorm:"type:uuid;index" json:"master_id,omitempty"`

	Name        string            `gorm:"not null" json:"name"`
	Description string            `json:"description"`
	PriceCents  int64             `json:"price_cents"`
	DurationMin int               `json:"duration_min"`
	Attributes  datatypes.JSONMap `gorm:"type:jsonb" json:"attributes"`
	IsActive    bool              `gorm:"default:true" json:"is_active"`

	Category *ServiceCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
