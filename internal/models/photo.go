package models

import "gorm.io/datatypes"

// EntityKind tags which table a photo's owning entity lives in.
type EntityKind string

const (
	EntityKindSalon   EntityKind = "salon"
	EntityKindMaster  EntityKind = "master"
	EntityKindService EntityKind = "service"
	EntityKindNews    EntityKind = "news"
)

// ValidEntityKind reports whether the kind is part of the closed set.
func ValidEntityKind(kind EntityKind) bool {
	switch kind {
	case EntityKindSalon, EntityKindMaster, EntityKindService, EntityKindNews:
		return true
	}
	return false
}

// Variant names produced by the image pipeline.
const (
	VariantOriginal = "original"
	VariantSmall    = "small"
	VariantMedium   = "medium"
	VariantLarge    = "large"
)

// Photo is one row per uploaded image, not per variant. VariantPaths maps a
// variant name to a path relative to the media root; variants that failed to
// generate are simply absent from the map.
type Photo struct {
	BaseModel
	EntityKind   EntityKind        `gorm:"type:varchar(16);not null;index:idx_photo_entity" json:"entity_kind"`
	EntityID     string            `gorm:"type:uuid;not null;index:idx_photo_entity" json:"entity_id"`
	FileName     string            `gorm:"not null" json:"file_name"`
	VariantPaths datatypes.JSONMap `gorm:"type:jsonb" json:"variant_paths"`
	MimeType     *string           `json:"mime_type,omitempty"`
	SizeBytes    int64             `json:"size_bytes"` // original upload
	Width        int               `json:"width"`      // original upload
	Height       int               `json:"height"`     // original upload
	IsMain       bool              `gorm:"default:false" json:"is_main"`
	SortOrder    int               `gorm:"default:0" json:"sort_order"`
}

// VariantPath returns the stored path for a variant, or "" if absent.
func (p *Photo) VariantPath(name string) string {
	if p.VariantPaths == nil {
		return ""
	}
	if v, ok := p.VariantPaths[name].(string); ok {
		return v
	}
	return ""
}
