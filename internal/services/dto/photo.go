package dto

import (
	"mime/multipart"
	"time"

	"github.com/Gob26/beautycity/internal/models"
)

// UploadPhotosRequest carries a batch of images for one owning entity. Files
// come from the multipart form, everything else from form fields.
type UploadPhotosRequest struct {
	EntityKind string                  `form:"entity_kind" validate:"required,is-entity-kind"`
	EntityID   string                  `form:"entity_id" validate:"required,uuid"`
	ImageType  string                  `form:"image_type" validate:"required,min=1,max=32"`
	Files      []*multipart.FileHeader `json:"-"`
}

// PhotoUploadFailure describes one image of a batch that was rejected or
// failed, identified by its position in the submitted batch.
type PhotoUploadFailure struct {
	Index    int    `json:"index"`
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// UploadPhotosResponse reports per-image outcomes. A batch can partially
// succeed: Photos holds the stored records, Failures the rest.
type UploadPhotosResponse struct {
	Photos   []PhotoDTO           `json:"photos"`
	Failures []PhotoUploadFailure `json:"failures,omitempty"`
}

type ReplacePhotoRequest struct {
	ImageType string `form:"image_type" validate:"required,min=1,max=32"`
}

type ReorderPhotosRequest struct {
	EntityKind string   `json:"entity_kind" validate:"required,is-entity-kind"`
	EntityID   string   `json:"entity_id" validate:"required,uuid"`
	PhotoIDs   []string `json:"photo_ids" validate:"required,min=1,dive,uuid"`
}

type PhotoDTO struct {
	ID         string            `json:"id"`
	EntityKind models.EntityKind `json:"entity_kind"`
	EntityID   string            `json:"entity_id"`
	FileName   string            `json:"file_name"`
	URLs       map[string]string `json:"urls"`
	MimeType   string            `json:"mime_type,omitempty"`
	SizeBytes  int64             `json:"size_bytes"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	IsMain     bool              `json:"is_main"`
	SortOrder  int               `json:"sort_order"`
	CreatedAt  time.Time         `json:"created_at"`
}

// DeletePhotoResponse reports whether any variant files could not be removed
// from disk. The record itself is always gone when this is returned.
type DeletePhotoResponse struct {
	Deleted               bool `json:"deleted"`
	OrphanCleanupWarnings int  `json:"orphan_cleanup_warnings,omitempty"`
}
