package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
)

var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository persists photo metadata rows. A photo belongs to exactly
// one (entity kind, entity id) pair for its whole life; there is no
// reassignment.
type PhotoRepository interface {
	Create(db *gorm.DB, photo *models.Photo) error
	FindByID(db *gorm.DB, id string) (*models.Photo, error)
	FindByEntity(db *gorm.DB, kind models.EntityKind, entityID string, onlyMain bool) ([]models.Photo, error)
	CountByEntity(db *gorm.DB, kind models.EntityKind, entityID string) (int64, error)
	Update(db *gorm.DB, photo *models.Photo) error
	Delete(db *gorm.DB, id string) error

	// SetMainPhoto clears is_main for every photo of the entity and sets it
	// for photoID, inside one transaction. Returns false when photoID does
	// not exist or belongs to a different entity.
	SetMainPhoto(db *gorm.DB, kind models.EntityKind, entityID, photoID string) (bool, error)

	// Reorder rewrites sort_order to the position index of each id in
	// orderedIDs. Ids belonging to other entities are ignored.
	Reorder(db *gorm.DB, kind models.EntityKind, entityID string, orderedIDs []string) error
}

type photoRepository struct{}

func NewPhotoRepository() PhotoRepository {
	return &photoRepository{}
}

func (r *photoRepository) Create(db *gorm.DB, photo *models.Photo) error {
	return db.Create(photo).Error
}

func (r *photoRepository) FindByID(db *gorm.DB, id string) (*models.Photo, error) {
	var photo models.Photo
	err := db.First(&photo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) FindByEntity(db *gorm.DB, kind models.EntityKind, entityID string, onlyMain bool) ([]models.Photo, error) {
	var photos []models.Photo
	query := db.Where("entity_kind = ? AND entity_id = ?", kind, entityID)
	if onlyMain {
		query = query.Where("is_main = ?", true)
	}
	err := query.Order("sort_order ASC, created_at ASC").Find(&photos).Error
	return photos, err
}

func (r *photoRepository) CountByEntity(db *gorm.DB, kind models.EntityKind, entityID string) (int64, error) {
	var count int64
	err := db.Model(&models.Photo{}).
		Where("entity_kind = ? AND entity_id = ?", kind, entityID).
		Count(&count).Error
	return count, err
}

func (r *photoRepository) Update(db *gorm.DB, photo *models.Photo) error {
	result := db.Model(photo).Updates(map[string]interface{}{
		"file_name":     photo.FileName,
		"variant_paths": photo.VariantPaths,
		"mime_type":     photo.MimeType,
		"size_bytes":    photo.SizeBytes,
		"width":         photo.Width,
		"height":        photo.Height,
		"is_main":       photo.IsMain,
		"sort_order":    photo.SortOrder,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (r *photoRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Photo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

// SetMainPhoto runs clear-then-set as one transaction so two concurrent
// calls for the same entity cannot leave zero or two main photos.
func (r *photoRepository) SetMainPhoto(db *gorm.DB, kind models.EntityKind, entityID, photoID string) (bool, error) {
	ok := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var photo models.Photo
		err := tx.Where("id = ? AND entity_kind = ? AND entity_id = ?", photoID, kind, entityID).
			First(&photo).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // ok stays false
			}
			return err
		}

		if err := tx.Model(&models.Photo{}).
			Where("entity_kind = ? AND entity_id = ?", kind, entityID).
			Update("is_main", false).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Photo{}).
			Where("id = ?", photoID).
			Update("is_main", true).Error; err != nil {
			return err
		}

		ok = true
		return nil
	})
	return ok, err
}

func (r *photoRepository) Reorder(db *gorm.DB, kind models.EntityKind, entityID string, orderedIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			// The entity filter makes foreign ids no-ops instead of errors.
			if err := tx.Model(&models.Photo{}).
				Where("id = ? AND entity_kind = ? AND entity_id = ?", id, kind, entityID).
				Update("sort_order", position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
