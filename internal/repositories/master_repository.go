package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
)

type MasterRepository interface {
	Create(db *gorm.DB, master *models.Master) error
	FindByID(db *gorm.DB, id string) (*models.Master, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Master, error)
	FindByUser(db *gorm.DB, userID string) (*models.Master, error)
	ListByCity(db *gorm.DB, cityID string, limit, offset int) ([]models.Master, error)
	Update(db *gorm.DB, master *models.Master) error
	Delete(db *gorm.DB, id string) error
}

type masterRepository struct{}

func NewMasterRepository() MasterRepository {
	return &masterRepository{}
}

func (r *masterRepository) Create(db *gorm.DB, master *models.Master) error {
	return db.Create(master).Error
}

func (r *masterRepository) FindByID(db *gorm.DB, id string) (*models.Master, error) {
	var master models.Master
	err := db.Preload("City").First(&master, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMasterNotFound
		}
		return nil, err
	}
	return &master, nil
}

func (r *masterRepository) FindBySlug(db *gorm.DB, slug string) (*models.Master, error) {
	var master models.Master
	err := db.Preload("City").First(&master, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMasterNotFound
		}
		return nil, err
	}
	return &master, nil
}

func (r *masterRepository) FindByUser(db *gorm.DB, userID string) (*models.Master, error) {
	var master models.Master
	err := db.First(&master, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMasterNotFound
		}
		return nil, err
	}
	return &master, nil
}

func (r *masterRepository) ListByCity(db *gorm.DB, cityID string, limit, offset int) ([]models.Master, error) {
	var masters []models.Master
	err := db.Where("city_id = ? AND is_active = ?", cityID, true).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&masters).Error
	return masters, err
}

func (r *masterRepository) Update(db *gorm.DB, master *models.Master) error {
	result := db.Model(master).Updates(map[string]interface{}{
		"name":        master.Name,
		"description": master.Description,
		"experience":  master.Experience,
		"is_active":   master.IsActive,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMasterNotFound
	}
	return nil
}

func (r *masterRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Master{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMasterNotFound
	}
	return nil
}
