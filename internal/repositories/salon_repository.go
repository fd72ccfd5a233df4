package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
)

var (
	ErrSalonNotFound  = errors.New("salon not found")
	ErrMasterNotFound = errors.New("master not found")
)

type SalonRepository interface {
	Create(db *gorm.DB, salon *models.Salon) error
	FindByID(db *gorm.DB, id string) (*models.Salon, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Salon, error)
	FindByUser(db *gorm.DB, userID string) (*models.Salon, error)
	ListByCity(db *gorm.DB, cityID string, limit, offset int) ([]models.Salon, error)
	Update(db *gorm.DB, salon *models.Salon) error
	Delete(db *gorm.DB, id string) error
}

type salonRepository struct{}

func NewSalonRepository() SalonRepository {
	return &salonRepository{}
}

func (r *salonRepository) Create(db *gorm.DB, salon *models.Salon) error {
	return db.Create(salon).Error
}

func (r *salonRepository) FindByID(db *gorm.DB, id string) (*models.Salon, error) {
	var salon models.Salon
	err := db.Preload("City").First(&salon, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}
	return &salon, nil
}

func (r *salonRepository) FindBySlug(db *gorm.DB, slug string) (*models.Salon, error) {
	var salon models.Salon
	err := db.Preload("City").First(&salon, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}
	return &salon, nil
}

func (r *salonRepository) FindByUser(db *gorm.DB, userID string) (*models.Salon, error) {
	var salon models.Salon
	err := db.First(&salon, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}
	return &salon, nil
}

func (r *salonRepository) ListByCity(db *gorm.DB, cityID string, limit, offset int) ([]models.Salon, error) {
	var salons []models.Salon
	err := db.Where("city_id = ? AND is_active = ?", cityID, true).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&salons).Error
	return salons, err
}

func (r *salonRepository) Update(db *gorm.DB, salon *models.Salon) error {
	result := db.Model(salon).Updates(map[string]interface{}{
		"name":        salon.Name,
		"description": salon.Description,
		"address":     salon.Address,
		"phone":       salon.Phone,
		"is_active":   salon.IsActive,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSalonNotFound
	}
	return nil
}

func (r *salonRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Salon{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSalonNotFound
	}
	return nil
}
