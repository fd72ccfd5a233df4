package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
)

var ErrCityNotFound = errors.New("city not found")

type CityRepository interface {
	Create(db *gorm.DB, city *models.City) error
	FindByID(db *gorm.DB, id string) (*models.City, error)
	FindBySlug(db *gorm.DB, slug string) (*models.City, error)
	List(db *gorm.DB, activeOnly bool) ([]models.City, error)
	Update(db *gorm.DB, city *models.City) error
	Delete(db *gorm.DB, id string) error
}

type cityRepository struct{}

func NewCityRepository() CityRepository {
	return &cityRepository{}
}

func (r *cityRepository) Create(db *gorm.DB, city *models.City) error {
	return db.Create(city).Error
}

func (r *cityRepository) FindByID(db *gorm.DB, id string) (*models.City, error) {
	var city models.City
	err := db.First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindBySlug(db *gorm.DB, slug string) (*models.City, error) {
	var city models.City
	err := db.First(&city, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) List(db *gorm.DB, activeOnly bool) ([]models.City, error) {
	var cities []models.City
	query := db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&cities).Error
	return cities, err
}

func (r *cityRepository) Update(db *gorm.DB, city *models.City) error {
	result := db.Model(city).Updates(map[string]interface{}{
		"name":      city.Name,
		"slug":      city.Slug,
		"is_active": city.IsActive,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCityNotFound
	}
	return nil
}

func (r *cityRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.City{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCityNotFound
	}
	return nil
}
