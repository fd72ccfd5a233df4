package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrCategoryNotFound = errors.New("service category not found")
)

type ServiceRepository interface {
	// Categories
	CreateCategory(db *gorm.DB, category *models.ServiceCategory) error
	FindCategoryByID(db *gorm.DB, id string) (*models.ServiceCategory, error)
	FindCategoryBySlug(db *gorm.DB, slug string) (*models.ServiceCategory, error)
	ListCategories(db *gorm.DB) ([]models.ServiceCategory, error)

	// Services
	Create(db *gorm.DB, service *models.Service) error
	FindByID(db *gorm.DB, id string) (*models.Service, error)
	ListBySalon(db *gorm.DB, salonID string) ([]models.Service, error)
	ListByMaster(db *gorm.DB, masterID string) ([]models.Service, error)
	Update(db *gorm.DB, service *models.Service) error
	Delete(db *gorm.DB, id string) error
}

type serviceRepository struct{}

func NewServiceRepository() ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) CreateCategory(db *gorm.DB, category *models.ServiceCategory) error {
	return db.Create(category).Error
}

func (r *serviceRepository) FindCategoryByID(db *gorm.DB, id string) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *serviceRepository) FindCategoryBySlug(db *gorm.DB, slug string) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	err := db.First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *serviceRepository) ListCategories(db *gorm.DB) ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *serviceRepository) Create(db *gorm.DB, service *models.Service) error {
	return db.Create(service).Error
}

func (r *serviceRepository) FindByID(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	err := db.Preload("Category").First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) ListBySalon(db *gorm.DB, salonID string) ([]models.Service, error) {
	var services []models.Service
	err := db.Preload("Category").
		Where("salon_id = ? AND is_active = ?", salonID, true).
		Order("name ASC").Find(&services).Error
	return services, err
}

func (r *serviceRepository) ListByMaster(db *gorm.DB, masterID string) ([]models.Service, error) {
	var services []models.Service
	err := db.Preload("Category").
		Where("master_id = ? AND is_active = ?", masterID, true).
		Order("name ASC").Find(&services).Error
	return services, err
}

func (r *serviceRepository) Update(db *gorm.DB, service *models.Service) error {
	result := db.Model(service).Updates(map[string]interface{}{
		"name":         service.Name,
		"description":  service.Description,
		"price_cents":  service.PriceCents,
		"duration_min": service.DurationMin,
		"attributes":   service.Attributes,
		"is_active":    service.IsActive,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *serviceRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
