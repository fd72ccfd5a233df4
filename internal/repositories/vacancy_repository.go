package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
)

var (
	ErrVacancyNotFound     = errors.New("vacancy not found")
	ErrApplicationNotFound = errors.New("vacancy application not found")
	ErrAlreadyApplied      = errors.New("master already applied to vacancy")
)

type VacancyRepository interface {
	Create(db *gorm.DB, vacancy *models.Vacancy) error
	FindByID(db *gorm.DB, id string) (*models.Vacancy, error)
	ListOpen(db *gorm.DB, cityID string, limit, offset int) ([]models.Vacancy, error)
	ListBySalon(db *gorm.DB, salonID string) ([]models.Vacancy, error)
	Update(db *gorm.DB, vacancy *models.Vacancy) error
	Delete(db *gorm.DB, id string) error

	CreateApplication(db *gorm.DB, application *models.VacancyApplication) error
	FindApplicationByID(db *gorm.DB, id string) (*models.VacancyApplication, error)
	ListApplications(db *gorm.DB, vacancyID string) ([]models.VacancyApplication, error)
	ListApplicationsByMaster(db *gorm.DB, masterID string) ([]models.VacancyApplication, error)
	UpdateApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
}

type vacancyRepository struct{}

func NewVacancyRepository() VacancyRepository {
	return &vacancyRepository{}
}

func (r *vacancyRepository) Create(db *gorm.DB, vacancy *models.Vacancy) error {
	return db.Create(vacancy).Error
}

func (r *vacancyRepository) FindByID(db *gorm.DB, id string) (*models.Vacancy, error) {
	var vacancy models.Vacancy
	err := db.Preload("Salon").First(&vacancy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVacancyNotFound
		}
		return nil, err
	}
	return &vacancy, nil
}

func (r *vacancyRepository) ListOpen(db *gorm.DB, cityID string, limit, offset int) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy
	query := db.Preload("Salon").
		Joins("JOIN salons ON salons.id = vacancies.salon_id").
		Where("vacancies.status = ?", models.VacancyStatusOpen)
	if cityID != "" {
		query = query.Where("salons.city_id = ?", cityID)
	}
	err := query.Order("vacancies.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&vacancies).Error
	return vacancies, err
}

func (r *vacancyRepository) ListBySalon(db *gorm.DB, salonID string) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy
	err := db.Where("salon_id = ?", salonID).
		Order("created_at DESC").Find(&vacancies).Error
	return vacancies, err
}

func (r *vacancyRepository) Update(db *gorm.DB, vacancy *models.Vacancy) error {
	result := db.Model(vacancy).Updates(map[string]interface{}{
		"title":       vacancy.Title,
		"description": vacancy.Description,
		"salary_from": vacancy.SalaryFrom,
		"salary_to":   vacancy.SalaryTo,
		"status":      vacancy.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVacancyNotFound
	}
	return nil
}

func (r *vacancyRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Vacancy{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVacancyNotFound
	}
	return nil
}

func (r *vacancyRepository) CreateApplication(db *gorm.DB, application *models.VacancyApplication) error {
	var count int64
	err := db.Model(&models.VacancyApplication{}).
		Where("vacancy_id = ? AND master_id = ?", application.VacancyID, application.MasterID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyApplied
	}
	return db.Create(application).Error
}

func (r *vacancyRepository) FindApplicationByID(db *gorm.DB, id string) (*models.VacancyApplication, error) {
	var application models.VacancyApplication
	err := db.Preload("Vacancy").Preload("Master").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *vacancyRepository) ListApplications(db *gorm.DB, vacancyID string) ([]models.VacancyApplication, error) {
	var applications []models.VacancyApplication
	err := db.Preload("Master").
		Where("vacancy_id = ?", vacancyID).
		Order("created_at ASC").Find(&applications).Error
	return applications, err
}

func (r *vacancyRepository) ListApplicationsByMaster(db *gorm.DB, masterID string) ([]models.VacancyApplication, error) {
	var applications []models.VacancyApplication
	err := db.Preload("Vacancy").Preload("Vacancy.Salon").
		Where("master_id = ?", masterID).
		Order("created_at DESC").Find(&applications).Error
	return applications, err
}

func (r *vacancyRepository) UpdateApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.VacancyApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
