package services

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/repositories"
	"github.com/Gob26/beautycity/internal/services/dto"
	"github.com/Gob26/beautycity/pkg/apperrors"
)

// CatalogService manages service categories with their attribute templates
// and the concrete services salons and masters offer.
type CatalogService interface {
	CreateCategory(db *gorm.DB, req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error)
	ListCategories(db *gorm.DB) ([]dto.CategoryDTO, error)

	CreateService(db *gorm.DB, userID string, req *dto.CreateServiceRequest) (*dto.ServiceDTO, error)
	GetService(db *gorm.DB, id string) (*dto.ServiceDTO, error)
	ListBySalon(db *gorm.DB, salonID string) ([]dto.ServiceDTO, error)
	ListByMaster(db *gorm.DB, masterID string) ([]dto.ServiceDTO, error)
	UpdateService(db *gorm.DB, userID, serviceID string, req *dto.UpdateServiceRequest) (*dto.ServiceDTO, error)
	DeleteService(db *gorm.DB, userID, serviceID string) error
}

type catalogService struct {
	serviceRepo repositories.ServiceRepository
	salonRepo   repositories.SalonRepository
	masterRepo  repositories.MasterRepository
}

func NewCatalogService(
	serviceRepo repositories.ServiceRepository,
	salonRepo repositories.SalonRepository,
	masterRepo repositories.MasterRepository,
) CatalogService {
	return &catalogService{
		serviceRepo: serviceRepo,
		salonRepo:   salonRepo,
		masterRepo:  masterRepo,
	}
}

func (s *catalogService) CreateCategory(db *gorm.DB, req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	if _, err := s.serviceRepo.FindCategoryBySlug(db, req.Slug); err == nil {
		return nil, apperrors.ErrConflict(nil, "catalog", "Category slug is already taken")
	} else if err != repositories.ErrCategoryNotFound {
		return nil, apperrors.InternalError(err)
	}

	category := &models.ServiceCategory{
		Name:              req.Name,
		Slug:              req.Slug,
		AttributeTemplate: datatypes.JSONMap(req.AttributeTemplate),
	}
	if err := s.serviceRepo.CreateCategory(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.CategoryToDTO(category)
	return &out, nil
}

func (s *catalogService) ListCategories(db *gorm.DB) ([]dto.CategoryDTO, error) {
	categories, err := s.serviceRepo.ListCategories(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.CategoryDTO, 0, len(categories))
	for i := range categories {
		out = append(out, dto.CategoryToDTO(&categories[i]))
	}
	return out, nil
}

func (s *catalogService) CreateService(db *gorm.DB, userID string, req *dto.CreateServiceRequest) (*dto.ServiceDTO, error) {
	if (req.SalonID == nil) == (req.MasterID == nil) {
		return nil, apperrors.ErrInvalidOperation("catalog", "Service must belong to exactly one of salon or master")
	}

	category, err := s.serviceRepo.FindCategoryByID(db, req.CategoryID)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return nil, apperrors.NewBadRequestError("Unknown service category")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.checkOwnership(db, userID, req.SalonID, req.MasterID); err != nil {
		return nil, err
	}

	if err := validateAttributes(category.AttributeTemplate, req.Attributes); err != nil {
		return nil, err
	}

	service := &models.Service{
		CategoryID:  req.CategoryID,
		SalonID:     req.SalonID,
		MasterID:    req.MasterID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		DurationMin: req.DurationMin,
		Attributes:  datatypes.JSONMap(req.Attributes),
		IsActive:    true,
	}
	if err := s.serviceRepo.Create(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}

	service.Category = category
	out := dto.ServiceToDTO(service)
	return &out, nil
}

func (s *catalogService) GetService(db *gorm.DB, id string) (*dto.ServiceDTO, error) {
	service, err := s.serviceRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrServiceNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.ServiceToDTO(service)
	return &out, nil
}

func (s *catalogService) ListBySalon(db *gorm.DB, salonID string) ([]dto.ServiceDTO, error) {
	services, err := s.serviceRepo.ListBySalon(db, salonID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return servicesToDTO(services), nil
}

func (s *catalogService) ListByMaster(db *gorm.DB, masterID string) ([]dto.ServiceDTO, error) {
	services, err := s.serviceRepo.ListByMaster(db, masterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return servicesToDTO(services), nil
}

func (s *catalogService) UpdateService(db *gorm.DB, userID, serviceID string, req *dto.UpdateServiceRequest) (*dto.ServiceDTO, error) {
	service, err := s.ownedService(db, userID, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.PriceCents != nil {
		service.PriceCents = *req.PriceCents
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Attributes != nil {
		var template datatypes.JSONMap
		if service.Category != nil {
			template = service.Category.AttributeTemplate
		}
		if err := validateAttributes(template, req.Attributes); err != nil {
			return nil, err
		}
		service.Attributes = datatypes.JSONMap(req.Attributes)
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := s.serviceRepo.Update(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.ServiceToDTO(service)
	return &out, nil
}

func (s *catalogService) DeleteService(db *gorm.DB, userID, serviceID string) error {
	if _, err := s.ownedService(db, userID, serviceID); err != nil {
		return err
	}
	if err := s.serviceRepo.Delete(db, serviceID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// checkOwnership verifies the caller owns the salon or master the service is
// being attached to.
func (s *catalogService) checkOwnership(db *gorm.DB, userID string, salonID, masterID *string) error {
	if salonID != nil {
		salon, err := s.salonRepo.FindByID(db, *salonID)
		if err != nil {
			if err == repositories.ErrSalonNotFound {
				return apperrors.NewBadRequestError("Unknown salon")
			}
			return apperrors.InternalError(err)
		}
		if salon.UserID != userID {
			return apperrors.ErrInsufficientPermissions
		}
		return nil
	}

	master, err := s.masterRepo.FindByID(db, *masterID)
	if err != nil {
		if err == repositories.ErrMasterNotFound {
			return apperrors.NewBadRequestError("Unknown master")
		}
		return apperrors.InternalError(err)
	}
	if master.UserID != userID {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

func (s *catalogService) ownedService(db *gorm.DB, userID, serviceID string) (*models.Service, error) {
	service, err := s.serviceRepo.FindByID(db, serviceID)
	if err != nil {
		if err == repositories.ErrServiceNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if err := s.checkOwnership(db, userID, service.SalonID, service.MasterID); err != nil {
		return nil, err
	}
	return service, nil
}

// validateAttributes rejects attribute keys that are not declared in the
// category template. An empty template accepts anything.
func validateAttributes(template datatypes.JSONMap, attributes map[string]interface{}) error {
	if len(template) == 0 || len(attributes) == 0 {
		return nil
	}
	for key := range attributes {
		if _, ok := template[key]; !ok {
			return apperrors.NewBadRequestError("Unknown service attribute: " + key)
		}
	}
	return nil
}

func servicesToDTO(services []models.Service) []dto.ServiceDTO {
	out := make([]dto.ServiceDTO, 0, len(services))
	for i := range services {
		out = append(out, dto.ServiceToDTO(&services[i]))
	}
	return out
}
