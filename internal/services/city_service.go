package services

import (
	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/repositories"
	"github.com/Gob26/beautycity/internal/services/dto"
	"github.com/Gob26/beautycity/pkg/apperrors"
)

type CityService interface {
	Create(db *gorm.DB, req *dto.CreateCityRequest) (*dto.CityDTO, error)
	GetBySlug(db *gorm.DB, slug string) (*dto.CityDTO, error)
	List(db *gorm.DB, activeOnly bool) ([]dto.CityDTO, error)
	Update(db *gorm.DB, id string, req *dto.UpdateCityRequest) (*dto.CityDTO, error)
	Delete(db *gorm.DB, id string) error
}

type cityService struct {
	cityRepo repositories.CityRepository
}

func NewCityService(cityRepo repositories.CityRepository) CityService {
	return &cityService{cityRepo: cityRepo}
}

func (s *cityService) Create(db *gorm.DB, req *dto.CreateCityRequest) (*dto.CityDTO, error) {
	if _, err := s.cityRepo.FindBySlug(db, req.Slug); err == nil {
		return nil, apperrors.ErrConflict(nil, "cities", "City slug is already taken")
	} else if err != repositories.ErrCityNotFound {
		return nil, apperrors.InternalError(err)
	}

	city := &models.City{
		Name:     req.Name,
		Slug:     req.Slug,
		IsActive: true,
	}
	if err := s.cityRepo.Create(db, city); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.CityToDTO(city)
	return &out, nil
}

func (s *cityService) GetBySlug(db *gorm.DB, slug string) (*dto.CityDTO, error) {
	city, err := s.cityRepo.FindBySlug(db, slug)
	if err != nil {
		if err == repositories.ErrCityNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.CityToDTO(city)
	return &out, nil
}

func (s *cityService) List(db *gorm.DB, activeOnly bool) ([]dto.CityDTO, error) {
	cities, err := s.cityRepo.List(db, activeOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.CityDTO, 0, len(cities))
	for i := range cities {
		out = append(out, dto.CityToDTO(&cities[i]))
	}
	return out, nil
}

func (s *cityService) Update(db *gorm.DB, id string, req *dto.UpdateCityRequest) (*dto.CityDTO, error) {
	city, err := s.cityRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrCityNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		city.Name = *req.Name
	}
	if req.IsActive != nil {
		city.IsActive = *req.IsActive
	}

	if err := s.cityRepo.Update(db, city); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.CityToDTO(city)
	return &out, nil
}

func (s *cityService) Delete(db *gorm.DB, id string) error {
	if err := s.cityRepo.Delete(db, id); err != nil {
		if err == repositories.ErrCityNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
