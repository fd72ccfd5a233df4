package services

import (
	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/repositories"
	"github.com/Gob26/beautycity/internal/services/dto"
	"github.com/Gob26/beautycity/pkg/apperrors"
)

type SalonService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateSalonRequest) (*dto.SalonDTO, error)
	GetBySlug(db *gorm.DB, slug string) (*dto.SalonDTO, error)
	GetByUser(db *gorm.DB, userID string) (*dto.SalonDTO, error)
	ListByCity(db *gorm.DB, citySlug string, page, pageSize int) ([]dto.SalonDTO, error)
	Update(db *gorm.DB, userID, salonID string, req *dto.UpdateSalonRequest) (*dto.SalonDTO, error)
	Delete(db *gorm.DB, userID, salonID string) error
}

type salonService struct {
	salonRepo repositories.SalonRepository
	cityRepo  repositories.CityRepository
	photoRepo repositories.PhotoRepository
}

func NewSalonService(
	salonRepo repositories.SalonRepository,
	cityRepo repositories.CityRepository,
	photoRepo repositories.PhotoRepository,
) SalonService {
	return &salonService{
		salonRepo: salonRepo,
		cityRepo:  cityRepo,
		photoRepo: photoRepo,
	}
}

func (s *salonService) Create(db *gorm.DB, userID string, req *dto.CreateSalonRequest) (*dto.SalonDTO, error) {
	// One salon profile per account.
	if _, err := s.salonRepo.FindByUser(db, userID); err == nil {
		return nil, apperrors.ErrConflict(nil, "salons", "User already owns a salon profile")
	} else if err != repositories.ErrSalonNotFound {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.cityRepo.FindByID(db, req.CityID); err != nil {
		if err == repositories.ErrCityNotFound {
			return nil, apperrors.NewBadRequestError("Unknown city")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.salonRepo.FindBySlug(db, req.Slug); err == nil {
		return nil, apperrors.ErrConflict(nil, "salons", "Salon slug is already taken")
	} else if err != repositories.ErrSalonNotFound {
		return nil, apperrors.InternalError(err)
	}

	salon := &models.Salon{
		UserID:      userID,
		CityID:      req.CityID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		IsActive:    true,
	}
	if err := s.salonRepo.Create(db, salon); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.SalonToDTO(salon)
	return &out, nil
}

func (s *salonService) GetBySlug(db *gorm.DB, slug string) (*dto.SalonDTO, error) {
	salon, err := s.salonRepo.FindBySlug(db, slug)
	if err != nil {
		if err == repositories.ErrSalonNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	out := dto.SalonToDTO(salon)
	s.attachMainPhoto(db, &out)
	return &out, nil
}

func (s *salonService) GetByUser(db *gorm.DB, userID string) (*dto.SalonDTO, error) {
	salon, err := s.salonRepo.FindByUser(db, userID)
	if err != nil {
		if err == repositories.ErrSalonNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.SalonToDTO(salon)
	s.attachMainPhoto(db, &out)
	return &out, nil
}

func (s *salonService) ListByCity(db *gorm.DB, citySlug string, page, pageSize int) ([]dto.SalonDTO, error) {
	city, err := s.cityRepo.FindBySlug(db, citySlug)
	if err != nil {
		if err == repositories.ErrCityNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	offset := (page - 1) * pageSize
	salons, err := s.salonRepo.ListByCity(db, city.ID, pageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.SalonDTO, 0, len(salons))
	for i := range salons {
		item := dto.SalonToDTO(&salons[i])
		s.attachMainPhoto(db, &item)
		out = append(out, item)
	}
	return out, nil
}

func (s *salonService) Update(db *gorm.DB, userID, salonID string, req *dto.UpdateSalonRequest) (*dto.SalonDTO, error) {
	salon, err := s.ownedSalon(db, userID, salonID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Description != nil {
		salon.Description = *req.Description
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.IsActive != nil {
		salon.IsActive = *req.IsActive
	}

	if err := s.salonRepo.Update(db, salon); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.SalonToDTO(salon)
	return &out, nil
}

func (s *salonService) Delete(db *gorm.DB, userID, salonID string) error {
	if _, err := s.ownedSalon(db, userID, salonID); err != nil {
		return err
	}
	if err := s.salonRepo.Delete(db, salonID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ownedSalon loads the salon and verifies the caller owns it.
func (s *salonService) ownedSalon(db *gorm.DB, userID, salonID string) (*models.Salon, error) {
	salon, err := s.salonRepo.FindByID(db, salonID)
	if err != nil {
		if err == repositories.ErrSalonNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if salon.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return salon, nil
}

// attachMainPhoto is best-effort; a missing main photo is not an error.
func (s *salonService) attachMainPhoto(db *gorm.DB, out *dto.SalonDTO) {
	photos, err := s.photoRepo.FindByEntity(db, models.EntityKindSalon, out.ID, true)
	if err != nil || len(photos) == 0 {
		return
	}
	photo := PhotoToDTO(&photos[0], nil)
	out.MainPhoto = &photo
}
