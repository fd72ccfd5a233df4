package services

import (
	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/repositories"
	"github.com/Gob26/beautycity/internal/services/dto"
	"github.com/Gob26/beautycity/pkg/apperrors"
)

type MasterService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateMasterRequest) (*dto.MasterDTO, error)
	GetBySlug(db *gorm.DB, slug string) (*dto.MasterDTO, error)
	GetByUser(db *gorm.DB, userID string) (*dto.MasterDTO, error)
	ListByCity(db *gorm.DB, citySlug string, page, pageSize int) ([]dto.MasterDTO, error)
	Update(db *gorm.DB, userID, masterID string, req *dto.UpdateMasterRequest) (*dto.MasterDTO, error)
	Delete(db *gorm.DB, userID, masterID string) error
}

type masterService struct {
	masterRepo repositories.MasterRepository
	cityRepo   repositories.CityRepository
	photoRepo  repositories.PhotoRepository
}

func NewMasterService(
	masterRepo repositories.MasterRepository,
	cityRepo repositories.CityRepository,
	photoRepo repositories.PhotoRepository,
) MasterService {
	return &masterService{
		masterRepo: masterRepo,
		cityRepo:   cityRepo,
		photoRepo:  photoRepo,
	}
}

func (s *masterService) Create(db *gorm.DB, userID string, req *dto.CreateMasterRequest) (*dto.MasterDTO, error) {
	if _, err := s.masterRepo.FindByUser(db, userID); err == nil {
		return nil, apperrors.ErrConflict(nil, "masters", "User already owns a master profile")
	} else if err != repositories.ErrMasterNotFound {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.cityRepo.FindByID(db, req.CityID); err != nil {
		if err == repositories.ErrCityNotFound {
			return nil, apperrors.NewBadRequestError("Unknown city")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.masterRepo.FindBySlug(db, req.Slug); err == nil {
		return nil, apperrors.ErrConflict(nil, "masters", "Master slug is already taken")
	} else if err != repositories.ErrMasterNotFound {
		return nil, apperrors.InternalError(err)
	}

	master := &models.Master{
		UserID:      userID,
		CityID:      req.CityID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Experience:  req.Experience,
		IsActive:    true,
	}
	if err := s.masterRepo.Create(db, master); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.MasterToDTO(master)
	return &out, nil
}

func (s *masterService) GetBySlug(db *gorm.DB, slug string) (*dto.MasterDTO, error) {
	master, err := s.masterRepo.FindBySlug(db, slug)
	if err != nil {
		if err == repositories.ErrMasterNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.MasterToDTO(master)
	s.attachMainPhoto(db, &out)
	return &out, nil
}

func (s *masterService) GetByUser(db *gorm.DB, userID string) (*dto.MasterDTO, error) {
	master, err := s.masterRepo.FindByUser(db, userID)
	if err != nil {
		if err == repositories.ErrMasterNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.MasterToDTO(master)
	s.attachMainPhoto(db, &out)
	return &out, nil
}

func (s *masterService) ListByCity(db *gorm.DB, citySlug string, page, pageSize int) ([]dto.MasterDTO, error) {
	city, err := s.cityRepo.FindBySlug(db, citySlug)
	if err != nil {
		if err == repositories.ErrCityNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	offset := (page - 1) * pageSize
	masters, err := s.masterRepo.ListByCity(db, city.ID, pageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.MasterDTO, 0, len(masters))
	for i := range masters {
		item := dto.MasterToDTO(&masters[i])
		s.attachMainPhoto(db, &item)
		out = append(out, item)
	}
	return out, nil
}

func (s *masterService) Update(db *gorm.DB, userID, masterID string, req *dto.UpdateMasterRequest) (*dto.MasterDTO, error) {
	master, err := s.ownedMaster(db, userID, masterID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		master.Name = *req.Name
	}
	if req.Description != nil {
		master.Description = *req.Description
	}
	if req.Experience != nil {
		master.Experience = *req.Experience
	}
	if req.IsActive != nil {
		master.IsActive = *req.IsActive
	}

	if err := s.masterRepo.Update(db, master); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.MasterToDTO(master)
	return &out, nil
}

func (s *masterService) Delete(db *gorm.DB, userID, masterID string) error {
	if _, err := s.ownedMaster(db, userID, masterID); err != nil {
		return err
	}
	if err := s.masterRepo.Delete(db, masterID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *masterService) ownedMaster(db *gorm.DB, userID, masterID string) (*models.Master, error) {
	master, err := s.masterRepo.FindByID(db, masterID)
	if err != nil {
		if err == repositories.ErrMasterNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if master.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return master, nil
}

func (s *masterService) attachMainPhoto(db *gorm.DB, out *dto.MasterDTO) {
	photos, err := s.photoRepo.FindByEntity(db, models.EntityKindMaster, out.ID, true)
	if err != nil || len(photos) == 0 {
		return
	}
	photo := PhotoToDTO(&photos[0], nil)
	out.MainPhoto = &photo
}
