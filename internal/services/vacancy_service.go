package services

import (
	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/email"
	"github.com/Gob26/beautycity/internal/logger"
	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/repositories"
	"github.com/Gob26/beautycity/internal/services/dto"
	"github.com/Gob26/beautycity/pkg/apperrors"
)

type VacancyService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateVacancyRequest) (*dto.VacancyDTO, error)
	Get(db *gorm.DB, id string) (*dto.VacancyDTO, error)
	ListOpen(db *gorm.DB, citySlug string, page, pageSize int) ([]dto.VacancyDTO, error)
	ListOwn(db *gorm.DB, userID string) ([]dto.VacancyDTO, error)
	Update(db *gorm.DB, userID, vacancyID string, req *dto.UpdateVacancyRequest) (*dto.VacancyDTO, error)
	Delete(db *gorm.DB, userID, vacancyID string) error

	Apply(db *gorm.DB, userID, vacancyID string, req *dto.ApplyVacancyRequest) (*dto.ApplicationDTO, error)
	ListApplications(db *gorm.DB, userID, vacancyID string) ([]dto.ApplicationDTO, error)
	ListOwnApplications(db *gorm.DB, userID string) ([]dto.ApplicationDTO, error)
	AnswerApplication(db *gorm.DB, userID, applicationID string, req *dto.UpdateApplicationRequest) (*dto.ApplicationDTO, error)
}

type vacancyService struct {
	vacancyRepo repositories.VacancyRepository
	salonRepo   repositories.SalonRepository
	masterRepo  repositories.MasterRepository
	userRepo    repositories.UserRepository
	cityRepo    repositories.CityRepository
	mailer      email.Sender
}

func NewVacancyService(
	vacancyRepo repositories.VacancyRepository,
	salonRepo repositories.SalonRepository,
	masterRepo repositories.MasterRepository,
	userRepo repositories.UserRepository,
	cityRepo repositories.CityRepository,
	mailer email.Sender,
) VacancyService {
	return &vacancyService{
		vacancyRepo: vacancyRepo,
		salonRepo:   salonRepo,
		masterRepo:  masterRepo,
		userRepo:    userRepo,
		cityRepo:    cityRepo,
		mailer:      mailer,
	}
}

func (s *vacancyService) Create(db *gorm.DB, userID string, req *dto.CreateVacancyRequest) (*dto.VacancyDTO, error) {
	salon, err := s.ownSalon(db, userID)
	if err != nil {
		return nil, err
	}

	if req.SalaryTo > 0 && req.SalaryFrom > req.SalaryTo {
		return nil, apperrors.NewBadRequestError("salary_from cannot exceed salary_to")
	}

	vacancy := &models.Vacancy{
		SalonID:     salon.ID,
		Title:       req.Title,
		Description: req.Description,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		Status:      models.VacancyStatusOpen,
	}
	if err := s.vacancyRepo.Create(db, vacancy); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.VacancyToDTO(vacancy)
	return &out, nil
}

func (s *vacancyService) Get(db *gorm.DB, id string) (*dto.VacancyDTO, error) {
	vacancy, err := s.vacancyRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrVacancyNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.VacancyToDTO(vacancy)
	return &out, nil
}

func (s *vacancyService) ListOpen(db *gorm.DB, citySlug string, page, pageSize int) ([]dto.VacancyDTO, error) {
	cityID := ""
	if citySlug != "" {
		city, err := s.cityRepo.FindBySlug(db, citySlug)
		if err != nil {
			if err == repositories.ErrCityNotFound {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		cityID = city.ID
	}

	offset := (page - 1) * pageSize
	vacancies, err := s.vacancyRepo.ListOpen(db, cityID, pageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vacanciesToDTO(vacancies), nil
}

func (s *vacancyService) ListOwn(db *gorm.DB, userID string) ([]dto.VacancyDTO, error) {
	salon, err := s.ownSalon(db, userID)
	if err != nil {
		return nil, err
	}
	vacancies, err := s.vacancyRepo.ListBySalon(db, salon.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vacanciesToDTO(vacancies), nil
}

func (s *vacancyService) Update(db *gorm.DB, userID, vacancyID string, req *dto.UpdateVacancyRequest) (*dto.VacancyDTO, error) {
	vacancy, err := s.ownedVacancy(db, userID, vacancyID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		vacancy.Title = *req.Title
	}
	if req.Description != nil {
		vacancy.Description = *req.Description
	}
	if req.SalaryFrom != nil {
		vacancy.SalaryFrom = *req.SalaryFrom
	}
	if req.SalaryTo != nil {
		vacancy.SalaryTo = *req.SalaryTo
	}
	if req.Status != nil {
		vacancy.Status = models.VacancyStatus(*req.Status)
	}

	if err := s.vacancyRepo.Update(db, vacancy); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.VacancyToDTO(vacancy)
	return &out, nil
}

func (s *vacancyService) Delete(db *gorm.DB, userID, vacancyID string) error {
	if _, err := s.ownedVacancy(db, userID, vacancyID); err != nil {
		return err
	}
	if err := s.vacancyRepo.Delete(db, vacancyID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *vacancyService) Apply(db *gorm.DB, userID, vacancyID string, req *dto.ApplyVacancyRequest) (*dto.ApplicationDTO, error) {
	master, err := s.masterRepo.FindByUser(db, userID)
	if err != nil {
		if err == repositories.ErrMasterNotFound {
			return nil, apperrors.NewForbiddenError("Only masters can apply to vacancies")
		}
		return nil, apperrors.InternalError(err)
	}

	vacancy, err := s.vacancyRepo.FindByID(db, vacancyID)
	if err != nil {
		if err == repositories.ErrVacancyNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if vacancy.Status != models.VacancyStatusOpen {
		return nil, apperrors.ErrInvalidOperation("vacancies", "Vacancy is closed")
	}

	application := &models.VacancyApplication{
		VacancyID: vacancyID,
		MasterID:  master.ID,
		Message:   req.Message,
		Status:    models.ApplicationStatusPending,
	}
	if err := s.vacancyRepo.CreateApplication(db, application); err != nil {
		if err == repositories.ErrAlreadyApplied {
			return nil, apperrors.ErrConflict(err, "vacancies", "Already applied to this vacancy")
		}
		return nil, apperrors.InternalError(err)
	}

	out := dto.ApplicationToDTO(application)
	return &out, nil
}

func (s *vacancyService) ListApplications(db *gorm.DB, userID, vacancyID string) ([]dto.ApplicationDTO, error) {
	if _, err := s.ownedVacancy(db, userID, vacancyID); err != nil {
		return nil, err
	}
	applications, err := s.vacancyRepo.ListApplications(db, vacancyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicationsToDTO(applications), nil
}

func (s *vacancyService) ListOwnApplications(db *gorm.DB, userID string) ([]dto.ApplicationDTO, error) {
	master, err := s.masterRepo.FindByUser(db, userID)
	if err != nil {
		if err == repositories.ErrMasterNotFound {
			return nil, apperrors.NewForbiddenError("Only masters have applications")
		}
		return nil, apperrors.InternalError(err)
	}
	applications, err := s.vacancyRepo.ListApplicationsByMaster(db, master.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicationsToDTO(applications), nil
}

func (s *vacancyService) AnswerApplication(db *gorm.DB, userID, applicationID string, req *dto.UpdateApplicationRequest) (*dto.ApplicationDTO, error) {
	application, err := s.vacancyRepo.FindApplicationByID(db, applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.ownedVacancy(db, userID, application.VacancyID); err != nil {
		return nil, err
	}
	if application.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrInvalidOperation("vacancies", "Application has already been answered")
	}

	status := models.ApplicationStatus(req.Status)
	if err := s.vacancyRepo.UpdateApplicationStatus(db, applicationID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = status

	s.notifyMaster(db, application)

	out := dto.ApplicationToDTO(application)
	return &out, nil
}

// notifyMaster emails the applicant about the status change. Delivery
// failures are logged, not surfaced.
func (s *vacancyService) notifyMaster(db *gorm.DB, application *models.VacancyApplication) {
	if application.Master == nil || application.Vacancy == nil {
		return
	}
	user, err := s.userRepo.FindByID(db, application.Master.UserID)
	if err != nil {
		logger.WithError(err).Warn("skipping application notification", "master_id", application.MasterID)
		return
	}
	if err := s.mailer.SendApplicationUpdate(user.Email, application.Vacancy.Title, string(application.Status)); err != nil {
		logger.WithError(err).Warn("failed to notify applicant", "master_id", application.MasterID)
	}
}

func (s *vacancyService) ownSalon(db *gorm.DB, userID string) (*models.Salon, error) {
	salon, err := s.salonRepo.FindByUser(db, userID)
	if err != nil {
		if err == repositories.ErrSalonNotFound {
			return nil, apperrors.NewForbiddenError("Only salons can manage vacancies")
		}
		return nil, apperrors.InternalError(err)
	}
	return salon, nil
}

func (s *vacancyService) ownedVacancy(db *gorm.DB, userID, vacancyID string) (*models.Vacancy, error) {
	vacancy, err := s.vacancyRepo.FindByID(db, vacancyID)
	if err != nil {
		if err == repositories.ErrVacancyNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	salon, err := s.ownSalon(db, userID)
	if err != nil {
		return nil, err
	}
	if vacancy.SalonID != salon.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return vacancy, nil
}

func vacanciesToDTO(vacancies []models.Vacancy) []dto.VacancyDTO {
	out := make([]dto.VacancyDTO, 0, len(vacancies))
	for i := range vacancies {
		out = append(out, dto.VacancyToDTO(&vacancies[i]))
	}
	return out
}

func applicationsToDTO(applications []models.VacancyApplication) []dto.ApplicationDTO {
	out := make([]dto.ApplicationDTO, 0, len(applications))
	for i := range applications {
		out = append(out, dto.ApplicationToDTO(&applications[i]))
	}
	return out
}
