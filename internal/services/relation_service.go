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

// RelationService handles salon-to-master invitations and the working
// relations accepting one creates.
type RelationService interface {
	Invite(db *gorm.DB, userID string, req *dto.InviteMasterRequest) (*dto.InvitationDTO, error)
	ListSalonInvitations(db *gorm.DB, userID string) ([]dto.InvitationDTO, error)
	ListMasterInvitations(db *gorm.DB, userID string) ([]dto.InvitationDTO, error)
	Answer(db *gorm.DB, userID, invitationID string, req *dto.AnswerInvitationRequest) (*dto.InvitationDTO, error)

	ListSalonMasters(db *gorm.DB, salonID string) ([]dto.RelationDTO, error)
	ListMasterSalons(db *gorm.DB, masterID string) ([]dto.RelationDTO, error)
	EndRelation(db *gorm.DB, userID, salonID, masterID string) error
}

type relationService struct {
	relationRepo repositories.RelationRepository
	salonRepo    repositories.SalonRepository
	masterRepo   repositories.MasterRepository
	userRepo     repositories.UserRepository
	mailer       email.Sender
}

func NewRelationService(
	relationRepo repositories.RelationRepository,
	salonRepo repositories.SalonRepository,
	masterRepo repositories.MasterRepository,
	userRepo repositories.UserRepository,
	mailer email.Sender,
) RelationService {
	return &relationService{
		relationRepo: relationRepo,
		salonRepo:    salonRepo,
		masterRepo:   masterRepo,
		userRepo:     userRepo,
		mailer:       mailer,
	}
}

func (s *relationService) Invite(db *gorm.DB, userID string, req *dto.InviteMasterRequest) (*dto.InvitationDTO, error) {
	salon, err := s.salonRepo.FindByUser(db, userID)
	if err != nil {
		if err == repositories.ErrSalonNotFound {
			return nil, apperrors.NewForbiddenError("Only salons can invite masters")
		}
		return nil, apperrors.InternalError(err)
	}

	master, err := s.masterRepo.FindByID(db, req.MasterID)
	if err != nil {
		if err == repositories.ErrMasterNotFound {
			return nil, apperrors.NewBadRequestError("Unknown master")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.relationRepo.FindRelation(db, salon.ID, master.ID); err == nil {
		return nil, apperrors.ErrConflict(nil, "relations", "Master already works with this salon")
	} else if err != repositories.ErrRelationNotFound {
		return nil, apperrors.InternalError(err)
	}

	pending, err := s.relationRepo.HasPendingInvitation(db, salon.ID, master.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if pending {
		return nil, apperrors.ErrConflict(nil, "relations", "An invitation is already pending")
	}

	invitation := &models.SalonMasterInvitation{
		SalonID:  salon.ID,
		MasterID: master.ID,
		Message:  req.Message,
		Status:   models.InvitationStatusPending,
	}
	if err := s.relationRepo.CreateInvitation(db, invitation); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyMaster(db, salon, master, req.Message)

	out := dto.InvitationToDTO(invitation)
	return &out, nil
}

func (s *relationService) ListSalonInvitations(db *gorm.DB, userID string) ([]dto.InvitationDTO, error) {
	salon, err := s.salonRepo.FindByUser(db, userID)
	if err != nil {
		if err == repositories.ErrSalonNotFound {
			return nil, apperrors.NewForbiddenError("Only salons have sent invitations")
		}
		return nil, apperrors.InternalError(err)
	}
	invitations, err := s.relationRepo.ListInvitationsBySalon(db, salon.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return invitationsToDTO(invitations), nil
}

func (s *relationService) ListMasterInvitations(db *gorm.DB, userID string) ([]dto.InvitationDTO, error) {
	master, err := s.masterRepo.FindByUser(db, userID)
	if err != nil {
		if err == repositories.ErrMasterNotFound {
			return nil, apperrors.NewForbiddenError("Only masters receive invitations")
		}
		return nil, apperrors.InternalError(err)
	}
	invitations, err := s.relationRepo.ListInvitationsByMaster(db, master.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return invitationsToDTO(invitations), nil
}

// Answer lets the invited master accept or decline. Accepting creates the
// working relation in the same transaction as the status flip.
func (s *relationService) Answer(db *gorm.DB, userID, invitationID string, req *dto.AnswerInvitationRequest) (*dto.InvitationDTO, error) {
	master, err := s.masterRepo.FindByUser(db, userID)
	if err != nil {
		if err == repositories.ErrMasterNotFound {
			return nil, apperrors.NewForbiddenError("Only masters can answer invitations")
		}
		return nil, apperrors.InternalError(err)
	}

	invitation, err := s.relationRepo.FindInvitationByID(db, invitationID)
	if err != nil {
		if err == repositories.ErrInvitationNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if invitation.MasterID != master.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if invitation.Status != models.InvitationStatusPending {
		return nil, apperrors.ErrInvalidOperation("relations", "Invitation has already been answered")
	}

	status := models.InvitationStatus(req.Status)
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.relationRepo.UpdateInvitationStatus(tx, invitationID, status); err != nil {
			return err
		}
		if status == models.InvitationStatusAccepted {
			relation := &models.SalonMasterRelation{
				SalonID:  invitation.SalonID,
				MasterID: invitation.MasterID,
				IsActive: true,
			}
			if err := s.relationRepo.CreateRelation(tx, relation); err != nil && err != repositories.ErrRelationExists {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	invitation.Status = status
	out := dto.InvitationToDTO(invitation)
	return &out, nil
}

func (s *relationService) ListSalonMasters(db *gorm.DB, salonID string) ([]dto.RelationDTO, error) {
	relations, err := s.relationRepo.ListRelationsBySalon(db, salonID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return relationsToDTO(relations), nil
}

func (s *relationService) ListMasterSalons(db *gorm.DB, masterID string) ([]dto.RelationDTO, error) {
	relations, err := s.relationRepo.ListRelationsByMaster(db, masterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return relationsToDTO(relations), nil
}

// EndRelation may be called by either side of the relation.
func (s *relationService) EndRelation(db *gorm.DB, userID, salonID, masterID string) error {
	allowed := false
	if salon, err := s.salonRepo.FindByUser(db, userID); err == nil && salon.ID == salonID {
		allowed = true
	}
	if !allowed {
		if master, err := s.masterRepo.FindByUser(db, userID); err == nil && master.ID == masterID {
			allowed = true
		}
	}
	if !allowed {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.relationRepo.DeactivateRelation(db, salonID, masterID); err != nil {
		if err == repositories.ErrRelationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *relationService) notifyMaster(db *gorm.DB, salon *models.Salon, master *models.Master, message string) {
	user, err := s.userRepo.FindByID(db, master.UserID)
	if err != nil {
		logger.WithError(err).Warn("skipping invitation email", "master_id", master.ID)
		return
	}
	if err := s.mailer.SendInvitation(user.Email, salon.Name, message); err != nil {
		logger.WithError(err).Warn("failed to send invitation email", "master_id", master.ID)
	}
}

func invitationsToDTO(invitations []models.SalonMasterInvitation) []dto.InvitationDTO {
	out := make([]dto.InvitationDTO, 0, len(invitations))
	for i := range invitations {
		out = append(out, dto.InvitationToDTO(&invitations[i]))
	}
	return out
}

func relationsToDTO(relations []models.SalonMasterRelation) []dto.RelationDTO {
	out := make([]dto.RelationDTO, 0, len(relations))
	for i := range relations {
		out = append(out, dto.RelationToDTO(&relations[i]))
	}
	return out
}
