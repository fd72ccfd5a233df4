package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/models"
)

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrRelationNotFound   = errors.New("relation not found")
	ErrRelationExists     = errors.New("relation already exists")
)

type RelationRepository interface {
	CreateInvitation(db *gorm.DB, invitation *models.SalonMasterInvitation) error
	FindInvitationByID(db *gorm.DB, id string) (*models.SalonMasterInvitation, error)
	ListInvitationsBySalon(db *gorm.DB, salonID string) ([]models.SalonMasterInvitation, error)
	ListInvitationsByMaster(db *gorm.DB, masterID string) ([]models.SalonMasterInvitation, error)
	HasPendingInvitation(db *gorm.DB, salonID, masterID string) (bool, error)
	UpdateInvitationStatus(db *gorm.DB, id string, status models.InvitationStatus) error

	CreateRelation(db *gorm.DB, relation *models.SalonMasterRelation) error
	FindRelation(db *gorm.DB, salonID, masterID string) (*models.SalonMasterRelation, error)
	ListRelationsBySalon(db *gorm.DB, salonID string) ([]models.SalonMasterRelation, error)
	ListRelationsByMaster(db *gorm.DB, masterID string) ([]models.SalonMasterRelation, error)
	DeactivateRelation(db *gorm.DB, salonID, masterID string) error
}

type relationRepository struct{}

func NewRelationRepository() RelationRepository {
	return &relationRepository{}
}

func (r *relationRepository) CreateInvitation(db *gorm.DB, invitation *models.SalonMasterInvitation) error {
	return db.Create(invitation).Error
}

func (r *relationRepository) FindInvitationByID(db *gorm.DB, id string) (*models.SalonMasterInvitation, error) {
	var invitation models.SalonMasterInvitation
	err := db.Preload("Salon").Preload("Master").First(&invitation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *relationRepository) ListInvitationsBySalon(db *gorm.DB, salonID string) ([]models.SalonMasterInvitation, error) {
	var invitations []models.SalonMasterInvitation
	err := db.Preload("Master").
		Where("salon_id = ?", salonID).
		Order("created_at DESC").Find(&invitations).Error
	return invitations, err
}

func (r *relationRepository) ListInvitationsByMaster(db *gorm.DB, masterID string) ([]models.SalonMasterInvitation, error) {
	var invitations []models.SalonMasterInvitation
	err := db.Preload("Salon").
		Where("master_id = ?", masterID).
		Order("created_at DESC").Find(&invitations).Error
	return invitations, err
}

func (r *relationRepository) HasPendingInvitation(db *gorm.DB, salonID, masterID string) (bool, error) {
	var count int64
	err := db.Model(&models.SalonMasterInvitation{}).
		Where("salon_id = ? AND master_id = ? AND status = ?",
			salonID, masterID, models.InvitationStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *relationRepository) UpdateInvitationStatus(db *gorm.DB, id string, status models.InvitationStatus) error {
	result := db.Model(&models.SalonMasterInvitation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvitationNotFound
	}
	return nil
}

func (r *relationRepository) CreateRelation(db *gorm.DB, relation *models.SalonMasterRelation) error {
	var count int64
	err := db.Model(&models.SalonMasterRelation{}).
		Where("salon_id = ? AND master_id = ?", relation.SalonID, relation.MasterID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRelationExists
	}
	return db.Create(relation).Error
}

func (r *relationRepository) FindRelation(db *gorm.DB, salonID, masterID string) (*models.SalonMasterRelation, error) {
	var relation models.SalonMasterRelation
	err := db.First(&relation, "salon_id = ? AND master_id = ?", salonID, masterID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRelationNotFound
		}
		return nil, err
	}
	return &relation, nil
}

func (r *relationRepository) ListRelationsBySalon(db *gorm.DB, salonID string) ([]models.SalonMasterRelation, error) {
	var relations []models.SalonMasterRelation
	err := db.Preload("Master").
		Where("salon_id = ? AND is_active = ?", salonID, true).
		Find(&relations).Error
	return relations, err
}

func (r *relationRepository) ListRelationsByMaster(db *gorm.DB, masterID string) ([]models.SalonMasterRelation, error) {
	var relations []models.SalonMasterRelation
	err := db.Preload("Salon").
		Where("master_id = ? AND is_active = ?", masterID, true).
		Find(&relations).Error
	return relations, err
}

func (r *relationRepository) DeactivateRelation(db *gorm.DB, salonID, masterID string) error {
	result := db.Model(&models.SalonMasterRelation{}).
		Where("salon_id = ? AND master_id = ?", salonID, masterID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRelationNotFound
	}
	return nil
}
