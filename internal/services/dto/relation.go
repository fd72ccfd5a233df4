package dto

import (
	"time"

	"github.com/Gob26/beautycity/internal/models"
)

type InviteMasterRequest struct {
	MasterID string `json:"master_id" validate:"required,uuid"`
	Message  string `json:"message" validate:"max=2000"`
}

type AnswerInvitationRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}

type InvitationDTO struct {
	ID        string                  `json:"id"`
	SalonID   string                  `json:"salon_id"`
	Salon     *SalonDTO               `json:"salon,omitempty"`
	MasterID  string                  `json:"master_id"`
	Master    *MasterDTO              `json:"master,omitempty"`
	Message   string                  `json:"message,omitempty"`
	Status    models.InvitationStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
}

func InvitationToDTO(i *models.SalonMasterInvitation) InvitationDTO {
	out := InvitationDTO{
		ID:        i.ID,
		SalonID:   i.SalonID,
		MasterID:  i.MasterID,
		Message:   i.Message,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
	}
	if i.Salon != nil {
		salon := SalonToDTO(i.Salon)
		out.Salon = &salon
	}
	if i.Master != nil {
		master := MasterToDTO(i.Master)
		out.Master = &master
	}
	return out
}

type RelationDTO struct {
	ID        string     `json:"id"`
	SalonID   string     `json:"salon_id"`
	Salon     *SalonDTO  `json:"salon,omitempty"`
	MasterID  string     `json:"master_id"`
	Master    *MasterDTO `json:"master,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

func RelationToDTO(r *models.SalonMasterRelation) RelationDTO {
	out := RelationDTO{
		ID:        r.ID,
		SalonID:   r.SalonID,
		MasterID:  r.MasterID,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
	if r.Salon != nil {
		salon := SalonToDTO(r.Salon)
		out.Salon = &salon
	}
	if r.Master != nil {
		master := MasterToDTO(r.Master)
		out.Master = &master
	}
	return out
}
