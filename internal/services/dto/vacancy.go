package dto

import (
	"time"

	"github.com/Gob26/beautycity/internal/models"
)

type CreateVacancyRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=128"`
	Description string `json:"description" validate:"max=4000"`
	SalaryFrom  int64  `json:"salary_from" validate:"min=0"`
	SalaryTo    int64  `json:"salary_to" validate:"min=0"`
}

type UpdateVacancyRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=2,max=128"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=4000"`
	SalaryFrom  *int64  `json:"salary_from,omitempty" validate:"omitempty,min=0"`
	SalaryTo    *int64  `json:"salary_to,omitempty" validate:"omitempty,min=0"`
	Status      *string `json:"status,omitempty" validate:"omitempty,is-vacancy-status"`
}

type VacancyDTO struct {
	ID          string               `json:"id"`
	SalonID     string               `json:"salon_id"`
	Salon       *SalonDTO            `json:"salon,omitempty"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	SalaryFrom  int64                `json:"salary_from"`
	SalaryTo    int64                `json:"salary_to"`
	Status      models.VacancyStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

func VacancyToDTO(v *models.Vacancy) VacancyDTO {
	out := VacancyDTO{
		ID:          v.ID,
		SalonID:     v.SalonID,
		Title:       v.Title,
		Description: v.Description,
		SalaryFrom:  v.SalaryFrom,
		SalaryTo:    v.SalaryTo,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
	}
	if v.Salon != nil {
		salon := SalonToDTO(v.Salon)
		out.Salon = &salon
	}
	return out
}

type ApplyVacancyRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

type UpdateApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}

type ApplicationDTO struct {
	ID        string                   `json:"id"`
	VacancyID string                   `json:"vacancy_id"`
	Vacancy   *VacancyDTO              `json:"vacancy,omitempty"`
	MasterID  string                   `json:"master_id"`
	Master    *MasterDTO               `json:"master,omitempty"`
	Message   string                   `json:"message,omitempty"`
	Status    models.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
}

func ApplicationToDTO(a *models.VacancyApplication) ApplicationDTO {
	out := ApplicationDTO{
		ID:        a.ID,
		VacancyID: a.VacancyID,
		MasterID:  a.MasterID,
		Message:   a.Message,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
	if a.Vacancy != nil {
		vacancy := VacancyToDTO(a.Vacancy)
		out.Vacancy = &vacancy
	}
	if a.Master != nil {
		master := MasterToDTO(a.Master)
		out.Master = &master
	}
	return out
}
