package models

type VacancyStatus string

const (
	VacancyStatusOpen   VacancyStatus = "open"
	VacancyStatusClosed VacancyStatus = "closed"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusDeclined ApplicationStatus = "declined"
)

// Vacancy is a job posting published by a salon.
type Vacancy struct {
	BaseModelWithDeleted
	SalonID     string        `gorm:"type:uuid;not null;index" json:"salon_id"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	SalaryFrom  int64         `json:"salary_from"`
	SalaryTo    int64         `json:"salary_to"`
	Status      VacancyStatus `gorm:"type:varchar(16);not null;default:'open'" json:"status"`

	Salon *Salon `gorm:"foreignKey:SalonID" json:"salon,omitempty"`
}

// VacancyApplication is a master's response to a vacancy.
type VacancyApplication struct {
	BaseModel
	VacancyID string            `gorm:"type:uuid;not null;index:idx_vacancy_master,unique" json:"vacancy_id"`
	MasterID  string            `gorm:"type:uuid;not null;index:idx_vacancy_master,unique" json:"master_id"`
	Message   string            `json:"message"`
	Status    ApplicationStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`

	Vacancy *Vacancy `gorm:"foreignKey:VacancyID" json:"vacancy,omitempty"`
	Master  *Master  `gorm:"foreignKey:MasterID" json:"master,omitempty"`
}
