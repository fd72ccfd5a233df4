package models

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
)

// SalonMasterInvitation is an offer from a salon to a master. Accepting one
// creates a SalonMasterRelation.
type SalonMasterInvitation struct {
	BaseModel
	SalonID  string           `gorm:"type:uuid;not null;index" json:"salon_id"`
	MasterID string           `gorm:"type:uuid;not null;index" json:"master_id"`
	Message  string           `json:"message"`
	Status   InvitationStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`

	Salon  *Salon  `gorm:"foreignKey:SalonID" json:"salon,omitempty"`
	Master *Master `gorm:"foreignKey:MasterID" json:"master,omitempty"`
}

// SalonMasterRelation is an active working relation between a salon and a
// master.
type SalonMasterRelation struct {
	BaseModel
	SalonID  string `gorm:"type:uuid;not null;index:idx_salon_master,unique" json:"salon_id"`
	MasterID string `gorm:"type:uuid;not null;index:idx_salon_master,unique" json:"master_id"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Salon  *Salon  `gorm:"foreignKey:SalonID" json:"salon,omitempty"`
	Master *Master `gorm:"foreignKey:MasterID" json:"master,omitempty"`
}
