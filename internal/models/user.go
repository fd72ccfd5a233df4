package models

import "github.com/Gob26/beautycity/internal/auth"

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Role         auth.Role  `gorm:"type:varchar(16);not null;default:'client'" json:"role"`
	Status       UserStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	CityID       *string    `gorm:"type:uuid;index" json:"city_id,omitempty"`

	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}
