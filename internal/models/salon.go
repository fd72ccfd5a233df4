package models

type Salon struct {
	BaseModelWithDeleted
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	CityID      string `gorm:"type:uuid;not null;index" json:"city_id"`
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type Master struct {
	BaseModelWithDeleted
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	CityID      string `gorm:"type:uuid;not null;index" json:"city_id"`
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
	Experience  int    `json:"experience"` // years
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
