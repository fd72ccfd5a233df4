package models

type City struct {
	BaseModel
	Name     string `gorm:"not null" json:"name"`
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
