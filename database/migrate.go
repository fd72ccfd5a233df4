package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/logger"
	"github.com/Gob26/beautycity/internal/models"
)

// AutoMigrate creates the uuid extension and migrates every model.
func AutoMigrate(db *gorm.DB) error {
	// BaseModel relies on uuid_generate_v4() for primary keys.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.City{},
		&models.Salon{},
		&models.Master{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Vacancy{},
		&models.VacancyApplication{},
		&models.SalonMasterInvitation{},
		&models.SalonMasterRelation{},
		&models.Photo{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}
