package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Gob26/beautycity/database"
	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/config"
	"github.com/Gob26/beautycity/internal/email"
	"github.com/Gob26/beautycity/internal/handlers"
	"github.com/Gob26/beautycity/internal/imageprocessor"
	"github.com/Gob26/beautycity/internal/logger"
	"github.com/Gob26/beautycity/internal/middleware"
	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/repositories"
	"github.com/Gob26/beautycity/internal/routes"
	"github.com/Gob26/beautycity/internal/services"
	"github.com/Gob26/beautycity/internal/storage"
	"github.com/Gob26/beautycity/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewLocalStorage(cfg.Media.Root, cfg.Media.BaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize media storage", "root", cfg.Media.Root, "error", err)
	}
	resolver := storage.NewPathResolver(cfg.Media.Root)
	processor := imageprocessor.NewProcessor(cfg.Media.JPEGQuality)
	generator := imageprocessor.NewGenerator(processor, store, resolver, 4)
	logger.Info("Media storage initialized", "root", cfg.Media.Root)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	var mailer email.Sender
	if cfg.Email.SMTPHost != "" {
		mailer = email.NewSender(cfg)
	} else {
		logger.Warn("SMTP is not configured, outgoing mail is disabled")
		mailer = email.NopSender{}
	}

	appHandlers := initializeHandlers(cfg, tokens, mailer, generator, store)

	ginRouter := initializeGinRouter(gormDB)

	// Stored variant paths are relative to the media root, so the whole root
	// is served as-is.
	ginRouter.Static(cfg.Media.BaseURL, cfg.Media.Root)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeHandlers(
	cfg *config.Config,
	tokens *auth.TokenManager,
	mailer email.Sender,
	generator *imageprocessor.Generator,
	store storage.Storage,
) *handlers.AppHandlers {
	userRepo := repositories.NewUserRepository()
	cityRepo := repositories.NewCityRepository()
	salonRepo := repositories.NewSalonRepository()
	masterRepo := repositories.NewMasterRepository()
	serviceRepo := repositories.NewServiceRepository()
	vacancyRepo := repositories.NewVacancyRepository()
	relationRepo := repositories.NewRelationRepository()
	photoRepo := repositories.NewPhotoRepository()

	authService := services.NewAuthService(userRepo, tokens)
	cityService := services.NewCityService(cityRepo)
	salonService := services.NewSalonService(salonRepo, cityRepo, photoRepo)
	masterService := services.NewMasterService(masterRepo, cityRepo, photoRepo)
	catalogService := services.NewCatalogService(serviceRepo, salonRepo, masterRepo)
	vacancyService := services.NewVacancyService(vacancyRepo, salonRepo, masterRepo, userRepo, cityRepo, mailer)
	relationService := services.NewRelationService(relationRepo, salonRepo, masterRepo, userRepo, mailer)
	photoService := services.NewPhotoService(photoRepo, salonRepo, masterRepo, serviceRepo, generator, store, cfg)

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, authService, tokens),
		CityHandler:     handlers.NewCityHandler(baseHandler, cityService, tokens),
		SalonHandler:    handlers.NewSalonHandler(baseHandler, salonService, tokens),
		MasterHandler:   handlers.NewMasterHandler(baseHandler, masterService, relationService, tokens),
		CatalogHandler:  handlers.NewCatalogHandler(baseHandler, catalogService, tokens),
		VacancyHandler:  handlers.NewVacancyHandler(baseHandler, vacancyService, tokens),
		RelationHandler: handlers.NewRelationHandler(baseHandler, relationService, tokens),
		PhotoHandler:    handlers.NewPhotoHandler(baseHandler, photoService, tokens),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = 32 << 20
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         auth.RoleAdmin,
		Status:       models.UserStatusActive,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
