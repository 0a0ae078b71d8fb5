package database

import (
	"log"

	"github.com/catalys/platform/internal/config"
	"github.com/catalys/platform/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Initialize(cfg *config.Config) error {
	var dialector gorm.Dialector

	switch cfg.DatabaseType {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	DB = db
	log.Println("Database connected successfully")

	return AutoMigrate(db)
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Organization{},
		&models.OrganizationMember{},
		&models.Startup{},
		&models.CoFounderInvitation{},
		&models.OnboardingDraft{},
	)
}

func GetDB() *gorm.DB {
	return DB
}
