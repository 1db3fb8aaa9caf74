package database

import (
	"errors"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/citycare/mydoctor-api/internal/config"
	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/stores"
	"github.com/citycare/mydoctor-api/internal/utils"
)

// Connect opens the database and migrates the five tables. TranslateError
// lets unique-constraint violations surface as gorm.ErrDuplicatedKey.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.MedicalRecord{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// Seed creates the initial admin account when it does not exist. Without it
// a fresh install has no way into the admin area.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	users := &stores.GormUserStore{DB: db}
	if _, err := users.FindByEmail(cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, stores.ErrNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := users.Create(admin); err != nil {
		// A concurrent boot may have won the insert; the unique constraint
		// is the source of truth.
		if stores.IsDuplicate(err) {
			return nil
		}
		return err
	}

	log.Printf("Seeded admin account %s", cfg.AdminEmail)
	return nil
}
