package database

import (
	"gorm.io/gorm"

	"github.com/jobboardhq/jobboard/internal/models"
)

// AutoMigrate creates or updates the database schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Job{},
		&models.User{},
		&models.Resume{},
		&models.CacheEntry{},
	)
}
