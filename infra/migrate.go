package infra

import (
	"sweet-shop/models"

	"gorm.io/gorm"
)

// Migrate creates the schema plus a partial unique index backstopping
// case-insensitive sweet-name uniqueness. The index only covers live rows, so
// a soft-deleted sweet does not block re-creating its name.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Sweet{}, &models.RevokedToken{}); err != nil {
		return err
	}
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_sweets_live_name ON sweets (LOWER(name)) WHERE deleted_at IS NULL",
	).Error
}
