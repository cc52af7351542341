package services

import (
	"testing"

	"sweet-shop/infra"
	"sweet-shop/models"
	"sweet-shop/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database pinned to a single connection
// so every goroutine in a test sees the same store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.Migrate(db))
	return db
}

func setupSweetRepository(t *testing.T) repositories.ISweetRepository {
	t.Helper()
	return repositories.NewSweetRepository(setupTestDB(t))
}

func createSweet(t *testing.T, repo repositories.ISweetRepository, name string, category string, price float64, quantity int) *models.Sweet {
	t.Helper()
	sweet, err := repo.Create(models.Sweet{
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	})
	require.NoError(t, err)
	return sweet
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
