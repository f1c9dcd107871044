package services

import (
	"testing"

	"github.com/DouglasMoraesDev/AppDelivery/internal/database"
	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/DouglasMoraesDev/AppDelivery/internal/slug"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and makes
	// concurrent transactions queue instead of hitting SQLITE_BUSY.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createTestTenant(t *testing.T, db *gorm.DB, slug, status string) *models.Tenant {
	tenant := models.Tenant{
		Slug:         slug,
		Status:       status,
		BusinessName: "Test " + slug,
		IsOpen:       true,
	}
	require.NoError(t, db.Create(&tenant).Error)
	return &tenant
}

func createTestProduct(t *testing.T, db *gorm.DB, tenant *models.Tenant, name, price string, available bool) *models.Product {
	category := models.Category{TenantID: tenant.ID, Name: "Menu", Slug: "menu", Active: true}
	require.NoError(t, db.FirstOrCreate(&category, models.Category{TenantID: tenant.ID, Slug: "menu"}).Error)

	product := models.Product{
		TenantID:   tenant.ID,
		CategoryID: category.ID,
		Name:       name,
		Slug:       slug.Make(name),
		Price:      decimal.RequireFromString(price),
		Available:  available,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}
