package services

import (
	"testing"

	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(db)

	tenant := createTestTenant(t, db, "pizzaria", models.TenantStatusActive)
	other := createTestTenant(t, db, "other", models.TenantStatusActive)

	category := models.Category{TenantID: tenant.ID, Name: "Burgers", Slug: "burgers", Active: true}
	require.NoError(t, db.Create(&category).Error)

	// Price must be strictly positive
	_, err := service.Create(tenant.ID, CreateProductInput{
		Name: "Free Burger", Price: mustDecimal("0"), CategoryID: category.ID,
	})
	assert.Error(t, err)

	// The category must belong to the same tenant
	_, err = service.Create(other.ID, CreateProductInput{
		Name: "Burger", Price: mustDecimal("29.90"), CategoryID: category.ID,
	})
	assert.ErrorIs(t, err, models.ErrCategoryNotFound)

	product, err := service.Create(tenant.ID, CreateProductInput{
		Name:        "Classic Burger",
		Price:       mustDecimal("29.90"),
		CategoryID:  category.ID,
		Ingredients: []string{"Beef", "Cheddar"},
	})
	require.NoError(t, err)
	assert.Equal(t, "classic-burger", product.Slug)
	assert.True(t, product.Available, "products default to available")
	assert.Equal(t, []string{"Beef", "Cheddar"}, product.Ingredients)
}

func TestListProductsFilters(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(db)

	tenant := createTestTenant(t, db, "pizzaria", models.TenantStatusActive)
	available := createTestProduct(t, db, tenant, "Classic", "29.90", true)
	soldOut := createTestProduct(t, db, tenant, "Sold Out", "19.90", false)

	all, err := service.List(tenant.ID, ProductFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyAvailable := true
	filtered, err := service.List(tenant.ID, ProductFilters{Available: &onlyAvailable})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, available.ID, filtered[0].ID)
	require.NotNil(t, filtered[0].Category, "listing joins the category")

	public, err := service.ListPublic(tenant.ID)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.NotEqual(t, soldOut.ID, public[0].ID)
}

func TestGetProductBySlug(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(db)

	tenant := createTestTenant(t, db, "pizzaria", models.TenantStatusActive)
	other := createTestTenant(t, db, "other", models.TenantStatusActive)
	created := createTestProduct(t, db, tenant, "Classic Burger", "29.90", true)

	product, err := service.GetBySlug(tenant.ID, "classic-burger")
	require.NoError(t, err)
	assert.Equal(t, created.ID, product.ID)

	// Slugs are tenant-scoped
	_, err = service.GetBySlug(other.ID, "classic-burger")
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestUpdateProductReportsReplacedImage(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(db)

	tenant := createTestTenant(t, db, "pizzaria", models.TenantStatusActive)
	product := createTestProduct(t, db, tenant, "Classic", "29.90", true)

	first := "/uploads/classic-1.png"
	_, replaced, err := service.Update(tenant.ID, product.ID, UpdateProductInput{Image: &first})
	require.NoError(t, err)
	assert.Empty(t, replaced)

	second := "/uploads/classic-2.png"
	newPrice := mustDecimal("34.90")
	updated, replaced, err := service.Update(tenant.ID, product.ID, UpdateProductInput{
		Image: &second,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, first, replaced)
	assert.True(t, updated.Price.Equal(newPrice))

	// A non-positive price is rejected without touching the row
	bad := mustDecimal("-1")
	_, _, err = service.Update(tenant.ID, product.ID, UpdateProductInput{Price: &bad})
	assert.Error(t, err)
}

func TestDeleteProductReturnsImageForCleanup(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(db)

	tenant := createTestTenant(t, db, "pizzaria", models.TenantStatusActive)
	product := createTestProduct(t, db, tenant, "Classic", "29.90", true)

	image := "/uploads/classic.png"
	_, _, err := service.Update(tenant.ID, product.ID, UpdateProductInput{Image: &image})
	require.NoError(t, err)

	deleted, err := service.Delete(tenant.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, image, deleted)

	_, err = service.GetByID(tenant.ID, product.ID)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}
