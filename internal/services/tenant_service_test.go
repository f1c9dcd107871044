package services

import (
	"testing"

	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBySlug(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db)

	created := createTestTenant(t, db, "pizzaria", models.TenantStatusActive)

	tenant, err := service.ResolveBySlug("pizzaria")
	require.NoError(t, err)
	assert.Equal(t, created.ID, tenant.ID)

	_, err = service.ResolveBySlug("missing")
	assert.ErrorIs(t, err, models.ErrTenantNotFound)
}

func TestResolvePublicFallbackChain(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db)

	// Empty deployment: no tenant and no error
	tenant, err := service.ResolvePublic("")
	require.NoError(t, err)
	assert.Nil(t, tenant)

	// Only a suspended tenant exists: it is still served
	suspended := createTestTenant(t, db, "suspended", models.TenantStatusSuspended)
	tenant, err = service.ResolvePublic("")
	require.NoError(t, err)
	require.NotNil(t, tenant)
	assert.Equal(t, suspended.ID, tenant.ID)

	// An active tenant wins over the suspended one
	active := createTestTenant(t, db, "active", models.TenantStatusActive)
	tenant, err = service.ResolvePublic("")
	require.NoError(t, err)
	require.NotNil(t, tenant)
	assert.Equal(t, active.ID, tenant.ID)

	// An explicit slug bypasses the fallback entirely
	tenant, err = service.ResolvePublic("suspended")
	require.NoError(t, err)
	assert.Equal(t, suspended.ID, tenant.ID)

	_, err = service.ResolvePublic("missing")
	assert.ErrorIs(t, err, models.ErrTenantNotFound)
}

func TestUpdateConfigAppliesOnlyProvidedFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db)

	tenant := createTestTenant(t, db, "pizzaria", models.TenantStatusActive)
	tenant.Phone = "1133334444"
	tenant.PrimaryColor = "#ea580c"
	require.NoError(t, db.Save(tenant).Error)

	newName := "Pizzaria do Zé"
	closed := false
	schedule := models.Schedule{"monday": {Open: "19:00", Close: "22:00"}}
	updated, err := service.UpdateConfig(tenant.ID, UpdateConfigInput{
		BusinessName: &newName,
		IsOpen:       &closed,
		Schedule:     &schedule,
	})
	require.NoError(t, err)

	assert.Equal(t, "Pizzaria do Zé", updated.BusinessName)
	assert.False(t, updated.IsOpen)
	assert.Equal(t, "19:00", updated.Schedule["monday"].Open)
	// Untouched fields keep their values
	assert.Equal(t, "1133334444", updated.Phone)
	assert.Equal(t, "#ea580c", updated.PrimaryColor)

	_, err = service.UpdateConfig("missing-id", UpdateConfigInput{BusinessName: &newName})
	assert.ErrorIs(t, err, models.ErrTenantNotFound)
}

func TestSetImageReportsReplacedPath(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db)

	tenant := createTestTenant(t, db, "pizzaria", models.TenantStatusActive)

	updated, replaced, err := service.SetImage(tenant.ID, "logo", "/uploads/logo-1.png")
	require.NoError(t, err)
	assert.Empty(t, replaced)
	require.NotNil(t, updated.Logo)
	assert.Equal(t, "/uploads/logo-1.png", *updated.Logo)

	_, replaced, err = service.SetImage(tenant.ID, "logo", "/uploads/logo-2.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logo-1.png", replaced)

	_, _, err = service.SetImage(tenant.ID, "avatar", "/uploads/x.png")
	assert.Error(t, err)
}

func TestPublicConfigHidesSensitiveFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db)

	tenant := createTestTenant(t, db, "pizzaria", models.TenantStatusActive)
	key := "secret-key"
	enabled := true
	_, err := service.UpdateConfig(tenant.ID, UpdateConfigInput{GeminiAPIKey: &key, AIEnabled: &enabled})
	require.NoError(t, err)

	reloaded, err := service.GetByID(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", reloaded.GeminiAPIKey)

	// The storefront projection carries no credentials or internal state
	public := reloaded.PublicConfig()
	assert.Equal(t, tenant.BusinessName, public.BusinessName)
	assert.True(t, public.IsOpen)
}
