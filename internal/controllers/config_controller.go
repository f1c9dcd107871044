package controllers

import (
	"net/http"

	"github.com/DouglasMoraesDev/AppDelivery/internal/middleware"
	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/DouglasMoraesDev/AppDelivery/internal/services"
	"github.com/DouglasMoraesDev/AppDelivery/internal/storage"
	"github.com/gin-gonic/gin"
)

// ConfigController exposes tenant configuration: the authenticated full
// view, the public restricted view and branding image uploads.
type ConfigController struct {
	tenantService services.TenantService
	store         storage.ImageStore
	production    bool
}

// NewConfigController creates a new instance of ConfigController
func NewConfigController(tenantService services.TenantService, store storage.ImageStore, production bool) *ConfigController {
	return &ConfigController{tenantService: tenantService, store: store, production: production}
}

// GetConfig godoc
// @Summary Get tenant configuration
// @Description Full configuration of the authenticated tenant
// @Tags config
// @Produce json
// @Success 200 {object} models.Tenant
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/config [get]
func (c *ConfigController) GetConfig(ctx *gin.Context) {
	tenant, err := c.tenantService.GetByID(middleware.TenantID(ctx))
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, tenant)
}

// GetPublicConfig godoc
// @Summary Get public configuration
// @Description Restricted storefront view of the tenant configuration. Never errors: unprovisioned deployments get a default payload
// @Tags public
// @Produce json
// @Param tenantSlug path string false "Tenant slug"
// @Success 200 {object} models.PublicConfig
// @Router /api/public/config [get]
func (c *ConfigController) GetPublicConfig(ctx *gin.Context) {
	tenant, err := c.tenantService.ResolvePublic(ctx.Param("tenantSlug"))
	if err != nil || tenant == nil {
		// The storefront must always render something
		ctx.JSON(http.StatusOK, models.DefaultPublicConfig())
		return
	}
	ctx.JSON(http.StatusOK, tenant.PublicConfig())
}

// UpdateConfig godoc
// @Summary Update tenant configuration
// @Description Partial update of recognized configuration fields. Unknown fields are silently ignored for forward compatibility
// @Tags config
// @Accept json
// @Produce json
// @Param config body services.UpdateConfigInput true "Fields to update"
// @Success 200 {object} models.Tenant
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/config [put]
func (c *ConfigController) UpdateConfig(ctx *gin.Context) {
	var input services.UpdateConfigInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	tenant, err := c.tenantService.UpdateConfig(middleware.TenantID(ctx), input)
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, tenant)
}

// UploadImage godoc
// @Summary Upload a branding image
// @Description Store a logo or banner image (max 2MB, image types only) and link it to the tenant
// @Tags config
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Param type formData string true "logo or banner"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/config/upload-image [post]
func (c *ConfigController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "No file uploaded"))
		return
	}

	imageType := ctx.PostForm("type")
	if imageType != "logo" && imageType != "banner" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, `Invalid type. Use "logo" or "banner"`))
		return
	}

	filename, err := c.store.Save(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}
	url := c.store.PublicURL(filename)

	_, replaced, err := c.tenantService.SetImage(middleware.TenantID(ctx), imageType, url)
	if err != nil {
		c.store.Delete(url)
		respondDomainError(ctx, err, c.production)
		return
	}
	if replaced != "" {
		c.store.Delete(replaced)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"url":     url,
		"type":    imageType,
		"message": "Image uploaded successfully",
	})
}
