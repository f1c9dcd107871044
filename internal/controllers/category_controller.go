package controllers

import (
	"net/http"

	"github.com/DouglasMoraesDev/AppDelivery/internal/middleware"
	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/DouglasMoraesDev/AppDelivery/internal/services"
	"github.com/gin-gonic/gin"
)

// CategoryController handles HTTP requests related to menu categories
type CategoryController interface {
	// ListCategories retrieves the tenant's categories with product counts
	ListCategories(c *gin.Context)
	// CreateCategory creates a new category
	CreateCategory(c *gin.Context)
	// UpdateCategory updates an existing category
	UpdateCategory(c *gin.Context)
	// DeleteCategory deletes a category by its ID
	DeleteCategory(c *gin.Context)
	// ListPublicCategories retrieves the active categories of the resolved tenant
	ListPublicCategories(c *gin.Context)
}

type categoryController struct {
	service       services.CategoryService
	tenantService services.TenantService
	production    bool
}

// NewCategoryController creates a new instance of CategoryController
func NewCategoryController(service services.CategoryService, tenantService services.TenantService, production bool) CategoryController {
	return &categoryController{service: service, tenantService: tenantService, production: production}
}

// ListCategories godoc
// @Summary List categories
// @Description List every category of the authenticated tenant, ordered by display order, with product counts
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Security BearerAuth
// @Router /api/categories [get]
func (c *categoryController) ListCategories(ctx *gin.Context) {
	categories, err := c.service.List(middleware.TenantID(ctx))
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category for the authenticated tenant; the slug is derived from the name
// @Tags categories
// @Accept json
// @Produce json
// @Param category body services.CreateCategoryInput true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/categories [post]
func (c *categoryController) CreateCategory(ctx *gin.Context) {
	var input services.CreateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	category, err := c.service.Create(middleware.TenantID(ctx), input)
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Description Apply a partial update to one of the tenant's categories
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body services.UpdateCategoryInput true "Fields to update"
// @Success 200 {object} models.Category
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/categories/{id} [put]
func (c *categoryController) UpdateCategory(ctx *gin.Context) {
	var input services.UpdateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	category, err := c.service.Update(middleware.TenantID(ctx), ctx.Param("id"), input)
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete one of the tenant's categories
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/categories/{id} [delete]
func (c *categoryController) DeleteCategory(ctx *gin.Context) {
	if err := c.service.Delete(middleware.TenantID(ctx), ctx.Param("id")); err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// ListPublicCategories godoc
// @Summary List public categories
// @Description List active categories for the storefront. The tenant comes from the path slug or falls back to the first active tenant
// @Tags public
// @Produce json
// @Param tenantSlug path string false "Tenant slug"
// @Success 200 {array} models.Category
// @Router /api/public/categories [get]
func (c *categoryController) ListPublicCategories(ctx *gin.Context) {
	tenant, err := c.tenantService.ResolvePublic(ctx.Param("tenantSlug"))
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	if tenant == nil {
		// Unprovisioned deployment: the storefront gets an empty menu
		ctx.JSON(http.StatusOK, []models.Category{})
		return
	}

	categories, err := c.service.ListPublic(tenant.ID)
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}
