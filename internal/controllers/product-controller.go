package controllers

import (
	"net/http"

	"github.com/DouglasMoraesDev/AppDelivery/internal/middleware"
	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/DouglasMoraesDev/AppDelivery/internal/services"
	"github.com/DouglasMoraesDev/AppDelivery/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductController handles HTTP requests related to products
type ProductController interface {
	// ListProducts retrieves the tenant's products with optional filters
	ListProducts(c *gin.Context)
	// GetProductByID retrieves a product by its ID
	GetProductByID(c *gin.Context)
	// CreateProduct creates a new product, optionally with an image upload
	CreateProduct(c *gin.Context)
	// UpdateProduct updates an existing product
	UpdateProduct(c *gin.Context)
	// DeleteProduct deletes a product by its ID
	DeleteProduct(c *gin.Context)
	// ListPublicProducts retrieves the available products of the resolved tenant
	ListPublicProducts(c *gin.Context)
	// GetPublicProductBySlug retrieves one product by slug for the storefront
	GetPublicProductBySlug(c *gin.Context)
}

type productController struct {
	service       services.ProductService
	tenantService services.TenantService
	store         storage.ImageStore
	production    bool
}

// NewProductController creates a new instance of ProductController
func NewProductController(service services.ProductService, tenantService services.TenantService, store storage.ImageStore, production bool) ProductController {
	return &productController{service: service, tenantService: tenantService, store: store, production: production}
}

// productForm mirrors the multipart form the admin dashboard submits.
// Everything arrives as form fields so the image can ride along.
type productForm struct {
	Name        string   `form:"name"`
	Description string   `form:"description"`
	Price       string   `form:"price"`
	CategoryID  string   `form:"categoryId"`
	Available   *bool    `form:"available"`
	Stock       *int     `form:"stock"`
	Calories    *int     `form:"calories"`
	Ingredients []string `form:"ingredients"`
	Allergens   []string `form:"allergens"`
	Tags        []string `form:"tags"`
}

// ListProducts godoc
// @Summary List products
// @Description List the tenant's products, newest first, optionally filtered by category or availability
// @Tags products
// @Produce json
// @Param categoryId query string false "Filter by category"
// @Param available query bool false "Filter by availability"
// @Success 200 {array} models.Product
// @Security BearerAuth
// @Router /api/products [get]
func (c *productController) ListProducts(ctx *gin.Context) {
	filters := services.ProductFilters{CategoryID: ctx.Query("categoryId")}
	if raw, ok := ctx.GetQuery("available"); ok {
		available := raw == "true"
		filters.Available = &available
	}

	products, err := c.service.List(middleware.TenantID(ctx), filters)
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Get a single product of the authenticated tenant
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/products/{id} [get]
func (c *productController) GetProductByID(ctx *gin.Context) {
	product, err := c.service.GetByID(middleware.TenantID(ctx), ctx.Param("id"))
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product for the authenticated tenant. Multipart form; an optional "image" file is stored and linked
// @Tags products
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.Product
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/products [post]
func (c *productController) CreateProduct(ctx *gin.Context) {
	var form productForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}
	if form.Name == "" || form.CategoryID == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "name and categoryId are required"))
		return
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil || price.Cmp(decimal.Zero) <= 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "price must be a positive number"))
		return
	}

	input := services.CreateProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		CategoryID:  form.CategoryID,
		Available:   form.Available,
		Stock:       form.Stock,
		Calories:    form.Calories,
		Ingredients: form.Ingredients,
		Allergens:   form.Allergens,
		Tags:        form.Tags,
	}

	if file, err := ctx.FormFile("image"); err == nil && file != nil {
		filename, err := c.store.Save(file)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
			return
		}
		url := c.store.PublicURL(filename)
		input.Image = &url
	}

	product, err := c.service.Create(middleware.TenantID(ctx), input)
	if err != nil {
		if input.Image != nil {
			// Don't orphan the freshly stored file
			c.store.Delete(*input.Image)
		}
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Apply a partial update; a new "image" file replaces and removes the old one
// @Tags products
// @Accept mpfd
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/products/{id} [put]
func (c *productController) UpdateProduct(ctx *gin.Context) {
	var form struct {
		Name        *string  `form:"name"`
		Description *string  `form:"description"`
		Price       *string  `form:"price"`
		CategoryID  *string  `form:"categoryId"`
		Available   *bool    `form:"available"`
		Stock       *int     `form:"stock"`
		Calories    *int     `form:"calories"`
		Ingredients []string `form:"ingredients"`
		Allergens   []string `form:"allergens"`
		Tags        []string `form:"tags"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	input := services.UpdateProductInput{
		Name:        form.Name,
		Description: form.Description,
		CategoryID:  form.CategoryID,
		Available:   form.Available,
		Stock:       form.Stock,
		Calories:    form.Calories,
		Ingredients: form.Ingredients,
		Allergens:   form.Allergens,
		Tags:        form.Tags,
	}
	if form.Price != nil {
		price, err := decimal.NewFromString(*form.Price)
		if err != nil || price.Cmp(decimal.Zero) <= 0 {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "price must be a positive number"))
			return
		}
		input.Price = &price
	}

	if file, err := ctx.FormFile("image"); err == nil && file != nil {
		filename, err := c.store.Save(file)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
			return
		}
		url := c.store.PublicURL(filename)
		input.Image = &url
	}

	product, replacedImage, err := c.service.Update(middleware.TenantID(ctx), ctx.Param("id"), input)
	if err != nil {
		if input.Image != nil {
			c.store.Delete(*input.Image)
		}
		respondDomainError(ctx, err, c.production)
		return
	}
	if replacedImage != "" {
		c.store.Delete(replacedImage)
	}
	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete one of the tenant's products and its stored image
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/products/{id} [delete]
func (c *productController) DeleteProduct(ctx *gin.Context) {
	image, err := c.service.Delete(middleware.TenantID(ctx), ctx.Param("id"))
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	if image != "" {
		c.store.Delete(image)
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// ListPublicProducts godoc
// @Summary List public products
// @Description List available products for the storefront. The tenant comes from the path slug or falls back to the first active tenant
// @Tags public
// @Produce json
// @Param tenantSlug path string false "Tenant slug"
// @Success 200 {array} models.Product
// @Router /api/public/products [get]
func (c *productController) ListPublicProducts(ctx *gin.Context) {
	tenant, err := c.tenantService.ResolvePublic(ctx.Param("tenantSlug"))
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	if tenant == nil {
		ctx.JSON(http.StatusOK, []models.Product{})
		return
	}

	products, err := c.service.ListPublic(tenant.ID)
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// GetPublicProductBySlug godoc
// @Summary Get public product by slug
// @Description Get one available product by its slug for the storefront
// @Tags public
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.APIError
// @Router /api/public/{tenantSlug}/products/{slug} [get]
func (c *productController) GetPublicProductBySlug(ctx *gin.Context) {
	tenant, err := c.tenantService.ResolveBySlug(ctx.Param("tenantSlug"))
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}

	product, err := c.service.GetBySlug(tenant.ID, ctx.Param("slug"))
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, product)
}
