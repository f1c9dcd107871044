package services

import (
	"errors"

	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/DouglasMoraesDev/AppDelivery/internal/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateProductInput is the payload for creating a product. Price is
// decimal to keep currency math exact end to end.
type CreateProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	CategoryID  string          `json:"categoryId" binding:"required"`
	Available   *bool           `json:"available"`
	Stock       *int            `json:"stock"`
	Calories    *int            `json:"calories"`
	Ingredients []string        `json:"ingredients"`
	Allergens   []string        `json:"allergens"`
	Tags        []string        `json:"tags"`
	Image       *string         `json:"-"`
}

// UpdateProductInput carries a partial product update.
type UpdateProductInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"categoryId"`
	Available   *bool            `json:"available"`
	Stock       *int             `json:"stock"`
	Calories    *int             `json:"calories"`
	Ingredients []string         `json:"ingredients"`
	Allergens   []string         `json:"allergens"`
	Tags        []string         `json:"tags"`
	Image       *string          `json:"-"`
}

// ProductFilters narrows admin product listings.
type ProductFilters struct {
	CategoryID string
	Available  *bool
}

// ProductService provides tenant-scoped product management
type ProductService interface {
	// Create creates a product with a slug derived from its name
	Create(tenantID string, input CreateProductInput) (*models.Product, error)
	// List retrieves a tenant's products, newest first, with optional
	// category and availability filters, category joined
	List(tenantID string, filters ProductFilters) ([]models.Product, error)
	// ListPublic retrieves only the available products of a tenant, newest first
	ListPublic(tenantID string) ([]models.Product, error)
	// GetByID retrieves a tenant's product by primary key
	GetByID(tenantID, id string) (*models.Product, error)
	// GetBySlug retrieves a tenant's product by its public slug
	GetBySlug(tenantID, productSlug string) (*models.Product, error)
	// Update applies a partial update and returns the product along with
	// the image filename that was replaced, if any
	Update(tenantID, id string, input UpdateProductInput) (*models.Product, string, error)
	// Delete removes a tenant's product and returns its image filename
	// so the caller can clean up storage
	Delete(tenantID, id string) (string, error)
}

type productService struct {
	db *gorm.DB
}

// NewProductService creates a new instance of ProductService
func NewProductService(db *gorm.DB) ProductService {
	return &productService{db: db}
}

func (s *productService) Create(tenantID string, input CreateProductInput) (*models.Product, error) {
	if input.Price.Cmp(decimal.Zero) <= 0 {
		return nil, errors.New("price must be positive")
	}

	// The category must belong to the same tenant
	var category models.Category
	if err := s.db.Where("id = ? AND tenant_id = ?", input.CategoryID, tenantID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, err
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	product := models.Product{
		TenantID:    tenantID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Available:   available,
		Stock:       input.Stock,
		Calories:    input.Calories,
		Ingredients: input.Ingredients,
		Allergens:   input.Allergens,
		Tags:        input.Tags,
		Image:       input.Image,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	product.Category = &category
	return &product, nil
}

func (s *productService) List(tenantID string, filters ProductFilters) ([]models.Product, error) {
	query := s.db.Where("tenant_id = ?", tenantID)
	if filters.CategoryID != "" {
		query = query.Where("category_id = ?", filters.CategoryID)
	}
	if filters.Available != nil {
		query = query.Where("available = ?", *filters.Available)
	}

	var products []models.Product
	if err := query.Preload("Category").Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productService) ListPublic(tenantID string) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("tenant_id = ? AND available = ?", tenantID, true).
		Preload("Category").Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productService) GetByID(tenantID, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).
		Preload("Category").First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *productService) GetBySlug(tenantID, productSlug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("slug = ? AND tenant_id = ?", productSlug, tenantID).
		Preload("Category").First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *productService) Update(tenantID, id string, input UpdateProductInput) (*models.Product, string, error) {
	product, err := s.GetByID(tenantID, id)
	if err != nil {
		return nil, "", err
	}

	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = slug.Make(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.Cmp(decimal.Zero) <= 0 {
			return nil, "", errors.New("price must be positive")
		}
		product.Price = *input.Price
	}
	if input.CategoryID != nil {
		var category models.Category
		if err := s.db.Where("id = ? AND tenant_id = ?", *input.CategoryID, tenantID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "", models.ErrCategoryNotFound
			}
			return nil, "", err
		}
		product.CategoryID = *input.CategoryID
		product.Category = &category
	}
	if input.Available != nil {
		product.Available = *input.Available
	}
	if input.Stock != nil {
		product.Stock = input.Stock
	}
	if input.Calories != nil {
		product.Calories = input.Calories
	}
	if input.Ingredients != nil {
		product.Ingredients = input.Ingredients
	}
	if input.Allergens != nil {
		product.Allergens = input.Allergens
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}

	var replacedImage string
	if input.Image != nil {
		if product.Image != nil {
			replacedImage = *product.Image
		}
		product.Image = input.Image
	}

	if err := s.db.Omit("Category").Save(product).Error; err != nil {
		return nil, "", err
	}
	return product, replacedImage, nil
}

func (s *productService) Delete(tenantID, id string) (string, error) {
	product, err := s.GetByID(tenantID, id)
	if err != nil {
		return "", err
	}

	var image string
	if product.Image != nil {
		image = *product.Image
	}
	if err := s.db.Delete(product).Error; err != nil {
		return "", err
	}
	return image, nil
}
