package services

import (
	"errors"

	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/DouglasMoraesDev/AppDelivery/internal/slug"
	"gorm.io/gorm"
)

// CreateCategoryInput is the payload for creating a category. The slug
// is always derived from the name, never supplied by the client.
type CreateCategoryInput struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}

// UpdateCategoryInput carries a partial category update.
type UpdateCategoryInput struct {
	Name   *string `json:"name"`
	Icon   *string `json:"icon"`
	Order  *int    `json:"order"`
	Active *bool   `json:"active"`
}

// CategoryService provides tenant-scoped category management
type CategoryService interface {
	// Create creates a category with a slug derived from its name
	Create(tenantID string, input CreateCategoryInput) (*models.Category, error)
	// List retrieves every category of a tenant ordered by display
	// order, each annotated with its product count
	List(tenantID string) ([]models.Category, error)
	// ListPublic retrieves the active categories of a tenant in display order
	ListPublic(tenantID string) ([]models.Category, error)
	// Update applies a partial update to a tenant's category
	Update(tenantID, id string, input UpdateCategoryInput) (*models.Category, error)
	// Delete removes a tenant's category
	Delete(tenantID, id string) error
}

type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(db *gorm.DB) CategoryService {
	return &categoryService{db: db}
}

func (s *categoryService) Create(tenantID string, input CreateCategoryInput) (*models.Category, error) {
	category := models.Category{
		TenantID: tenantID,
		Name:     input.Name,
		Slug:     slug.Make(input.Name),
		Icon:     input.Icon,
		Order:    input.Order,
		Active:   true,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) List(tenantID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("tenant_id = ?", tenantID).Order("\"order\" asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	for i := range categories {
		if err := s.db.Model(&models.Product{}).
			Where("tenant_id = ? AND category_id = ?", tenantID, categories[i].ID).
			Count(&categories[i].ProductCount).Error; err != nil {
			return nil, err
		}
	}
	return categories, nil
}

func (s *categoryService) ListPublic(tenantID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("tenant_id = ? AND active = ?", tenantID, true).
		Order("\"order\" asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) Update(tenantID, id string, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.get(tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
		category.Slug = slug.Make(*input.Name)
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}
	if input.Order != nil {
		category.Order = *input.Order
	}
	if input.Active != nil {
		category.Active = *input.Active
	}

	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(tenantID, id string) error {
	category, err := s.get(tenantID, id)
	if err != nil {
		return err
	}
	return s.db.Delete(category).Error
}

func (s *categoryService) get(tenantID, id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
