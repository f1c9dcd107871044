package services

import (
	"errors"
	"fmt"

	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"gorm.io/gorm"
)

// UpdateConfigInput is the allow-list for configuration updates. Only
// the fields below can be written through the API; unknown JSON keys are
// dropped at decode time rather than rejected, which keeps old admin
// clients working against newer servers.
type UpdateConfigInput struct {
	BusinessName   *string          `json:"businessName"`
	Phone          *string          `json:"phone"`
	WhatsappNumber *string          `json:"whatsappNumber"`
	Logo           *string          `json:"logo"`
	Banner         *string          `json:"banner"`
	PrimaryColor   *string          `json:"primaryColor"`
	SecondaryColor *string          `json:"secondaryColor"`
	AccentColor    *string          `json:"accentColor"`
	TextColor      *string          `json:"textColor"`
	BgColor        *string          `json:"bgColor"`
	ZipCode        *string          `json:"zipCode"`
	Street         *string          `json:"street"`
	Number         *string          `json:"number"`
	District       *string          `json:"district"`
	City           *string          `json:"city"`
	State          *string          `json:"state"`
	Schedule       *models.Schedule `json:"schedule"`
	IsOpen         *bool            `json:"isOpen"`
	GeminiAPIKey   *string          `json:"geminiApiKey"`
	AIEnabled      *bool            `json:"aiEnabled"`
}

// TenantService resolves tenants and manages their configuration
type TenantService interface {
	// ResolveBySlug retrieves a tenant by its unique slug
	ResolveBySlug(slug string) (*models.Tenant, error)
	// ResolvePublic resolves the tenant for unauthenticated storefront
	// reads: by slug when one is given, otherwise the first active
	// tenant, otherwise the first tenant at all. Returns (nil, nil)
	// when the deployment has no tenant, which callers must translate
	// into an empty result or a default payload, never an error.
	ResolvePublic(slug string) (*models.Tenant, error)
	// GetByID retrieves a tenant by its primary key
	GetByID(id string) (*models.Tenant, error)
	// UpdateConfig applies an allow-listed partial configuration update
	UpdateConfig(tenantID string, input UpdateConfigInput) (*models.Tenant, error)
	// SetImage updates the tenant's logo or banner path and returns the
	// updated tenant along with the path that was replaced
	SetImage(tenantID, imageType, path string) (*models.Tenant, string, error)
}

type tenantService struct {
	db *gorm.DB
}

// NewTenantService creates a new instance of TenantService
func NewTenantService(db *gorm.DB) TenantService {
	return &tenantService{db: db}
}

func (s *tenantService) ResolveBySlug(slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.Where("slug = ?", slug).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTenantNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

func (s *tenantService) ResolvePublic(slug string) (*models.Tenant, error) {
	if slug != "" {
		return s.ResolveBySlug(slug)
	}

	// Single-tenant deployments omit the slug; fall back to the first
	// active tenant, then to any tenant at all.
	var tenant models.Tenant
	err := s.db.Where("status = ?", models.TenantStatusActive).Order("created_at asc").First(&tenant).Error
	if err == nil {
		return &tenant, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.Order("created_at asc").First(&tenant).Error
	if err == nil {
		return &tenant, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

func (s *tenantService) GetByID(id string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTenantNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

func (s *tenantService) UpdateConfig(tenantID string, input UpdateConfigInput) (*models.Tenant, error) {
	tenant, err := s.GetByID(tenantID)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&tenant.BusinessName, input.BusinessName)
	applyString(&tenant.Phone, input.Phone)
	applyString(&tenant.WhatsappNumber, input.WhatsappNumber)
	applyString(&tenant.PrimaryColor, input.PrimaryColor)
	applyString(&tenant.SecondaryColor, input.SecondaryColor)
	applyString(&tenant.AccentColor, input.AccentColor)
	applyString(&tenant.TextColor, input.TextColor)
	applyString(&tenant.BgColor, input.BgColor)
	applyString(&tenant.ZipCode, input.ZipCode)
	applyString(&tenant.Street, input.Street)
	applyString(&tenant.Number, input.Number)
	applyString(&tenant.District, input.District)
	applyString(&tenant.City, input.City)
	applyString(&tenant.State, input.State)
	applyString(&tenant.GeminiAPIKey, input.GeminiAPIKey)
	if input.Logo != nil {
		tenant.Logo = input.Logo
	}
	if input.Banner != nil {
		tenant.Banner = input.Banner
	}
	if input.Schedule != nil {
		tenant.Schedule = *input.Schedule
	}
	if input.IsOpen != nil {
		tenant.IsOpen = *input.IsOpen
	}
	if input.AIEnabled != nil {
		tenant.AIEnabled = *input.AIEnabled
	}

	if err := s.db.Save(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) SetImage(tenantID, imageType, path string) (*models.Tenant, string, error) {
	tenant, err := s.GetByID(tenantID)
	if err != nil {
		return nil, "", err
	}

	var replaced string
	switch imageType {
	case "logo":
		if tenant.Logo != nil {
			replaced = *tenant.Logo
		}
		tenant.Logo = &path
	case "banner":
		if tenant.Banner != nil {
			replaced = *tenant.Banner
		}
		tenant.Banner = &path
	default:
		return nil, "", fmt.Errorf("invalid image type: %s", imageType)
	}

	if err := s.db.Save(tenant).Error; err != nil {
		return nil, "", err
	}
	return tenant, replaced, nil
}
