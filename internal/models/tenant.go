package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant status values. Suspended and cancelled tenants keep their data
// but stop accepting orders.
const (
	TenantStatusActive    = "ACTIVE"
	TenantStatusSuspended = "SUSPENDED"
	TenantStatusCancelled = "CANCELLED"
)

// DaySchedule holds the opening hours for a single weekday.
type DaySchedule struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// Schedule maps weekday names ("monday".."sunday") to opening hours.
type Schedule map[string]DaySchedule

// Tenant represents one isolated restaurant account. Every catalog and
// order row is partitioned by its tenant ID.
type Tenant struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Slug         string `json:"slug" gorm:"uniqueIndex;not null"`
	Status       string `json:"status" gorm:"default:'ACTIVE'"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`

	// Contact
	Phone          string `json:"phone"`
	WhatsappNumber string `json:"whatsappNumber"`

	// Branding
	Logo           *string `json:"logo"`
	Banner         *string `json:"banner"`
	PrimaryColor   string  `json:"primaryColor"`
	SecondaryColor string  `json:"secondaryColor"`
	AccentColor    string  `json:"accentColor"`
	TextColor      string  `json:"textColor"`
	BgColor        string  `json:"bgColor"`

	// Address
	ZipCode  string `json:"zipCode"`
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`

	// Operation
	Schedule Schedule `json:"schedule" gorm:"serializer:json"`
	IsOpen   bool     `json:"isOpen" gorm:"default:true"`

	// AI assistant integration. The key is write-only from the API's
	// point of view and never serialized back to clients.
	AIEnabled    bool   `json:"aiEnabled" gorm:"default:false"`
	GeminiAPIKey string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// AcceptsOrders reports whether the tenant may receive new public orders.
func (t *Tenant) AcceptsOrders() bool {
	return t.Status != TenantStatusSuspended && t.Status != TenantStatusCancelled
}

// PublicConfig is the restricted view of a tenant exposed to the
// unauthenticated storefront.
type PublicConfig struct {
	BusinessName   string   `json:"businessName"`
	Phone          string   `json:"phone"`
	WhatsappNumber string   `json:"whatsappNumber"`
	Logo           *string  `json:"logo"`
	Banner         *string  `json:"banner"`
	PrimaryColor   string   `json:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor"`
	AccentColor    string   `json:"accentColor"`
	TextColor      string   `json:"textColor"`
	BgColor        string   `json:"bgColor"`
	IsOpen         bool     `json:"isOpen"`
	Schedule       Schedule `json:"schedule"`
}

// PublicConfig projects the tenant onto its storefront-visible fields.
func (t *Tenant) PublicConfig() PublicConfig {
	return PublicConfig{
		BusinessName:   t.BusinessName,
		Phone:          t.Phone,
		WhatsappNumber: t.WhatsappNumber,
		Logo:           t.Logo,
		Banner:         t.Banner,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		AccentColor:    t.AccentColor,
		TextColor:      t.TextColor,
		BgColor:        t.BgColor,
		IsOpen:         t.IsOpen,
		Schedule:       t.Schedule,
	}
}

// DefaultPublicConfig is returned by the public config endpoint when no
// tenant has been provisioned yet, so the storefront never hard-fails
// against an empty deployment.
func DefaultPublicConfig() PublicConfig {
	allWeek := Schedule{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		allWeek[day] = DaySchedule{Open: "18:00", Close: "23:00"}
	}
	return PublicConfig{
		BusinessName:   "Demo Restaurant",
		Phone:          "(11) 99999-9999",
		WhatsappNumber: "5511999999999",
		PrimaryColor:   "#ea580c",
		SecondaryColor: "#18181b",
		AccentColor:    "#f97316",
		TextColor:      "#ffffff",
		BgColor:        "#0a0a0a",
		IsOpen:         true,
		Schedule:       allWeek,
	}
}
