package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a menu item owned by one tenant and one category.
// Price uses fixed-point decimal arithmetic; order items snapshot it at
// purchase time so later edits never rewrite history.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	TenantID    string          `json:"tenantId" gorm:"index;not null"`
	CategoryID  string          `json:"categoryId" gorm:"index;not null"`
	Category    *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name        string          `json:"name" gorm:"not null"`
	Slug        string          `json:"slug" gorm:"index"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Available   bool            `json:"available" gorm:"default:true"`
	Stock       *int            `json:"stock"`
	Calories    *int            `json:"calories"`
	Ingredients []string        `json:"ingredients" gorm:"serializer:json"`
	Allergens   []string        `json:"allergens" gorm:"serializer:json"`
	Tags        []string        `json:"tags" gorm:"serializer:json"`
	Image       *string         `json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
