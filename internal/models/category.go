package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products inside one tenant's menu.
type Category struct {
	ID       string `json:"id" gorm:"primaryKey"`
	TenantID string `json:"tenantId" gorm:"index;not null"`
	Name     string `json:"name" gorm:"not null"`
	Slug     string `json:"slug" gorm:"index"`
	Icon     string `json:"icon"`
	Order    int    `json:"order" gorm:"default:0"`
	Active   bool   `json:"active" gorm:"default:true"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// ProductCount is populated by the admin listing only.
	ProductCount int64 `json:"productCount,omitempty" gorm:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
