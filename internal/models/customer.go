package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Address is a delivery location. Stored embedded as JSON, both on the
// customer (saved address book) and on orders (point-in-time snapshot).
type Address struct {
	Street         string `json:"street"`
	Number         string `json:"number"`
	District       string `json:"district"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zipCode,omitempty"`
	Complement     string `json:"complement,omitempty"`
	ReferencePoint string `json:"referencePoint,omitempty"`
}

// SameLocation compares two addresses by street and number, the key used
// to dedupe a customer's saved address book.
func (a Address) SameLocation(other Address) bool {
	return a.Street == other.Street && a.Number == other.Number
}

// Customer is identified within a tenant by phone number. The address
// list is append-only; running totals are maintained by order intake.
type Customer struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	TenantID    string          `json:"tenantId" gorm:"uniqueIndex:idx_customers_tenant_phone;not null"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone" gorm:"uniqueIndex:idx_customers_tenant_phone;not null"`
	Email       string          `json:"email"`
	Addresses   []Address       `json:"addresses" gorm:"serializer:json"`
	TotalOrders int             `json:"totalOrders" gorm:"default:0"`
	TotalSpent  decimal.Decimal `json:"totalSpent" gorm:"type:decimal(12,2);default:0"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// HasAddress reports whether the customer already saved an address at
// the same street and number.
func (c *Customer) HasAddress(addr Address) bool {
	for _, saved := range c.Addresses {
		if saved.SameLocation(addr) {
			return true
		}
	}
	return false
}
