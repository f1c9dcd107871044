package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fulfillment types.
const (
	OrderTypeDelivery = "DELIVERY"
	OrderTypePickup   = "PICKUP"
)

// Payment methods accepted at order intake.
const (
	PaymentPix        = "PIX"
	PaymentCreditCard = "CREDIT_CARD"
	PaymentDebitCard  = "DEBIT_CARD"
	PaymentCash       = "CASH"
)

// Order lifecycle statuses.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// ValidOrderType reports whether t is a known fulfillment type.
func ValidOrderType(t string) bool {
	return t == OrderTypeDelivery || t == OrderTypePickup
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentPix, PaymentCreditCard, PaymentDebitCard, PaymentCash:
		return true
	}
	return false
}

// Order is a customer purchase. OrderNumber is the human-facing
// sequential identifier, unique per tenant; the delivery address is a
// snapshot, not a reference into the customer's address book.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	TenantID        string          `json:"tenantId" gorm:"uniqueIndex:idx_orders_tenant_number;not null"`
	CustomerID      string          `json:"customerId" gorm:"index;not null"`
	Customer        *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	OrderNumber     string          `json:"orderNumber" gorm:"uniqueIndex:idx_orders_tenant_number;not null"`
	Type            string          `json:"type" gorm:"not null"`
	DeliveryAddress *Address        `json:"deliveryAddress" gorm:"serializer:json"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"not null"`
	Notes           string          `json:"notes"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	Status          string          `json:"status" gorm:"default:'PENDING'"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is one order line. Price is the product price snapshotted at
// order time; Subtotal is Price multiplied by Quantity.
type OrderItem struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	OrderID   string          `json:"orderId" gorm:"index;not null"`
	ProductID string          `json:"productId" gorm:"not null"`
	Product   *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Subtotal  decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	Notes     string          `json:"notes"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// OrderCounter holds the per-tenant sequence behind order numbers.
// Allocation increments LastNumber atomically inside the order
// transaction, so two concurrent orders can never share a number.
type OrderCounter struct {
	TenantID   string `gorm:"primaryKey"`
	LastNumber int    `gorm:"not null;default:0"`
}

// FormatOrderNumber renders a sequence value as the human-facing order
// number: "#" followed by the value zero-padded to four digits.
func FormatOrderNumber(n int) string {
	return fmt.Sprintf("#%04d", n)
}

// NormalizeOrderNumber ensures the leading "#" so lookups accept both
// "#0001" and "0001".
func NormalizeOrderNumber(n string) string {
	if len(n) == 0 || n[0] == '#' {
		return n
	}
	return "#" + n
}
