package services

import (
	"errors"

	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateOrderInput is the public order intake payload. The tenant is
// addressed by slug because the endpoint is unauthenticated.
type CreateOrderInput struct {
	TenantSlug      string           `json:"tenantSlug" binding:"required"`
	CustomerName    string           `json:"customerName" binding:"required"`
	Phone           string           `json:"phone" binding:"required,min=10"`
	Email           string           `json:"email" binding:"omitempty,email"`
	Type            string           `json:"type" binding:"required"`
	DeliveryAddress *models.Address  `json:"deliveryAddress"`
	PaymentMethod   string           `json:"paymentMethod" binding:"required"`
	Notes           string           `json:"notes"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// OrderItemInput is one cart line of the intake payload.
type OrderItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Notes     string `json:"notes"`
}

// OrderService handles public order intake and lookup
type OrderService interface {
	// Create validates the cart against the live catalog, computes the
	// total with exact decimal arithmetic, upserts the customer,
	// allocates the next tenant-scoped order number and persists the
	// order with its items — all inside a single transaction
	Create(input CreateOrderInput) (*models.Order, error)
	// ListByPhone retrieves a customer's orders, newest first. An
	// unknown phone yields an empty slice, never an error
	ListByPhone(tenantSlug, phone string) ([]models.Order, error)
	// GetByOrderNumber retrieves one order by its human-facing number,
	// verifying the caller's phone against the order's customer. A
	// phone mismatch is indistinguishable from a missing order
	GetByOrderNumber(tenantSlug, orderNumber, phone string) (*models.Order, error)
}

type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

func (s *orderService) Create(input CreateOrderInput) (*models.Order, error) {
	var created models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.Where("slug = ?", input.TenantSlug).First(&tenant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrTenantNotFound
			}
			return err
		}
		if !tenant.AcceptsOrders() {
			return models.ErrTenantUnavailable
		}

		// Every distinct requested product must exist, belong to this
		// tenant and be available. Partial fulfillment is not allowed.
		ids := distinctProductIDs(input.Items)
		var products []models.Product
		if err := tx.Where("id IN ? AND tenant_id = ? AND available = ?", ids, tenant.ID, true).
			Find(&products).Error; err != nil {
			return err
		}
		if len(products) != len(ids) {
			return models.ErrProductsUnavailable
		}
		productsByID := make(map[string]models.Product, len(products))
		for _, p := range products {
			productsByID[p.ID] = p
		}

		// Line subtotals and the order total use decimal arithmetic so
		// prices like 29.90 never accumulate rounding drift.
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			product := productsByID[line.ProductID]
			subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     product.Price,
				Subtotal:  subtotal,
				Notes:     line.Notes,
			})
		}

		customer, err := upsertCustomer(tx, &tenant, input)
		if err != nil {
			return err
		}

		orderNumber, err := nextOrderNumber(tx, tenant.ID)
		if err != nil {
			return err
		}

		// The delivery address is snapshotted onto the order; later
		// edits to the customer's address book must not touch it.
		var addressSnapshot *models.Address
		if input.DeliveryAddress != nil {
			snapshot := *input.DeliveryAddress
			addressSnapshot = &snapshot
		}

		order := models.Order{
			TenantID:        tenant.ID,
			CustomerID:      customer.ID,
			OrderNumber:     orderNumber,
			Type:            input.Type,
			DeliveryAddress: addressSnapshot,
			PaymentMethod:   input.PaymentMethod,
			Notes:           input.Notes,
			Total:           total,
			Status:          models.OrderStatusPending,
			Items:           items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Customer running totals
		if err := tx.Model(&models.Customer{}).Where("id = ?", customer.ID).
			Updates(map[string]interface{}{
				"total_orders": gorm.Expr("total_orders + ?", 1),
				"total_spent":  gorm.Expr("total_spent + ?", total),
			}).Error; err != nil {
			return err
		}

		return tx.Preload("Items.Product").Preload("Customer").
			First(&created, "id = ?", order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *orderService) ListByPhone(tenantSlug, phone string) ([]models.Order, error) {
	var tenant models.Tenant
	if err := s.db.Where("slug = ?", tenantSlug).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTenantNotFound
		}
		return nil, err
	}

	var customer models.Customer
	err := s.db.Where("tenant_id = ? AND phone = ?", tenant.ID, phone).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No orders is a valid answer, not a failure
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := s.db.Where("tenant_id = ? AND customer_id = ?", tenant.ID, customer.ID).
		Preload("Items.Product").Preload("Customer").
		Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetByOrderNumber(tenantSlug, orderNumber, phone string) (*models.Order, error) {
	var tenant models.Tenant
	if err := s.db.Where("slug = ?", tenantSlug).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTenantNotFound
		}
		return nil, err
	}

	var order models.Order
	err := s.db.Where("tenant_id = ? AND order_number = ?", tenant.ID, models.NormalizeOrderNumber(orderNumber)).
		Preload("Items.Product").Preload("Customer").First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	// A wrong phone answers exactly like a missing order so callers
	// cannot probe for other customers' order numbers.
	if order.Customer == nil || order.Customer.Phone != phone {
		return nil, models.ErrOrderNotFound
	}
	return &order, nil
}

// upsertCustomer finds the customer by (tenant, phone) or creates one.
// A delivery address not yet in the saved list (compared by street and
// number) is appended; existing entries are never removed.
func upsertCustomer(tx *gorm.DB, tenant *models.Tenant, input CreateOrderInput) (*models.Customer, error) {
	var customer models.Customer
	err := tx.Where("tenant_id = ? AND phone = ?", tenant.ID, input.Phone).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer = models.Customer{
			TenantID: tenant.ID,
			Name:     input.CustomerName,
			Phone:    input.Phone,
			Email:    input.Email,
		}
		if input.DeliveryAddress != nil {
			customer.Addresses = []models.Address{*input.DeliveryAddress}
		}
		if err := tx.Create(&customer).Error; err != nil {
			return nil, err
		}
		return &customer, nil
	}
	if err != nil {
		return nil, err
	}

	if input.DeliveryAddress != nil && !customer.HasAddress(*input.DeliveryAddress) {
		customer.Addresses = append(customer.Addresses, *input.DeliveryAddress)
		if err := tx.Save(&customer).Error; err != nil {
			return nil, err
		}
	}
	return &customer, nil
}

// nextOrderNumber allocates the next sequential order number for a
// tenant. The counter row is created on first use, then incremented with
// an atomic UPDATE; the row lock taken by that UPDATE is held until the
// surrounding transaction commits, so concurrent allocations for the
// same tenant serialize instead of reading the same value. The composite
// unique index on (tenant_id, order_number) backstops the invariant.
func nextOrderNumber(tx *gorm.DB, tenantID string) (string, error) {
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.OrderCounter{TenantID: tenantID}).Error; err != nil {
		return "", err
	}

	if err := tx.Model(&models.OrderCounter{}).Where("tenant_id = ?", tenantID).
		UpdateColumn("last_number", gorm.Expr("last_number + 1")).Error; err != nil {
		return "", err
	}

	var counter models.OrderCounter
	if err := tx.Where("tenant_id = ?", tenantID).First(&counter).Error; err != nil {
		return "", err
	}
	return models.FormatOrderNumber(counter.LastNumber), nil
}

func distinctProductIDs(items []OrderItemInput) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
