package controllers

import (
	"net/http"

	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/DouglasMoraesDev/AppDelivery/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PublicOrderController handles the unauthenticated order intake and
// order lookup endpoints used by the storefront.
type PublicOrderController struct {
	service    services.OrderService
	production bool
}

// NewPublicOrderController creates a new instance of PublicOrderController
func NewPublicOrderController(service services.OrderService, production bool) *PublicOrderController {
	return &PublicOrderController{service: service, production: production}
}

// CreateOrder godoc
// @Summary Create a public order
// @Description Place an order for a tenant identified by slug. Validates the cart, computes the total and allocates the next order number
// @Tags public-orders
// @Accept json
// @Produce json
// @Param order body services.CreateOrderInput true "Order"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/public/orders [post]
func (c *PublicOrderController) CreateOrder(ctx *gin.Context) {
	var input services.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	// Semantic checks the binding tags can't express. All of them fail
	// fast before any persistence access.
	if !models.ValidOrderType(input.Type) {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "type must be DELIVERY or PICKUP"))
		return
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "unknown payment method"))
		return
	}
	if input.Type == models.OrderTypeDelivery && input.DeliveryAddress == nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "deliveryAddress is required for delivery orders"))
		return
	}

	order, err := c.service.Create(input)
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}

	log.WithFields(log.Fields{
		"tenant_slug":  input.TenantSlug,
		"order_number": order.OrderNumber,
		"total":        order.Total,
	}).Info("Public order created")
	ctx.JSON(http.StatusCreated, order)
}

// ListOrdersByPhone godoc
// @Summary List a customer's orders
// @Description List every order placed with a phone number, newest first. Unknown phones yield an empty array
// @Tags public-orders
// @Produce json
// @Param phone path string true "Customer phone"
// @Param tenantSlug query string true "Tenant slug"
// @Success 200 {array} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/public/orders/by-phone/{phone} [get]
func (c *PublicOrderController) ListOrdersByPhone(ctx *gin.Context) {
	tenantSlug := ctx.Query("tenantSlug")
	if tenantSlug == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "tenantSlug is required"))
		return
	}

	orders, err := c.service.ListByPhone(tenantSlug, ctx.Param("phone"))
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByNumber godoc
// @Summary Get an order by number
// @Description Fetch one order by its human-facing number. The phone must match the order's customer; mismatches answer 404
// @Tags public-orders
// @Produce json
// @Param orderNumber path string true "Order number, with or without the leading #"
// @Param tenantSlug query string true "Tenant slug"
// @Param phone query string true "Customer phone"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/public/orders/{orderNumber} [get]
func (c *PublicOrderController) GetOrderByNumber(ctx *gin.Context) {
	tenantSlug := ctx.Query("tenantSlug")
	phone := ctx.Query("phone")
	if tenantSlug == "" || phone == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "tenantSlug and phone are required"))
		return
	}

	order, err := c.service.GetByOrderNumber(tenantSlug, ctx.Param("orderNumber"), phone)
	if err != nil {
		respondDomainError(ctx, err, c.production)
		return
	}
	ctx.JSON(http.StatusOK, order)
}
