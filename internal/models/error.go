package models

import "errors"

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Domain-specific errors
	ErrTenantNotFoundCode      = "TENANT_NOT_FOUND"
	ErrTenantUnavailableCode   = "TENANT_UNAVAILABLE"
	ErrProductsUnavailableCode = "PRODUCTS_UNAVAILABLE"
	ErrOrderNotFoundCode       = "ORDER_NOT_FOUND"
	ErrProductNotFoundCode     = "PRODUCT_NOT_FOUND"
	ErrCategoryNotFoundCode    = "CATEGORY_NOT_FOUND"
	ErrInvalidCredentialsCode  = "INVALID_CREDENTIALS"
)

// Sentinel errors returned by the service layer and translated to HTTP
// statuses at the controller boundary.
var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrTenantUnavailable   = errors.New("tenant is not accepting orders")
	ErrProductsUnavailable = errors.New("some products are not available")
	ErrOrderNotFound       = errors.New("order not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
