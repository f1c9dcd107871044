package controllers

import (
	"errors"
	"net/http"

	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondDomainError translates service-layer sentinel errors into the
// API error taxonomy. Anything unrecognized is an internal error; its
// detail is only echoed outside production.
func respondDomainError(ctx *gin.Context, err error, production bool) {
	switch {
	case errors.Is(err, models.ErrTenantNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrTenantNotFoundCode, "Restaurant not found"))
	case errors.Is(err, models.ErrTenantUnavailable):
		ctx.JSON(http.StatusForbidden, models.NewAPIError(models.ErrTenantUnavailableCode, "This restaurant is not accepting orders right now"))
	case errors.Is(err, models.ErrProductsUnavailable):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrProductsUnavailableCode, "Some products are not available"))
	case errors.Is(err, models.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFoundCode, "Order not found"))
	case errors.Is(err, models.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrProductNotFoundCode, "Product not found"))
	case errors.Is(err, models.ErrCategoryNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrCategoryNotFoundCode, "Category not found"))
	case errors.Is(err, models.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrInvalidCredentialsCode, "Invalid credentials"))
	default:
		log.WithError(err).Error("Unhandled service error")
		apiErr := models.NewAPIError(models.ErrInternalServer, "Internal server error")
		if !production {
			apiErr.Details = map[string]interface{}{"error": err.Error()}
		}
		ctx.JSON(http.StatusInternalServerError, apiErr)
	}
}

// validationError builds the 400 payload for malformed request bodies.
func validationError(err error) models.APIError {
	return models.NewAPIError(models.ErrValidationFailed, "Invalid request data",
		map[string]interface{}{"error": err.Error()})
}
