package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pix_direct_sales/internal/usecase"
	"pix_direct_sales/internal/usecase/interfaces"
	"pix_direct_sales/pkg"

	"github.com/gin-gonic/gin"
)

func mapError(err error) *pkg.AppError {
	var upstream *interfaces.UpstreamError
	if errors.As(err, &upstream) {
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Mercado Pago API error", err, upstream.HTTPStatus()).
			WithDetails(upstreamDetails(upstream.Body))
	}

	switch {
	case errors.Is(err, usecase.ErrSellerNotConfigured):
		return pkg.NewDomainErrorSimple("SELLER_NOT_CONFIGURED", "Mercado Pago not configured for seller", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlatformNotConfigured):
		return pkg.NewDomainError("PLATFORM_NOT_CONFIGURED", "Mercado Pago not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Missing required fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSaleStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be approved or pending", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Price must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubscriptionInactive):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_INACTIVE", "Active subscription required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrConfiguration):
		return pkg.NewDomainError("CONFIGURATION_ERROR", "Service misconfigured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// upstreamDetails keeps a JSON processor body as JSON and anything else as text.
func upstreamDetails(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeBadRequest(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
