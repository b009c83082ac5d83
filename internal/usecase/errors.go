package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them so the
// HTTP layer can map by kind with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
)

var (
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidSaleStatus     = fmt.Errorf("%w: status must be approved or pending", ErrValidation)
	ErrInvalidPrice          = fmt.Errorf("%w: price must be greater than zero", ErrValidation)

	ErrSellerNotConfigured   = fmt.Errorf("%w: Mercado Pago not configured for seller", ErrConfiguration)
	ErrPlatformNotConfigured = fmt.Errorf("%w: Mercado Pago platform credential not configured", ErrConfiguration)

	ErrProductNotFound      = fmt.Errorf("%w: product not found", ErrNotFound)
	ErrSaleNotFound         = fmt.Errorf("%w: sale not found", ErrNotFound)
	ErrSubscriptionNotFound = fmt.Errorf("%w: subscription not found", ErrNotFound)

	ErrSubscriptionInactive = fmt.Errorf("%w: active subscription required", ErrForbidden)
)
