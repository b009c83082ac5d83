package interfaces

import (
	"context"

	"pix_direct_sales/internal/domain/entities"
)

// ISaleRepository persists sales. Lookups return a zero Sale and a nil error
// when nothing matches.
type ISaleRepository interface {
	Create(ctx context.Context, s entities.Sale) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Sale, error)
	FindLatestByProductAndBuyer(ctx context.Context, productID, buyerEmail string) (entities.Sale, error)
	UpdateStatusByPaymentID(ctx context.Context, paymentID string, status entities.PaymentStatus) error
	UpdateStatusByID(ctx context.Context, id string, status entities.PaymentStatus) error
}
