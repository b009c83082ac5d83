package interfaces

import (
	"context"

	"pix_direct_sales/internal/domain/entities"
)

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	// GetActiveByID returns a zero Product when the id is unknown or inactive.
	GetActiveByID(ctx context.Context, id string) (entities.Product, error)
}
