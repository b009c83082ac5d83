package interfaces

import (
	"context"

	"pix_direct_sales/internal/domain/entities"
)

// ICredentialRepository stores the sellers' Mercado Pago access tokens.
type ICredentialRepository interface {
	GetBySellerID(ctx context.Context, sellerID string) (entities.Credential, error)
	Upsert(ctx context.Context, c entities.Credential) error
}
