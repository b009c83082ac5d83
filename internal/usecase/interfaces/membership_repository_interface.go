package interfaces

import (
	"context"

	"pix_direct_sales/internal/domain/entities"
)

// IMembershipRepository persists memberships keyed by product + buyer email.
type IMembershipRepository interface {
	// CreateIfAbsent leaves an existing membership untouched.
	CreateIfAbsent(ctx context.Context, m entities.Membership) error
	GetByProductAndBuyer(ctx context.Context, productID, buyerEmail string) (entities.Membership, error)
	// UpdateStatusByProductAndBuyer is a no-op for an unknown pair, and a
	// pre-approval status never replaces an approved membership.
	UpdateStatusByProductAndBuyer(ctx context.Context, productID, buyerEmail string, status entities.PaymentStatus) error
}
