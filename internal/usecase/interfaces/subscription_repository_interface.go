package interfaces

import (
	"context"
	"time"

	"pix_direct_sales/internal/domain/entities"
)

// ISubscriptionRepository persists one subscription per user.
//
// UpsertByUserID replaces the whole record (new intent); UpdateStatus touches
// only the status; Activate writes the activation window together with the
// payment that paid for it.
type ISubscriptionRepository interface {
	UpsertByUserID(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	GetByUserID(ctx context.Context, userID string) (entities.Subscription, error)
	GetByLastPaymentID(ctx context.Context, paymentID string) (entities.Subscription, error)
	UpdateStatus(ctx context.Context, userID string, status entities.SubscriptionStatus) error
	Activate(ctx context.Context, userID, paymentID string, activatedAt, expiresAt time.Time) error
}
