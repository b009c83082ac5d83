package usecase

import (
	"context"
	"strings"

	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/infrastructure/logging"
	"pix_direct_sales/internal/infrastructure/metrics"
	"pix_direct_sales/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// IPaymentStatusUseCase groups the three reconciliation entry points: buyer
// polling, processor webhooks and manual refreshes.
type IPaymentStatusUseCase interface {
	CheckPaymentStatus(ctx context.Context, paymentID string) (entities.PaymentStatus, error)
	CheckSubscriptionStatus(ctx context.Context, userID, paymentID string) (entities.PaymentStatus, error)
	HandleWebhook(ctx context.Context, paymentID string) error
	Refresh(ctx context.Context, paymentID, userID string) (entities.PaymentStatus, error)
	RefreshMembership(ctx context.Context, productID, buyerEmail string) (entities.PaymentStatus, error)
}

type PaymentStatusUseCase struct {
	sales         interfaces.ISaleRepository
	subscriptions interfaces.ISubscriptionRepository
	gateway       interfaces.IPaymentGateway
	credentials   ICredentialResolver
	engine        *ReconciliationEngine
	logger        *zerolog.Logger
}

var _ IPaymentStatusUseCase = (*PaymentStatusUseCase)(nil)

func NewPaymentStatusUseCase(
	sales interfaces.ISaleRepository,
	subscriptions interfaces.ISubscriptionRepository,
	gateway interfaces.IPaymentGateway,
	credentials ICredentialResolver,
	engine *ReconciliationEngine,
	logger *zerolog.Logger,
) *PaymentStatusUseCase {
	if logger == nil {
		logger = logging.Nop()
	}
	return &PaymentStatusUseCase{
		sales:         sales,
		subscriptions: subscriptions,
		gateway:       gateway,
		credentials:   credentials,
		engine:        engine,
		logger:        logger,
	}
}

func (u *PaymentStatusUseCase) CheckPaymentStatus(ctx context.Context, paymentID string) (entities.PaymentStatus, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return "", ErrMissingRequiredFields
	}
	sale, err := u.sales.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return "", err
	}
	if sale.ID == "" {
		return "", ErrSaleNotFound
	}
	return u.engine.ReconcileSale(ctx, sale, TriggerPoll)
}

func (u *PaymentStatusUseCase) CheckSubscriptionStatus(ctx context.Context, userID, paymentID string) (entities.PaymentStatus, error) {
	sub, err := u.findSubscription(ctx, userID, paymentID)
	if err != nil {
		return "", err
	}
	return u.engine.ReconcileSubscription(ctx, sub, TriggerPoll)
}

// findSubscription resolves by user id first, then by last payment id.
func (u *PaymentStatusUseCase) findSubscription(ctx context.Context, userID, paymentID string) (entities.Subscription, error) {
	userID = strings.TrimSpace(userID)
	paymentID = strings.TrimSpace(paymentID)
	if userID == "" && paymentID == "" {
		return entities.Subscription{}, ErrMissingRequiredFields
	}

	var sub entities.Subscription
	var err error
	if userID != "" {
		if sub, err = u.subscriptions.GetByUserID(ctx, userID); err != nil {
			return entities.Subscription{}, err
		}
	}
	if sub.UserID == "" && paymentID != "" {
		if sub, err = u.subscriptions.GetByLastPaymentID(ctx, paymentID); err != nil {
			return entities.Subscription{}, err
		}
	}
	if sub.UserID == "" || sub.LastPaymentID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	return sub, nil
}

// HandleWebhook reconciles whatever local record the notified payment belongs
// to. The returned error is for logging only; the processor is always
// acknowledged.
func (u *PaymentStatusUseCase) HandleWebhook(ctx context.Context, paymentID string) error {
	paymentID = strings.TrimSpace(paymentID)
	log := u.logger.With().Str("op", "webhook").Str("payment_id", paymentID).Logger()
	if paymentID == "" {
		metrics.IncWebhookEvent("ignored")
		log.Debug().Msg("notification without payment id")
		return nil
	}

	sale, err := u.sales.GetByPaymentID(ctx, paymentID)
	if err != nil {
		metrics.IncWebhookEvent("error")
		return err
	}
	if sale.ID != "" {
		if _, err := u.engine.ReconcileSale(ctx, sale, TriggerWebhook); err != nil {
			metrics.IncWebhookEvent("error")
			return err
		}
		metrics.IncWebhookEvent("sale")
		return nil
	}

	sub, err := u.subscriptions.GetByLastPaymentID(ctx, paymentID)
	if err != nil {
		metrics.IncWebhookEvent("error")
		return err
	}
	if sub.UserID != "" {
		if _, err := u.engine.ReconcileSubscription(ctx, sub, TriggerWebhook); err != nil {
			metrics.IncWebhookEvent("error")
			return err
		}
		metrics.IncWebhookEvent("subscription")
		return nil
	}

	return u.handleOrphanPayment(ctx, paymentID, log)
}

// handleOrphanPayment covers a notification for a payment no record points
// to yet. The external reference is the only correlation left: an approved
// payment naming an existing subscription activates it.
func (u *PaymentStatusUseCase) handleOrphanPayment(ctx context.Context, paymentID string, log zerolog.Logger) error {
	credential, err := u.credentials.ForPlatform()
	if err != nil {
		metrics.IncWebhookEvent("ignored")
		log.Debug().Msg("unknown payment and no platform credential")
		return nil
	}
	p, err := u.gateway.GetPayment(ctx, paymentID, credential)
	if err != nil {
		metrics.IncWebhookEvent("error")
		return err
	}

	userID, _, ok := entities.ParseSubscriptionReference(p.ExternalReference)
	if !ok || !p.Status.IsApproved() {
		metrics.IncWebhookEvent("ignored")
		log.Info().Str("external_reference", p.ExternalReference).Str("status", string(p.Status)).Msg("unmatched payment ignored")
		return nil
	}
	sub, err := u.subscriptions.GetByUserID(ctx, userID)
	if err != nil {
		metrics.IncWebhookEvent("error")
		return err
	}
	if sub.UserID == "" {
		metrics.IncWebhookEvent("ignored")
		log.Info().Str("user_id", userID).Msg("referenced subscription does not exist")
		return nil
	}
	if _, err := u.engine.ApplySubscriptionPayment(ctx, sub, p, TriggerWebhook); err != nil {
		metrics.IncWebhookEvent("error")
		return err
	}
	metrics.IncWebhookEvent("subscription_by_reference")
	return nil
}

// Refresh re-checks a sale (by payment id) or a subscription (by payment or
// user id) on explicit request.
func (u *PaymentStatusUseCase) Refresh(ctx context.Context, paymentID, userID string) (entities.PaymentStatus, error) {
	paymentID = strings.TrimSpace(paymentID)
	userID = strings.TrimSpace(userID)
	if paymentID == "" && userID == "" {
		return "", ErrMissingRequiredFields
	}

	if paymentID != "" {
		sale, err := u.sales.GetByPaymentID(ctx, paymentID)
		if err != nil {
			return "", err
		}
		if sale.ID != "" {
			return u.engine.ReconcileSale(ctx, sale, TriggerRefresh)
		}
		if userID == "" {
			sub, err := u.subscriptions.GetByLastPaymentID(ctx, paymentID)
			if err != nil {
				return "", err
			}
			if sub.UserID == "" {
				return "", ErrSaleNotFound
			}
			return u.engine.ReconcileSubscription(ctx, sub, TriggerRefresh)
		}
	}

	sub, err := u.findSubscription(ctx, userID, paymentID)
	if err != nil {
		return "", err
	}
	return u.engine.ReconcileSubscription(ctx, sub, TriggerRefresh)
}

// RefreshMembership re-checks the latest sale of a product for a buyer and
// mirrors the result to the membership.
func (u *PaymentStatusUseCase) RefreshMembership(ctx context.Context, productID, buyerEmail string) (entities.PaymentStatus, error) {
	productID = strings.TrimSpace(productID)
	buyerEmail = strings.TrimSpace(buyerEmail)
	if productID == "" || buyerEmail == "" {
		return "", ErrMissingRequiredFields
	}
	sale, err := u.sales.FindLatestByProductAndBuyer(ctx, productID, buyerEmail)
	if err != nil {
		return "", err
	}
	if sale.ID == "" || sale.PaymentID == "" {
		return "", ErrSaleNotFound
	}
	return u.engine.ReconcileSale(ctx, sale, TriggerRefresh)
}
