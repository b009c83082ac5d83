package usecase

import (
	"context"
	"strings"
	"time"

	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/infrastructure/logging"
	"pix_direct_sales/internal/infrastructure/metrics"
	"pix_direct_sales/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// Trigger names the entry point that started a reconciliation pass.
type Trigger string

const (
	TriggerPoll    Trigger = "poll"
	TriggerWebhook Trigger = "webhook"
	TriggerRefresh Trigger = "refresh"
)

// ReconciliationEngine fetches the processor's view of a payment and moves the
// local records to match it. Every pass is re-entrant: running it again with
// the same processor answer writes the same state.
type ReconciliationEngine struct {
	sales         interfaces.ISaleRepository
	memberships   interfaces.IMembershipRepository
	subscriptions interfaces.ISubscriptionRepository
	gateway       interfaces.IPaymentGateway
	credentials   ICredentialResolver
	logger        *zerolog.Logger
	now           func() time.Time
}

func NewReconciliationEngine(
	sales interfaces.ISaleRepository,
	memberships interfaces.IMembershipRepository,
	subscriptions interfaces.ISubscriptionRepository,
	gateway interfaces.IPaymentGateway,
	credentials ICredentialResolver,
	logger *zerolog.Logger,
) *ReconciliationEngine {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ReconciliationEngine{
		sales:         sales,
		memberships:   memberships,
		subscriptions: subscriptions,
		gateway:       gateway,
		credentials:   credentials,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source; used by tests.
func (e *ReconciliationEngine) WithClock(now func() time.Time) *ReconciliationEngine {
	e.now = now
	return e
}

// ReconcileSale refreshes a sale and its membership from the processor using
// the seller's credential.
func (e *ReconciliationEngine) ReconcileSale(ctx context.Context, sale entities.Sale, trigger Trigger) (entities.PaymentStatus, error) {
	log := e.logger.With().Str("entity", "sale").Str("trigger", string(trigger)).Str("payment_id", sale.PaymentID).Logger()

	credential, err := e.credentials.ForSeller(ctx, sale.SellerID)
	if err != nil {
		log.Warn().Err(err).Str("seller_id", sale.SellerID).Msg("seller credential unavailable")
		return "", err
	}

	p, err := e.gateway.GetPayment(ctx, sale.PaymentID, credential)
	if err != nil {
		log.Error().Err(err).Msg("processor lookup failed")
		return "", err
	}

	next := entities.NextSaleStatus(sale.PaymentStatus, p.Status)
	if next != sale.PaymentStatus {
		if err := e.sales.UpdateStatusByPaymentID(ctx, sale.PaymentID, next); err != nil {
			log.Error().Err(err).Msg("sale update failed")
			return "", err
		}
	}
	// The membership is written on every pass so a crash between the two
	// writes is repaired by the next reconciliation.
	if err := e.memberships.UpdateStatusByProductAndBuyer(ctx, sale.ProductID, sale.BuyerEmail, next); err != nil {
		log.Error().Err(err).Str("product_id", sale.ProductID).Msg("membership update failed")
		return "", err
	}

	metrics.IncReconciliation("sale", string(trigger), string(next))
	log.Info().Str("previous", string(sale.PaymentStatus)).Str("reported", string(p.Status)).Str("status", string(next)).Msg("sale reconciled")
	return next, nil
}

// ReconcileSubscription refreshes a subscription from its last payment using
// the platform credential.
func (e *ReconciliationEngine) ReconcileSubscription(ctx context.Context, sub entities.Subscription, trigger Trigger) (entities.PaymentStatus, error) {
	if strings.TrimSpace(sub.LastPaymentID) == "" {
		return "", ErrSubscriptionNotFound
	}
	credential, err := e.credentials.ForPlatform()
	if err != nil {
		return "", err
	}
	p, err := e.gateway.GetPayment(ctx, sub.LastPaymentID, credential)
	if err != nil {
		e.logger.Error().Err(err).Str("entity", "subscription").Str("trigger", string(trigger)).
			Str("payment_id", sub.LastPaymentID).Msg("processor lookup failed")
		return "", err
	}
	return e.ApplySubscriptionPayment(ctx, sub, p, trigger)
}

// ApplySubscriptionPayment persists the transition a fetched payment implies
// for sub. Callers that already hold the processor payment use it directly.
func (e *ReconciliationEngine) ApplySubscriptionPayment(ctx context.Context, sub entities.Subscription, p entities.ProcessorPayment, trigger Trigger) (entities.PaymentStatus, error) {
	log := e.logger.With().Str("entity", "subscription").Str("trigger", string(trigger)).
		Str("user_id", sub.UserID).Str("payment_id", p.ID).Logger()

	tr := entities.NextSubscriptionState(sub, p, e.now())
	switch tr.Kind {
	case entities.SubscriptionActivate:
		if err := e.subscriptions.Activate(ctx, sub.UserID, tr.PaymentID, tr.ActivatedAt, tr.ExpiresAt); err != nil {
			log.Error().Err(err).Msg("subscription activation failed")
			return "", err
		}
		log.Info().Str("plan", string(tr.Plan)).Time("expires_at", tr.ExpiresAt).Msg("subscription activated")
	case entities.SubscriptionSetStatus:
		if err := e.subscriptions.UpdateStatus(ctx, sub.UserID, tr.Status); err != nil {
			log.Error().Err(err).Msg("subscription update failed")
			return "", err
		}
		log.Info().Str("previous", string(sub.Status)).Str("status", string(tr.Status)).Msg("subscription status updated")
	default:
		log.Debug().Str("status", string(sub.Status)).Msg("subscription unchanged")
	}

	metrics.IncReconciliation("subscription", string(trigger), string(tr.Result))
	return tr.Result, nil
}
