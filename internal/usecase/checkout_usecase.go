package usecase

import (
	"context"
	"strings"
	"time"

	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/infrastructure/logging"
	"pix_direct_sales/internal/infrastructure/metrics"
	"pix_direct_sales/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ICheckoutUseCase creates PIX payment intents for product sales and for the
// seller platform subscription.
type ICheckoutUseCase interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (entities.PaymentIntentResult, error)
	CreateSubscription(ctx context.Context, in CreateSubscriptionInput) (entities.PaymentIntentResult, error)
}

type CreatePaymentInput struct {
	ProductID  string
	BuyerEmail string
	BuyerName  string
}

type CreateSubscriptionInput struct {
	UserID     string
	BuyerEmail string
	BuyerName  string
	PlanType   string
}

type CheckoutUseCase struct {
	products      interfaces.IProductRepository
	sales         interfaces.ISaleRepository
	memberships   interfaces.IMembershipRepository
	subscriptions interfaces.ISubscriptionRepository
	gateway       interfaces.IPaymentGateway
	credentials   ICredentialResolver
	intents       *PaymentIntentBuilder
	logger        *zerolog.Logger
	now           func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	products interfaces.IProductRepository,
	sales interfaces.ISaleRepository,
	memberships interfaces.IMembershipRepository,
	subscriptions interfaces.ISubscriptionRepository,
	gateway interfaces.IPaymentGateway,
	credentials ICredentialResolver,
	intents *PaymentIntentBuilder,
	logger *zerolog.Logger,
) *CheckoutUseCase {
	if logger == nil {
		logger = logging.Nop()
	}
	if intents == nil {
		intents = NewPaymentIntentBuilder("")
	}
	return &CheckoutUseCase{
		products:      products,
		sales:         sales,
		memberships:   memberships,
		subscriptions: subscriptions,
		gateway:       gateway,
		credentials:   credentials,
		intents:       intents,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *CheckoutUseCase) CreatePayment(ctx context.Context, in CreatePaymentInput) (entities.PaymentIntentResult, error) {
	productID := strings.TrimSpace(in.ProductID)
	buyer, err := BuyerInfo{Email: in.BuyerEmail, Name: in.BuyerName}.normalized()
	if err != nil || productID == "" {
		return entities.PaymentIntentResult{}, ErrMissingRequiredFields
	}
	log := u.logger.With().Str("op", "create_payment").Str("product_id", productID).Logger()

	product, err := u.products.GetActiveByID(ctx, productID)
	if err != nil {
		log.Error().Err(err).Msg("product lookup failed")
		return entities.PaymentIntentResult{}, err
	}
	if product.ID == "" {
		return entities.PaymentIntentResult{}, ErrProductNotFound
	}

	credential, err := u.credentials.ForSeller(ctx, product.SellerID)
	if err != nil {
		log.Warn().Err(err).Str("seller_id", product.SellerID).Msg("seller credential unavailable")
		metrics.IncPaymentIntent("sale", "not_configured")
		return entities.PaymentIntentResult{}, err
	}

	intent, err := u.intents.ForSale(product, buyer)
	if err != nil {
		return entities.PaymentIntentResult{}, err
	}

	// Sale intents carry no idempotency key: a retried checkout creates a new
	// pending payment.
	p, err := u.gateway.CreatePayment(ctx, intent, credential, "")
	if err != nil {
		log.Error().Err(err).Msg("processor create failed")
		metrics.IncPaymentIntent("sale", "upstream_error")
		return entities.PaymentIntentResult{}, err
	}
	result := entities.NewPaymentIntentResult(p)

	now := u.now()
	sale := entities.Sale{
		ID:            uuid.NewString(),
		ProductID:     product.ID,
		SellerID:      product.SellerID,
		BuyerEmail:    buyer.Email,
		BuyerName:     buyer.Name,
		Amount:        product.Price,
		PaymentID:     result.PaymentID,
		PaymentStatus: result.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := u.sales.Create(ctx, sale); err != nil {
		log.Error().Err(err).Str("payment_id", sale.PaymentID).Msg("sale persist failed")
		return entities.PaymentIntentResult{}, err
	}
	membership := entities.Membership{
		ProductID:  product.ID,
		BuyerEmail: buyer.Email,
		BuyerName:  buyer.Name,
		Status:     result.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.memberships.CreateIfAbsent(ctx, membership); err != nil {
		log.Error().Err(err).Str("payment_id", sale.PaymentID).Msg("membership persist failed")
		return entities.PaymentIntentResult{}, err
	}

	metrics.IncPaymentIntent("sale", "created")
	log.Info().Str("sale_id", sale.ID).Str("payment_id", sale.PaymentID).Str("status", string(result.Status)).Msg("sale intent created")
	return result, nil
}

func (u *CheckoutUseCase) CreateSubscription(ctx context.Context, in CreateSubscriptionInput) (entities.PaymentIntentResult, error) {
	userID := strings.TrimSpace(in.UserID)
	buyer, err := BuyerInfo{Email: in.BuyerEmail, Name: in.BuyerName}.normalized()
	if err != nil || userID == "" {
		return entities.PaymentIntentResult{}, ErrMissingRequiredFields
	}
	plan := entities.ParsePlanType(in.PlanType)
	log := u.logger.With().Str("op", "create_subscription").Str("user_id", userID).Str("plan", string(plan)).Logger()

	credential, err := u.credentials.ForPlatform()
	if err != nil {
		log.Error().Err(err).Msg("platform credential unavailable")
		metrics.IncPaymentIntent("subscription", "not_configured")
		return entities.PaymentIntentResult{}, err
	}

	intent, err := u.intents.ForSubscription(userID, plan, buyer)
	if err != nil {
		return entities.PaymentIntentResult{}, err
	}

	p, err := u.gateway.CreatePayment(ctx, intent, credential, uuid.NewString())
	if err != nil {
		log.Error().Err(err).Msg("processor create failed")
		metrics.IncPaymentIntent("subscription", "upstream_error")
		return entities.PaymentIntentResult{}, err
	}
	result := entities.NewPaymentIntentResult(p)

	// A new intent restarts the subscription window.
	sub := entities.Subscription{
		UserID:        userID,
		Status:        entities.SubscriptionStatus(result.Status),
		LastPaymentID: result.PaymentID,
		UpdatedAt:     u.now(),
	}
	if _, err := u.subscriptions.UpsertByUserID(ctx, sub); err != nil {
		log.Error().Err(err).Str("payment_id", result.PaymentID).Msg("subscription persist failed")
		return entities.PaymentIntentResult{}, err
	}

	metrics.IncPaymentIntent("subscription", "created")
	log.Info().Str("payment_id", result.PaymentID).Str("status", string(result.Status)).Msg("subscription intent created")
	return result, nil
}
