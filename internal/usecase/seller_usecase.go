package usecase

import (
	"context"
	"strings"
	"time"

	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/infrastructure/logging"
	"pix_direct_sales/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ISellerUseCase holds the seller-side operations: Mercado Pago setup,
// product listing, manual sale overrides and plan access checks.
type ISellerUseCase interface {
	SaveCredential(ctx context.Context, sellerID, accessToken string) error
	CreateProduct(ctx context.Context, in CreateProductInput) (entities.Product, error)
	SetSaleStatus(ctx context.Context, sellerID, saleID, status string) (entities.PaymentStatus, error)
	SubscriptionAccess(ctx context.Context, userID string) (SubscriptionAccess, error)
}

type CreateProductInput struct {
	SellerID    string
	Name        string
	Description string
	Price       decimal.Decimal
}

// SubscriptionAccess is the plan state as seen by the seller dashboard.
type SubscriptionAccess struct {
	Status    entities.SubscriptionStatus `json:"status"`
	ExpiresAt *time.Time                  `json:"expires_at"`
	Active    bool                        `json:"active"`
}

type SellerUseCase struct {
	credentials   interfaces.ICredentialRepository
	products      interfaces.IProductRepository
	sales         interfaces.ISaleRepository
	memberships   interfaces.IMembershipRepository
	subscriptions interfaces.ISubscriptionRepository
	logger        *zerolog.Logger
	now           func() time.Time
}

var _ ISellerUseCase = (*SellerUseCase)(nil)

func NewSellerUseCase(
	credentials interfaces.ICredentialRepository,
	products interfaces.IProductRepository,
	sales interfaces.ISaleRepository,
	memberships interfaces.IMembershipRepository,
	subscriptions interfaces.ISubscriptionRepository,
	logger *zerolog.Logger,
) *SellerUseCase {
	if logger == nil {
		logger = logging.Nop()
	}
	return &SellerUseCase{
		credentials:   credentials,
		products:      products,
		sales:         sales,
		memberships:   memberships,
		subscriptions: subscriptions,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *SellerUseCase) SaveCredential(ctx context.Context, sellerID, accessToken string) error {
	sellerID = strings.TrimSpace(sellerID)
	accessToken = strings.TrimSpace(accessToken)
	if sellerID == "" || accessToken == "" {
		return ErrMissingRequiredFields
	}
	c := entities.Credential{SellerID: sellerID, AccessToken: accessToken, UpdatedAt: u.now()}
	if err := u.credentials.Upsert(ctx, c); err != nil {
		u.logger.Error().Err(err).Str("seller_id", sellerID).Msg("credential save failed")
		return err
	}
	u.logger.Info().Str("seller_id", sellerID).Str("access_token", logging.Redact(accessToken)).Msg("mercado pago credential saved")
	return nil
}

// CreateProduct lists a product. Sellers need an active platform plan.
func (u *SellerUseCase) CreateProduct(ctx context.Context, in CreateProductInput) (entities.Product, error) {
	sellerID := strings.TrimSpace(in.SellerID)
	name := strings.TrimSpace(in.Name)
	if sellerID == "" || name == "" {
		return entities.Product{}, ErrMissingRequiredFields
	}
	if !in.Price.IsPositive() {
		return entities.Product{}, ErrInvalidPrice
	}

	sub, err := u.subscriptions.GetByUserID(ctx, sellerID)
	if err != nil {
		return entities.Product{}, err
	}
	now := u.now()
	if !sub.IsActive(now) {
		return entities.Product{}, ErrSubscriptionInactive
	}

	p := entities.Product{
		ID:          uuid.NewString(),
		SellerID:    sellerID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price.Round(2),
		IsActive:    true,
		CreatedAt:   now,
	}
	created, err := u.products.Create(ctx, p)
	if err != nil {
		u.logger.Error().Err(err).Str("seller_id", sellerID).Msg("product create failed")
		return entities.Product{}, err
	}
	return created, nil
}

// SetSaleStatus is the seller's manual override for a sale paid outside the
// normal flow. Only approved and pending are accepted and the membership
// follows the sale.
func (u *SellerUseCase) SetSaleStatus(ctx context.Context, sellerID, saleID, status string) (entities.PaymentStatus, error) {
	sellerID = strings.TrimSpace(sellerID)
	saleID = strings.TrimSpace(saleID)
	if sellerID == "" || saleID == "" {
		return "", ErrMissingRequiredFields
	}
	next := entities.NormalizePaymentStatus(status)
	if next != entities.PaymentStatusApproved && next != entities.PaymentStatusPending {
		return "", ErrInvalidSaleStatus
	}

	sale, err := u.sales.GetByID(ctx, saleID)
	if err != nil {
		return "", err
	}
	if sale.ID == "" || sale.SellerID != sellerID {
		return "", ErrSaleNotFound
	}

	if err := u.sales.UpdateStatusByID(ctx, sale.ID, next); err != nil {
		return "", err
	}
	if err := u.memberships.UpdateStatusByProductAndBuyer(ctx, sale.ProductID, sale.BuyerEmail, next); err != nil {
		return "", err
	}
	u.logger.Info().Str("sale_id", sale.ID).Str("seller_id", sellerID).
		Str("previous", string(sale.PaymentStatus)).Str("status", string(next)).Msg("sale status overridden")
	return next, nil
}

// SubscriptionAccess reports whether the user's plan is usable now. A stored
// "active" whose window has elapsed is persisted as "expired" here.
func (u *SellerUseCase) SubscriptionAccess(ctx context.Context, userID string) (SubscriptionAccess, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return SubscriptionAccess{}, ErrMissingRequiredFields
	}
	sub, err := u.subscriptions.GetByUserID(ctx, userID)
	if err != nil {
		return SubscriptionAccess{}, err
	}
	if sub.UserID == "" {
		return SubscriptionAccess{}, ErrSubscriptionNotFound
	}

	now := u.now()
	if sub.HasLapsed(now) {
		if err := u.subscriptions.UpdateStatus(ctx, sub.UserID, entities.SubscriptionStatusExpired); err != nil {
			return SubscriptionAccess{}, err
		}
		u.logger.Info().Str("user_id", sub.UserID).Msg("subscription expired")
		sub.Status = entities.SubscriptionStatusExpired
	}
	return SubscriptionAccess{Status: sub.Status, ExpiresAt: sub.ExpiresAt, Active: sub.IsActive(now)}, nil
}
