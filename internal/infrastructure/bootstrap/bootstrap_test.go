package bootstrap

import (
	"context"
	"testing"

	"pix_direct_sales/internal/adapter/http/dto/request"
	appconfig "pix_direct_sales/internal/config"
	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/infrastructure/logging"
	"pix_direct_sales/internal/usecase"

	"github.com/shopspring/decimal"
)

func newSQLiteApp(t *testing.T) *App {
	t.Helper()
	cfg := &appconfig.Config{
		Environment:    "test",
		WebhookBaseURL: "https://store.example.com/app",
		Storage:        appconfig.Storage{Driver: appconfig.StorageSQLite, DatabaseURL: "file:" + t.Name() + "?mode=memory&cache=shared"},
		MercadoPago:    appconfig.MercadoPago{Mock: true, PlatformAccessToken: "platform-token"},
	}
	app, err := New(context.Background(), cfg, logging.Nop())
	if err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &appconfig.Config{Storage: appconfig.Storage{Driver: "postgres"}}
	if _, err := New(context.Background(), cfg, logging.Nop()); err == nil {
		t.Fatalf("expected error")
	}
}

// Runs a product sale end to end against sqlite and the mock processor.
func TestApp_SaleFlowWithMockProcessor(t *testing.T) {
	ctx := context.Background()
	app := newSQLiteApp(t)

	if err := app.Seller.SaveCredential(ctx, "seller-1", "APP_USR-seller"); err != nil {
		t.Fatalf("save credential: %v", err)
	}
	if _, err := app.Repos.Products.Create(ctx, entities.Product{
		ID: "p1", SellerID: "seller-1", Name: "Ebook", Price: decimal.RequireFromString("19.90"), IsActive: true,
	}); err != nil {
		t.Fatalf("create product: %v", err)
	}

	intent, err := app.Checkout.CreatePayment(ctx, usecase.CreatePaymentInput{ProductID: "p1", BuyerEmail: "a@b.com", BuyerName: "Ana"})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if intent.Status != entities.PaymentStatusPending || intent.PaymentID == "" {
		t.Fatalf("unexpected intent: %+v", intent)
	}

	m, err := app.Repos.Memberships.GetByProductAndBuyer(ctx, "p1", "a@b.com")
	if err != nil || m.Status != entities.PaymentStatusPending {
		t.Fatalf("expected pending membership, got %+v err=%v", m, err)
	}

	// the mock processor reports every known payment as approved
	if err := app.PaymentStatus.HandleWebhook(ctx, request.WebhookPaymentID([]byte(`{"data":{"id":"`+intent.PaymentID+`"}}`), nil)); err != nil {
		t.Fatalf("webhook: %v", err)
	}

	status, err := app.PaymentStatus.CheckPaymentStatus(ctx, intent.PaymentID)
	if err != nil || status != entities.PaymentStatusApproved {
		t.Fatalf("expected approved, got %q err=%v", status, err)
	}
	m, _ = app.Repos.Memberships.GetByProductAndBuyer(ctx, "p1", "a@b.com")
	if !m.Unlocked() {
		t.Fatalf("membership should be unlocked, got %q", m.Status)
	}
}

// A buyer who already paid keeps access when they open checkout again.
func TestApp_RepurchaseKeepsApprovedMembership(t *testing.T) {
	ctx := context.Background()
	app := newSQLiteApp(t)

	if err := app.Seller.SaveCredential(ctx, "seller-1", "APP_USR-seller"); err != nil {
		t.Fatalf("save credential: %v", err)
	}
	if _, err := app.Repos.Products.Create(ctx, entities.Product{
		ID: "p1", SellerID: "seller-1", Name: "Ebook", Price: decimal.RequireFromString("19.90"), IsActive: true,
	}); err != nil {
		t.Fatalf("create product: %v", err)
	}

	first, err := app.Checkout.CreatePayment(ctx, usecase.CreatePaymentInput{ProductID: "p1", BuyerEmail: "a@b.com", BuyerName: "Ana"})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if status, err := app.PaymentStatus.CheckPaymentStatus(ctx, first.PaymentID); err != nil || status != entities.PaymentStatusApproved {
		t.Fatalf("expected approved, got %q err=%v", status, err)
	}

	second, err := app.Checkout.CreatePayment(ctx, usecase.CreatePaymentInput{ProductID: "p1", BuyerEmail: "a@b.com", BuyerName: "Ana"})
	if err != nil {
		t.Fatalf("second create payment: %v", err)
	}
	if second.Status != entities.PaymentStatusPending {
		t.Fatalf("expected pending intent, got %q", second.Status)
	}
	m, err := app.Repos.Memberships.GetByProductAndBuyer(ctx, "p1", "a@b.com")
	if err != nil || !m.Unlocked() {
		t.Fatalf("membership regressed after new checkout: %+v err=%v", m, err)
	}

	// reconciling the new sale while it is still pending keeps access
	if err := app.Repos.Memberships.UpdateStatusByProductAndBuyer(ctx, "p1", "a@b.com", entities.PaymentStatusPending); err != nil {
		t.Fatalf("membership update: %v", err)
	}
	m, _ = app.Repos.Memberships.GetByProductAndBuyer(ctx, "p1", "a@b.com")
	if !m.Unlocked() {
		t.Fatalf("pending reconcile regressed membership to %q", m.Status)
	}
}

func TestApp_SubscriptionGatesProductCreation(t *testing.T) {
	ctx := context.Background()
	app := newSQLiteApp(t)

	_, err := app.Seller.CreateProduct(ctx, usecase.CreateProductInput{SellerID: "u1", Name: "Ebook", Price: decimal.NewFromInt(10)})
	if err == nil {
		t.Fatalf("expected product creation to be refused without a subscription")
	}

	intent, err := app.Checkout.CreateSubscription(ctx, usecase.CreateSubscriptionInput{UserID: "u1", BuyerEmail: "u1@b.com", BuyerName: "U1", PlanType: "trial"})
	if err != nil {
		t.Fatalf("create subscription: %v", err)
	}
	if _, err := app.PaymentStatus.Refresh(ctx, intent.PaymentID, ""); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	access, err := app.Seller.SubscriptionAccess(ctx, "u1")
	if err != nil || !access.Active {
		t.Fatalf("expected active subscription, got %+v err=%v", access, err)
	}
	if _, err := app.Seller.CreateProduct(ctx, usecase.CreateProductInput{SellerID: "u1", Name: "Ebook", Price: decimal.NewFromInt(10)}); err != nil {
		t.Fatalf("create product: %v", err)
	}
}
