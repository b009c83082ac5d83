package response

import (
	"testing"
	"time"

	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromPaymentIntentResult(t *testing.T) {
	r := FromPaymentIntentResult(entities.PaymentIntentResult{
		PaymentID:    "123",
		Status:       entities.PaymentStatusPending,
		QRCode:       "000201",
		QRCodeBase64: "iVBOR",
	})
	if r.PaymentID != "123" || r.Status != "pending" || r.QRCode != "000201" || r.QRCodeBase64 != "iVBOR" {
		t.Fatalf("unexpected response: %+v", r)
	}
}

func TestFromProduct_FormatsPrice(t *testing.T) {
	r := FromProduct(entities.Product{ID: "p1", SellerID: "s1", Price: decimal.RequireFromString("49.9"), IsActive: true})
	if r.Price != "49.90" || r.UserID != "s1" {
		t.Fatalf("unexpected response: %+v", r)
	}
}

func TestFromSubscriptionAccess(t *testing.T) {
	exp := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)
	r := FromSubscriptionAccess(usecase.SubscriptionAccess{Status: entities.SubscriptionStatusActive, ExpiresAt: &exp, Active: true})
	if r.Status != "active" || !r.Active || r.ExpiresAt == nil || !r.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected response: %+v", r)
	}
	if FromStatus(entities.PaymentStatusApproved).Status != "approved" {
		t.Fatalf("unexpected status response")
	}
}
