package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appconfig "pix_direct_sales/internal/config"
	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const paymentJSON = `{
	"id": 123,
	"status": "pending",
	"transaction_amount": 2,
	"external_reference": "subscription-u1-trial",
	"payer": {"email": "e@x.com"},
	"point_of_interaction": {"transaction_data": {"qr_code": "000201pix", "qr_code_base64": "aW1hZ2U="}}
}`

func newTestGateway(t *testing.T, handler http.HandlerFunc) *MercadoPagoGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	g, err := NewMercadoPagoGateway(appconfig.MercadoPago{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	var gotBody map[string]any
	var gotAuth, gotKey string
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/v1/payments") {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("X-Idempotency-Key")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(paymentJSON))
	})

	intent := entities.PaymentIntent{
		TransactionAmount: decimal.RequireFromString("2.00"),
		Description:       "Plano de teste - 5 minutos",
		PaymentMethodID:   "pix",
		PayerEmail:        "e@x.com",
		PayerFirstName:    "John",
		ExternalReference: "subscription-u1-trial",
	}
	p, err := g.CreatePayment(context.Background(), intent, "APP_USR-platform", "idem-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "123" || p.Status != entities.PaymentStatusPending || p.QRCode != "000201pix" || p.QRCodeBase64 != "aW1hZ2U=" {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if gotAuth != "Bearer APP_USR-platform" {
		t.Fatalf("unexpected authorization header %q", gotAuth)
	}
	if gotKey != "idem-1" {
		t.Fatalf("unexpected idempotency key %q", gotKey)
	}
	if gotBody["transaction_amount"] != float64(2) || gotBody["payment_method_id"] != "pix" || gotBody["external_reference"] != "subscription-u1-trial" {
		t.Fatalf("unexpected outbound payload: %v", gotBody)
	}
}

func TestMercadoPagoGateway_GetPayment(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || !strings.HasSuffix(r.URL.Path, "/v1/payments/123") {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(strings.Replace(paymentJSON, `"pending"`, `"approved"`, 1)))
	})

	p, err := g.GetPayment(context.Background(), "123", "seller-tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != entities.PaymentStatusApproved || p.ExternalReference != "subscription-u1-trial" || !p.TransactionAmount.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("unexpected payment: %+v", p)
	}
}

func TestMercadoPagoGateway_UpstreamError(t *testing.T) {
	const body = `{"message":"invalid access token","error":"unauthorized","status":401}`
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(body))
	})

	_, err := g.GetPayment(context.Background(), "123", "bad")
	var ue *interfaces.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if ue.StatusCode != http.StatusUnauthorized || string(ue.Body) != body {
		t.Fatalf("unexpected upstream error: %d %s", ue.StatusCode, ue.Body)
	}
}

func TestMercadoPagoGateway_InputErrors(t *testing.T) {
	g, err := NewMercadoPagoGateway(appconfig.MercadoPago{Timeout: time.Second}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ue *interfaces.UpstreamError
	if _, err := g.GetPayment(context.Background(), "abc", "tok"); !errors.As(err, &ue) || ue.StatusCode != http.StatusNotFound {
		t.Fatalf("expected not found for non-numeric id, got %v", err)
	}
	if _, err := g.CreatePayment(context.Background(), entities.PaymentIntent{}, " ", ""); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestNewGateway_MockMode(t *testing.T) {
	g, err := NewGateway(appconfig.MercadoPago{GatewayMock: true}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := g.(*MockProcessor); !ok {
		t.Fatalf("expected mock processor, got %T", g)
	}
}
