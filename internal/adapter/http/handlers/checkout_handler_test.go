package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pix_direct_sales/internal/adapter/http/handlers/mocks"
	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/usecase"
	"pix_direct_sales/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc, nil)

		r := gin.New()
		r.POST("/api/create-payment", h.CreatePayment)

		req := httptest.NewRequest(http.MethodPost, "/api/create-payment", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("seller without credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc, nil)

		r := gin.New()
		r.POST("/api/create-payment", h.CreatePayment)

		uc.EXPECT().CreatePayment(gomock.Any(), usecase.CreatePaymentInput{ProductID: "p1", BuyerEmail: "a@b.com", BuyerName: "Ana"}).
			Return(entities.PaymentIntentResult{}, usecase.ErrSellerNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/api/create-payment", bytes.NewBufferString(`{"productId":"p1","buyerEmail":"a@b.com","buyerName":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "Mercado Pago not configured for seller" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc, nil)

		r := gin.New()
		r.POST("/api/create-payment", h.CreatePayment)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntentResult{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/create-payment", bytes.NewBufferString(`{"productId":"nope","buyerEmail":"a@b.com","buyerName":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("processor error keeps status and body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc, nil)

		r := gin.New()
		r.POST("/api/create-payment", h.CreatePayment)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntentResult{},
			&interfaces.UpstreamError{StatusCode: http.StatusUnauthorized, Body: []byte(`{"message":"invalid access token"}`)})

		req := httptest.NewRequest(http.MethodPost, "/api/create-payment", bytes.NewBufferString(`{"productId":"p1","buyerEmail":"a@b.com","buyerName":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body struct {
			Error   string         `json:"error"`
			Details map[string]any `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Error != "Mercado Pago API error" || body.Details["message"] != "invalid access token" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc, nil)

		r := gin.New()
		r.POST("/api/create-payment", h.CreatePayment)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntentResult{
			PaymentID: "123", Status: entities.PaymentStatusPending, QRCode: "000201", QRCodeBase64: "iVBOR",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/create-payment", bytes.NewBufferString(`{"productId":"p1","buyerEmail":"a@b.com","buyerName":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "123" || body["status"] != "pending" || body["qr_code"] != "000201" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_CreateSubscription(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("platform credential missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc, nil)

		r := gin.New()
		r.POST("/api/create-subscription", h.CreateSubscription)

		uc.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).Return(entities.PaymentIntentResult{}, usecase.ErrPlatformNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/api/create-subscription", bytes.NewBufferString(`{"userId":"u1","buyerEmail":"a@b.com","buyerName":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("passes plan type through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc, nil)

		r := gin.New()
		r.POST("/api/create-subscription", h.CreateSubscription)

		uc.EXPECT().CreateSubscription(gomock.Any(), usecase.CreateSubscriptionInput{
			UserID: "u1", BuyerEmail: "a@b.com", BuyerName: "Ana", PlanType: "trial",
		}).Return(entities.PaymentIntentResult{PaymentID: "123", Status: entities.PaymentStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/create-subscription", bytes.NewBufferString(`{"userId":"u1","buyerEmail":"a@b.com","buyerName":"Ana","planType":"trial"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
