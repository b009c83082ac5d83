package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pix_direct_sales/internal/adapter/http/handlers/mocks"
	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentStatusHandler_CheckPaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
		h := NewPaymentStatusHandler(uc, nil)

		r := gin.New()
		r.GET("/api/check-payment-status", h.CheckPaymentStatus)

		uc.EXPECT().CheckPaymentStatus(gomock.Any(), "999").Return(entities.PaymentStatus(""), usecase.ErrSaleNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/check-payment-status?paymentId=999", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
		h := NewPaymentStatusHandler(uc, nil)

		r := gin.New()
		r.GET("/api/check-payment-status", h.CheckPaymentStatus)

		uc.EXPECT().CheckPaymentStatus(gomock.Any(), "123").Return(entities.PaymentStatusApproved, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/check-payment-status?paymentId=123", nil))

		if w.Code != http.StatusOK || w.Body.String() != `{"status":"approved"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentStatusHandler_CheckSubscriptionStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
	h := NewPaymentStatusHandler(uc, nil)

	r := gin.New()
	r.GET("/api/check-subscription-status", h.CheckSubscriptionStatus)

	uc.EXPECT().CheckSubscriptionStatus(gomock.Any(), "u1", "").Return(entities.PaymentStatusApproved, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/check-subscription-status?userId=u1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPaymentStatusHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("post body id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
		h := NewPaymentStatusHandler(uc, nil)

		r := gin.New()
		r.POST("/api/mp-webhook", h.Webhook)

		uc.EXPECT().HandleWebhook(gomock.Any(), "123").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/mp-webhook", bytes.NewBufferString(`{"type":"payment","data":{"id":123}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != `{"ok":true}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("get query id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
		h := NewPaymentStatusHandler(uc, nil)

		r := gin.New()
		r.GET("/api/mp-webhook", h.Webhook)

		uc.EXPECT().HandleWebhook(gomock.Any(), "456").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/mp-webhook?data_id=456", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("errors are swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
		h := NewPaymentStatusHandler(uc, nil)

		r := gin.New()
		r.POST("/api/mp-webhook", h.Webhook)

		uc.EXPECT().HandleWebhook(gomock.Any(), "").Return(errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/api/mp-webhook", bytes.NewBufferString(`not json`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != `{"ok":true}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentStatusHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("refresh status by user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
		h := NewPaymentStatusHandler(uc, nil)

		r := gin.New()
		r.POST("/api/refresh-status", h.RefreshStatus)

		uc.EXPECT().Refresh(gomock.Any(), "", "u1").Return(entities.PaymentStatusApproved, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/refresh-status", bytes.NewBufferString(`{"userId":"u1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("refresh status missing ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
		h := NewPaymentStatusHandler(uc, nil)

		r := gin.New()
		r.POST("/api/refresh-status", h.RefreshStatus)

		uc.EXPECT().Refresh(gomock.Any(), "", "").Return(entities.PaymentStatus(""), usecase.ErrMissingRequiredFields)

		req := httptest.NewRequest(http.MethodPost, "/api/refresh-status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MISSING_REQUIRED_FIELDS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("refresh membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
		h := NewPaymentStatusHandler(uc, nil)

		r := gin.New()
		r.POST("/api/refresh-membership", h.RefreshMembership)

		uc.EXPECT().RefreshMembership(gomock.Any(), "p1", "a@b.com").Return(entities.PaymentStatusPending, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/refresh-membership", bytes.NewBufferString(`{"productId":"p1","buyerEmail":"a@b.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != `{"status":"pending"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
