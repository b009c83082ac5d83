package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pix_direct_sales/internal/adapter/http/handlers/mocks"
	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestSellerHandler_RequiresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISellerUseCase(ctrl)
	h := NewSellerHandler(uc, nil)

	r := gin.New()
	r.PUT("/api/seller/mercado-pago-config", h.SaveMercadoPagoConfig)

	req := httptest.NewRequest(http.MethodPut, "/api/seller/mercado-pago-config", bytes.NewBufferString(`{"access_token":"tok"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSellerHandler_SaveMercadoPagoConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISellerUseCase(ctrl)
	h := NewSellerHandler(uc, nil)

	r := gin.New()
	r.PUT("/api/seller/mercado-pago-config", h.SaveMercadoPagoConfig)

	uc.EXPECT().SaveCredential(gomock.Any(), "s1", "APP_USR-1").Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/seller/mercado-pago-config", bytes.NewBufferString(`{"access_token":"APP_USR-1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderUserID, "s1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != `{"ok":true}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestSellerHandler_CreateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("inactive subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISellerUseCase(ctrl)
		h := NewSellerHandler(uc, nil)

		r := gin.New()
		r.POST("/api/seller/products", h.CreateProduct)

		uc.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(entities.Product{}, usecase.ErrSubscriptionInactive)

		req := httptest.NewRequest(http.MethodPost, "/api/seller/products", bytes.NewBufferString(`{"name":"Ebook","description":"d","price":19.9}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "s1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISellerUseCase(ctrl)
		h := NewSellerHandler(uc, nil)

		r := gin.New()
		r.POST("/api/seller/products", h.CreateProduct)

		uc.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateProductInput) (entities.Product, error) {
				if in.SellerID != "s1" || !in.Price.Equal(decimal.RequireFromString("19.9")) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Product{ID: "p1", SellerID: "s1", Name: in.Name, Price: in.Price, IsActive: true}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/seller/products", bytes.NewBufferString(`{"name":"Ebook","description":"d","price":"19.90"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "s1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSellerHandler_SetSaleStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISellerUseCase(ctrl)
	h := NewSellerHandler(uc, nil)

	r := gin.New()
	r.PATCH("/api/seller/sales/:sale_id/status", h.SetSaleStatus)

	uc.EXPECT().SetSaleStatus(gomock.Any(), "s1", "sale-1", "refunded").Return(entities.PaymentStatus(""), usecase.ErrInvalidSaleStatus)

	req := httptest.NewRequest(http.MethodPatch, "/api/seller/sales/sale-1/status", bytes.NewBufferString(`{"status":"refunded"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderUserID, "s1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSellerHandler_SubscriptionAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISellerUseCase(ctrl)
	h := NewSellerHandler(uc, nil)

	r := gin.New()
	r.GET("/api/subscription-access", h.SubscriptionAccess)

	exp := time.Date(2026, 1, 20, 12, 5, 0, 0, time.UTC)
	uc.EXPECT().SubscriptionAccess(gomock.Any(), "u1").Return(usecase.SubscriptionAccess{
		Status: entities.SubscriptionStatusExpired, ExpiresAt: &exp, Active: false,
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/subscription-access?userId=u1", nil))

	want := `{"status":"expired","expires_at":"2026-01-20T12:05:00Z","active":false}`
	if w.Code != http.StatusOK || w.Body.String() != want {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
