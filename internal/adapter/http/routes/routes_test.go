package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appconfig "pix_direct_sales/internal/config"
	"pix_direct_sales/internal/infrastructure/bootstrap"
	"pix_direct_sales/internal/infrastructure/logging"
	"pix_direct_sales/internal/infrastructure/payments"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app := &bootstrap.App{
		Config: &appconfig.Config{Environment: "development"},
		Logger: logging.Nop(),
	}
	app.Wire(bootstrap.Repositories{}, payments.NewMockProcessor())
	return NewRouter(app)
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "payment_intents_total") && !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Fatalf("unexpected metrics body")
	}
}

func TestRouter_WebhookWithoutIDStillOK(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/mp-webhook", bytes.NewBufferString(`{}`)))
	if w.Code != http.StatusOK || w.Body.String() != `{"ok":true}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_SellerRoutesRequireIdentity(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/seller/products", bytes.NewBufferString(`{}`)))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
