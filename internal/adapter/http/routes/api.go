package routes

import (
	"pix_direct_sales/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI    = "/api"
	PathSeller = "/seller"
)

func addPingRoutes(r gin.IRoutes) {
	r.GET("/ping", handlers.Ping)
}

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	rg.POST("/create-payment", h.CreatePayment)
	rg.POST("/create-subscription", h.CreateSubscription)
}

func addStatusRoutes(rg *gin.RouterGroup, h *handlers.PaymentStatusHandler) {
	rg.GET("/check-payment-status", h.CheckPaymentStatus)
	rg.GET("/check-subscription-status", h.CheckSubscriptionStatus)
	rg.POST("/refresh-status", h.RefreshStatus)
	rg.POST("/refresh-membership", h.RefreshMembership)

	// Mercado Pago uses POST for webhooks and GET for legacy IPN pings.
	rg.POST("/mp-webhook", h.Webhook)
	rg.GET("/mp-webhook", h.Webhook)
}

func addSellerRoutes(rg *gin.RouterGroup, h *handlers.SellerHandler) {
	rg.GET("/subscription-access", h.SubscriptionAccess)

	seller := rg.Group(PathSeller)
	{
		seller.PUT("/mercado-pago-config", h.SaveMercadoPagoConfig)
		seller.POST("/products", h.CreateProduct)
		seller.PATCH("/sales/:sale_id/status", h.SetSaleStatus)
	}
}
