package routes

import (
	"fmt"
	"time"

	_ "pix_direct_sales/docs"
	"pix_direct_sales/internal/adapter/http/handlers"
	"pix_direct_sales/internal/infrastructure/bootstrap"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run serves the API on the configured port until the listener fails.
func Run(app *bootstrap.App) error {
	router := NewRouter(app)
	addr := fmt.Sprintf(":%d", app.Config.HTTP.Port)
	app.Logger.Info().Str("addr", addr).Msg("http server listening")
	return router.Run(addr)
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(app *bootstrap.App) *gin.Engine {
	if !app.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, app.Logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	addPingRoutes(router)

	checkoutHandler := handlers.NewCheckoutHandler(app.Checkout, app.Logger)
	statusHandler := handlers.NewPaymentStatusHandler(app.PaymentStatus, app.Logger)
	sellerHandler := handlers.NewSellerHandler(app.Seller, app.Logger)

	api := router.Group(PathAPI)
	addCheckoutRoutes(api, checkoutHandler)
	addStatusRoutes(api, statusHandler)
	addSellerRoutes(api, sellerHandler)

	return router
}

func setMiddlewares(router *gin.Engine, logger *zerolog.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func requestLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}
