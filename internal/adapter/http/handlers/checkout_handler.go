package handlers

import (
	"net/http"

	"pix_direct_sales/internal/adapter/http/dto/request"
	"pix_direct_sales/internal/adapter/http/dto/response"
	"pix_direct_sales/internal/infrastructure/logging"
	"pix_direct_sales/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CheckoutHandler creates PIX payment intents for product sales and seller
// subscriptions.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	logger  *zerolog.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, logger *zerolog.Logger) *CheckoutHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &CheckoutHandler{usecase: uc, logger: logger}
}

// CreatePayment godoc
// @Summary      Create a PIX payment for a product
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePaymentRequest  true  "Buyer and product"
// @Success      200   {object}  response.PaymentIntentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /create-payment [post]
func (h *CheckoutHandler) CreatePayment(c *gin.Context) {
	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}

	result, err := h.usecase.CreatePayment(c.Request.Context(), usecase.CreatePaymentInput{
		ProductID:  req.ProductID,
		BuyerEmail: req.BuyerEmail,
		BuyerName:  req.BuyerName,
	})
	if err != nil {
		h.logger.Warn().Err(err).Str("product_id", req.ProductID).Msg("create payment failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentIntentResult(result))
}

// CreateSubscription godoc
// @Summary      Create a PIX payment for a seller plan
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateSubscriptionRequest  true  "Seller and plan"
// @Success      200   {object}  response.PaymentIntentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /create-subscription [post]
func (h *CheckoutHandler) CreateSubscription(c *gin.Context) {
	var req request.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}

	result, err := h.usecase.CreateSubscription(c.Request.Context(), usecase.CreateSubscriptionInput{
		UserID:     req.UserID,
		BuyerEmail: req.BuyerEmail,
		BuyerName:  req.BuyerName,
		PlanType:   req.PlanType,
	})
	if err != nil {
		h.logger.Warn().Err(err).Str("user_id", req.UserID).Msg("create subscription failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentIntentResult(result))
}
