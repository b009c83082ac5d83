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

// PaymentStatusHandler exposes the three reconciliation triggers: polling,
// the processor webhook and manual refresh.
type PaymentStatusHandler struct {
	usecase usecase.IPaymentStatusUseCase
	logger  *zerolog.Logger
}

func NewPaymentStatusHandler(uc usecase.IPaymentStatusUseCase, logger *zerolog.Logger) *PaymentStatusHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &PaymentStatusHandler{usecase: uc, logger: logger}
}

// CheckPaymentStatus godoc
// @Summary      Poll the status of a product sale payment
// @Tags         status
// @Produce      json
// @Param        paymentId  query     string  true  "Processor payment id"
// @Success      200        {object}  response.StatusResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /check-payment-status [get]
func (h *PaymentStatusHandler) CheckPaymentStatus(c *gin.Context) {
	status, err := h.usecase.CheckPaymentStatus(c.Request.Context(), c.Query("paymentId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatus(status))
}

// CheckSubscriptionStatus godoc
// @Summary      Poll the status of a subscription payment
// @Tags         status
// @Produce      json
// @Param        userId     query     string  false  "Seller id"
// @Param        paymentId  query     string  false  "Processor payment id"
// @Success      200        {object}  response.StatusResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /check-subscription-status [get]
func (h *PaymentStatusHandler) CheckSubscriptionStatus(c *gin.Context) {
	status, err := h.usecase.CheckSubscriptionStatus(c.Request.Context(), c.Query("userId"), c.Query("paymentId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatus(status))
}

// Webhook godoc
// @Summary      Mercado Pago payment notification
// @Description  Always answers 200 so the processor does not retry; failures are logged.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        id       query     string  false  "Payment id (IPN)"
// @Param        data_id  query     string  false  "Payment id"
// @Success      200      {object}  response.OKResponse
// @Router       /mp-webhook [post]
// @Router       /mp-webhook [get]
func (h *PaymentStatusHandler) Webhook(c *gin.Context) {
	var body []byte
	if c.Request.Method == http.MethodPost {
		raw, err := c.GetRawData()
		if err != nil {
			h.logger.Warn().Err(err).Msg("webhook body unreadable")
		}
		body = raw
	}

	paymentID := request.WebhookPaymentID(body, c.Request.URL.Query())
	if err := h.usecase.HandleWebhook(c.Request.Context(), paymentID); err != nil {
		h.logger.Error().Err(err).Str("payment_id", paymentID).Msg("webhook processing failed")
	}
	c.JSON(http.StatusOK, response.OKResponse{OK: true})
}

// RefreshStatus godoc
// @Summary      Force reconciliation of a payment or a subscription
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        body  body      request.RefreshStatusRequest  true  "paymentId or userId"
// @Success      200   {object}  response.StatusResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /refresh-status [post]
func (h *PaymentStatusHandler) RefreshStatus(c *gin.Context) {
	var req request.RefreshStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}
	status, err := h.usecase.Refresh(c.Request.Context(), req.PaymentID, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatus(status))
}

// RefreshMembership godoc
// @Summary      Force reconciliation of a buyer's latest sale for a product
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        body  body      request.RefreshMembershipRequest  true  "Product and buyer"
// @Success      200   {object}  response.StatusResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /refresh-membership [post]
func (h *PaymentStatusHandler) RefreshMembership(c *gin.Context) {
	var req request.RefreshMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}
	status, err := h.usecase.RefreshMembership(c.Request.Context(), req.ProductID, req.BuyerEmail)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatus(status))
}
