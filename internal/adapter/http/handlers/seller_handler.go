package handlers

import (
	"net/http"
	"strings"

	"pix_direct_sales/internal/adapter/http/dto/request"
	"pix_direct_sales/internal/adapter/http/dto/response"
	"pix_direct_sales/internal/infrastructure/logging"
	"pix_direct_sales/internal/usecase"
	"pix_direct_sales/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderUserID carries the authenticated seller id, set by the identity proxy
// in front of the service.
const HeaderUserID = "X-User-Id"

type SellerHandler struct {
	usecase usecase.ISellerUseCase
	logger  *zerolog.Logger
}

func NewSellerHandler(uc usecase.ISellerUseCase, logger *zerolog.Logger) *SellerHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &SellerHandler{usecase: uc, logger: logger}
}

func sellerID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if id == "" {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing seller identity", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return "", false
	}
	return id, true
}

// SaveMercadoPagoConfig godoc
// @Summary      Store the seller's Mercado Pago access token
// @Tags         seller
// @Accept       json
// @Produce      json
// @Param        X-User-Id  header    string                       true  "Seller id"
// @Param        body       body      request.SellerConfigRequest  true  "Credential"
// @Success      200        {object}  response.OKResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /seller/mercado-pago-config [put]
func (h *SellerHandler) SaveMercadoPagoConfig(c *gin.Context) {
	seller, ok := sellerID(c)
	if !ok {
		return
	}
	var req request.SellerConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}
	if err := h.usecase.SaveCredential(c.Request.Context(), seller, req.AccessToken); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKResponse{OK: true})
}

// CreateProduct godoc
// @Summary      List a new product
// @Description  Requires an active platform subscription.
// @Tags         seller
// @Accept       json
// @Produce      json
// @Param        X-User-Id  header    string                        true  "Seller id"
// @Param        body       body      request.CreateProductRequest  true  "Product"
// @Success      201        {object}  response.ProductResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      403        {object}  pkg.HTTPError
// @Router       /seller/products [post]
func (h *SellerHandler) CreateProduct(c *gin.Context) {
	seller, ok := sellerID(c)
	if !ok {
		return
	}
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}
	product, err := h.usecase.CreateProduct(c.Request.Context(), usecase.CreateProductInput{
		SellerID:    seller,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(product))
}

// SetSaleStatus godoc
// @Summary      Manually mark one of the seller's sales approved or pending
// @Tags         seller
// @Accept       json
// @Produce      json
// @Param        X-User-Id  header    string                     true  "Seller id"
// @Param        sale_id    path      string                     true  "Sale id"
// @Param        body       body      request.SaleStatusRequest  true  "New status"
// @Success      200        {object}  response.StatusResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /seller/sales/{sale_id}/status [patch]
func (h *SellerHandler) SetSaleStatus(c *gin.Context) {
	seller, ok := sellerID(c)
	if !ok {
		return
	}
	var req request.SaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}
	status, err := h.usecase.SetSaleStatus(c.Request.Context(), seller, c.Param("sale_id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	h.logger.Info().Str("seller_id", seller).Str("sale_id", c.Param("sale_id")).Str("status", string(status)).Msg("sale status overridden")
	c.JSON(http.StatusOK, response.FromStatus(status))
}

// SubscriptionAccess godoc
// @Summary      Current plan state of a seller
// @Tags         seller
// @Produce      json
// @Param        userId  query     string  true  "Seller id"
// @Success      200     {object}  response.SubscriptionAccessResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /subscription-access [get]
func (h *SellerHandler) SubscriptionAccess(c *gin.Context) {
	access, err := h.usecase.SubscriptionAccess(c.Request.Context(), c.Query("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptionAccess(access))
}
