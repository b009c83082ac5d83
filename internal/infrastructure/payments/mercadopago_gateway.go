package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	appconfig "pix_direct_sales/internal/config"
	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/infrastructure/logging"
	"pix_direct_sales/internal/infrastructure/metrics"
	"pix_direct_sales/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"
)

var ErrMissingCredential = errors.New("missing mercado pago credential")

// MercadoPagoGateway talks to the Mercado Pago payments API through the
// official SDK. The credential is chosen per call, so a client is built for
// each request around a shared HTTP requester.
type MercadoPagoGateway struct {
	requester *requester
	logger    *zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewGateway returns the in-memory processor when mock mode is on and the
// SDK-backed gateway otherwise.
func NewGateway(cfg appconfig.MercadoPago, logger *zerolog.Logger) (interfaces.IPaymentGateway, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if cfg.MockEnabled() {
		logger.Warn().Msg("mercado pago mock mode enabled")
		return NewMockProcessor(), nil
	}
	return NewMercadoPagoGateway(cfg, logger)
}

func NewMercadoPagoGateway(cfg appconfig.MercadoPago, logger *zerolog.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	r, err := newRequester(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoGateway{requester: r, logger: logger}, nil
}

func (g *MercadoPagoGateway) client(credential string) (payment.Client, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, ErrMissingCredential
	}
	cfg, err := config.New(credential, config.WithHTTPClient(g.requester))
	if err != nil {
		return nil, err
	}
	return payment.NewClient(cfg), nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, intent entities.PaymentIntent, credential string, idempotencyKey string) (entities.ProcessorPayment, error) {
	start := time.Now()
	client, err := g.client(credential)
	if err != nil {
		return entities.ProcessorPayment{}, err
	}

	body, err := json.Marshal(newPaymentRequestWire(intent))
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(body, &req); err != nil {
		g.logger.Error().Err(err).Msg("payment request mapping failed")
		return entities.ProcessorPayment{}, err
	}

	ctx, capture := withCapture(withIdempotencyKey(ctx, idempotencyKey))
	resp, err := client.Create(ctx, req)
	metrics.ObserveProcessorRequest("create_payment", start, err)
	if err != nil {
		g.logger.Error().Err(err).Int("upstream_status", capture.statusCode).Msg("mercado pago create failed")
		return entities.ProcessorPayment{}, upstreamError(capture, err)
	}

	p, err := decodePayment(resp)
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	g.logger.Debug().Str("payment_id", p.ID).Str("status", string(p.Status)).Msg("mercado pago payment created")
	return p, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string, credential string) (entities.ProcessorPayment, error) {
	start := time.Now()
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return entities.ProcessorPayment{}, &interfaces.UpstreamError{
			StatusCode: http.StatusNotFound,
			Body:       []byte(`{"message":"payment not found"}`),
		}
	}
	client, err := g.client(credential)
	if err != nil {
		return entities.ProcessorPayment{}, err
	}

	ctx, capture := withCapture(ctx)
	resp, err := client.Get(ctx, id)
	metrics.ObserveProcessorRequest("get_payment", start, err)
	if err != nil {
		g.logger.Error().Err(err).Str("payment_id", paymentID).Int("upstream_status", capture.statusCode).Msg("mercado pago lookup failed")
		return entities.ProcessorPayment{}, upstreamError(capture, err)
	}
	return decodePayment(resp)
}

// upstreamError prefers the captured HTTP answer; transport failures become
// a 502 carrying the error text.
func upstreamError(c *responseCapture, err error) error {
	if c != nil && c.statusCode != 0 {
		return &interfaces.UpstreamError{StatusCode: c.statusCode, Body: c.body}
	}
	return &interfaces.UpstreamError{StatusCode: http.StatusBadGateway, Body: []byte(err.Error())}
}
