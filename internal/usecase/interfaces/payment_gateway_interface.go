package interfaces

import (
	"context"
	"fmt"
	"net/http"

	"pix_direct_sales/internal/domain/entities"
)

// IPaymentGateway abstracts the upstream payment processor (Mercado Pago).
//
// Every call carries the credential that authorizes it: the seller's token
// for product sales, the platform token for subscriptions. The gateway never
// retries; callers treat a failure as a failed reconciliation attempt.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, intent entities.PaymentIntent, credential string, idempotencyKey string) (entities.ProcessorPayment, error)
	GetPayment(ctx context.Context, paymentID string, credential string) (entities.ProcessorPayment, error)
}

// UpstreamError is a non-success answer from the processor. Body is kept
// verbatim for diagnostics.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("payment processor error status=%d body=%s", e.StatusCode, string(e.Body))
}

// HTTPStatus is the status to surface to buyer-facing callers.
func (e *UpstreamError) HTTPStatus() int {
	if e.StatusCode < http.StatusBadRequest {
		return http.StatusBadGateway
	}
	return e.StatusCode
}
