package payments

import (
	"context"
	"encoding/base64"
	"net/http"
	"strconv"
	"sync"
	"time"

	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/usecase/interfaces"
)

// MockProcessor stands in for Mercado Pago in local runs. Payments are born
// pending and report approved on the first lookup, which lets the whole
// checkout and reconciliation flow run without network access.
type MockProcessor struct {
	mu       sync.Mutex
	nextID   int64
	payments map[string]entities.ProcessorPayment
}

var _ interfaces.IPaymentGateway = (*MockProcessor)(nil)

func NewMockProcessor() *MockProcessor {
	return &MockProcessor{
		nextID:   time.Now().UTC().Unix(),
		payments: map[string]entities.ProcessorPayment{},
	}
}

func (m *MockProcessor) CreatePayment(_ context.Context, intent entities.PaymentIntent, credential string, _ string) (entities.ProcessorPayment, error) {
	if credential == "" {
		return entities.ProcessorPayment{}, ErrMissingCredential
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := strconv.FormatInt(m.nextID, 10)
	qr := "00020126580014br.gov.bcb.pix0136mock-" + id + "5204000053039865802BR6304ABCD"
	p := entities.ProcessorPayment{
		ID:                id,
		Status:            entities.PaymentStatusPending,
		TransactionAmount: intent.TransactionAmount,
		ExternalReference: intent.ExternalReference,
		PayerEmail:        intent.PayerEmail,
		QRCode:            qr,
		QRCodeBase64:      base64.StdEncoding.EncodeToString([]byte(qr)),
	}
	m.payments[id] = p
	return p, nil
}

func (m *MockProcessor) GetPayment(_ context.Context, paymentID string, credential string) (entities.ProcessorPayment, error) {
	if credential == "" {
		return entities.ProcessorPayment{}, ErrMissingCredential
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.payments[paymentID]
	if !ok {
		return entities.ProcessorPayment{}, &interfaces.UpstreamError{
			StatusCode: http.StatusNotFound,
			Body:       []byte(`{"message":"Payment not found","status":404}`),
		}
	}
	p.Status = entities.PaymentStatusApproved
	m.payments[paymentID] = p
	return p, nil
}
