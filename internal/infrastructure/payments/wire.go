package payments

import (
	"encoding/json"
	"strings"

	"pix_direct_sales/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// paymentRequestWire mirrors the JSON accepted by POST /v1/payments.
type paymentRequestWire struct {
	TransactionAmount float64          `json:"transaction_amount"`
	Description       string           `json:"description,omitempty"`
	PaymentMethodID   string           `json:"payment_method_id"`
	Payer             payerRequestWire `json:"payer"`
	ExternalReference string           `json:"external_reference,omitempty"`
	NotificationURL   string           `json:"notification_url,omitempty"`
}

type payerRequestWire struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
}

func newPaymentRequestWire(intent entities.PaymentIntent) paymentRequestWire {
	return paymentRequestWire{
		TransactionAmount: intent.TransactionAmount.InexactFloat64(),
		Description:       intent.Description,
		PaymentMethodID:   intent.PaymentMethodID,
		Payer:             payerRequestWire{Email: intent.PayerEmail, FirstName: intent.PayerFirstName},
		ExternalReference: intent.ExternalReference,
		NotificationURL:   intent.NotificationURL,
	}
}

// paymentResponseWire is the subset of the payment resource we read back.
type paymentResponseWire struct {
	ID                json.Number     `json:"id"`
	Status            string          `json:"status"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	ExternalReference string          `json:"external_reference"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (w paymentResponseWire) toEntity() entities.ProcessorPayment {
	id := w.ID.String()
	if id == "0" {
		id = ""
	}
	return entities.ProcessorPayment{
		ID:                id,
		Status:            entities.PaymentStatus(strings.TrimSpace(w.Status)),
		TransactionAmount: w.TransactionAmount,
		ExternalReference: w.ExternalReference,
		PayerEmail:        w.Payer.Email,
		QRCode:            w.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64:      w.PointOfInteraction.TransactionData.QRCodeBase64,
	}
}

// decodePayment converts any JSON-marshalable payment object (the SDK response
// or a raw body) into a ProcessorPayment.
func decodePayment(v any) (entities.ProcessorPayment, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	var w paymentResponseWire
	if err := json.Unmarshal(b, &w); err != nil {
		return entities.ProcessorPayment{}, err
	}
	return w.toEntity(), nil
}
