package entities

import "github.com/shopspring/decimal"

// ProcessorPayment is the subset of a Mercado Pago payment object the
// storefront reads.
type ProcessorPayment struct {
	ID                string
	Status            PaymentStatus
	TransactionAmount decimal.Decimal
	ExternalReference string
	PayerEmail        string
	QRCode            string
	QRCodeBase64      string
}

// PaymentIntent is the outbound payment-creation request.
type PaymentIntent struct {
	TransactionAmount decimal.Decimal
	Description       string
	PaymentMethodID   string
	PayerEmail        string
	PayerFirstName    string
	ExternalReference string
	NotificationURL   string
}

// PaymentIntentResult is what the buyer receives to complete a PIX payment.
type PaymentIntentResult struct {
	PaymentID    string        `json:"payment_id"`
	Status       PaymentStatus `json:"status"`
	QRCode       string        `json:"qr_code"`
	QRCodeBase64 string        `json:"qr_code_base64"`
}

func NewPaymentIntentResult(p ProcessorPayment) PaymentIntentResult {
	return PaymentIntentResult{
		PaymentID:    p.ID,
		Status:       EffectiveStatus(p.Status, ""),
		QRCode:       p.QRCode,
		QRCodeBase64: p.QRCodeBase64,
	}
}
