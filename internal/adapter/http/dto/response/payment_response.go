package response

import (
	"time"

	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/usecase"
)

// PaymentIntentResponse is what the buyer needs to pay with PIX.
type PaymentIntentResponse struct {
	PaymentID    string `json:"payment_id" example:"1234567890"`
	Status       string `json:"status" example:"pending"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
}

func FromPaymentIntentResult(r entities.PaymentIntentResult) PaymentIntentResponse {
	return PaymentIntentResponse{
		PaymentID:    r.PaymentID,
		Status:       string(r.Status),
		QRCode:       r.QRCode,
		QRCodeBase64: r.QRCodeBase64,
	}
}

type StatusResponse struct {
	Status string `json:"status" example:"approved"`
}

func FromStatus[S ~string](s S) StatusResponse {
	return StatusResponse{Status: string(s)}
}

type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

type SubscriptionAccessResponse struct {
	Status    string     `json:"status" example:"active"`
	ExpiresAt *time.Time `json:"expires_at"`
	Active    bool       `json:"active"`
}

func FromSubscriptionAccess(a usecase.SubscriptionAccess) SubscriptionAccessResponse {
	return SubscriptionAccessResponse{Status: string(a.Status), ExpiresAt: a.ExpiresAt, Active: a.Active}
}
