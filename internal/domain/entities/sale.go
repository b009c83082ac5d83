package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a one-off product purchase.
//
// PaymentID is assigned when the PIX intent is created, before the processor
// confirms anything, and never changes afterwards.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (payment_id-index): payment_id
//   - GSI (product_id-index): product_id, filtered by buyer_email
type Sale struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	SellerID      string          `json:"seller_id"`
	BuyerEmail    string          `json:"buyer_email"`
	BuyerName     string          `json:"buyer_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentID     string          `json:"payment_id"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NextSaleStatus computes the status a sale moves to after the processor
// reported `reported`. An approved sale is not pulled back by a late
// pre-approval report; everything else is a passthrough.
func NextSaleStatus(current, reported PaymentStatus) PaymentStatus {
	next := EffectiveStatus(reported, current)
	if current.IsApproved() && next.IsPreApproval() {
		return current
	}
	return next
}
