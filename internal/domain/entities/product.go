package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a digital product listed by a seller.
type Product struct {
	ID          string          `json:"id"`
	SellerID    string          `json:"user_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}
