package entities

import "time"

// Credential is the Mercado Pago access token a seller configured to receive
// product sales directly.
type Credential struct {
	SellerID    string    `json:"user_id"`
	AccessToken string    `json:"-"`
	UpdatedAt   time.Time `json:"updated_at"`
}
