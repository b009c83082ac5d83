package entities

import "time"

// Membership is a buyer's access grant to a product, keyed by product and
// buyer email. Its status mirrors the sale that originated it.
type Membership struct {
	ProductID  string        `json:"product_id"`
	BuyerEmail string        `json:"buyer_email"`
	BuyerName  string        `json:"buyer_name"`
	Status     PaymentStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (m Membership) Unlocked() bool {
	return m.Status.IsApproved()
}

// MembershipKey is the storage key for a product/buyer pair.
func MembershipKey(productID, buyerEmail string) string {
	return productID + "#" + buyerEmail
}
