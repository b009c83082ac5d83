package request

// CreatePaymentRequest starts a one-off product purchase.
type CreatePaymentRequest struct {
	ProductID  string `json:"productId" example:"7c1f2f52-4d0e-4a43-8f0e-4a3a2c1b9d10"`
	BuyerEmail string `json:"buyerEmail" example:"buyer@example.com"`
	BuyerName  string `json:"buyerName" example:"Ana Souza"`
}

// CreateSubscriptionRequest starts a seller plan purchase. An omitted or
// unknown planType buys the monthly plan.
type CreateSubscriptionRequest struct {
	UserID     string `json:"userId" example:"seller-1"`
	BuyerEmail string `json:"buyerEmail" example:"seller@example.com"`
	BuyerName  string `json:"buyerName" example:"Loja da Ana"`
	PlanType   string `json:"planType,omitempty" example:"trial"`
}

// RefreshStatusRequest needs at least one of the two ids.
type RefreshStatusRequest struct {
	PaymentID string `json:"paymentId,omitempty"`
	UserID    string `json:"userId,omitempty"`
}

type RefreshMembershipRequest struct {
	ProductID  string `json:"productId"`
	BuyerEmail string `json:"buyerEmail"`
}
