package usecase

import (
	"net/url"
	"strings"

	"pix_direct_sales/internal/domain/entities"
)

const (
	pixPaymentMethodID = "pix"
	webhookPath        = "/api/mp-webhook"
)

// PaymentIntentBuilder produces the outbound payment-creation payloads.
type PaymentIntentBuilder struct {
	notificationURL string
}

func NewPaymentIntentBuilder(webhookBaseURL string) *PaymentIntentBuilder {
	return &PaymentIntentBuilder{notificationURL: NotificationURL(webhookBaseURL)}
}

// NotificationURL derives the webhook address from a base URL. Only the
// origin of the base is kept; anything that is not an absolute http(s) URL
// yields "" and push notifications are disabled.
func NotificationURL(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	u, err := url.Parse(base)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return u.Scheme + "://" + u.Host + webhookPath
}

type BuyerInfo struct {
	Email string
	Name  string
}

func (b BuyerInfo) normalized() (BuyerInfo, error) {
	b.Email = strings.TrimSpace(b.Email)
	b.Name = strings.TrimSpace(b.Name)
	if b.Email == "" || b.Name == "" {
		return BuyerInfo{}, ErrMissingRequiredFields
	}
	return b, nil
}

func (pb *PaymentIntentBuilder) ForSale(product entities.Product, buyer BuyerInfo) (entities.PaymentIntent, error) {
	buyer, err := buyer.normalized()
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return entities.PaymentIntent{
		TransactionAmount: product.Price,
		Description:       product.Name,
		PaymentMethodID:   pixPaymentMethodID,
		PayerEmail:        buyer.Email,
		PayerFirstName:    buyer.Name,
		NotificationURL:   pb.notificationURL,
	}, nil
}

func (pb *PaymentIntentBuilder) ForSubscription(userID string, plan entities.PlanType, buyer BuyerInfo) (entities.PaymentIntent, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.PaymentIntent{}, ErrMissingRequiredFields
	}
	buyer, err := buyer.normalized()
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return entities.PaymentIntent{
		TransactionAmount: plan.Price(),
		Description:       plan.Description(),
		PaymentMethodID:   pixPaymentMethodID,
		PayerEmail:        buyer.Email,
		PayerFirstName:    buyer.Name,
		ExternalReference: plan.ExternalReference(userID),
		NotificationURL:   pb.notificationURL,
	}, nil
}
