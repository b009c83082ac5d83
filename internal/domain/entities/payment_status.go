package entities

import "strings"

// PaymentStatus is the raw status string reported by Mercado Pago.
//
// Sales and memberships store it verbatim; the constants below are only the
// values the reconciliation rules need to reason about.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusApproved   PaymentStatus = "approved"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusInProcess  PaymentStatus = "in_process"
	PaymentStatusRejected   PaymentStatus = "rejected"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

func (s PaymentStatus) IsApproved() bool {
	return s == PaymentStatusApproved
}

// IsPreApproval reports statuses a payment goes through before it is approved.
// They never overwrite an approved sale or an active subscription.
func (s PaymentStatus) IsPreApproval() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusInProcess, PaymentStatusAuthorized:
		return true
	}
	return false
}

// NormalizePaymentStatus trims and lowercases a status coming from user input.
func NormalizePaymentStatus(raw string) PaymentStatus {
	return PaymentStatus(strings.ToLower(strings.TrimSpace(raw)))
}

// EffectiveStatus picks the processor status, falling back to the stored one
// and finally to pending.
func EffectiveStatus(reported, stored PaymentStatus) PaymentStatus {
	if reported != "" {
		return reported
	}
	if stored != "" {
		return stored
	}
	return PaymentStatusPending
}
