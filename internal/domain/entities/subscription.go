package entities

import "time"

// SubscriptionStatus is "pending", "active", "expired" or any raw processor
// status passed through during reconciliation.
type SubscriptionStatus string

const (
	SubscriptionStatusPending SubscriptionStatus = "pending"
	SubscriptionStatusActive  SubscriptionStatus = "active"
	SubscriptionStatusExpired SubscriptionStatus = "expired"
)

// Subscription is the seller's platform plan record, one per user.
//
// Storage model (DynamoDB):
//   - PK: user_id
//   - GSI (last_payment_id-index): last_payment_id
//
// Expiry is computed, never pushed: a stored "active" is only trusted together
// with ExpiresAt.
type Subscription struct {
	UserID        string             `json:"user_id"`
	Status        SubscriptionStatus `json:"status"`
	LastPaymentID string             `json:"last_payment_id"`
	ActivatedAt   *time.Time         `json:"activated_at"`
	ExpiresAt     *time.Time         `json:"expires_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// IsActive reports whether the plan is usable at now. expires_at equal to now
// is already expired.
func (s Subscription) IsActive(now time.Time) bool {
	if s.Status != SubscriptionStatusActive || s.ExpiresAt == nil {
		return false
	}
	return now.Before(*s.ExpiresAt)
}

// HasLapsed reports a stored "active" whose window has elapsed.
func (s Subscription) HasLapsed(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && !s.IsActive(now)
}

type SubscriptionTransitionKind int

const (
	SubscriptionNoop SubscriptionTransitionKind = iota
	SubscriptionSetStatus
	SubscriptionActivate
)

// SubscriptionTransition is the write a reconciliation pass must apply.
type SubscriptionTransition struct {
	Kind        SubscriptionTransitionKind
	Status      SubscriptionStatus
	PaymentID   string
	Plan        PlanType
	ActivatedAt time.Time
	ExpiresAt   time.Time
	// Result is the status reported back to the caller.
	Result PaymentStatus
}

// NextSubscriptionState decides how a processor payment changes a
// subscription at now.
func NextSubscriptionState(sub Subscription, p ProcessorPayment, now time.Time) SubscriptionTransition {
	effective := EffectiveStatus(p.Status, PaymentStatus(sub.Status))

	if effective.IsApproved() {
		if sub.ActivatedAt != nil && sub.LastPaymentID == p.ID {
			// Payment already applied; its window is not recomputed.
			result := effective
			if !sub.IsActive(now) {
				result = PaymentStatus(SubscriptionStatusExpired)
			}
			return SubscriptionTransition{Kind: SubscriptionNoop, Status: sub.Status, Result: result}
		}
		plan := InferPlanType(PlanSignal{ExternalReference: p.ExternalReference, Amount: p.TransactionAmount})
		return SubscriptionTransition{
			Kind:        SubscriptionActivate,
			Status:      SubscriptionStatusActive,
			PaymentID:   p.ID,
			Plan:        plan,
			ActivatedAt: now,
			ExpiresAt:   plan.ExpiresAt(now),
			Result:      effective,
		}
	}

	if SubscriptionStatus(effective) == sub.Status {
		return SubscriptionTransition{Kind: SubscriptionNoop, Status: sub.Status, Result: effective}
	}
	if sub.Status == SubscriptionStatusActive && effective.IsPreApproval() {
		return SubscriptionTransition{Kind: SubscriptionNoop, Status: sub.Status, Result: PaymentStatus(sub.Status)}
	}
	return SubscriptionTransition{Kind: SubscriptionSetStatus, Status: SubscriptionStatus(effective), Result: effective}
}
