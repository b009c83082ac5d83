package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSubscription_IsActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time { v := now.Add(d); return &v }

	assert.True(t, Subscription{Status: SubscriptionStatusActive, ExpiresAt: at(time.Second)}.IsActive(now))
	assert.False(t, Subscription{Status: SubscriptionStatusActive, ExpiresAt: at(0)}.IsActive(now), "expires_at == now is expired")
	assert.False(t, Subscription{Status: SubscriptionStatusActive, ExpiresAt: at(-time.Second)}.IsActive(now))
	assert.False(t, Subscription{Status: SubscriptionStatusActive}.IsActive(now))
	assert.False(t, Subscription{Status: SubscriptionStatusPending, ExpiresAt: at(time.Hour)}.IsActive(now))

	assert.True(t, Subscription{Status: SubscriptionStatusActive, ExpiresAt: at(0)}.HasLapsed(now))
	assert.False(t, Subscription{Status: SubscriptionStatusExpired, ExpiresAt: at(0)}.HasLapsed(now))
}

func TestNextSubscriptionState(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

	t.Run("approval activates with inferred plan", func(t *testing.T) {
		tr := NextSubscriptionState(
			Subscription{UserID: "u1", Status: SubscriptionStatusPending, LastPaymentID: "1"},
			ProcessorPayment{ID: "1", Status: PaymentStatusApproved, TransactionAmount: decimal.NewFromInt(2)},
			now,
		)
		assert.Equal(t, SubscriptionActivate, tr.Kind)
		assert.Equal(t, PlanTrial, tr.Plan)
		assert.Equal(t, now, tr.ActivatedAt)
		assert.Equal(t, now.Add(5*time.Minute), tr.ExpiresAt)
		assert.Equal(t, PaymentStatusApproved, tr.Result)
	})

	t.Run("replayed approval of a lapsed plan does not extend it", func(t *testing.T) {
		activated := now.Add(-time.Hour)
		expires := activated.Add(5 * time.Minute)
		tr := NextSubscriptionState(
			Subscription{UserID: "u1", Status: SubscriptionStatusActive, LastPaymentID: "1", ActivatedAt: &activated, ExpiresAt: &expires},
			ProcessorPayment{ID: "1", Status: PaymentStatusApproved, ExternalReference: "subscription-u1-trial"},
			now,
		)
		assert.Equal(t, SubscriptionNoop, tr.Kind)
		assert.Equal(t, PaymentStatus("expired"), tr.Result)
	})

	t.Run("new payment re-activates", func(t *testing.T) {
		activated := now.Add(-time.Hour)
		tr := NextSubscriptionState(
			Subscription{UserID: "u1", Status: SubscriptionStatusExpired, LastPaymentID: "1", ActivatedAt: &activated},
			ProcessorPayment{ID: "2", Status: PaymentStatusApproved, ExternalReference: "subscription-u1"},
			now,
		)
		assert.Equal(t, SubscriptionActivate, tr.Kind)
		assert.Equal(t, "2", tr.PaymentID)
		assert.Equal(t, now.AddDate(0, 0, 30), tr.ExpiresAt)
	})

	t.Run("active is not regressed by pre-approval", func(t *testing.T) {
		expires := now.Add(time.Hour)
		for _, st := range []PaymentStatus{PaymentStatusPending, PaymentStatusInProcess, PaymentStatusAuthorized} {
			tr := NextSubscriptionState(
				Subscription{Status: SubscriptionStatusActive, LastPaymentID: "1", ExpiresAt: &expires},
				ProcessorPayment{ID: "1", Status: st},
				now,
			)
			assert.Equal(t, SubscriptionNoop, tr.Kind, st)
			assert.Equal(t, PaymentStatus("active"), tr.Result)
		}
	})

	t.Run("post-approval passes through", func(t *testing.T) {
		expires := now.Add(time.Hour)
		tr := NextSubscriptionState(
			Subscription{Status: SubscriptionStatusActive, LastPaymentID: "1", ExpiresAt: &expires},
			ProcessorPayment{ID: "1", Status: PaymentStatusRefunded},
			now,
		)
		assert.Equal(t, SubscriptionSetStatus, tr.Kind)
		assert.Equal(t, SubscriptionStatus("refunded"), tr.Status)
	})

	t.Run("unchanged status is a no-op", func(t *testing.T) {
		tr := NextSubscriptionState(
			Subscription{Status: SubscriptionStatusPending, LastPaymentID: "1"},
			ProcessorPayment{ID: "1"},
			now,
		)
		assert.Equal(t, SubscriptionNoop, tr.Kind)
		assert.Equal(t, PaymentStatusPending, tr.Result)
	})
}
