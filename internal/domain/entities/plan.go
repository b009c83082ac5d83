package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PlanType is the seller platform plan bought through a subscription payment.
type PlanType string

const (
	PlanTrial   PlanType = "trial"
	PlanMonthly PlanType = "monthly"
)

const (
	subscriptionReferencePrefix = "subscription-"
	trialReferenceSuffix        = "-trial"

	trialDuration    = 5 * time.Minute
	monthlyPlanDays  = 30
	trialDescription = "Plano de teste - 5 minutos"
	monthlyDesc      = "Assinatura Mensal"
)

var (
	trialPrice   = decimal.RequireFromString("2.00")
	monthlyPrice = decimal.RequireFromString("37.90")
)

// ParsePlanType maps the requested plan to a PlanType. Anything that is not
// "trial" buys the monthly plan.
func ParsePlanType(raw string) PlanType {
	if strings.EqualFold(strings.TrimSpace(raw), string(PlanTrial)) {
		return PlanTrial
	}
	return PlanMonthly
}

func (p PlanType) Price() decimal.Decimal {
	if p == PlanTrial {
		return trialPrice
	}
	return monthlyPrice
}

func (p PlanType) Description() string {
	if p == PlanTrial {
		return trialDescription
	}
	return monthlyDesc
}

// ExternalReference is the correlation key sent to Mercado Pago. It is the
// only way to get back to the subscription when no stored mapping exists.
func (p PlanType) ExternalReference(userID string) string {
	if p == PlanTrial {
		return subscriptionReferencePrefix + userID + trialReferenceSuffix
	}
	return subscriptionReferencePrefix + userID
}

// ExpiresAt applies the plan duration to an activation instant. The monthly
// plan adds calendar days, so month and year rollover follow the calendar.
func (p PlanType) ExpiresAt(activatedAt time.Time) time.Time {
	if p == PlanTrial {
		return activatedAt.Add(trialDuration)
	}
	return activatedAt.AddDate(0, 0, monthlyPlanDays)
}

// PlanSignal carries what is known about a subscription payment at
// reconciliation time.
type PlanSignal struct {
	ExternalReference string
	Amount            decimal.Decimal
}

// InferPlanType recovers the plan of a subscription payment. The external
// reference wins when present; otherwise an amount of exactly 2 means trial.
func InferPlanType(sig PlanSignal) PlanType {
	if ref := strings.TrimSpace(sig.ExternalReference); ref != "" {
		if strings.HasSuffix(ref, trialReferenceSuffix) {
			return PlanTrial
		}
		return PlanMonthly
	}
	if sig.Amount.Equal(trialPrice) {
		return PlanTrial
	}
	return PlanMonthly
}

// ParseSubscriptionReference extracts the user id and plan from an external
// reference built by PlanType.ExternalReference.
func ParseSubscriptionReference(ref string) (userID string, plan PlanType, ok bool) {
	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(ref, subscriptionReferencePrefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(ref, subscriptionReferencePrefix)
	plan = PlanMonthly
	if strings.HasSuffix(rest, trialReferenceSuffix) {
		rest = strings.TrimSuffix(rest, trialReferenceSuffix)
		plan = PlanTrial
	}
	if rest == "" {
		return "", "", false
	}
	return rest, plan, true
}
