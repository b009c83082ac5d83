package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanType_Tariffs(t *testing.T) {
	assert.True(t, PlanTrial.Price().Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "Plano de teste - 5 minutos", PlanTrial.Description())
	assert.True(t, PlanMonthly.Price().Equal(decimal.RequireFromString("37.9")))
	assert.Equal(t, "Assinatura Mensal", PlanMonthly.Description())
}

func TestParsePlanType(t *testing.T) {
	assert.Equal(t, PlanTrial, ParsePlanType("trial"))
	assert.Equal(t, PlanTrial, ParsePlanType(" TRIAL "))
	assert.Equal(t, PlanMonthly, ParsePlanType(""))
	assert.Equal(t, PlanMonthly, ParsePlanType("annual"))
}

func TestPlanType_ExternalReference(t *testing.T) {
	assert.Equal(t, "subscription-u1-trial", PlanTrial.ExternalReference("u1"))
	assert.Equal(t, "subscription-u1", PlanMonthly.ExternalReference("u1"))
}

func TestPlanType_ExpiresAt(t *testing.T) {
	activated := time.Date(2026, 1, 20, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, activated.Add(5*time.Minute), PlanTrial.ExpiresAt(activated))
	assert.Equal(t, time.Date(2026, 2, 19, 15, 4, 5, 0, time.UTC), PlanMonthly.ExpiresAt(activated))

	// year rollover follows the calendar
	dec := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), PlanMonthly.ExpiresAt(dec))
}

func TestInferPlanType(t *testing.T) {
	cases := []struct {
		name string
		sig  PlanSignal
		want PlanType
	}{
		{"trial reference", PlanSignal{ExternalReference: "subscription-u1-trial"}, PlanTrial},
		{"monthly reference", PlanSignal{ExternalReference: "subscription-u1"}, PlanMonthly},
		{"reference wins over amount", PlanSignal{ExternalReference: "subscription-u1", Amount: decimal.NewFromInt(2)}, PlanMonthly},
		{"trial amount", PlanSignal{Amount: decimal.RequireFromString("2.00")}, PlanTrial},
		{"monthly amount", PlanSignal{Amount: decimal.RequireFromString("37.90")}, PlanMonthly},
		{"nothing known", PlanSignal{}, PlanMonthly},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InferPlanType(tc.sig))
		})
	}
}

func TestInferPlanType_SourcesAgreeAtTrialPrice(t *testing.T) {
	for _, plan := range []PlanType{PlanTrial, PlanMonthly} {
		byReference := InferPlanType(PlanSignal{ExternalReference: plan.ExternalReference("u1")})
		byAmount := InferPlanType(PlanSignal{Amount: plan.Price()})
		assert.Equal(t, plan, byReference)
		assert.Equal(t, byReference, byAmount, "plan %s", plan)
	}
}

func TestParseSubscriptionReference(t *testing.T) {
	userID, plan, ok := ParseSubscriptionReference("subscription-u1-trial")
	require.True(t, ok)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, PlanTrial, plan)

	userID, plan, ok = ParseSubscriptionReference("subscription-3f2a-9c")
	require.True(t, ok)
	assert.Equal(t, "3f2a-9c", userID)
	assert.Equal(t, PlanMonthly, plan)

	for _, bad := range []string{"", "order-1", "subscription-", "subscription--trial"} {
		_, _, ok := ParseSubscriptionReference(bad)
		assert.False(t, ok, bad)
	}
}
