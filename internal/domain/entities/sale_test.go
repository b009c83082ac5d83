package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSaleStatus(t *testing.T) {
	cases := []struct {
		current, reported, want PaymentStatus
	}{
		{PaymentStatusPending, PaymentStatusApproved, PaymentStatusApproved},
		{PaymentStatusApproved, PaymentStatusApproved, PaymentStatusApproved},
		{PaymentStatusApproved, PaymentStatusPending, PaymentStatusApproved},
		{PaymentStatusApproved, PaymentStatusInProcess, PaymentStatusApproved},
		{PaymentStatusApproved, PaymentStatusRefunded, PaymentStatusRefunded},
		{PaymentStatusApproved, "charged_back", "charged_back"},
		{PaymentStatusPending, PaymentStatusRejected, PaymentStatusRejected},
		{PaymentStatusRejected, PaymentStatusPending, PaymentStatusPending},
		{PaymentStatusRejected, "", PaymentStatusRejected},
		{"", "", PaymentStatusPending},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NextSaleStatus(tc.current, tc.reported), "current=%q reported=%q", tc.current, tc.reported)
	}
}

func TestNextSaleStatus_Idempotent(t *testing.T) {
	for _, reported := range []PaymentStatus{PaymentStatusApproved, PaymentStatusPending, PaymentStatusRejected, "in_mediation"} {
		once := NextSaleStatus(PaymentStatusPending, reported)
		twice := NextSaleStatus(once, reported)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizePaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentStatusApproved, NormalizePaymentStatus(" APPROVED "))
	assert.True(t, PaymentStatusInProcess.IsPreApproval())
	assert.False(t, PaymentStatusRefunded.IsPreApproval())
	assert.Equal(t, "b#a@x.com", MembershipKey("b", "a@x.com"))
}
