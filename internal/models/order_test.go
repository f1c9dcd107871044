package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	cases := []struct {
		n        int
		expected string
	}{
		{1, "#0001"},
		{42, "#0042"},
		{9999, "#9999"},
		{10000, "#10000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatOrderNumber(tc.n))
	}
}

func TestNormalizeOrderNumber(t *testing.T) {
	assert.Equal(t, "#0001", NormalizeOrderNumber("0001"))
	assert.Equal(t, "#0001", NormalizeOrderNumber("#0001"))
	assert.Equal(t, "", NormalizeOrderNumber(""))
}

func TestValidOrderType(t *testing.T) {
	assert.True(t, ValidOrderType(OrderTypeDelivery))
	assert.True(t, ValidOrderType(OrderTypePickup))
	assert.False(t, ValidOrderType("delivery"))
	assert.False(t, ValidOrderType(""))
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{PaymentPix, PaymentCreditCard, PaymentDebitCard, PaymentCash} {
		assert.True(t, ValidPaymentMethod(m))
	}
	assert.False(t, ValidPaymentMethod("BARTER"))
}

func TestAddressSameLocation(t *testing.T) {
	home := Address{Street: "Rua A", Number: "10", Complement: "Apto 1"}
	sameSpot := Address{Street: "Rua A", Number: "10", Complement: "Apto 2"}
	elsewhere := Address{Street: "Rua A", Number: "11"}

	assert.True(t, home.SameLocation(sameSpot))
	assert.False(t, home.SameLocation(elsewhere))

	customer := Customer{Addresses: []Address{home}}
	assert.True(t, customer.HasAddress(sameSpot))
	assert.False(t, customer.HasAddress(elsewhere))
}

func TestTenantAcceptsOrders(t *testing.T) {
	assert.True(t, (&Tenant{Status: TenantStatusActive}).AcceptsOrders())
	assert.False(t, (&Tenant{Status: TenantStatusSuspended}).AcceptsOrders())
	assert.False(t, (&Tenant{Status: TenantStatusCancelled}).AcceptsOrders())
}
