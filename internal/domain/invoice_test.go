package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoice_Balance(t *testing.T) {
	inv := Invoice{Total: 100, AmountPaid: 40}
	assert.Equal(t, 60.0, inv.Balance())

	// Overpaid invoices floor at zero.
	inv.AmountPaid = 150
	assert.Equal(t, 0.0, inv.Balance())
}

func TestInvoice_Payable(t *testing.T) {
	cases := []struct {
		status  InvoiceStatus
		payable bool
	}{
		{InvoiceUnpaid, true},
		{InvoicePartiallyPaid, true},
		{InvoiceOverdue, true},
		{InvoicePaid, false},
		{InvoiceCancelled, false},
	}
	for _, tc := range cases {
		inv := Invoice{Status: tc.status}
		assert.Equal(t, tc.payable, inv.Payable(), "status %s", tc.status)
	}
}

func TestInvoice_ClampPayment(t *testing.T) {
	inv := Invoice{Total: 100, AmountPaid: 0}

	assert.Equal(t, 40.0, inv.ClampPayment(40))
	assert.Equal(t, 100.0, inv.ClampPayment(999))
	assert.Equal(t, 0.0, inv.ClampPayment(-5))
}

func TestGoal_ProgressPct(t *testing.T) {
	assert.Equal(t, 50.0, Goal{Achievement: 5, Target: 10}.ProgressPct())
	assert.Equal(t, 100.0, Goal{Achievement: 25, Target: 10}.ProgressPct())
	assert.Equal(t, 0.0, Goal{Achievement: 5, Target: 0}.ProgressPct())
	assert.Equal(t, 0.0, Goal{Achievement: -5, Target: 10}.ProgressPct())
}

func TestStaff_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Staff{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", Staff{FirstName: "Ada"}.FullName())
	assert.Equal(t, "Lovelace", Staff{LastName: "Lovelace"}.FullName())
}
