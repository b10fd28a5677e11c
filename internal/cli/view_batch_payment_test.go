package cli

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoicesAndPayments(t *testing.T, payments *[]domain.Payment, failFor string) http.Handler {
	var mu sync.Mutex
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/client/invoices":
			json.NewEncoder(w).Encode([]map[string]any{
				{"_id": "i1", "number": "INV-001", "status": "Unpaid", "total": 100.0, "amountPaid": 0.0},
				{"_id": "i2", "number": "INV-002", "status": "Partiallypaid", "total": 200.0, "amountPaid": 150.0},
				{"_id": "i3", "number": "INV-003", "status": "Paid", "total": 50.0, "amountPaid": 50.0},
			})
		case "/client/payments":
			var p domain.Payment
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			if p.InvoiceID == failFor {
				http.Error(w, `{"message":"payment rejected"}`, http.StatusBadRequest)
				return
			}
			mu.Lock()
			*payments = append(*payments, p)
			mu.Unlock()
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
}

func loadBatch(t *testing.T, v *batchPaymentView) {
	t.Helper()
	for _, m := range collect(v.Init()) {
		_, _ = v.Update(m)
	}
	require.NoError(t, v.err)
}

func TestBatchPayment_ListsOnlyPayableInvoices(t *testing.T) {
	var payments []domain.Payment
	state := newTestState(t, invoicesAndPayments(t, &payments, ""))

	v := newBatchPaymentView(state)
	loadBatch(t, v)

	// The fully paid invoice is excluded.
	require.Len(t, v.invoices, 2)
	assert.Equal(t, "INV-001", v.invoices[0].Number)
	assert.Equal(t, "INV-002", v.invoices[1].Number)
}

func TestBatchPayment_AmountsClampToBalance(t *testing.T) {
	var payments []domain.Payment
	state := newTestState(t, invoicesAndPayments(t, &payments, ""))

	v := newBatchPaymentView(state)
	loadBatch(t, v)

	// INV-002 owes 50; an entered 500 clamps down on submit.
	v.amounts["i1"] = 100
	v.amounts["i2"] = 500

	for _, m := range collect(v.submit()) {
		_, _ = v.Update(m)
	}

	require.Len(t, payments, 2)
	assert.Equal(t, 100.0, payments[0].Amount)
	assert.Equal(t, "i1", payments[0].InvoiceID)
	assert.Equal(t, 50.0, payments[1].Amount)
	assert.Equal(t, "i2", payments[1].InvoiceID)
}

func TestBatchPayment_ContinuesPastFailures(t *testing.T) {
	var payments []domain.Payment
	state := newTestState(t, invoicesAndPayments(t, &payments, "i1"))

	v := newBatchPaymentView(state)
	loadBatch(t, v)

	v.amounts["i1"] = 10
	v.amounts["i2"] = 10

	msgs := collect(v.submit())
	require.Len(t, msgs, 1)
	done, ok := msgs[0].(batchPaymentDoneMsg)
	require.True(t, ok)

	// The first payment failed; the second still went through and the
	// summary reports both outcomes.
	assert.Equal(t, 1, done.succeeded)
	require.Len(t, done.failed, 1)
	assert.Contains(t, done.failed[0], "INV-001")
	require.Len(t, payments, 1)
	assert.Equal(t, "i2", payments[0].InvoiceID)
}
