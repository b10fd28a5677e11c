package domain

// Invoice is a client-portal invoice record.
type Invoice struct {
	ID            string        `json:"_id"`
	Number        string        `json:"number"`
	Customer      string        `json:"customer"`
	Project       string        `json:"project,omitempty"`
	Date          string        `json:"date"`
	DueDate       string        `json:"dueDate"`
	Status        InvoiceStatus `json:"status"`
	Items         []LineItem    `json:"items"`
	DiscountType  DiscountType  `json:"discountType"`
	DiscountValue float64       `json:"discountValue"`
	Total         float64       `json:"total"`
	AmountPaid    float64       `json:"amountPaid"`
}

// Balance is the outstanding amount still owed on the invoice, never
// negative.
func (inv Invoice) Balance() float64 {
	b := inv.Total - inv.AmountPaid
	if b < 0 {
		return 0
	}
	return b
}

// Payable reports whether the invoice can still accept a payment.
func (inv Invoice) Payable() bool {
	for _, s := range PayableInvoiceStatuses {
		if inv.Status == s {
			return true
		}
	}
	return false
}

// ClampPayment bounds an entered payment amount to the invoice's
// outstanding balance. Negative entries clamp to zero.
func (inv Invoice) ClampPayment(amount float64) float64 {
	if amount < 0 {
		return 0
	}
	if b := inv.Balance(); amount > b {
		return b
	}
	return amount
}

// Payment is one payment record created against an invoice.
type Payment struct {
	ID        string  `json:"_id,omitempty"`
	InvoiceID string  `json:"invoiceId"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date,omitempty"`
	Mode      string  `json:"mode,omitempty"`
	Reference string  `json:"reference,omitempty"`
}
