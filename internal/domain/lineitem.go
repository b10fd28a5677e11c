package domain

// LineItem is one row of an estimate, invoice or credit-note item table.
// Tax1 and Tax2 are stored and exported per row but are never folded into
// Amount or the document total; that asymmetry is the backend's contract.
type LineItem struct {
	ID          string  `json:"_id,omitempty"`
	Description string  `json:"description"`
	LongDesc    string  `json:"longDescription,omitempty"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Tax1        float64 `json:"tax1"`
	Tax2        float64 `json:"tax2"`
}

// Amount is the row total: quantity times rate.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.Rate
}

// Subtotal sums the amounts of all items.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.Amount()
	}
	return sum
}

// Discount computes the document-level discount against a subtotal.
// A percent discount is subtotal*value/100; a fixed discount is the value
// itself. Unknown discount types yield 0.
func Discount(subtotal float64, typ DiscountType, value float64) float64 {
	switch typ {
	case DiscountPercent:
		return subtotal * value / 100
	case DiscountFixed:
		return value
	default:
		return 0
	}
}

// DocumentTotal applies the discount once to the items subtotal.
func DocumentTotal(items []LineItem, typ DiscountType, value float64) float64 {
	sub := Subtotal(items)
	return sub - Discount(sub, typ, value)
}
