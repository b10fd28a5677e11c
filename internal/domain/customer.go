package domain

// Customer is the minimal customer projection returned by the customer
// search endpoint, used to fill pickers on estimate and invoice forms.
type Customer struct {
	ID      string `json:"_id"`
	Company string `json:"company"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Item is a reusable catalog entry offered when composing line items.
type Item struct {
	ID          string  `json:"_id"`
	Description string  `json:"description"`
	LongDesc    string  `json:"longDescription,omitempty"`
	Rate        float64 `json:"rate"`
	Tax1        float64 `json:"tax1"`
	Tax2        float64 `json:"tax2"`
	GroupName   string  `json:"groupName,omitempty"`
}
