package domain

// Estimate is a priced quote offered to a customer. Total is denormalized
// by the backend but recomputed client-side while the line-item editor is
// open.
type Estimate struct {
	ID            string         `json:"_id"`
	Number        string         `json:"number"`
	Customer      string         `json:"customer"`
	Project       string         `json:"project,omitempty"`
	Date          string         `json:"date"`
	ExpiryDate    string         `json:"expiryDate"`
	Reference     string         `json:"reference,omitempty"`
	Status        EstimateStatus `json:"status"`
	Items         []LineItem     `json:"items"`
	DiscountType  DiscountType   `json:"discountType"`
	DiscountValue float64        `json:"discountValue"`
	Total         float64        `json:"total"`
}

// Proposal is a document sent to a lead or customer for acceptance.
type Proposal struct {
	ID       string         `json:"_id"`
	Subject  string         `json:"subject"`
	To       string         `json:"to"`
	Date     string         `json:"date"`
	OpenTill string         `json:"openTill"`
	Status   ProposalStatus `json:"status"`
	Total    float64        `json:"total"`
}

// CreditNote is an issued credit against a customer's account.
type CreditNote struct {
	ID            string       `json:"_id"`
	Number        string       `json:"number"`
	Customer      string       `json:"customer"`
	Date          string       `json:"date"`
	Reference     string       `json:"reference,omitempty"`
	Status        string       `json:"status"`
	Items         []LineItem   `json:"items"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
	Total         float64      `json:"total"`
	RemainingAmt  float64      `json:"remainingAmount"`
}
