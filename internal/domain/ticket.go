package domain

// Ticket is a support ticket, visible in both portals.
type Ticket struct {
	ID          string       `json:"_id"`
	TicketNo    string       `json:"ticketNo"`
	Subject     string       `json:"subject"`
	Customer    string       `json:"customer"`
	ContactName string       `json:"contactName"`
	Department  string       `json:"department"`
	Service     string       `json:"service"`
	Priority    string       `json:"priority"`
	Status      TicketStatus `json:"status"`
	LastReply   string       `json:"lastReply"`
	Created     string       `json:"created"`
}
