package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
)

// AdminAPI bundles every admin-portal resource behind one client.
type AdminAPI struct {
	client *Client

	Projects          *Resource[domain.Project]
	Tasks             *Resource[domain.Task]
	Tickets           *Resource[domain.Ticket]
	Estimates         *Resource[domain.Estimate]
	Proposals         *Resource[domain.Proposal]
	CreditNotes       *Resource[domain.CreditNote]
	Staffs            *Resource[domain.Staff]
	Articles          *Resource[domain.Article]
	Goals             *Resource[domain.Goal]
	Items             *Resource[domain.Item]
	DocumentTemplates *Resource[domain.DocumentTemplate]
}

// NewAdminAPI wires the admin resources against a client.
func NewAdminAPI(c *Client) *AdminAPI {
	return &AdminAPI{
		client:            c,
		Projects:          NewBulkResource[domain.Project](c, "admin/projects"),
		Tasks:             NewResource[domain.Task](c, "tasks"),
		Tickets:           NewResource[domain.Ticket](c, "support"),
		Estimates:         NewBulkResource[domain.Estimate](c, "admin/estimates"),
		Proposals:         NewBulkResource[domain.Proposal](c, "admin/proposals"),
		CreditNotes:       NewBulkResource[domain.CreditNote](c, "admin/credit-notes"),
		Staffs:            NewResource[domain.Staff](c, "staffs"),
		Articles:          NewResource[domain.Article](c, "knowledge-base"),
		Goals:             NewBulkResource[domain.Goal](c, "admin/goals"),
		Items:             NewBulkResource[domain.Item](c, "admin/items"),
		DocumentTemplates: NewResource[domain.DocumentTemplate](c, "admin/document-templates"),
	}
}

// ToggleStaffActive flips a staff member's active flag through the
// dedicated PATCH endpoint.
func (a *AdminAPI) ToggleStaffActive(ctx context.Context, id string) error {
	_, err := a.client.Patch(ctx, "staffs/"+id+"/toggle-active", nil)
	return err
}

// SearchCustomers runs the typeahead customer lookup backing the pickers
// on estimate and invoice forms. Debouncing is the caller's concern.
func (a *AdminAPI) SearchCustomers(ctx context.Context, q string) ([]domain.Customer, error) {
	v := url.Values{}
	v.Set("q", q)
	body, err := a.client.Get(ctx, "admin/customers/search", v)
	if err != nil {
		return nil, err
	}
	env, err := DecodeList[domain.Customer](body)
	if err != nil {
		return nil, err
	}
	return env.Items, nil
}

// ImportItems uploads catalog rows to the items import endpoint in one
// request. There is no partial-success report; the backend either takes
// the batch or rejects it.
func (a *AdminAPI) ImportItems(ctx context.Context, items []domain.Item) (int, error) {
	body, err := a.client.Post(ctx, "admin/items/import", map[string]any{"items": items})
	if err != nil {
		return 0, err
	}
	var resp struct {
		Imported int `json:"imported"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return len(items), nil
	}
	return resp.Imported, nil
}

// ClientAPI bundles the client-portal resources behind one client.
type ClientAPI struct {
	client *Client

	Estimates *Resource[domain.Estimate]
	Invoices  *Resource[domain.Invoice]
	Tickets   *Resource[domain.Ticket]
}

// NewClientAPI wires the client-portal resources against a client.
func NewClientAPI(c *Client) *ClientAPI {
	return &ClientAPI{
		client:    c,
		Estimates: NewResource[domain.Estimate](c, "client/estimates"),
		Invoices:  NewResource[domain.Invoice](c, "client/invoices"),
		Tickets:   NewResource[domain.Ticket](c, "client/support"),
	}
}

// AcceptEstimate marks an estimate accepted from the client portal.
func (cl *ClientAPI) AcceptEstimate(ctx context.Context, id string) error {
	_, err := cl.client.Post(ctx, "client/estimates/"+id+"/approve", nil)
	return err
}

// DeclineEstimate marks an estimate declined from the client portal.
func (cl *ClientAPI) DeclineEstimate(ctx context.Context, id string) error {
	_, err := cl.client.Post(ctx, "client/estimates/"+id+"/reject", nil)
	return err
}

// CreatePayment records one payment against an invoice. Batch payments
// call this once per invoice, sequentially, with no rollback on failure.
func (cl *ClientAPI) CreatePayment(ctx context.Context, p domain.Payment) error {
	if p.InvoiceID == "" {
		return fmt.Errorf("payment requires an invoice id")
	}
	_, err := cl.client.Post(ctx, "client/payments", p)
	return err
}

// Login exchanges credentials for a bearer token. scope selects the
// portal: "admin" hits auth/login, "client" hits client/auth/login.
// The request is unauthenticated; callers use a client with no session.
func Login(ctx context.Context, c *Client, scope, email, password string) (string, error) {
	path := "auth/login"
	if scope == "client" {
		path = "client/auth/login"
	}
	body, err := c.Post(ctx, path, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return resp.Token, nil
}
