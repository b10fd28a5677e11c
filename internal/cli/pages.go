package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ArbeitEmployee/arbeit-cli/internal/api"
	"github.com/ArbeitEmployee/arbeit-cli/internal/cli/formatter"
	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
	"github.com/ArbeitEmployee/arbeit-cli/internal/export"
	"github.com/ArbeitEmployee/arbeit-cli/internal/listview"
	"github.com/ArbeitEmployee/arbeit-cli/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// listOptions carries the non-interactive list/export command flags.
type listOptions struct {
	Search  string
	Filter  string
	Page    int
	PerPage int
}

// pageRef is the type-erased handle held for each entity page. Open
// instantiates the interactive view; Table runs a one-shot fetch,
// filter and projection for the list and export commands.
type pageRef struct {
	Key   string
	Title string
	Scope session.Scope
	Open  func(*SharedState) View
	Table func(ctx context.Context, s *SharedState, opts listOptions) (export.Table, int, error)
}

// makeRef binds one concrete pageConfig into a pageRef.
func makeRef[T any](key, title string, scope session.Scope, build func(*SharedState) pageConfig[T]) pageRef {
	return pageRef{
		Key:   key,
		Title: title,
		Scope: scope,
		Open: func(s *SharedState) View {
			return newEntityListView(s, build(s))
		},
		Table: func(ctx context.Context, s *SharedState, opts listOptions) (export.Table, int, error) {
			cfg := build(s)
			env, err := cfg.Resource.List(ctx, api.Query{})
			if err != nil {
				return export.Table{}, 0, err
			}
			filter := opts.Filter
			if filter == "" {
				filter = domain.FilterAll
			}
			filtered := listview.Filter(env.Items, opts.Search, filter, cfg.List.SearchFields, cfg.List.Category)
			total := len(filtered)
			if opts.PerPage > 0 {
				page := opts.Page
				if page < 1 {
					page = 1
				}
				filtered = listview.Paginate(filtered, opts.PerPage, page)
			}
			return export.Project(cfg.Projection, filtered), total, nil
		},
	}
}

// adminPages lists the admin-portal pages in menu order.
func adminPages() []pageRef {
	return []pageRef{
		makeRef("projects", "Projects", session.ScopeAdmin, projectsPage),
		makeRef("tasks", "Tasks", session.ScopeAdmin, tasksPage),
		makeRef("tickets", "Tickets", session.ScopeAdmin, ticketsPage),
		makeRef("estimates", "Estimates", session.ScopeAdmin, estimatesPage),
		makeRef("proposals", "Proposals", session.ScopeAdmin, proposalsPage),
		makeRef("credit-notes", "Credit Notes", session.ScopeAdmin, creditNotesPage),
		makeRef("staff", "Staff", session.ScopeAdmin, staffPage),
		makeRef("articles", "Knowledge Base", session.ScopeAdmin, articlesPage),
		makeRef("goals", "Goals", session.ScopeAdmin, goalsPage),
		makeRef("items", "Items", session.ScopeAdmin, itemsPage),
		makeRef("templates", "Document Templates", session.ScopeAdmin, templatesPage),
	}
}

// clientPages lists the client-portal pages in menu order.
func clientPages() []pageRef {
	return []pageRef{
		makeRef("client-estimates", "My Estimates", session.ScopeClient, clientEstimatesPage),
		makeRef("client-invoices", "My Invoices", session.ScopeClient, clientInvoicesPage),
		makeRef("client-tickets", "My Tickets", session.ScopeClient, clientTicketsPage),
	}
}

// allPages returns every page, admin first, for key lookup.
func allPages() []pageRef {
	return append(adminPages(), clientPages()...)
}

// findPage resolves a page by its key.
func findPage(key string) (pageRef, bool) {
	for _, p := range allPages() {
		if p.Key == key {
			return p, true
		}
	}
	return pageRef{}, false
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func money2(v float64) string { return fmt.Sprintf("%.2f", v) }

// ── admin pages ─────────────────────────────────────────────────────────────

func projectsPage(state *SharedState) pageConfig[domain.Project] {
	return pageConfig[domain.Project]{
		Key:      "projects",
		Title:    "Projects",
		Resource: state.App.Admin.Projects,
		List: listview.Config[domain.Project]{
			ID: func(p domain.Project) string { return p.ID },
			SearchFields: func(p domain.Project) []string {
				return []string{p.Name, p.Customer, p.Tags}
			},
			Category: func(p domain.Project) string { return string(p.Status) },
		},
		CategoryLabel: "status",
		Categories:    domain.ProjectStatuses,
		Columns: []column[domain.Project]{
			{Title: "Name", Compact: true, Cell: func(p domain.Project) string { return p.Name }},
			{Title: "Customer", Compact: true, Cell: func(p domain.Project) string { return p.Customer }},
			{Title: "Status", Compact: true, Cell: func(p domain.Project) string { return formatter.StatusPill(string(p.Status)) }},
			{Title: "Start", Cell: func(p domain.Project) string { return p.StartDate }},
			{Title: "Deadline", Cell: func(p domain.Project) string { return p.Deadline }},
			{Title: "Progress", Cell: func(p domain.Project) string { return formatter.RenderProgress(p.Progress, 10) }},
			{Title: "Tags", Cell: func(p domain.Project) string { return p.Tags }},
		},
		Projection: export.Projection[domain.Project]{
			Entity:  "Projects",
			Headers: []string{"Name", "Customer", "Tags", "Start Date", "Deadline", "Members", "Status"},
			Row: func(p domain.Project) []string {
				return []string{p.Name, p.Customer, p.Tags, p.StartDate, p.Deadline,
					strconv.Itoa(len(p.Members)), string(p.Status)}
			},
		},
		NewForm:   func(s *SharedState) View { return projectForm(s, nil) },
		EditForm:  func(s *SharedState, p domain.Project) View { return projectForm(s, &p) },
		CanDelete: true,
	}
}

func tasksPage(state *SharedState) pageConfig[domain.Task] {
	return pageConfig[domain.Task]{
		Key:      "tasks",
		Title:    "Tasks",
		Resource: state.App.Admin.Tasks,
		List: listview.Config[domain.Task]{
			ID: func(t domain.Task) string { return t.ID },
			SearchFields: func(t domain.Task) []string {
				return []string{t.Name, t.Assigned, t.RelatedTo, t.Tags}
			},
			Category: func(t domain.Task) string { return string(t.Status) },
		},
		CategoryLabel: "status",
		Categories:    domain.TaskStatuses,
		Columns: []column[domain.Task]{
			{Title: "Name", Compact: true, Cell: func(t domain.Task) string { return t.Name }},
			{Title: "Status", Compact: true, Cell: func(t domain.Task) string { return formatter.StatusPill(string(t.Status)) }},
			{Title: "Priority", Compact: true, Cell: func(t domain.Task) string { return t.Priority }},
			{Title: "Due", Cell: func(t domain.Task) string { return t.DueDate }},
			{Title: "Assigned", Cell: func(t domain.Task) string { return t.Assigned }},
			{Title: "Related To", Cell: func(t domain.Task) string { return t.RelatedTo }},
		},
		Projection: export.Projection[domain.Task]{
			Entity:  "Tasks",
			Headers: []string{"Name", "Status", "Start Date", "Due Date", "Assigned", "Priority", "Related To"},
			Row: func(t domain.Task) []string {
				return []string{t.Name, string(t.Status), t.StartDate, t.DueDate, t.Assigned, t.Priority, t.RelatedTo}
			},
		},
		NewForm:   func(s *SharedState) View { return taskForm(s, nil) },
		EditForm:  func(s *SharedState, t domain.Task) View { return taskForm(s, &t) },
		CanDelete: true,
	}
}

func ticketsPage(state *SharedState) pageConfig[domain.Ticket] {
	return pageConfig[domain.Ticket]{
		Key:      "tickets",
		Title:    "Support Tickets",
		Resource: state.App.Admin.Tickets,
		List: listview.Config[domain.Ticket]{
			ID: func(t domain.Ticket) string { return t.ID },
			SearchFields: func(t domain.Ticket) []string {
				return []string{t.TicketNo, t.Subject, t.Customer, t.ContactName}
			},
			Category: func(t domain.Ticket) string { return string(t.Status) },
		},
		CategoryLabel: "status",
		Categories:    domain.TicketStatuses,
		Columns: []column[domain.Ticket]{
			{Title: "#", Compact: true, Cell: func(t domain.Ticket) string { return t.TicketNo }},
			{Title: "Subject", Compact: true, Cell: func(t domain.Ticket) string { return t.Subject }},
			{Title: "Customer", Cell: func(t domain.Ticket) string { return t.Customer }},
			{Title: "Department", Cell: func(t domain.Ticket) string { return t.Department }},
			{Title: "Priority", Cell: func(t domain.Ticket) string { return t.Priority }},
			{Title: "Status", Compact: true, Cell: func(t domain.Ticket) string { return formatter.StatusPill(string(t.Status)) }},
			{Title: "Last Reply", Cell: func(t domain.Ticket) string { return t.LastReply }},
		},
		Projection: export.Projection[domain.Ticket]{
			Entity:  "Tickets",
			Headers: []string{"Ticket No", "Subject", "Customer", "Department", "Priority", "Status", "Last Reply", "Created"},
			Row: func(t domain.Ticket) []string {
				return []string{t.TicketNo, t.Subject, t.Customer, t.Department, t.Priority, string(t.Status), t.LastReply, t.Created}
			},
		},
		NewForm:   func(s *SharedState) View { return ticketForm(s, nil) },
		EditForm:  func(s *SharedState, t domain.Ticket) View { return ticketForm(s, &t) },
		CanDelete: true,
	}
}

func estimatesPage(state *SharedState) pageConfig[domain.Estimate] {
	return pageConfig[domain.Estimate]{
		Key:      "estimates",
		Title:    "Estimates",
		Resource: state.App.Admin.Estimates,
		List: listview.Config[domain.Estimate]{
			ID: func(e domain.Estimate) string { return e.ID },
			SearchFields: func(e domain.Estimate) []string {
				return []string{e.Number, e.Customer, e.Project, e.Reference}
			},
			Category: func(e domain.Estimate) string { return string(e.Status) },
		},
		CategoryLabel: "status",
		Categories:    domain.EstimateStatuses,
		Columns: []column[domain.Estimate]{
			{Title: "Number", Compact: true, Cell: func(e domain.Estimate) string { return e.Number }},
			{Title: "Customer", Compact: true, Cell: func(e domain.Estimate) string { return e.Customer }},
			{Title: "Date", Cell: func(e domain.Estimate) string { return e.Date }},
			{Title: "Expiry", Cell: func(e domain.Estimate) string { return e.ExpiryDate }},
			{Title: "Status", Compact: true, Cell: func(e domain.Estimate) string { return formatter.StatusPill(string(e.Status)) }},
			{Title: "Total", Compact: true, Cell: func(e domain.Estimate) string { return formatter.Money(e.Total) }},
		},
		Projection: export.Projection[domain.Estimate]{
			Entity:  "Estimates",
			Headers: []string{"Number", "Customer", "Date", "Expiry Date", "Reference", "Status", "Total"},
			Row: func(e domain.Estimate) []string {
				return []string{e.Number, e.Customer, e.Date, e.ExpiryDate, e.Reference, string(e.Status), money2(e.Total)}
			},
		},
		NewForm:   func(s *SharedState) View { return estimateFlow(s, nil) },
		EditForm:  func(s *SharedState, e domain.Estimate) View { return estimateFlow(s, &e) },
		CanDelete: true,
	}
}

func proposalsPage(state *SharedState) pageConfig[domain.Proposal] {
	return pageConfig[domain.Proposal]{
		Key:      "proposals",
		Title:    "Proposals",
		Resource: state.App.Admin.Proposals,
		List: listview.Config[domain.Proposal]{
			ID: func(p domain.Proposal) string { return p.ID },
			SearchFields: func(p domain.Proposal) []string {
				return []string{p.Subject, p.To}
			},
			Category: func(p domain.Proposal) string { return string(p.Status) },
		},
		CategoryLabel: "status",
		Categories:    domain.ProposalStatuses,
		Columns: []column[domain.Proposal]{
			{Title: "Subject", Compact: true, Cell: func(p domain.Proposal) string { return p.Subject }},
			{Title: "To", Compact: true, Cell: func(p domain.Proposal) string { return p.To }},
			{Title: "Date", Cell: func(p domain.Proposal) string { return p.Date }},
			{Title: "Open Till", Cell: func(p domain.Proposal) string { return p.OpenTill }},
			{Title: "Status", Compact: true, Cell: func(p domain.Proposal) string { return formatter.StatusPill(string(p.Status)) }},
			{Title: "Total", Cell: func(p domain.Proposal) string { return formatter.Money(p.Total) }},
		},
		Projection: export.Projection[domain.Proposal]{
			Entity:  "Proposals",
			Headers: []string{"Subject", "To", "Date", "Open Till", "Status", "Total"},
			Row: func(p domain.Proposal) []string {
				return []string{p.Subject, p.To, p.Date, p.OpenTill, string(p.Status), money2(p.Total)}
			},
		},
		NewForm:   func(s *SharedState) View { return proposalForm(s, nil) },
		EditForm:  func(s *SharedState, p domain.Proposal) View { return proposalForm(s, &p) },
		CanDelete: true,
	}
}

func creditNotesPage(state *SharedState) pageConfig[domain.CreditNote] {
	return pageConfig[domain.CreditNote]{
		Key:      "credit-notes",
		Title:    "Credit Notes",
		Resource: state.App.Admin.CreditNotes,
		List: listview.Config[domain.CreditNote]{
			ID: func(cn domain.CreditNote) string { return cn.ID },
			SearchFields: func(cn domain.CreditNote) []string {
				return []string{cn.Number, cn.Customer, cn.Reference}
			},
			Category: func(cn domain.CreditNote) string { return cn.Status },
		},
		CategoryLabel: "status",
		Categories:    []string{"Open", "Closed", "Void"},
		Columns: []column[domain.CreditNote]{
			{Title: "Number", Compact: true, Cell: func(cn domain.CreditNote) string { return cn.Number }},
			{Title: "Customer", Compact: true, Cell: func(cn domain.CreditNote) string { return cn.Customer }},
			{Title: "Date", Cell: func(cn domain.CreditNote) string { return cn.Date }},
			{Title: "Status", Compact: true, Cell: func(cn domain.CreditNote) string { return formatter.StatusPill(cn.Status) }},
			{Title: "Total", Compact: true, Cell: func(cn domain.CreditNote) string { return formatter.Money(cn.Total) }},
			{Title: "Remaining", Cell: func(cn domain.CreditNote) string { return formatter.Money(cn.RemainingAmt) }},
		},
		Projection: export.Projection[domain.CreditNote]{
			Entity:  "CreditNotes",
			Headers: []string{"Number", "Customer", "Date", "Reference", "Status", "Total", "Remaining"},
			Row: func(cn domain.CreditNote) []string {
				return []string{cn.Number, cn.Customer, cn.Date, cn.Reference, cn.Status,
					money2(cn.Total), money2(cn.RemainingAmt)}
			},
		},
		NewForm:   func(s *SharedState) View { return creditNoteFlow(s, nil) },
		EditForm:  func(s *SharedState, cn domain.CreditNote) View { return creditNoteFlow(s, &cn) },
		CanDelete: true,
	}
}

func staffPage(state *SharedState) pageConfig[domain.Staff] {
	return pageConfig[domain.Staff]{
		Key:      "staff",
		Title:    "Staff",
		Resource: state.App.Admin.Staffs,
		List: listview.Config[domain.Staff]{
			ID: func(s domain.Staff) string { return s.ID },
			SearchFields: func(s domain.Staff) []string {
				return []string{s.FullName(), s.Email, s.Role}
			},
			Category: func(s domain.Staff) string { return s.Department },
		},
		CategoryLabel: "department",
		Categories:    domain.StaffDepartments,
		Columns: []column[domain.Staff]{
			{Title: "Name", Compact: true, Cell: func(s domain.Staff) string { return s.FullName() }},
			{Title: "Email", Compact: true, Cell: func(s domain.Staff) string { return s.Email }},
			{Title: "Department", Cell: func(s domain.Staff) string { return s.Department }},
			{Title: "Role", Cell: func(s domain.Staff) string { return s.Role }},
			{Title: "Last Login", Cell: func(s domain.Staff) string { return s.LastLogin }},
			{Title: "Active", Compact: true, Cell: func(s domain.Staff) string { return formatter.ActiveBadge(s.Active) }},
		},
		Projection: export.Projection[domain.Staff]{
			Entity:  "Staff",
			Headers: []string{"Name", "Email", "Phone", "Department", "Role", "Last Login", "Active"},
			Row: func(s domain.Staff) []string {
				return []string{s.FullName(), s.Email, s.Phone, s.Department, s.Role,
					s.LastLogin, strconv.FormatBool(s.Active)}
			},
		},
		NewForm:   func(s *SharedState) View { return staffForm(s, nil) },
		EditForm:  func(s *SharedState, st domain.Staff) View { return staffForm(s, &st) },
		CanDelete: true,
		Extra: []extraAction[domain.Staff]{
			{Key: "t", Help: "toggle active", Run: func(s *SharedState, st domain.Staff) tea.Cmd {
				return tea.Sequence(toggleStaff(s, st), refreshViews())
			}},
		},
	}
}

func toggleStaff(state *SharedState, st domain.Staff) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := state.App.Admin.ToggleStaffActive(ctx, st.ID); err != nil {
			return noticeMsg{text: "Toggle failed: " + describeErr(err), isErr: true}
		}
		return noticeMsg{text: st.FullName() + " toggled"}
	}
}

func articlesPage(state *SharedState) pageConfig[domain.Article] {
	return pageConfig[domain.Article]{
		Key:      "articles",
		Title:    "Knowledge Base",
		Resource: state.App.Admin.Articles,
		List: listview.Config[domain.Article]{
			ID: func(a domain.Article) string { return a.ID },
			SearchFields: func(a domain.Article) []string {
				return []string{a.Subject, a.Group}
			},
			Category: func(a domain.Article) string { return a.Group },
		},
		CategoryLabel: "group",
		Categories:    domain.ArticleGroups,
		Columns: []column[domain.Article]{
			{Title: "Subject", Compact: true, Cell: func(a domain.Article) string { return a.Subject }},
			{Title: "Group", Compact: true, Cell: func(a domain.Article) string { return a.Group }},
			{Title: "Internal", Cell: func(a domain.Article) string { return yesNo(a.Internal) }},
			{Title: "Disabled", Cell: func(a domain.Article) string { return yesNo(a.Disabled) }},
			{Title: "Created", Cell: func(a domain.Article) string { return a.Created }},
		},
		Projection: export.Projection[domain.Article]{
			Entity:  "Articles",
			Headers: []string{"Subject", "Group", "Internal", "Disabled", "Created"},
			Row: func(a domain.Article) []string {
				return []string{a.Subject, a.Group, strconv.FormatBool(a.Internal),
					strconv.FormatBool(a.Disabled), a.Created}
			},
		},
		NewForm:   func(s *SharedState) View { return articleForm(s, nil) },
		EditForm:  func(s *SharedState, a domain.Article) View { return articleForm(s, &a) },
		CanDelete: true,
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return formatter.Dim("no")
}

func goalsPage(state *SharedState) pageConfig[domain.Goal] {
	return pageConfig[domain.Goal]{
		Key:      "goals",
		Title:    "Goals",
		Resource: state.App.Admin.Goals,
		List: listview.Config[domain.Goal]{
			ID: func(g domain.Goal) string { return g.ID },
			SearchFields: func(g domain.Goal) []string {
				return []string{g.Subject, g.GoalType, g.Staff}
			},
		},
		Columns: []column[domain.Goal]{
			{Title: "Subject", Compact: true, Cell: func(g domain.Goal) string { return g.Subject }},
			{Title: "Type", Cell: func(g domain.Goal) string { return g.GoalType }},
			{Title: "Staff", Cell: func(g domain.Goal) string { return g.Staff }},
			{Title: "Period", Cell: func(g domain.Goal) string { return g.StartDate + " → " + g.EndDate }},
			{Title: "Progress", Compact: true, Cell: func(g domain.Goal) string { return formatter.RenderProgress(g.ProgressPct(), 10) }},
			{Title: "Target", Cell: func(g domain.Goal) string { return num(g.Target) }},
		},
		Projection: export.Projection[domain.Goal]{
			Entity:  "Goals",
			Headers: []string{"Subject", "Type", "Staff", "Start Date", "End Date", "Achievement", "Target"},
			Row: func(g domain.Goal) []string {
				return []string{g.Subject, g.GoalType, g.Staff, g.StartDate, g.EndDate,
					num(g.Achievement), num(g.Target)}
			},
		},
		NewForm:   func(s *SharedState) View { return goalForm(s, nil) },
		EditForm:  func(s *SharedState, g domain.Goal) View { return goalForm(s, &g) },
		CanDelete: true,
	}
}

func itemsPage(state *SharedState) pageConfig[domain.Item] {
	return pageConfig[domain.Item]{
		Key:      "items",
		Title:    "Items",
		Resource: state.App.Admin.Items,
		List: listview.Config[domain.Item]{
			ID: func(it domain.Item) string { return it.ID },
			SearchFields: func(it domain.Item) []string {
				return []string{it.Description, it.GroupName}
			},
			Category: func(it domain.Item) string { return it.GroupName },
		},
		CategoryLabel: "group",
		Columns: []column[domain.Item]{
			{Title: "Description", Compact: true, Cell: func(it domain.Item) string { return it.Description }},
			{Title: "Rate", Compact: true, Cell: func(it domain.Item) string { return formatter.Money(it.Rate) }},
			{Title: "Tax 1", Cell: func(it domain.Item) string { return num(it.Tax1) + "%" }},
			{Title: "Tax 2", Cell: func(it domain.Item) string { return num(it.Tax2) + "%" }},
			{Title: "Group", Cell: func(it domain.Item) string { return it.GroupName }},
		},
		Projection: export.Projection[domain.Item]{
			Entity:  "Items",
			Headers: []string{"Description", "Long Description", "Rate", "Tax 1", "Tax 2", "Group"},
			Row: func(it domain.Item) []string {
				return []string{it.Description, it.LongDesc, money2(it.Rate),
					num(it.Tax1), num(it.Tax2), it.GroupName}
			},
		},
		NewForm:   func(s *SharedState) View { return itemForm(s, nil) },
		EditForm:  func(s *SharedState, it domain.Item) View { return itemForm(s, &it) },
		CanDelete: true,
	}
}

func templatesPage(state *SharedState) pageConfig[domain.DocumentTemplate] {
	return pageConfig[domain.DocumentTemplate]{
		Key:      "templates",
		Title:    "Document Templates",
		Resource: state.App.Admin.DocumentTemplates,
		List: listview.Config[domain.DocumentTemplate]{
			ID: func(dt domain.DocumentTemplate) string { return dt.ID },
			SearchFields: func(dt domain.DocumentTemplate) []string {
				return []string{dt.Name, dt.Type, dt.Subject}
			},
			Category: func(dt domain.DocumentTemplate) string { return dt.Type },
		},
		CategoryLabel: "type",
		Categories:    []string{"invoice", "estimate", "proposal", "email"},
		Columns: []column[domain.DocumentTemplate]{
			{Title: "Name", Compact: true, Cell: func(dt domain.DocumentTemplate) string { return dt.Name }},
			{Title: "Type", Compact: true, Cell: func(dt domain.DocumentTemplate) string { return dt.Type }},
			{Title: "Default", Cell: func(dt domain.DocumentTemplate) string { return yesNo(dt.IsDefault) }},
			{Title: "Updated", Cell: func(dt domain.DocumentTemplate) string { return dt.UpdatedAt }},
		},
		Projection: export.Projection[domain.DocumentTemplate]{
			Entity:  "DocumentTemplates",
			Headers: []string{"Name", "Type", "Subject", "Default", "Updated"},
			Row: func(dt domain.DocumentTemplate) []string {
				return []string{dt.Name, dt.Type, dt.Subject, strconv.FormatBool(dt.IsDefault), dt.UpdatedAt}
			},
		},
		NewForm:   func(s *SharedState) View { return documentTemplateForm(s, nil) },
		EditForm:  func(s *SharedState, dt domain.DocumentTemplate) View { return documentTemplateForm(s, &dt) },
		CanDelete: true,
	}
}

// ── client pages ────────────────────────────────────────────────────────────

func clientEstimatesPage(state *SharedState) pageConfig[domain.Estimate] {
	return pageConfig[domain.Estimate]{
		Key:      "client-estimates",
		Title:    "My Estimates",
		Resource: state.App.Client.Estimates,
		List: listview.Config[domain.Estimate]{
			ID: func(e domain.Estimate) string { return e.ID },
			SearchFields: func(e domain.Estimate) []string {
				return []string{e.Number, e.Reference}
			},
			Category: func(e domain.Estimate) string { return string(e.Status) },
		},
		CategoryLabel: "status",
		Categories:    domain.EstimateStatuses,
		Columns: []column[domain.Estimate]{
			{Title: "Number", Compact: true, Cell: func(e domain.Estimate) string { return e.Number }},
			{Title: "Date", Cell: func(e domain.Estimate) string { return e.Date }},
			{Title: "Expiry", Cell: func(e domain.Estimate) string { return e.ExpiryDate }},
			{Title: "Status", Compact: true, Cell: func(e domain.Estimate) string { return formatter.StatusPill(string(e.Status)) }},
			{Title: "Total", Compact: true, Cell: func(e domain.Estimate) string { return formatter.Money(e.Total) }},
		},
		Projection: export.Projection[domain.Estimate]{
			Entity:  "MyEstimates",
			Headers: []string{"Number", "Date", "Expiry Date", "Status", "Total"},
			Row: func(e domain.Estimate) []string {
				return []string{e.Number, e.Date, e.ExpiryDate, string(e.Status), money2(e.Total)}
			},
		},
		Extra: []extraAction[domain.Estimate]{
			{Key: "A", Help: "accept", Run: func(s *SharedState, e domain.Estimate) tea.Cmd {
				return tea.Sequence(estimateDecision(s, e.ID, true), refreshViews())
			}},
			{Key: "R", Help: "reject", Run: func(s *SharedState, e domain.Estimate) tea.Cmd {
				return tea.Sequence(estimateDecision(s, e.ID, false), refreshViews())
			}},
		},
	}
}

func clientInvoicesPage(state *SharedState) pageConfig[domain.Invoice] {
	return pageConfig[domain.Invoice]{
		Key:      "client-invoices",
		Title:    "My Invoices",
		Resource: state.App.Client.Invoices,
		List: listview.Config[domain.Invoice]{
			ID: func(inv domain.Invoice) string { return inv.ID },
			SearchFields: func(inv domain.Invoice) []string {
				return []string{inv.Number, inv.Project}
			},
			Category: func(inv domain.Invoice) string { return string(inv.Status) },
		},
		CategoryLabel: "status",
		Categories:    domain.InvoiceStatuses,
		Columns: []column[domain.Invoice]{
			{Title: "Number", Compact: true, Cell: func(inv domain.Invoice) string { return inv.Number }},
			{Title: "Date", Cell: func(inv domain.Invoice) string { return inv.Date }},
			{Title: "Due", Cell: func(inv domain.Invoice) string { return inv.DueDate }},
			{Title: "Status", Compact: true, Cell: func(inv domain.Invoice) string { return formatter.StatusPill(string(inv.Status)) }},
			{Title: "Total", Compact: true, Cell: func(inv domain.Invoice) string { return formatter.Money(inv.Total) }},
			{Title: "Balance", Compact: true, Cell: func(inv domain.Invoice) string { return formatter.Money(inv.Balance()) }},
		},
		Projection: export.Projection[domain.Invoice]{
			Entity:  "MyInvoices",
			Headers: []string{"Number", "Date", "Due Date", "Status", "Total", "Paid", "Balance"},
			Row: func(inv domain.Invoice) []string {
				return []string{inv.Number, inv.Date, inv.DueDate, string(inv.Status),
					money2(inv.Total), money2(inv.AmountPaid), money2(inv.Balance())}
			},
		},
		Extra: []extraAction[domain.Invoice]{
			{Key: "b", Help: "batch pay", Run: func(s *SharedState, _ domain.Invoice) tea.Cmd {
				return pushView(newBatchPaymentView(s))
			}},
		},
	}
}

func clientTicketsPage(state *SharedState) pageConfig[domain.Ticket] {
	return pageConfig[domain.Ticket]{
		Key:      "client-tickets",
		Title:    "My Tickets",
		Resource: state.App.Client.Tickets,
		List: listview.Config[domain.Ticket]{
			ID: func(t domain.Ticket) string { return t.ID },
			SearchFields: func(t domain.Ticket) []string {
				return []string{t.TicketNo, t.Subject}
			},
			Category: func(t domain.Ticket) string { return string(t.Status) },
		},
		CategoryLabel: "status",
		Categories:    domain.TicketStatuses,
		Columns: []column[domain.Ticket]{
			{Title: "#", Compact: true, Cell: func(t domain.Ticket) string { return t.TicketNo }},
			{Title: "Subject", Compact: true, Cell: func(t domain.Ticket) string { return t.Subject }},
			{Title: "Department", Cell: func(t domain.Ticket) string { return t.Department }},
			{Title: "Status", Compact: true, Cell: func(t domain.Ticket) string { return formatter.StatusPill(string(t.Status)) }},
			{Title: "Last Reply", Cell: func(t domain.Ticket) string { return t.LastReply }},
		},
		Projection: export.Projection[domain.Ticket]{
			Entity:  "MyTickets",
			Headers: []string{"Ticket No", "Subject", "Department", "Priority", "Status", "Last Reply"},
			Row: func(t domain.Ticket) []string {
				return []string{t.TicketNo, t.Subject, t.Department, t.Priority, string(t.Status), t.LastReply}
			},
		},
		NewForm: func(s *SharedState) View { return clientTicketForm(s, nil) },
	}
}
