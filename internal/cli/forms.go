package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ArbeitEmployee/arbeit-cli/internal/api"
	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// submitDraft runs the create-or-update for a finished form: POST when id
// is empty, PUT otherwise. The notice carries the backend's message on
// failure.
func submitDraft[T any](res *api.Resource[T], id string, payload map[string]any, noun string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		var err error
		if id == "" {
			err = res.Create(ctx, payload)
		} else {
			err = res.Update(ctx, id, payload)
		}
		if err != nil {
			return noticeMsg{text: "Save failed: " + describeErr(err), isErr: true}
		}
		if id == "" {
			return savedMsg{text: noun + " created"}
		}
		return savedMsg{text: noun + " updated"}
	}
}

func statusOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func formTitle(noun, id string) string {
	if id == "" {
		return "New " + noun
	}
	return "Edit " + noun
}

// ── project ─────────────────────────────────────────────────────────────────

func projectForm(state *SharedState, existing *domain.Project) View {
	var p domain.Project
	if existing != nil {
		p = *existing
	} else {
		p.Status = domain.ProjectNotStarted
	}

	status := string(p.Status)
	hours := ""
	if p.EstimatedHours > 0 {
		hours = strconv.FormatFloat(p.EstimatedHours, 'f', -1, 64)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&p.Name).Validate(validateRequired),
			huh.NewInput().Title("Customer").Value(&p.Customer).Validate(validateRequired),
			huh.NewSelect[string]().Title("Status").Options(statusOptions(domain.ProjectStatuses)...).Value(&status),
			huh.NewInput().Title("Start date").Placeholder("YYYY-MM-DD").Value(&p.StartDate).Validate(validateOptionalDate),
			huh.NewInput().Title("Deadline").Placeholder("YYYY-MM-DD").Value(&p.Deadline).Validate(validateOptionalDate),
			huh.NewInput().Title("Tags").Value(&p.Tags),
			huh.NewInput().Title("Estimated hours").Value(&hours).Validate(validateOptionalNumber),
			huh.NewConfirm().Title("Billable").Value(&p.Billable),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Project", p.ID), form, func() tea.Cmd {
		payload := map[string]any{
			"name":           p.Name,
			"customer":       p.Customer,
			"status":         status,
			"startDate":      p.StartDate,
			"deadline":       p.Deadline,
			"tags":           p.Tags,
			"estimatedHours": parseFloat(hours, 0),
			"billable":       p.Billable,
		}
		return submitDraft(state.App.Admin.Projects, p.ID, payload, "Project")
	})
}

// ── task ────────────────────────────────────────────────────────────────────

func taskForm(state *SharedState, existing *domain.Task) View {
	var t domain.Task
	if existing != nil {
		t = *existing
	} else {
		t.Status = domain.TaskNotStarted
		t.Priority = "Medium"
	}

	status := string(t.Status)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&t.Name).Validate(validateRequired),
			huh.NewSelect[string]().Title("Status").Options(statusOptions(domain.TaskStatuses)...).Value(&status),
			huh.NewSelect[string]().Title("Priority").
				Options(statusOptions([]string{"Low", "Medium", "High", "Urgent"})...).Value(&t.Priority),
			huh.NewInput().Title("Start date").Placeholder("YYYY-MM-DD").Value(&t.StartDate).Validate(validateOptionalDate),
			huh.NewInput().Title("Due date").Placeholder("YYYY-MM-DD").Value(&t.DueDate).Validate(validateOptionalDate),
			huh.NewInput().Title("Assigned to").Value(&t.Assigned),
			huh.NewInput().Title("Related to").Value(&t.RelatedTo),
			huh.NewInput().Title("Tags").Value(&t.Tags),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Task", t.ID), form, func() tea.Cmd {
		payload := map[string]any{
			"name":      t.Name,
			"status":    status,
			"priority":  t.Priority,
			"startDate": t.StartDate,
			"dueDate":   t.DueDate,
			"assigned":  t.Assigned,
			"relatedTo": t.RelatedTo,
			"tags":      t.Tags,
		}
		return submitDraft(state.App.Admin.Tasks, t.ID, payload, "Task")
	})
}

// ── ticket ──────────────────────────────────────────────────────────────────

func ticketForm(state *SharedState, existing *domain.Ticket) View {
	var tk domain.Ticket
	if existing != nil {
		tk = *existing
	} else {
		tk.Status = domain.TicketOpen
		tk.Priority = "Medium"
	}

	status := string(tk.Status)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Subject").Value(&tk.Subject).Validate(validateRequired),
			huh.NewInput().Title("Customer").Value(&tk.Customer).Validate(validateRequired),
			huh.NewInput().Title("Contact name").Value(&tk.ContactName),
			huh.NewSelect[string]().Title("Department").Options(statusOptions(domain.StaffDepartments)...).Value(&tk.Department),
			huh.NewSelect[string]().Title("Priority").
				Options(statusOptions([]string{"Low", "Medium", "High", "Urgent"})...).Value(&tk.Priority),
			huh.NewSelect[string]().Title("Status").Options(statusOptions(domain.TicketStatuses)...).Value(&status),
			huh.NewInput().Title("Service").Value(&tk.Service),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Ticket", tk.ID), form, func() tea.Cmd {
		payload := map[string]any{
			"subject":     tk.Subject,
			"customer":    tk.Customer,
			"contactName": tk.ContactName,
			"department":  tk.Department,
			"priority":    tk.Priority,
			"status":      status,
			"service":     tk.Service,
		}
		return submitDraft(state.App.Admin.Tickets, tk.ID, payload, "Ticket")
	})
}

// clientTicketForm is the client-portal variant: no customer or status
// fields, the backend fills those from the session.
func clientTicketForm(state *SharedState, existing *domain.Ticket) View {
	var tk domain.Ticket
	if existing != nil {
		tk = *existing
	} else {
		tk.Priority = "Medium"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Subject").Value(&tk.Subject).Validate(validateRequired),
			huh.NewSelect[string]().Title("Department").Options(statusOptions(domain.StaffDepartments)...).Value(&tk.Department),
			huh.NewSelect[string]().Title("Priority").
				Options(statusOptions([]string{"Low", "Medium", "High", "Urgent"})...).Value(&tk.Priority),
			huh.NewInput().Title("Service").Value(&tk.Service),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Ticket", tk.ID), form, func() tea.Cmd {
		payload := map[string]any{
			"subject":    tk.Subject,
			"department": tk.Department,
			"priority":   tk.Priority,
			"service":    tk.Service,
		}
		return submitDraft(state.App.Client.Tickets, tk.ID, payload, "Ticket")
	})
}

// ── proposal ────────────────────────────────────────────────────────────────

func proposalForm(state *SharedState, existing *domain.Proposal) View {
	var pr domain.Proposal
	if existing != nil {
		pr = *existing
	} else {
		pr.Status = domain.ProposalDraft
	}

	status := string(pr.Status)
	total := ""
	if pr.Total > 0 {
		total = strconv.FormatFloat(pr.Total, 'f', -1, 64)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Subject").Value(&pr.Subject).Validate(validateRequired),
			huh.NewInput().Title("To").Value(&pr.To).Validate(validateRequired),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&pr.Date).Validate(validateOptionalDate),
			huh.NewInput().Title("Open till").Placeholder("YYYY-MM-DD").Value(&pr.OpenTill).Validate(validateOptionalDate),
			huh.NewSelect[string]().Title("Status").Options(statusOptions(domain.ProposalStatuses)...).Value(&status),
			huh.NewInput().Title("Total").Value(&total).Validate(validateOptionalNumber),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Proposal", pr.ID), form, func() tea.Cmd {
		payload := map[string]any{
			"subject":  pr.Subject,
			"to":       pr.To,
			"date":     pr.Date,
			"openTill": pr.OpenTill,
			"status":   status,
			"total":    parseFloat(total, 0),
		}
		return submitDraft(state.App.Admin.Proposals, pr.ID, payload, "Proposal")
	})
}

// ── staff ───────────────────────────────────────────────────────────────────

func staffForm(state *SharedState, existing *domain.Staff) View {
	var s domain.Staff
	if existing != nil {
		s = *existing
	} else {
		s.Active = true
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&s.FirstName).Validate(validateRequired),
			huh.NewInput().Title("Last name").Value(&s.LastName).Validate(validateRequired),
			huh.NewInput().Title("Email").Value(&s.Email).Validate(validateRequired),
			huh.NewInput().Title("Phone").Value(&s.Phone),
			huh.NewSelect[string]().Title("Department").Options(statusOptions(domain.StaffDepartments)...).Value(&s.Department),
			huh.NewInput().Title("Role").Value(&s.Role),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Staff member", s.ID), form, func() tea.Cmd {
		payload := map[string]any{
			"firstName":  s.FirstName,
			"lastName":   s.LastName,
			"email":      s.Email,
			"phone":      s.Phone,
			"department": s.Department,
			"role":       s.Role,
		}
		return submitDraft(state.App.Admin.Staffs, s.ID, payload, "Staff member")
	})
}

// ── article ─────────────────────────────────────────────────────────────────

func articleForm(state *SharedState, existing *domain.Article) View {
	var a domain.Article
	if existing != nil {
		a = *existing
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Subject").Value(&a.Subject).Validate(validateRequired),
			huh.NewSelect[string]().Title("Group").Options(statusOptions(domain.ArticleGroups)...).Value(&a.Group),
			huh.NewText().Title("Body").Value(&a.Body),
			huh.NewConfirm().Title("Internal only").Value(&a.Internal),
			huh.NewConfirm().Title("Disabled").Value(&a.Disabled),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Article", a.ID), form, func() tea.Cmd {
		payload := map[string]any{
			"subject":  a.Subject,
			"group":    a.Group,
			"body":     a.Body,
			"internal": a.Internal,
			"disabled": a.Disabled,
		}
		return submitDraft(state.App.Admin.Articles, a.ID, payload, "Article")
	})
}

// ── goal ────────────────────────────────────────────────────────────────────

func goalForm(state *SharedState, existing *domain.Goal) View {
	var g domain.Goal
	if existing != nil {
		g = *existing
	}

	target := ""
	if g.Target > 0 {
		target = strconv.FormatFloat(g.Target, 'f', -1, 64)
	}
	achievement := ""
	if g.Achievement > 0 {
		achievement = strconv.FormatFloat(g.Achievement, 'f', -1, 64)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Subject").Value(&g.Subject).Validate(validateRequired),
			huh.NewInput().Title("Goal type").Value(&g.GoalType),
			huh.NewInput().Title("Staff").Value(&g.Staff),
			huh.NewInput().Title("Start date").Placeholder("YYYY-MM-DD").Value(&g.StartDate).Validate(validateOptionalDate),
			huh.NewInput().Title("End date").Placeholder("YYYY-MM-DD").Value(&g.EndDate).Validate(validateOptionalDate),
			huh.NewInput().Title("Target").Value(&target).Validate(validateOptionalNumber),
			huh.NewInput().Title("Achievement").Value(&achievement).Validate(validateOptionalNumber),
			huh.NewText().Title("Description").Value(&g.Description),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Goal", g.ID), form, func() tea.Cmd {
		payload := map[string]any{
			"subject":     g.Subject,
			"goalType":    g.GoalType,
			"staff":       g.Staff,
			"startDate":   g.StartDate,
			"endDate":     g.EndDate,
			"target":      parseFloat(target, 0),
			"achievement": parseFloat(achievement, 0),
			"description": g.Description,
		}
		return submitDraft(state.App.Admin.Goals, g.ID, payload, "Goal")
	})
}

// ── catalog item ────────────────────────────────────────────────────────────

func itemForm(state *SharedState, existing *domain.Item) View {
	var it domain.Item
	if existing != nil {
		it = *existing
	}

	rate := ""
	if it.Rate > 0 {
		rate = strconv.FormatFloat(it.Rate, 'f', -1, 64)
	}
	tax1 := strconv.FormatFloat(it.Tax1, 'f', -1, 64)
	tax2 := strconv.FormatFloat(it.Tax2, 'f', -1, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Description").Value(&it.Description).Validate(validateRequired),
			huh.NewText().Title("Long description").Value(&it.LongDesc),
			huh.NewInput().Title("Rate").Value(&rate).Validate(validateOptionalNumber),
			huh.NewInput().Title("Tax 1 (%)").Value(&tax1).Validate(validateOptionalNumber),
			huh.NewInput().Title("Tax 2 (%)").Value(&tax2).Validate(validateOptionalNumber),
			huh.NewInput().Title("Group").Value(&it.GroupName),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Item", it.ID), form, func() tea.Cmd {
		payload := map[string]any{
			"description":     it.Description,
			"longDescription": it.LongDesc,
			"rate":            parseFloat(rate, 0),
			"tax1":            parseFloat(tax1, 0),
			"tax2":            parseFloat(tax2, 0),
			"groupName":       it.GroupName,
		}
		return submitDraft(state.App.Admin.Items, it.ID, payload, "Item")
	})
}

// ── document template ───────────────────────────────────────────────────────

func documentTemplateForm(state *SharedState, existing *domain.DocumentTemplate) View {
	var dt domain.DocumentTemplate
	if existing != nil {
		dt = *existing
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&dt.Name).Validate(validateRequired),
			huh.NewSelect[string]().Title("Type").
				Options(statusOptions([]string{"invoice", "estimate", "proposal", "email"})...).Value(&dt.Type),
			huh.NewInput().Title("Subject").Value(&dt.Subject),
			huh.NewText().Title("Body").Value(&dt.Body),
			huh.NewConfirm().Title("Default for type").Value(&dt.IsDefault),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Template", dt.ID), form, func() tea.Cmd {
		payload := map[string]any{
			"name":      dt.Name,
			"type":      dt.Type,
			"subject":   dt.Subject,
			"body":      dt.Body,
			"isDefault": dt.IsDefault,
		}
		return submitDraft(state.App.Admin.DocumentTemplates, dt.ID, payload, "Template")
	})
}

// ── estimate & credit note (documents with line items) ──────────────────────

// estimateFlow is the multi-step estimate editor: customer picker (new
// documents only), scalar fields, then the line-item editor which
// submits.
func estimateFlow(state *SharedState, existing *domain.Estimate) View {
	var e domain.Estimate
	if existing != nil {
		e = *existing
	} else {
		e.Status = domain.EstimateDraft
		e.DiscountType = domain.DiscountPercent
	}

	if e.ID == "" && e.Customer == "" {
		return newCustomerPickerView(state, func(c domain.Customer) tea.Cmd {
			e.Customer = c.Company
			return pushView(estimateFieldsForm(state, e))
		})
	}
	return estimateFieldsForm(state, e)
}

func estimateFieldsForm(state *SharedState, e domain.Estimate) View {
	status := string(e.Status)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Number").Value(&e.Number).Validate(validateRequired),
			huh.NewInput().Title("Customer").Value(&e.Customer).Validate(validateRequired),
			huh.NewInput().Title("Project").Value(&e.Project),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&e.Date).Validate(validateOptionalDate),
			huh.NewInput().Title("Expiry date").Placeholder("YYYY-MM-DD").Value(&e.ExpiryDate).Validate(validateOptionalDate),
			huh.NewInput().Title("Reference").Value(&e.Reference),
			huh.NewSelect[string]().Title("Status").Options(statusOptions(domain.EstimateStatuses)...).Value(&status),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Estimate", e.ID), form, func() tea.Cmd {
		e.Status = domain.EstimateStatus(status)
		return pushView(newLineItemsView(state, lineItemsConfig{
			Title:         "Estimate " + e.Number,
			Items:         e.Items,
			DiscountType:  e.DiscountType,
			DiscountValue: e.DiscountValue,
			Submit: func(items []domain.LineItem, dt domain.DiscountType, dv float64) tea.Cmd {
				payload := map[string]any{
					"number":        e.Number,
					"customer":      e.Customer,
					"project":       e.Project,
					"date":          e.Date,
					"expiryDate":    e.ExpiryDate,
					"reference":     e.Reference,
					"status":        string(e.Status),
					"items":         items,
					"discountType":  string(dt),
					"discountValue": dv,
					"total":         domain.DocumentTotal(items, dt, dv),
				}
				return submitDraft(state.App.Admin.Estimates, e.ID, payload, "Estimate")
			},
		}))
	})
}

func creditNoteFlow(state *SharedState, existing *domain.CreditNote) View {
	var cn domain.CreditNote
	if existing != nil {
		cn = *existing
	} else {
		cn.Status = "Open"
		cn.DiscountType = domain.DiscountPercent
	}

	if cn.ID == "" && cn.Customer == "" {
		return newCustomerPickerView(state, func(c domain.Customer) tea.Cmd {
			cn.Customer = c.Company
			return pushView(creditNoteFieldsForm(state, cn))
		})
	}
	return creditNoteFieldsForm(state, cn)
}

func creditNoteFieldsForm(state *SharedState, cn domain.CreditNote) View {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Number").Value(&cn.Number).Validate(validateRequired),
			huh.NewInput().Title("Customer").Value(&cn.Customer).Validate(validateRequired),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&cn.Date).Validate(validateOptionalDate),
			huh.NewInput().Title("Reference").Value(&cn.Reference),
			huh.NewSelect[string]().Title("Status").
				Options(statusOptions([]string{"Open", "Closed", "Void"})...).Value(&cn.Status),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle("Credit note", cn.ID), form, func() tea.Cmd {
		return pushView(newLineItemsView(state, lineItemsConfig{
			Title:         "Credit note " + cn.Number,
			Items:         cn.Items,
			DiscountType:  cn.DiscountType,
			DiscountValue: cn.DiscountValue,
			Submit: func(items []domain.LineItem, dt domain.DiscountType, dv float64) tea.Cmd {
				payload := map[string]any{
					"number":        cn.Number,
					"customer":      cn.Customer,
					"date":          cn.Date,
					"reference":     cn.Reference,
					"status":        cn.Status,
					"items":         items,
					"discountType":  string(dt),
					"discountValue": dv,
					"total":         domain.DocumentTotal(items, dt, dv),
				}
				return submitDraft(state.App.Admin.CreditNotes, cn.ID, payload, "Credit note")
			},
		}))
	})
}

// estimateDecision runs the client-portal accept/reject action.
func estimateDecision(state *SharedState, id string, accept bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		var err error
		verb := "accepted"
		if accept {
			err = state.App.Client.AcceptEstimate(ctx, id)
		} else {
			verb = "declined"
			err = state.App.Client.DeclineEstimate(ctx, id)
		}
		if err != nil {
			return noticeMsg{text: "Action failed: " + describeErr(err), isErr: true}
		}
		return noticeMsg{text: fmt.Sprintf("Estimate %s", verb)}
	}
}
