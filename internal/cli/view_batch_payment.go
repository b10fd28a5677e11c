package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ArbeitEmployee/arbeit-cli/internal/api"
	"github.com/ArbeitEmployee/arbeit-cli/internal/cli/formatter"
	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// payableInvoicesMsg carries the fetched client invoices, already
// filtered to the payable statuses.
type payableInvoicesMsg struct {
	invoices []domain.Invoice
	err      error
}

// batchPaymentDoneMsg summarizes a submitted batch.
type batchPaymentDoneMsg struct {
	succeeded int
	failed    []string
}

// batchPaymentView lets a client enter amounts against several open
// invoices and submit them as one batch. Amounts clamp to each invoice's
// outstanding balance. Submission is sequential with no rollback: earlier
// payments stand even when a later one fails.
type batchPaymentView struct {
	state      *SharedState
	invoices   []domain.Invoice
	amounts    map[string]float64
	cursor     int
	loading    bool
	submitting bool
	err        error
}

func newBatchPaymentView(state *SharedState) *batchPaymentView {
	return &batchPaymentView{
		state:   state,
		amounts: make(map[string]float64),
		loading: true,
	}
}

func (v *batchPaymentView) Init() tea.Cmd {
	return v.fetch()
}

func (v *batchPaymentView) fetch() tea.Cmd {
	client := v.state.App.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		env, err := client.Invoices.List(ctx, api.Query{})
		if err != nil {
			return payableInvoicesMsg{err: err}
		}
		payable := make([]domain.Invoice, 0, len(env.Items))
		for _, inv := range env.Items {
			if inv.Payable() && inv.Balance() > 0 {
				payable = append(payable, inv)
			}
		}
		return payableInvoicesMsg{invoices: payable}
	}
}

func (v *batchPaymentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case payableInvoicesMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.invoices = msg.invoices
			if v.cursor >= len(v.invoices) {
				v.cursor = 0
			}
		}
		return v, nil

	case batchPaymentDoneMsg:
		v.submitting = false
		v.amounts = make(map[string]float64)
		text := fmt.Sprintf("Recorded %d payment(s)", msg.succeeded)
		if len(msg.failed) > 0 {
			return v, tea.Batch(
				v.fetch(),
				notifyErr(fmt.Sprintf("%s; %d failed: %s", text, len(msg.failed), strings.Join(msg.failed, "; "))),
			)
		}
		return v, tea.Batch(v.fetch(), notify(text))

	case refreshViewMsg:
		return v, v.fetch()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *batchPaymentView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {

	case "esc":
		return v, popView()

	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(v.invoices)-1 {
			v.cursor++
		}

	case "enter":
		if v.cursor < len(v.invoices) {
			return v, pushView(v.amountForm(v.invoices[v.cursor]))
		}

	case "c":
		if v.cursor < len(v.invoices) {
			delete(v.amounts, v.invoices[v.cursor].ID)
		}

	case "s":
		if !v.submitting && v.pendingCount() > 0 {
			v.submitting = true
			return v, v.submit()
		}

	case "r":
		return v, v.fetch()
	}

	return v, nil
}

// amountForm edits the pending amount for one invoice. The entered value
// clamps to the invoice's balance on save.
func (v *batchPaymentView) amountForm(inv domain.Invoice) View {
	value := ""
	if a, ok := v.amounts[inv.ID]; ok {
		value = strconv.FormatFloat(a, 'f', -1, 64)
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Amount for %s (balance %s)", inv.Number, formatter.Money(inv.Balance()))).
				Value(&value).
				Validate(validateOptionalNumber),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	return newWizardView(v.state, "Payment amount", form, func() tea.Cmd {
		amount := inv.ClampPayment(parseFloat(value, 0))
		if amount <= 0 {
			delete(v.amounts, inv.ID)
		} else {
			v.amounts[inv.ID] = amount
		}
		return nil
	})
}

func (v *batchPaymentView) pendingCount() int {
	n := 0
	for _, a := range v.amounts {
		if a > 0 {
			n++
		}
	}
	return n
}

// submit posts one payment per invoice, in display order, continuing past
// failures and reporting them together at the end.
func (v *batchPaymentView) submit() tea.Cmd {
	client := v.state.App.Client
	type pending struct {
		number string
		pay    domain.Payment
	}
	var batch []pending
	for _, inv := range v.invoices {
		amount := inv.ClampPayment(v.amounts[inv.ID])
		if amount <= 0 {
			continue
		}
		batch = append(batch, pending{
			number: inv.Number,
			pay: domain.Payment{
				InvoiceID: inv.ID,
				Amount:    amount,
				Date:      time.Now().Format("2006-01-02"),
			},
		})
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		var done batchPaymentDoneMsg
		for _, p := range batch {
			if err := client.CreatePayment(ctx, p.pay); err != nil {
				done.failed = append(done.failed, p.number+": "+describeErr(err))
				continue
			}
			done.succeeded++
		}
		return done
	}
}

func (v *batchPaymentView) View() string {
	var b strings.Builder
	b.WriteString("  " + formatter.Header("Batch payment") + "\n\n")

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("loading invoices...") + "\n")
		return b.String()
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+describeErr(v.err)) + "\n")
		return b.String()
	case len(v.invoices) == 0:
		b.WriteString("  " + formatter.Dim("No payable invoices.") + "\n")
		return b.String()
	}

	headers := []string{" ", "Invoice", "Due", "Status", "Balance", "Pay"}
	rows := make([][]string, 0, len(v.invoices))
	var total float64
	for i, inv := range v.invoices {
		marker := " "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render(">")
		}
		pay := ""
		if a, ok := v.amounts[inv.ID]; ok && a > 0 {
			pay = formatter.StyleGreen.Render(formatter.Money(a))
			total += a
		}
		rows = append(rows, []string{
			marker,
			inv.Number,
			inv.DueDate,
			formatter.StatusPill(string(inv.Status)),
			formatter.Money(inv.Balance()),
			pay,
		})
	}
	width := v.state.Width - 4
	if width < 40 {
		width = 40
	}
	b.WriteString(formatter.RenderTable(headers, rows, width))

	b.WriteString("\n  " + formatter.Bold("Batch total") + "  " + formatter.Bold(formatter.Money(total)))
	if v.submitting {
		b.WriteString("  " + formatter.Dim("submitting..."))
	}
	b.WriteString("\n")
	return b.String()
}

func (v *batchPaymentView) ID() ViewID    { return ViewBatchPayment }
func (v *batchPaymentView) Title() string { return "Batch payment" }
func (v *batchPaymentView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "set amount")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear amount")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
	}
}
