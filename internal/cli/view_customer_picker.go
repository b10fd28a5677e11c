package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ArbeitEmployee/arbeit-cli/internal/cli/formatter"
	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const customerSearchDebounce = 400 * time.Millisecond

// customerDebounceMsg fires after the debounce window; gen identifies the
// keystroke that armed it so superseded timers are ignored.
type customerDebounceMsg struct{ gen int }

// customerResultsMsg carries a completed typeahead lookup.
type customerResultsMsg struct {
	gen       int
	customers []domain.Customer
	err       error
}

// customerPickerView is the typeahead customer lookup used when starting
// a new estimate or credit note. Each keystroke arms a debounce timer;
// only the latest generation's results are shown.
type customerPickerView struct {
	state   *SharedState
	input   textinput.Model
	results []domain.Customer
	cursor  int
	gen     int
	pending bool
	err     error
	onPick  func(domain.Customer) tea.Cmd
}

func newCustomerPickerView(state *SharedState, onPick func(domain.Customer) tea.Cmd) *customerPickerView {
	input := textinput.New()
	input.Placeholder = "company or contact..."
	input.Prompt = "customer: "
	input.CharLimit = 80
	input.Focus()
	return &customerPickerView{
		state:  state,
		input:  input,
		onPick: onPick,
	}
}

func (v *customerPickerView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *customerPickerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case customerDebounceMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		return v, v.search(msg.gen, v.input.Value())

	case customerResultsMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.pending = false
		v.err = msg.err
		if msg.err == nil {
			v.results = msg.customers
			v.cursor = 0
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, popView()
		case tea.KeyUp:
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil
		case tea.KeyDown:
			if v.cursor < len(v.results)-1 {
				v.cursor++
			}
			return v, nil
		case tea.KeyEnter:
			if v.cursor < len(v.results) {
				picked := v.results[v.cursor]
				return v, tea.Sequence(popView(), v.onPick(picked))
			}
			return v, nil
		}

		var cmd tea.Cmd
		before := v.input.Value()
		v.input, cmd = v.input.Update(msg)
		if v.input.Value() != before {
			v.gen++
			v.pending = true
			gen := v.gen
			return v, tea.Batch(cmd, tea.Tick(customerSearchDebounce, func(time.Time) tea.Msg {
				return customerDebounceMsg{gen: gen}
			}))
		}
		return v, cmd
	}

	return v, nil
}

func (v *customerPickerView) search(gen int, q string) tea.Cmd {
	if strings.TrimSpace(q) == "" {
		return func() tea.Msg { return customerResultsMsg{gen: gen} }
	}
	admin := v.state.App.Admin
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		customers, err := admin.SearchCustomers(ctx, q)
		return customerResultsMsg{gen: gen, customers: customers, err: err}
	}
}

func (v *customerPickerView) View() string {
	var b strings.Builder
	b.WriteString("  " + formatter.Header("Select customer") + "\n\n")
	b.WriteString("  " + v.input.View() + "\n\n")

	switch {
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Search failed: "+describeErr(v.err)) + "\n")
	case v.pending:
		b.WriteString("  " + formatter.Dim("searching...") + "\n")
	case len(v.results) == 0:
		b.WriteString("  " + formatter.Dim("type to search customers") + "\n")
	default:
		for i, c := range v.results {
			marker := "  "
			line := c.Company
			if c.Contact != "" {
				line += formatter.Dim(fmt.Sprintf("  (%s)", c.Contact))
			}
			if i == v.cursor {
				marker = formatter.StyleHeader.Render("> ")
				line = formatter.Bold(c.Company) + strings.TrimPrefix(line, c.Company)
			}
			b.WriteString("  " + marker + line + "\n")
		}
	}
	return b.String()
}

func (v *customerPickerView) ID() ViewID    { return ViewCustomerPicker }
func (v *customerPickerView) Title() string { return "Customer" }
func (v *customerPickerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
