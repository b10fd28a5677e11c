package cli

import (
	"strconv"
	"strings"

	"github.com/ArbeitEmployee/arbeit-cli/internal/cli/formatter"
	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
)

// lineItemsConfig parameterizes the editor for one document draft.
type lineItemsConfig struct {
	Title         string
	Items         []domain.LineItem
	DiscountType  domain.DiscountType
	DiscountValue float64

	// Submit persists the finished draft. The editor pops itself after
	// issuing it.
	Submit func(items []domain.LineItem, dt domain.DiscountType, dv float64) tea.Cmd
}

// lineItemsView is the item-table editor for estimates and credit notes.
// Subtotal, discount and total recompute on every edit; row taxes are
// shown but never folded into the totals, matching the backend's math.
type lineItemsView struct {
	state  *SharedState
	cfg    lineItemsConfig
	items  []domain.LineItem
	dt     domain.DiscountType
	dv     float64
	cursor int

	// draftIDs tracks rows added in this editor. Their ids exist only to
	// tell rows apart locally and are stripped before submit so the
	// backend assigns its own.
	draftIDs map[string]bool
}

func newLineItemsView(state *SharedState, cfg lineItemsConfig) *lineItemsView {
	items := make([]domain.LineItem, len(cfg.Items))
	copy(items, cfg.Items)
	return &lineItemsView{
		state:    state,
		cfg:      cfg,
		items:    items,
		dt:       cfg.DiscountType,
		dv:       cfg.DiscountValue,
		draftIDs: make(map[string]bool),
	}
}

func (v *lineItemsView) Init() tea.Cmd { return nil }

func (v *lineItemsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {

	case "esc":
		return v, popView()

	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}

	case "a":
		return v, pushView(v.rowForm(nil))

	case "enter":
		if v.cursor < len(v.items) {
			return v, pushView(v.rowForm(&v.items[v.cursor]))
		}

	case "d":
		if v.cursor < len(v.items) {
			v.items = append(v.items[:v.cursor], v.items[v.cursor+1:]...)
			if v.cursor >= len(v.items) && v.cursor > 0 {
				v.cursor--
			}
		}

	case "t":
		if v.dt == domain.DiscountPercent {
			v.dt = domain.DiscountFixed
		} else {
			v.dt = domain.DiscountPercent
		}

	case "D":
		return v, pushView(v.discountForm())

	case "s":
		items := make([]domain.LineItem, len(v.items))
		copy(items, v.items)
		for i := range items {
			if v.draftIDs[items[i].ID] {
				items[i].ID = ""
			}
		}
		dt, dv := v.dt, v.dv
		return v, tea.Sequence(popView(), v.cfg.Submit(items, dt, dv))
	}

	return v, nil
}

// rowForm edits one line item in place; a nil row appends a new one with
// a fresh draft id.
func (v *lineItemsView) rowForm(row *domain.LineItem) View {
	var li domain.LineItem
	editing := row != nil
	if editing {
		li = *row
	} else {
		li.Quantity = 1
		li.ID = uuid.NewString()
	}

	qty := strconv.FormatFloat(li.Quantity, 'f', -1, 64)
	rate := strconv.FormatFloat(li.Rate, 'f', -1, 64)
	tax1 := strconv.FormatFloat(li.Tax1, 'f', -1, 64)
	tax2 := strconv.FormatFloat(li.Tax2, 'f', -1, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Description").Value(&li.Description).Validate(validateRequired),
			huh.NewText().Title("Long description").Value(&li.LongDesc),
			huh.NewInput().Title("Quantity").Value(&qty).Validate(validateOptionalNumber),
			huh.NewInput().Title("Rate").Value(&rate).Validate(validateOptionalNumber),
			huh.NewInput().Title("Tax 1 (%)").Value(&tax1).Validate(validateOptionalNumber),
			huh.NewInput().Title("Tax 2 (%)").Value(&tax2).Validate(validateOptionalNumber),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	title := "Add item"
	if editing {
		title = "Edit item"
	}
	idx := v.cursor
	return newWizardView(v.state, title, form, func() tea.Cmd {
		li.Quantity = parseFloat(qty, 1)
		li.Rate = parseFloat(rate, 0)
		li.Tax1 = parseFloat(tax1, 0)
		li.Tax2 = parseFloat(tax2, 0)
		if editing && idx < len(v.items) {
			v.items[idx] = li
		} else {
			v.draftIDs[li.ID] = true
			v.items = append(v.items, li)
		}
		return nil
	})
}

func (v *lineItemsView) discountForm() View {
	value := strconv.FormatFloat(v.dv, 'f', -1, 64)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Discount value").Value(&value).Validate(validateOptionalNumber),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)
	return newWizardView(v.state, "Discount", form, func() tea.Cmd {
		v.dv = parseFloat(value, 0)
		return nil
	})
}

func (v *lineItemsView) View() string {
	var b strings.Builder
	b.WriteString("  " + formatter.Header(v.cfg.Title) + "\n\n")

	if len(v.items) == 0 {
		b.WriteString("  " + formatter.Dim("No items yet. Press a to add one.") + "\n")
	} else {
		headers := []string{" ", "Description", "Qty", "Rate", "Tax 1", "Tax 2", "Amount"}
		rows := make([][]string, 0, len(v.items))
		for i, li := range v.items {
			marker := " "
			if i == v.cursor {
				marker = formatter.StyleHeader.Render(">")
			}
			rows = append(rows, []string{
				marker,
				li.Description,
				strconv.FormatFloat(li.Quantity, 'f', -1, 64),
				formatter.Money(li.Rate),
				strconv.FormatFloat(li.Tax1, 'f', -1, 64) + "%",
				strconv.FormatFloat(li.Tax2, 'f', -1, 64) + "%",
				formatter.Money(li.Amount()),
			})
		}
		width := v.state.Width - 4
		if width < 40 {
			width = 40
		}
		b.WriteString(formatter.RenderTable(headers, rows, width))
	}

	sub := domain.Subtotal(v.items)
	disc := domain.Discount(sub, v.dt, v.dv)

	discountLabel := "fixed"
	if v.dt == domain.DiscountPercent {
		discountLabel = strconv.FormatFloat(v.dv, 'f', -1, 64) + "%"
	}

	b.WriteString("\n")
	b.WriteString("  " + formatter.Dim("Subtotal") + "  " + formatter.Money(sub) + "\n")
	b.WriteString("  " + formatter.Dim("Discount ("+discountLabel+")") + "  -" + formatter.Money(disc) + "\n")
	b.WriteString("  " + formatter.Bold("Total") + "     " + formatter.Bold(formatter.Money(sub-disc)) + "\n")
	return b.String()
}

func (v *lineItemsView) ID() ViewID    { return ViewLineItems }
func (v *lineItemsView) Title() string { return "Items" }
func (v *lineItemsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "discount type")),
		key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "discount value")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	}
}
