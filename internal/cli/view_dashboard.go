package cli

import (
	"strings"

	"github.com/ArbeitEmployee/arbeit-cli/internal/cli/formatter"
	"github.com/ArbeitEmployee/arbeit-cli/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardView is the entry menu: every entity page the stored sessions
// grant access to, grouped by portal.
type dashboardView struct {
	state  *SharedState
	pages  []pageRef
	cursor int
}

func newDashboardView(state *SharedState) *dashboardView {
	v := &dashboardView{state: state}
	v.rebuild()
	return v
}

// rebuild recomputes the visible pages from the stored tokens.
func (v *dashboardView) rebuild() {
	v.pages = v.pages[:0]
	if v.state.App.LoggedIn(session.ScopeAdmin) {
		v.pages = append(v.pages, adminPages()...)
	}
	if v.state.App.LoggedIn(session.ScopeClient) {
		v.pages = append(v.pages, clientPages()...)
	}
	if v.cursor >= len(v.pages) {
		v.cursor = 0
	}
}

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case refreshViewMsg:
		v.rebuild()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.pages)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.pages) {
				return v, pushView(v.pages[v.cursor].Open(v.state))
			}
		}
	}

	return v, nil
}

func (v *dashboardView) View() string {
	var b strings.Builder

	if len(v.pages) == 0 {
		b.WriteString("  " + formatter.Dim("Not logged in.") + "\n\n")
		b.WriteString("  Run " + formatter.Bold("arbeit login") + " for the admin portal\n")
		b.WriteString("  or  " + formatter.Bold("arbeit login --client") + " for the client portal.\n")
		return b.String()
	}

	lastScope := session.Scope("")
	for i, p := range v.pages {
		if p.Scope != lastScope {
			label := "Admin Portal"
			if p.Scope == session.ScopeClient {
				label = "Client Portal"
			}
			if lastScope != "" {
				b.WriteString("\n")
			}
			b.WriteString("  " + formatter.Header(label) + "\n")
			lastScope = p.Scope
		}
		marker := "  "
		title := p.Title
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("> ")
			title = formatter.Bold(title)
		}
		b.WriteString("  " + marker + title + "\n")
	}

	return b.String()
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "" }
func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}
