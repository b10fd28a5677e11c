package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ArbeitEmployee/arbeit-cli/internal/api"
	"github.com/ArbeitEmployee/arbeit-cli/internal/cli/formatter"
	"github.com/ArbeitEmployee/arbeit-cli/internal/export"
	"github.com/ArbeitEmployee/arbeit-cli/internal/listview"
	"github.com/ArbeitEmployee/arbeit-cli/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// column describes one table column of a list page. Compact columns stay
// visible when the condensed layout is toggled on.
type column[T any] struct {
	Title   string
	Compact bool
	Cell    func(T) string
}

// extraAction is a page-specific row action beyond the shared set, e.g.
// toggling a staff member or accepting an estimate.
type extraAction[T any] struct {
	Key  string
	Help string
	Run  func(*SharedState, T) tea.Cmd
}

// pageConfig wires one entity type into the generic list view: where its
// data comes from, how rows render, and which mutations the page offers.
type pageConfig[T any] struct {
	// Key identifies the page for stored view preferences and names
	// export files.
	Key   string
	Title string

	Resource *api.Resource[T]
	List     listview.Config[T]

	// CategoryLabel and Categories drive the categorical filter. An
	// empty Categories slice disables the f key.
	CategoryLabel string
	Categories    []string

	Columns    []column[T]
	Projection export.Projection[T]

	// NewForm and EditForm build the create/edit wizards. Nil disables
	// the corresponding key.
	NewForm  func(*SharedState) View
	EditForm func(*SharedState, T) View

	// CanDelete enables x and X. Client-portal pages leave it off.
	CanDelete bool

	Extra []extraAction[T]
}

// listResultMsg carries a completed fetch back to its list view. The
// sequence number lets the controller discard stale responses.
type listResultMsg[T any] struct {
	pageKey string
	seq     uint64
	env     api.ListEnvelope[T]
	err     error
}

// deleteDoneMsg reports a finished delete back to its page. Selection is
// only cleared on success; a failed request leaves it intact.
type deleteDoneMsg struct {
	pageKey string
	n       int
	err     error
}

// entityListView renders one entity collection as a filterable,
// paginated table with selection and bulk actions.
type entityListView[T any] struct {
	state *SharedState
	cfg   pageConfig[T]
	ctrl  *listview.Controller[T]

	search    textinput.Model
	searching bool
	cursor    int
	loading   bool
	loadErr   error
}

func newEntityListView[T any](state *SharedState, cfg pageConfig[T]) *entityListView[T] {
	listCfg := cfg.List
	prefs := state.App.Store.Prefs(cfg.Key)
	if prefs.EntriesPerPage > 0 {
		listCfg.DefaultPerPage = prefs.EntriesPerPage
	}

	ctrl := listview.NewController(listCfg)
	if prefs.Compact {
		ctrl.ToggleCompact()
	}

	search := textinput.New()
	search.Placeholder = "search..."
	search.Prompt = "/ "
	search.CharLimit = 80

	return &entityListView[T]{
		state:  state,
		cfg:    cfg,
		ctrl:   ctrl,
		search: search,
	}
}

func (v *entityListView[T]) Init() tea.Cmd {
	return v.fetch()
}

// fetch issues a list request tagged with the controller's next sequence
// number.
func (v *entityListView[T]) fetch() tea.Cmd {
	v.loading = true
	seq := v.ctrl.BeginFetch()
	res := v.cfg.Resource
	pageKey := v.cfg.Key
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		env, err := res.List(ctx, api.Query{})
		return listResultMsg[T]{pageKey: pageKey, seq: seq, env: env, err: err}
	}
}

func (v *entityListView[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case listResultMsg[T]:
		if msg.pageKey != v.cfg.Key {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.loadErr = msg.err
			return v, nil
		}
		v.loadErr = nil
		v.ctrl.ApplyFetch(msg.seq, msg.env.Items, msg.env.Stats)
		v.clampCursor()
		return v, nil

	case deleteDoneMsg:
		if msg.pageKey != v.cfg.Key {
			return v, nil
		}
		if msg.err != nil {
			return v, notifyErr("Delete failed: " + describeErr(msg.err))
		}
		v.ctrl.ClearSelection()
		return v, tea.Batch(
			notify(fmt.Sprintf("Deleted %d record(s)", msg.n)),
			v.fetch(),
		)

	case refreshViewMsg:
		return v, v.fetch()

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *entityListView[T]) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.ctrl.SetSearchTerm(v.search.Value())
	v.clampCursor()
	return v, cmd
}

func (v *entityListView[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {

	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case "down", "j":
		if v.cursor < len(v.ctrl.Page())-1 {
			v.cursor++
		}
		return v, nil

	case "/":
		v.searching = true
		v.search.Focus()
		return v, textinput.Blink

	case "f":
		if len(v.cfg.Categories) > 0 {
			v.cycleFilter()
		}
		return v, nil

	case "[":
		v.ctrl.PrevPage()
		v.clampCursor()
		return v, nil

	case "]":
		v.ctrl.NextPage()
		v.clampCursor()
		return v, nil

	case "p":
		v.ctrl.CyclePerPage()
		v.clampCursor()
		v.savePrefs()
		return v, nil

	case " ":
		if item, ok := v.itemUnderCursor(); ok {
			v.ctrl.ToggleSelection(v.cfg.List.ID(item))
		}
		return v, nil

	case "a":
		v.ctrl.ToggleSelectPage()
		return v, nil

	case "v":
		v.ctrl.ToggleCompact()
		v.savePrefs()
		return v, nil

	case "r":
		return v, v.fetch()

	case "e":
		return v, v.openExportWizard()

	case "n":
		if v.cfg.NewForm != nil {
			return v, pushView(v.cfg.NewForm(v.state))
		}
		return v, nil

	case "enter":
		if v.cfg.EditForm != nil {
			if item, ok := v.itemUnderCursor(); ok {
				return v, pushView(v.cfg.EditForm(v.state, item))
			}
		}
		return v, nil

	case "x":
		if v.cfg.CanDelete {
			if item, ok := v.itemUnderCursor(); ok {
				return v, v.openDeleteWizard([]string{v.cfg.List.ID(item)})
			}
		}
		return v, nil

	case "X":
		if v.cfg.CanDelete && v.ctrl.SelectionCount() > 0 {
			return v, v.openDeleteWizard(v.ctrl.SelectedIDs())
		}
		return v, nil
	}

	for _, a := range v.cfg.Extra {
		if msg.String() == a.Key {
			if item, ok := v.itemUnderCursor(); ok {
				return v, a.Run(v.state, item)
			}
			return v, nil
		}
	}

	return v, nil
}

func (v *entityListView[T]) itemUnderCursor() (T, bool) {
	page := v.ctrl.Page()
	if v.cursor < 0 || v.cursor >= len(page) {
		var zero T
		return zero, false
	}
	return page[v.cursor], true
}

func (v *entityListView[T]) clampCursor() {
	if n := len(v.ctrl.Page()); v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *entityListView[T]) cycleFilter() {
	options := append([]string{"All"}, v.cfg.Categories...)
	current := v.ctrl.Filter()
	for i, o := range options {
		if o == current {
			v.ctrl.SetFilter(options[(i+1)%len(options)])
			v.clampCursor()
			return
		}
	}
	v.ctrl.SetFilter("All")
}

func (v *entityListView[T]) savePrefs() {
	_ = v.state.App.Store.SetPrefs(v.cfg.Key, session.ViewPrefs{
		EntriesPerPage: v.ctrl.PerPage(),
		Compact:        v.ctrl.Compact(),
	})
}

// ── wizards ─────────────────────────────────────────────────────────────────

func (v *entityListView[T]) openDeleteWizard(ids []string) tea.Cmd {
	confirmed := false
	prompt := fmt.Sprintf("Delete %d record(s)? This cannot be undone.", len(ids))
	res := v.cfg.Resource
	pageKey := v.cfg.Key
	wiz := newWizardView(v.state, "Delete", confirmForm(prompt, &confirmed), func() tea.Cmd {
		if !confirmed {
			return nil
		}
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			err := res.BulkDelete(ctx, ids)
			return deleteDoneMsg{pageKey: pageKey, n: len(ids), err: err}
		}
	})
	return pushView(wiz)
}

func (v *entityListView[T]) openExportWizard() tea.Cmd {
	format := string(export.FormatCSV)
	options := make([]huh.Option[string], 0, len(export.Formats))
	for _, f := range export.Formats {
		options = append(options, huh.NewOption(strings.ToUpper(string(f)), string(f)))
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Export format").
				Options(options...).
				Value(&format),
		),
	).WithTheme(arbeitHuhTheme()).WithShowHelp(false)

	// Export covers the filtered set, all pages, not just the visible one.
	items := v.ctrl.Filtered()
	proj := v.cfg.Projection
	dir := v.state.ExportDir
	wiz := newWizardView(v.state, "Export", form, func() tea.Cmd {
		return func() tea.Msg {
			path, err := export.Save(dir, export.Format(format), export.Project(proj, items))
			if err != nil {
				return noticeMsg{text: "Export failed: " + err.Error(), isErr: true}
			}
			return noticeMsg{text: "Exported to " + path}
		}
	})
	return pushView(wiz)
}

// ── rendering ───────────────────────────────────────────────────────────────

func (v *entityListView[T]) View() string {
	var b strings.Builder

	b.WriteString("  " + formatter.Header(v.cfg.Title) + "\n")
	if stats := v.ctrl.Stats(); len(stats) > 0 {
		b.WriteString("  " + formatter.Dim(renderStats(stats, v.cfg.Categories)) + "\n")
	}
	b.WriteString("  " + v.renderFilterLine() + "\n\n")

	switch {
	case v.loading && len(v.ctrl.Items()) == 0:
		b.WriteString("  " + formatter.Dim("loading...") + "\n")
	case v.loadErr != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+describeErr(v.loadErr)) + "\n")
	default:
		b.WriteString(v.renderTable())
	}

	b.WriteString("\n  " + v.renderPager())
	return b.String()
}

func (v *entityListView[T]) renderFilterLine() string {
	var parts []string
	if v.searching {
		parts = append(parts, v.search.View())
	} else if term := v.ctrl.SearchTerm(); term != "" {
		parts = append(parts, formatter.Dim("search: ")+term)
	}
	if len(v.cfg.Categories) > 0 {
		label := v.cfg.CategoryLabel
		if label == "" {
			label = "filter"
		}
		parts = append(parts, formatter.Dim(label+": ")+v.ctrl.Filter())
	}
	if n := v.ctrl.SelectionCount(); n > 0 {
		parts = append(parts, formatter.StyleYellow.Render(fmt.Sprintf("%d selected", n)))
	}
	if len(parts) == 0 {
		return formatter.Dim("press / to search")
	}
	return strings.Join(parts, "   ")
}

func (v *entityListView[T]) visibleColumns() []column[T] {
	if !v.ctrl.Compact() {
		return v.cfg.Columns
	}
	cols := make([]column[T], 0, len(v.cfg.Columns))
	for _, c := range v.cfg.Columns {
		if c.Compact {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return v.cfg.Columns
	}
	return cols
}

func (v *entityListView[T]) renderTable() string {
	page := v.ctrl.Page()
	if len(page) == 0 {
		return "  " + formatter.Dim("No records found.") + "\n"
	}

	cols := v.visibleColumns()
	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, " ")
	for _, c := range cols {
		headers = append(headers, c.Title)
	}

	rows := make([][]string, 0, len(page))
	for i, item := range page {
		marker := " "
		if v.ctrl.IsSelected(v.cfg.List.ID(item)) {
			marker = formatter.StyleGreen.Render("*")
		}
		if i == v.cursor {
			marker = formatter.StyleHeader.Render(">") + marker
		} else {
			marker = " " + marker
		}
		row := make([]string, 0, len(cols)+1)
		row = append(row, marker)
		for _, c := range cols {
			row = append(row, c.Cell(item))
		}
		rows = append(rows, row)
	}

	width := v.state.Width - 4
	if width < 40 {
		width = 40
	}
	return formatter.RenderTable(headers, rows, width)
}

func (v *entityListView[T]) renderPager() string {
	total := v.ctrl.TotalPages()
	if total < 1 {
		total = 1
	}
	pager := fmt.Sprintf("page %d/%d", v.ctrl.CurrentPage(), total)
	pager += formatter.Dim(fmt.Sprintf("  %d per page  %d filtered of %d",
		v.ctrl.PerPage(), len(v.ctrl.Filtered()), len(v.ctrl.Items())))
	if v.loading {
		pager += "  " + formatter.Dim("refreshing...")
	}
	return pager
}

// renderStats shows per-status counts in category display order.
func renderStats(stats map[string]int, order []string) string {
	var parts []string
	for _, name := range order {
		if n, ok := stats[name]; ok {
			parts = append(parts, fmt.Sprintf("%s %d", name, n))
		}
	}
	return strings.Join(parts, " / ")
}

// describeErr maps API sentinels onto the messages the pages show.
func describeErr(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, api.ErrUnauthorized):
		return "Session expired. Run `arbeit login` again."
	case errors.Is(err, api.ErrUnavailable):
		return "Cannot reach the server. Is the backend running?"
	case errors.Is(err, api.ErrTimeout):
		return "The request timed out."
	default:
		return err.Error()
	}
}

func (v *entityListView[T]) ID() ViewID    { return ViewEntityList }
func (v *entityListView[T]) Title() string { return v.cfg.Title }

// Searching reports whether the inline search input owns the keyboard.
func (v *entityListView[T]) Searching() bool { return v.searching }

func (v *entityListView[T]) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("["), key.WithHelp("[ ]", "page")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	}
	if len(v.cfg.Categories) > 0 {
		bindings = append(bindings, key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")))
	}
	if v.cfg.NewForm != nil {
		bindings = append(bindings, key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")))
	}
	if v.cfg.CanDelete {
		bindings = append(bindings, key.NewBinding(key.WithKeys("x"), key.WithHelp("x/X", "delete")))
	}
	for _, a := range v.cfg.Extra {
		bindings = append(bindings, key.NewBinding(key.WithKeys(a.Key), key.WithHelp(a.Key, a.Help)))
	}
	return bindings
}
