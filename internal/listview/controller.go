// Package listview implements the data-table controller shared by every
// entity page: client-side text and category filtering, pagination,
// row selection for bulk actions, and a sequence guard for overlapping
// fetches. The controller never talks to the network itself; views feed
// it fetched collections and read slices back out.
package listview

import "strings"

// PageSizes is the fixed set of entries-per-page choices offered by the
// page-size selector.
var PageSizes = []int{5, 10, 25, 50, 100}

// Config parameterizes a Controller for one entity type.
type Config[T any] struct {
	// ID returns the record's stable unique identifier.
	ID func(T) string

	// SearchFields projects the record onto the strings the free-text
	// search matches against.
	SearchFields func(T) []string

	// Category returns the record's categorical field (status, group,
	// department). Nil when the page has no categorical filter.
	Category func(T) string

	// DefaultPerPage overrides the initial page size. Zero means 10.
	DefaultPerPage int
}

// Controller owns the list-view state for one fetched collection.
type Controller[T any] struct {
	cfg Config[T]

	items      []T
	searchTerm string
	filter     string // categorical value, "All" passes everything
	perPage    int
	page       int // 1-based
	selected   map[string]bool
	compact    bool

	fetchSeq uint64
	stats    map[string]int
}

// NewController creates a Controller with the page's defaults: no search
// term, categorical filter "All", page 1, nothing selected.
func NewController[T any](cfg Config[T]) *Controller[T] {
	perPage := cfg.DefaultPerPage
	if perPage <= 0 {
		perPage = 10
	}
	return &Controller[T]{
		cfg:      cfg,
		items:    []T{},
		filter:   "All",
		perPage:  perPage,
		page:     1,
		selected: make(map[string]bool),
	}
}

// ── fetch sequencing ────────────────────────────────────────────────────────

// BeginFetch registers a new in-flight fetch and returns its sequence
// number. Responses carry the number back to ApplyFetch; anything but the
// latest issued number is discarded, so rapid search edits cannot let a
// slow early response overwrite a later one.
func (c *Controller[T]) BeginFetch() uint64 {
	c.fetchSeq++
	return c.fetchSeq
}

// ApplyFetch replaces the collection if seq is still the latest fetch.
// It reports whether the result was applied.
func (c *Controller[T]) ApplyFetch(seq uint64, items []T, stats map[string]int) bool {
	if seq != c.fetchSeq {
		return false
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.stats = stats
	return true
}

// Items returns the full fetched collection.
func (c *Controller[T]) Items() []T { return c.items }

// Stats returns the per-status summary counts from the last applied
// fetch, when the endpoint provided one.
func (c *Controller[T]) Stats() map[string]int { return c.stats }

// ── filtering and pagination ────────────────────────────────────────────────

// SetSearchTerm updates the free-text query and resets to page 1.
func (c *Controller[T]) SetSearchTerm(term string) {
	if term == c.searchTerm {
		return
	}
	c.searchTerm = term
	c.page = 1
}

// SearchTerm returns the current free-text query.
func (c *Controller[T]) SearchTerm() string { return c.searchTerm }

// SetFilter selects a categorical filter value. The current page index is
// deliberately left alone; only search and page-size changes reset it.
func (c *Controller[T]) SetFilter(value string) {
	if value == "" {
		value = "All"
	}
	c.filter = value
}

// Filter returns the selected categorical value.
func (c *Controller[T]) Filter() string { return c.filter }

// SetPerPage changes the page size and resets to page 1.
func (c *Controller[T]) SetPerPage(n int) {
	if n <= 0 || n == c.perPage {
		return
	}
	c.perPage = n
	c.page = 1
}

// PerPage returns the current page size.
func (c *Controller[T]) PerPage() int { return c.perPage }

// CyclePerPage advances to the next size in PageSizes, wrapping around.
func (c *Controller[T]) CyclePerPage() {
	for i, n := range PageSizes {
		if n == c.perPage {
			c.SetPerPage(PageSizes[(i+1)%len(PageSizes)])
			return
		}
	}
	c.SetPerPage(PageSizes[0])
}

// Filtered returns the items matching the current search term and
// categorical filter, in fetch order.
func (c *Controller[T]) Filtered() []T {
	return Filter(c.items, c.searchTerm, c.filter, c.cfg.SearchFields, c.cfg.Category)
}

// Page returns the current page slice of the filtered set.
func (c *Controller[T]) Page() []T {
	return Paginate(c.Filtered(), c.perPage, c.page)
}

// CurrentPage returns the 1-based page index.
func (c *Controller[T]) CurrentPage() int { return c.page }

// TotalPages returns the page count for the current filtered set.
func (c *Controller[T]) TotalPages() int {
	return TotalPages(len(c.Filtered()), c.perPage)
}

// SetPage moves to a page, clamped to the valid range.
func (c *Controller[T]) SetPage(n int) {
	max := c.TotalPages()
	if max < 1 {
		max = 1
	}
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	c.page = n
}

// NextPage and PrevPage step the page index within bounds.
func (c *Controller[T]) NextPage() { c.SetPage(c.page + 1) }
func (c *Controller[T]) PrevPage() { c.SetPage(c.page - 1) }

// ── selection ───────────────────────────────────────────────────────────────

// ToggleSelection flips membership of id in the selected set.
func (c *Controller[T]) ToggleSelection(id string) {
	if c.selected[id] {
		delete(c.selected, id)
		return
	}
	c.selected[id] = true
}

// IsSelected reports whether id is selected.
func (c *Controller[T]) IsSelected(id string) bool { return c.selected[id] }

// SelectedIDs returns the selected ids in fetch order.
func (c *Controller[T]) SelectedIDs() []string {
	ids := make([]string, 0, len(c.selected))
	for _, item := range c.items {
		if id := c.cfg.ID(item); c.selected[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// SelectionCount returns how many rows are selected.
func (c *Controller[T]) SelectionCount() int { return len(c.selected) }

// PageFullySelected reports whether the page checkbox should render
// checked: the selection is exactly as large as the visible page and the
// page is non-empty. This is the checked-state derivation the pages use.
func (c *Controller[T]) PageFullySelected() bool {
	page := c.Page()
	return len(c.selected) == len(page) && len(page) > 0
}

// ToggleSelectPage implements the page-level select-all checkbox: when
// the page is not fully selected it REPLACES the selection with exactly
// the current page's ids; otherwise it clears the selection. Selection is
// never unioned across pages.
func (c *Controller[T]) ToggleSelectPage() {
	if c.PageFullySelected() {
		c.ClearSelection()
		return
	}
	c.selected = make(map[string]bool)
	for _, item := range c.Page() {
		c.selected[c.cfg.ID(item)] = true
	}
}

// ClearSelection empties the selected set.
func (c *Controller[T]) ClearSelection() {
	c.selected = make(map[string]bool)
}

// ── presentation toggles ────────────────────────────────────────────────────

// ToggleCompact flips the compact column mode. Purely presentational.
func (c *Controller[T]) ToggleCompact() { c.compact = !c.compact }

// Compact reports whether the compact column subset is active.
func (c *Controller[T]) Compact() bool { return c.compact }

// ── pure helpers ────────────────────────────────────────────────────────────

// Filter keeps an item when the categorical filter is "All" or equals the
// item's category, and, for a non-empty term, at least one search field
// contains the term as a case-insensitive substring. Order is preserved.
func Filter[T any](items []T, term, category string, fields func(T) []string, cat func(T) string) []T {
	lower := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if category != "All" && cat != nil && cat(item) != category {
			continue
		}
		if lower != "" && !matchesTerm(item, lower, fields) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesTerm[T any](item T, lowerTerm string, fields func(T) []string) bool {
	if fields == nil {
		return true
	}
	for _, f := range fields(item) {
		if strings.Contains(strings.ToLower(f), lowerTerm) {
			return true
		}
	}
	return false
}

// Paginate returns the page slice: items[(page-1)*perPage : page*perPage],
// bounds-checked.
func Paginate[T any](items []T, perPage, page int) []T {
	if perPage <= 0 || page < 1 {
		return []T{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns ceil(count/perPage), minimum 0.
func TotalPages(count, perPage int) int {
	if perPage <= 0 || count <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}
