package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// statusStyles maps backend status strings onto the palette. Statuses
// shared across entities (Open, Draft, Sent...) deliberately share a
// color so the pages look uniform.
var statusStyles = map[string]lipgloss.Style{
	"Not Started":       StyleDim,
	"In Progress":       StyleYellow,
	"On Hold":           StylePurple,
	"Testing":           StyleBlue,
	"Awaiting Feedback": StyleBlue,
	"Complete":          StyleGreen,
	"Finished":          StyleGreen,
	"Cancelled":         StyleRed,
	"Open":              StyleYellow,
	"Answered":          StyleBlue,
	"Closed":            StyleDim,
	"Draft":             StyleDim,
	"Sent":              StyleBlue,
	"Revised":           StyleBlue,
	"Expired":           StyleRed,
	"Declined":          StyleRed,
	"Accepted":          StyleGreen,
	"Unpaid":            StyleRed,
	"Partiallypaid":     StyleYellow,
	"Overdue":           StyleRed,
	"Paid":              StyleGreen,
}

// StatusPill renders a status string in its conventional color.
func StatusPill(status string) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(status)
	}
	return StyleFg.Render(status)
}

// ActiveBadge renders a staff active flag.
func ActiveBadge(active bool) string {
	if active {
		return StyleGreen.Render("● active")
	}
	return StyleDim.Render("○ inactive")
}

// Money formats an amount with two decimals and thousands grouping.
func Money(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)
	out := strings.Join(groups, ",") + frac
	if neg {
		out = "-" + out
	}
	return out
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
