package cli

import (
	"github.com/ArbeitEmployee/arbeit-cli/internal/api"
	"github.com/ArbeitEmployee/arbeit-cli/internal/session"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Export destination for the e key on list views.
	ExportDir string

	// Terminal dimensions
	Width  int
	Height int
}

// App holds the API surfaces and local store the CLI commands and TUI
// views operate on.
type App struct {
	Admin  *api.AdminAPI
	Client *api.ClientAPI
	Store  *session.Store

	// Login is an unauthenticated client for the credential exchange.
	Login *api.Client

	// IsInteractive reports whether stdin is a terminal; the bare
	// `arbeit` invocation only starts the TUI when it is.
	IsInteractive func() bool
}

// LoggedIn reports whether a token is stored for the scope.
func (a *App) LoggedIn(scope session.Scope) bool {
	return a.Store.Token(scope) != ""
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines), notice line, and the status
// bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
