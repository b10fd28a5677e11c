package cli

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ArbeitEmployee/arbeit-cli/internal/api"
	"github.com/ArbeitEmployee/arbeit-cli/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// newTestState wires a SharedState against an httptest backend with both
// scopes logged in and a throwaway session database.
func newTestState(t *testing.T, handler http.Handler) *SharedState {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	db, err := session.OpenDB(filepath.Join(t.TempDir(), "arbeit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := session.NewStore(db)
	require.NoError(t, store.SetToken(session.ScopeAdmin, "admin-token"))
	require.NoError(t, store.SetToken(session.ScopeClient, "client-token"))

	cfg := api.DefaultConfig()
	cfg.BaseURL = srv.URL

	adminClient := api.NewClient(cfg, session.NewScopedSession(store, session.ScopeAdmin), api.NoopObserver{})
	clientClient := api.NewClient(cfg, session.NewScopedSession(store, session.ScopeClient), api.NoopObserver{})

	return &SharedState{
		App: &App{
			Admin:         api.NewAdminAPI(adminClient),
			Client:        api.NewClientAPI(clientClient),
			Store:         store,
			Login:         api.NewClient(cfg, nil, api.NoopObserver{}),
			IsInteractive: func() bool { return false },
		},
		ExportDir: t.TempDir(),
		Width:     100,
		Height:    30,
	}
}

// collect runs a tea.Cmd synchronously, flattening batches into the
// messages they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
