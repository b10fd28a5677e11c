package cli

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ArbeitEmployee/arbeit-cli/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectsHandler(names ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items := make([]map[string]any, 0, len(names))
		for i, n := range names {
			items = append(items, map[string]any{
				"_id": string(rune('a' + i)), "name": n, "status": "In Progress",
			})
		}
		json.NewEncoder(w).Encode(items)
	})
}

// load runs the view's Init fetch synchronously and applies the result.
func load[T any](t *testing.T, v *entityListView[T]) {
	t.Helper()
	msgs := collect(v.Init())
	require.NotEmpty(t, msgs)
	for _, m := range msgs {
		_, _ = v.Update(m)
	}
	require.NoError(t, v.loadErr)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestEntityList_FetchPopulatesController(t *testing.T) {
	state := newTestState(t, projectsHandler("Alpha", "Beta", "Gamma"))
	v := newEntityListView(state, projectsPage(state))
	load(t, v)

	assert.Len(t, v.ctrl.Items(), 3)
	assert.Contains(t, v.View(), "Alpha")
}

func TestEntityList_StaleFetchDiscarded(t *testing.T) {
	state := newTestState(t, projectsHandler("Alpha"))
	v := newEntityListView(state, projectsPage(state))

	stale := v.ctrl.BeginFetch()
	fresh := v.ctrl.BeginFetch()
	require.True(t, v.ctrl.ApplyFetch(fresh, nil, nil))
	assert.False(t, v.ctrl.ApplyFetch(stale, nil, nil))
}

func TestEntityList_SearchKeyEntersInputMode(t *testing.T) {
	state := newTestState(t, projectsHandler("Alpha", "Beta"))
	v := newEntityListView(state, projectsPage(state))
	load(t, v)

	_, _ = v.Update(keyPress('/'))
	assert.True(t, v.Searching())

	// Typed characters narrow the list instead of triggering shortcuts.
	_, _ = v.Update(keyPress('b'))
	assert.Equal(t, "b", v.ctrl.SearchTerm())
	assert.Len(t, v.ctrl.Filtered(), 1)

	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.Searching())
	assert.Equal(t, "b", v.ctrl.SearchTerm())
}

func TestEntityList_SelectionKeys(t *testing.T) {
	state := newTestState(t, projectsHandler("Alpha", "Beta", "Gamma"))
	v := newEntityListView(state, projectsPage(state))
	load(t, v)

	_, _ = v.Update(keyPress(' '))
	assert.Equal(t, 1, v.ctrl.SelectionCount())

	// Select-page replaces the selection with the whole page.
	_, _ = v.Update(keyPress('a'))
	assert.Equal(t, 3, v.ctrl.SelectionCount())
	assert.True(t, v.ctrl.PageFullySelected())

	// A second press clears it.
	_, _ = v.Update(keyPress('a'))
	assert.Equal(t, 0, v.ctrl.SelectionCount())
}

func TestEntityList_PerPagePersistsAcrossViews(t *testing.T) {
	state := newTestState(t, projectsHandler("Alpha"))
	v := newEntityListView(state, projectsPage(state))
	load(t, v)

	require.Equal(t, 10, v.ctrl.PerPage())
	_, _ = v.Update(keyPress('p'))
	assert.Equal(t, 25, v.ctrl.PerPage())

	// A freshly opened view picks the stored preference up.
	v2 := newEntityListView(state, projectsPage(state))
	assert.Equal(t, 25, v2.ctrl.PerPage())
}

func TestEntityList_CompactTogglesColumns(t *testing.T) {
	state := newTestState(t, projectsHandler("Alpha"))
	v := newEntityListView(state, projectsPage(state))
	load(t, v)

	full := len(v.visibleColumns())
	_, _ = v.Update(keyPress('v'))
	assert.Less(t, len(v.visibleColumns()), full)
}

func TestEntityList_DeleteKeyIgnoredWithoutPermission(t *testing.T) {
	state := newTestState(t, projectsHandler("Alpha"))
	cfg := clientEstimatesPage(state)
	require.False(t, cfg.CanDelete)

	v := newEntityListView(state, cfg)
	load(t, v)
	_, cmd := v.Update(keyPress('x'))
	assert.Nil(t, cmd)
}

func TestEntityList_DeleteSuccessClearsSelection(t *testing.T) {
	state := newTestState(t, projectsHandler("Alpha", "Beta", "Gamma"))
	v := newEntityListView(state, projectsPage(state))
	load(t, v)

	_, _ = v.Update(keyPress('a'))
	require.Equal(t, 3, v.ctrl.SelectionCount())

	_, cmd := v.Update(deleteDoneMsg{pageKey: "projects", n: 3})
	assert.Equal(t, 0, v.ctrl.SelectionCount())

	// The page announces the deletion and refetches.
	var noticed bool
	for _, m := range collect(cmd) {
		if n, ok := m.(noticeMsg); ok {
			noticed = true
			assert.Contains(t, n.text, "3 record(s)")
			assert.False(t, n.isErr)
		}
	}
	assert.True(t, noticed)
}

func TestEntityList_DeleteFailureKeepsSelection(t *testing.T) {
	state := newTestState(t, projectsHandler("Alpha", "Beta"))
	v := newEntityListView(state, projectsPage(state))
	load(t, v)

	_, _ = v.Update(keyPress('a'))
	require.Equal(t, 2, v.ctrl.SelectionCount())

	_, cmd := v.Update(deleteDoneMsg{pageKey: "projects", n: 2, err: assert.AnError})
	assert.Equal(t, 2, v.ctrl.SelectionCount())

	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	n, ok := msgs[0].(noticeMsg)
	require.True(t, ok)
	assert.True(t, n.isErr)
}

func TestEntityList_UnauthorizedRendersLoginHint(t *testing.T) {
	state := newTestState(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"jwt expired"}`, http.StatusUnauthorized)
	}))
	v := newEntityListView(state, projectsPage(state))

	for _, m := range collect(v.Init()) {
		_, _ = v.Update(m)
	}

	require.Error(t, v.loadErr)
	assert.Contains(t, v.View(), "arbeit login")
	// The 401 also dropped the stored admin token.
	assert.Empty(t, state.App.Store.Token(session.ScopeAdmin))
}
