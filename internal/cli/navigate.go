package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// refreshViewMsg tells every view on the stack to reload its data.
// Broadcast after any mutation so list views under a form refetch.
type refreshViewMsg struct{}

// noticeMsg carries a transient success or failure line shown above the
// active view. Any keypress dismisses it.
type noticeMsg struct {
	text  string
	isErr bool
}

// savedMsg reports a completed create or update. The appModel shows the
// notice and broadcasts a data reload, so the refetch always runs after
// the write has finished.
type savedMsg struct {
	text string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg requests application shutdown.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// refreshViews returns a tea.Cmd that broadcasts a data reload.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// notify returns a tea.Cmd that shows a success notice.
func notify(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

// notifyErr returns a tea.Cmd that shows a failure notice.
func notifyErr(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text, isErr: true} }
}
