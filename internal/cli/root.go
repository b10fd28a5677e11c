package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "arbeit" command and registers all
// subcommands. A bare invocation on a terminal launches the TUI.
func NewRootCmd(state *SharedState) *cobra.Command {
	root := &cobra.Command{
		Use:   "arbeit",
		Short: "Terminal admin and client portal for the ARBEIT CRM",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !state.App.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(state)
		},
	}

	root.AddCommand(
		newLoginCmd(state),
		newLogoutCmd(state),
		newListCmd(state),
		newExportCmd(state),
		newImportCmd(state),
	)

	return root
}

func runTUI(state *SharedState) error {
	p := tea.NewProgram(newAppModel(state), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
