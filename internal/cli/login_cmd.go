package cli

import (
	"fmt"

	"github.com/ArbeitEmployee/arbeit-cli/internal/api"
	"github.com/ArbeitEmployee/arbeit-cli/internal/session"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLoginCmd(state *SharedState) *cobra.Command {
	var (
		asClient bool
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the admin or client portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := session.ScopeAdmin
			scopeName := "admin"
			if asClient {
				scope = session.ScopeClient
				scopeName = "client"
			}

			if email == "" || password == "" {
				if !state.App.IsInteractive() {
					return fmt.Errorf("--email and --password are required when not on a terminal")
				}
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().Title("Email").Value(&email).Validate(validateRequired),
						huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).
							Value(&password).Validate(validateRequired),
					),
				).WithTheme(arbeitHuhTheme())
				if err := form.Run(); err != nil {
					return err
				}
			}

			token, err := api.Login(cmd.Context(), state.App.Login, scopeName, email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := state.App.Store.SetToken(scope, token); err != nil {
				return fmt.Errorf("storing session: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in to the %s portal.\n", scopeName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asClient, "client", false, "log in to the client portal")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(state *SharedState) *cobra.Command {
	var asClient bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := session.ScopeAdmin
			scopeName := "admin"
			if asClient {
				scope = session.ScopeClient
				scopeName = "client"
			}
			if err := state.App.Store.ClearToken(scope); err != nil {
				return fmt.Errorf("clearing session: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged out of the %s portal.\n", scopeName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asClient, "client", false, "log out of the client portal")
	return cmd
}
