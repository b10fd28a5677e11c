package main

import (
	"fmt"
	"os"

	"github.com/ArbeitEmployee/arbeit-cli/internal/api"
	"github.com/ArbeitEmployee/arbeit-cli/internal/cli"
	"github.com/ArbeitEmployee/arbeit-cli/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath, err := session.DefaultDBPath()
	if err != nil {
		return fmt.Errorf("finding session database: %w", err)
	}

	database, err := session.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer database.Close()

	store := session.NewStore(database)

	cfg := api.LoadConfig()
	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}

	adminClient := api.NewClient(cfg, session.NewScopedSession(store, session.ScopeAdmin), observer)
	clientClient := api.NewClient(cfg, session.NewScopedSession(store, session.ScopeClient), observer)
	loginClient := api.NewClient(cfg, nil, observer)

	exportDir := os.Getenv("ARBEIT_EXPORT_DIR")
	if exportDir == "" {
		exportDir = "."
	}

	state := &cli.SharedState{
		App: &cli.App{
			Admin:  api.NewAdminAPI(adminClient),
			Client: api.NewClientAPI(clientClient),
			Store:  store,
			Login:  loginClient,
			IsInteractive: func() bool {
				return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
			},
		},
		ExportDir: exportDir,
	}

	return cli.NewRootCmd(state).Execute()
}
