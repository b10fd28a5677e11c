package cli

import (
	"fmt"

	"github.com/ArbeitEmployee/arbeit-cli/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(state *SharedState) *cobra.Command {
	var (
		opts   listOptions
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export <page>",
		Short: "Export one entity page to csv, xlsx, pdf or html",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, ok := findPage(args[0])
			if !ok {
				return fmt.Errorf("unknown page %q (see `arbeit list --help` for the list)", args[0])
			}
			if !state.App.LoggedIn(page.Scope) {
				return fmt.Errorf("not logged in; run `arbeit login%s` first", loginFlagHint(page))
			}

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			// Exports always cover the whole filtered set, never one page.
			opts.PerPage = 0
			table, _, err := page.Table(cmd.Context(), state, opts)
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = state.ExportDir
			}
			path, err := export.Save(dir, f, table)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d row(s) to %s\n", len(table.Rows), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "free-text search")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "categorical filter value")
	cmd.Flags().StringVar(&format, "format", "csv", "csv, xlsx, pdf or html")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: current directory)")
	return cmd
}
