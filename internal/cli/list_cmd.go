package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ArbeitEmployee/arbeit-cli/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func pageKeys() []string {
	var keys []string
	for _, p := range allPages() {
		keys = append(keys, p.Key)
	}
	sort.Strings(keys)
	return keys
}

func newListCmd(state *SharedState) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list <page>",
		Short: "Print one entity page as a table",
		Long: "Print one entity page as a table.\n\nPages: " +
			strings.Join(pageKeys(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, ok := findPage(args[0])
			if !ok {
				return fmt.Errorf("unknown page %q (see --help for the list)", args[0])
			}
			if !state.App.LoggedIn(page.Scope) {
				return fmt.Errorf("not logged in; run `arbeit login%s` first", loginFlagHint(page))
			}

			table, total, err := page.Table(cmd.Context(), state, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.RenderTable(table.Headers, table.Rows, 0))
			if opts.PerPage > 0 {
				fmt.Fprintf(out, "%d of %d row(s)\n", len(table.Rows), total)
			} else {
				fmt.Fprintf(out, "%d row(s)\n", total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "free-text search")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "categorical filter value (status, group...)")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "rows per page (0 = all)")
	return cmd
}

func loginFlagHint(page pageRef) string {
	if strings.HasPrefix(page.Key, "client-") {
		return " --client"
	}
	return ""
}
