package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
	"github.com/ArbeitEmployee/arbeit-cli/internal/session"
	"github.com/spf13/cobra"
)

// newImportCmd bulk-imports catalog items from a CSV file with the
// columns description, long description, rate, tax1, tax2, group.
func newImportCmd(state *SharedState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-items <file.csv>",
		Short: "Bulk-import catalog items from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !state.App.LoggedIn(session.ScopeAdmin) {
				return fmt.Errorf("not logged in; run `arbeit login` first")
			}

			items, err := readItemsCSV(args[0])
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("no items found in %s", args[0])
			}

			n, err := state.App.Admin.ImportItems(cmd.Context(), items)
			if err != nil {
				return fmt.Errorf("importing items: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d item(s).\n", n)
			return nil
		},
	}
	return cmd
}

func readItemsCSV(path string) ([]domain.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var items []domain.Item
	for i, rec := range records {
		if i == 0 && looksLikeHeader(rec) {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("row %d: expected at least description, long description and rate", i+1)
		}
		rate, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad rate %q", i+1, rec[2])
		}
		item := domain.Item{
			Description: rec[0],
			LongDesc:    rec[1],
			Rate:        rate,
		}
		if len(rec) > 3 {
			item.Tax1, _ = strconv.ParseFloat(rec[3], 64)
		}
		if len(rec) > 4 {
			item.Tax2, _ = strconv.ParseFloat(rec[4], 64)
		}
		if len(rec) > 5 {
			item.GroupName = rec[5]
		}
		items = append(items, item)
	}
	return items, nil
}

func looksLikeHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(rec[min(2, len(rec)-1)], 64)
	return err != nil
}
