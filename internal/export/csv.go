package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the table as comma-separated values, headers first.
// The csv writer quotes wherever a value needs it; rows come out in the
// table's (filtered) order.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
