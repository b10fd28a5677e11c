package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// WritePDF renders the table into a landscape A4 document with a header
// band and zebra-striped rows. Columns share the printable width evenly;
// long values are truncated rather than wrapped.
func WritePDF(w io.Writer, t Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(t.Entity, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, t.Entity, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	cols := len(t.Headers)
	if cols == 0 {
		if err := pdf.Output(w); err != nil {
			return fmt.Errorf("writing pdf: %w", err)
		}
		return nil
	}
	colW := usable / float64(cols)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(52, 73, 94)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range t.Headers {
		pdf.CellFormat(colW, 8, clipCell(pdf, h, colW), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range t.Rows {
		fill := i%2 == 1
		pdf.SetFillColor(240, 240, 240)
		for j := 0; j < cols; j++ {
			v := ""
			if j < len(row) {
				v = row[j]
			}
			pdf.CellFormat(colW, 7, clipCell(pdf, v, colW), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// clipCell trims a value until it fits the column width, appending an
// ellipsis when anything was cut.
func clipCell(pdf *fpdf.Fpdf, s string, colW float64) string {
	const pad = 2
	if pdf.GetStringWidth(s) <= colW-pad {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > colW-pad {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
