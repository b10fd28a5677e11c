package export

import (
	"fmt"
	"html"
	"io"
	"strings"
	"time"
)

// WritePrintHTML writes a self-contained printable HTML table plus a
// "Printed on" timestamp. now is injectable for tests.
func WritePrintHTML(w io.Writer, t Table, now time.Time) error {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(t.Entity))
	b.WriteString("<style>table{border-collapse:collapse;width:100%}th,td{border:1px solid #999;padding:4px 8px;text-align:left}th{background:#eee}</style>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(t.Entity))

	b.WriteString("<table>\n<thead><tr>")
	for _, h := range t.Headers {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(h))
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, v := range row {
			fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(v))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")

	fmt.Fprintf(&b, "<p>Printed on %s</p>\n", now.Format("2006-01-02 15:04"))
	b.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}
