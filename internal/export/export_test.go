package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Entity:  "Estimates",
		Headers: []string{"Number", "Customer", "Status", "Total"},
		Rows: [][]string{
			{"EST-001", "Acme, Inc.", "Sent", "180.00"},
			{"EST-002", `Widgets "R" Us`, "Draft", "95.50"},
		},
	}
}

func TestProjection_RowsPreserveOrder(t *testing.T) {
	p := Projection[string]{
		Entity:  "Things",
		Headers: []string{"Value"},
		Row:     func(s string) []string { return []string{s} },
	}
	tbl := Project(p, []string{"c", "a", "b"})
	assert.Equal(t, [][]string{{"c"}, {"a"}, {"b"}}, tbl.Rows)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Number,Customer,Status,Total", lines[0])
	// Commas and quotes force quoting.
	assert.Equal(t, `EST-001,"Acme, Inc.",Sent,180.00`, lines[1])
	assert.Contains(t, lines[2], `"Widgets ""R"" Us"`)
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Estimates")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Number", "Customer", "Status", "Total"}, rows[0])
	assert.Equal(t, "Acme, Inc.", rows[1][1])
}

func TestWritePDF_ProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleTable()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePrintHTML(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, WritePrintHTML(&buf, sampleTable(), now))

	out := buf.String()
	assert.Contains(t, out, "<h2>Estimates</h2>")
	assert.Contains(t, out, "<th>Customer</th>")
	assert.Contains(t, out, "<td>EST-001</td>")
	assert.Contains(t, out, "Printed on 2026-03-14 09:30")
	// Values are escaped.
	assert.Contains(t, out, "Widgets &#34;R&#34; Us")
}

func TestSave_WritesNamedFile(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, FormatCSV, sampleTable())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Estimates.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "EST-001")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}
