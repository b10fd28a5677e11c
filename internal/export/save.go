package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Format selects an output writer.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatXLSX  Format = "xlsx"
	FormatPDF   Format = "pdf"
	FormatPrint Format = "html"
)

// Formats lists the accepted format names for flag validation.
var Formats = []Format{FormatCSV, FormatXLSX, FormatPDF, FormatPrint}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want csv, xlsx, pdf or html)", s)
}

// Save writes the table to <dir>/<Entity>.<ext> and returns the path.
func Save(dir string, format Format, t Table) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, t.Entity+"."+string(format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		err = WriteCSV(f, t)
	case FormatXLSX:
		err = WriteXLSX(f, t)
	case FormatPDF:
		err = WritePDF(f, t)
	case FormatPrint:
		err = WritePrintHTML(f, t, time.Now())
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
