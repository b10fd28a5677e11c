// Package export writes the filtered rows of a list view to CSV, XLSX,
// PDF, or a printable HTML document. Every format receives the same
// projected rows; none of them touch the controller's state.
package export

// Projection maps an entity collection onto the flat column set its
// exports use.
type Projection[T any] struct {
	// Entity names the collection, e.g. "Estimates". It becomes the
	// output file's base name and the XLSX sheet name.
	Entity string

	// Headers are the column titles, in order.
	Headers []string

	// Row projects one record onto the column values, matching Headers.
	Row func(T) []string
}

// Rows applies the projection to every item, preserving order.
func (p Projection[T]) Rows(items []T) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, p.Row(item))
	}
	return rows
}

// Table is a projection already applied to a collection: the shape every
// writer in this package consumes.
type Table struct {
	Entity  string
	Headers []string
	Rows    [][]string
}

// Project builds a Table from a projection and the filtered items.
func Project[T any](p Projection[T], items []T) Table {
	return Table{Entity: p.Entity, Headers: p.Headers, Rows: p.Rows(items)}
}
