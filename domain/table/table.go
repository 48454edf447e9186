package table

import "strings"

// Row maps a column name to a single cell value. Cells travel as trimmed
// strings; numeric interpretation is deferred to whoever needs it.
type Row map[string]string

// Table is an in-memory row set with an ordered header list. The header order
// is the column order of the source file and is preserved through the
// pipeline so output stays deterministic.
type Table struct {
	Headers []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(headers ...string) *Table {
	return &Table{Headers: headers}
}

// Append adds a row, trimming each cell.
func (t *Table) Append(row Row) {
	clean := make(Row, len(row))
	for k, v := range row {
		clean[k] = strings.TrimSpace(v)
	}
	t.Rows = append(t.Rows, clean)
}

// HasColumn reports whether the table carries the given column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Get returns the cell value for a column, or "" when the row has no value.
func (r Row) Get(name string) string {
	return r[name]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
