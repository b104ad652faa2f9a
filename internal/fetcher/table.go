package fetcher

import "strings"

// Table is a parsed tabular source: a header row and the data rows beneath it.
type Table struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable builds a Table and indexes its header. Header cells are trimmed.
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{Header: header, Rows: rows, index: make(map[string]int, len(header))}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}
	return t
}

// Has reports whether the header contains the column.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Lookup returns the first column from names present in the header.
func (t *Table) Lookup(names ...string) (string, bool) {
	for _, n := range names {
		if t.Has(n) {
			return n, true
		}
	}
	return "", false
}

// Value returns the trimmed cell for col in row, or "" when the column is missing
// or the row is short.
func (t *Table) Value(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
