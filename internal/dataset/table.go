package dataset

import (
	"sort"

	"paracli/internal/errors"
)

// Table is an in-memory tabular dataset: an ordered set of named columns
// over rows of string cells. The whole table is held in memory; transforms
// mutate the receiver, so callers that need the functional contract clone
// first (see prep.Pipeline).
type Table struct {
	columns []string
	rows    [][]string
}

// New creates an empty table with the given column names.
func New(columns []string) *Table {
	return &Table{columns: append([]string(nil), columns...)}
}

// NewWithRows creates a table from column names and row data.
// Rows shorter than the header are padded with empty cells so ragged
// sources (spreadsheets in particular) normalize to a rectangle.
func NewWithRows(columns []string, rows [][]string) *Table {
	t := New(columns)
	for _, row := range rows {
		t.AppendRow(row)
	}
	return t
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// Row returns the cells of row i. The slice is shared, not copied.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

// Column returns the values of the named column, top to bottom.
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, errors.NewSchemaError(name)
	}
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Cell returns the value at row i of the named column.
func (t *Table) Cell(i int, name string) (string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return "", errors.NewSchemaError(name)
	}
	return t.rows[i][idx], nil
}

// AppendRow adds a row, padding or truncating it to the column count.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// DropColumns removes the named columns. Every name must exist.
func (t *Table) DropColumns(names ...string) error {
	drop := make(map[int]bool, len(names))
	for _, name := range names {
		idx, ok := t.ColumnIndex(name)
		if !ok {
			return errors.NewSchemaError(name)
		}
		drop[idx] = true
	}

	keep := make([]int, 0, len(t.columns)-len(drop))
	for i := range t.columns {
		if !drop[i] {
			keep = append(keep, i)
		}
	}

	t.columns = project(t.columns, keep)
	for i, row := range t.rows {
		t.rows[i] = project(row, keep)
	}
	return nil
}

// DropRows removes the rows at the given ordinal positions. Positions
// refer to the table as it stands when the call is made; any position at
// or beyond the row count fails with a bounds error before anything is
// removed.
func (t *Table) DropRows(positions ...int) error {
	for _, pos := range positions {
		if pos < 0 || pos >= len(t.rows) {
			return errors.NewBoundsError(pos, len(t.rows))
		}
	}

	sorted := append([]int(nil), positions...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, pos := range sorted {
		t.rows = append(t.rows[:pos], t.rows[pos+1:]...)
	}
	return nil
}

// InsertColumn adds a column at the given index with one value per row.
func (t *Table) InsertColumn(name string, index int, values []string) error {
	if index < 0 || index > len(t.columns) {
		return errors.NewBoundsError(index, len(t.columns))
	}
	if len(values) != len(t.rows) {
		return errors.NewValidationError("column length does not match row count").
			WithContext("column", name).
			WithContext("values", len(values)).
			WithContext("rows", len(t.rows))
	}

	t.columns = append(t.columns[:index], append([]string{name}, t.columns[index:]...)...)
	for i, row := range t.rows {
		t.rows[i] = append(row[:index], append([]string{values[i]}, row[index:]...)...)
	}
	return nil
}

// AppendColumn adds a column after the last one.
func (t *Table) AppendColumn(name string, values []string) error {
	return t.InsertColumn(name, len(t.columns), values)
}

// MapColumn replaces every value of the named column with fn(value).
func (t *Table) MapColumn(name string, fn func(string) string) error {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return errors.NewSchemaError(name)
	}
	for _, row := range t.rows {
		row[idx] = fn(row[idx])
	}
	return nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := New(t.columns)
	c.rows = make([][]string, len(t.rows))
	for i, row := range t.rows {
		c.rows[i] = append([]string(nil), row...)
	}
	return c
}

// project picks the elements of src at the given indexes, in order.
func project(src []string, indexes []int) []string {
	out := make([]string, len(indexes))
	for i, idx := range indexes {
		out[i] = src[idx]
	}
	return out
}
