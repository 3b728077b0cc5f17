// Package records defines the in-memory data model shared by all pipeline
// stages: a Record is a single row keyed by column name, and a Table is an
// ordered collection of rows plus the column order itself.
//
// Cell values are one of three kinds:
//
//   - string  : raw or cleaned text
//   - float64 : a coerced numeric value
//   - nil     : the missing-value marker (distinct from "" and 0)
//
// A Table is owned by exactly one pipeline run and is mutated in place as it
// moves stage to stage; nothing here is safe for concurrent use.
package records

// Record is one row: a mapping from column name to cell value.
type Record map[string]any

// IsMissing reports whether v is the missing-value marker.
func IsMissing(v any) bool { return v == nil }

// Table holds rows together with an explicit column order. Column names are
// unique within a table; row order is significant and preserved by every
// operation except explicit filtering, which only ever removes rows.
type Table struct {
	Columns []string
	Rows    []Record
}

// New returns an empty table with the given column order. The slice is copied
// so callers can reuse their own.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// RenameColumn renames column old to new in the column order and in every
// row. It is a no-op when old == new or old is not a column.
func (t *Table) RenameColumn(old, new string) {
	if old == new {
		return
	}
	for i, c := range t.Columns {
		if c != old {
			continue
		}
		t.Columns[i] = new
		for _, r := range t.Rows {
			if v, ok := r[old]; ok {
				r[new] = v
				delete(r, old)
			}
		}
		return
	}
}

// NumberColumns returns, in column order, every column with no string cell
// present. This is the dynamic "current type" view: a column becomes a
// number column once coercion has rewritten its string cells. A column whose
// cells are all missing counts as number-typed; no string remains to refute
// the numeric reading.
func (t *Table) NumberColumns() []string {
	var out []string
	for _, c := range t.Columns {
		text := false
		for _, r := range t.Rows {
			if _, ok := r[c].(string); ok {
				text = true
				break
			}
		}
		if !text {
			out = append(out, c)
		}
	}
	return out
}

// Filter removes every row for which keep returns false, preserving the
// relative order of surviving rows. Filtering happens in place by reslicing;
// no copy of the backing array is made. It returns the number of rows
// removed.
func (t *Table) Filter(keep func(Record) bool) int {
	before := len(t.Rows)
	out := t.Rows[:0]
	for _, r := range t.Rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	t.Rows = out
	return before - len(t.Rows)
}

// RowValues returns the table's rows as ordered value slices aligned to the
// current column order, the shape expected by storage backends.
func (t *Table) RowValues() [][]any {
	rows := make([][]any, len(t.Rows))
	for i, r := range t.Rows {
		row := make([]any, len(t.Columns))
		for j, c := range t.Columns {
			row[j] = r[c]
		}
		rows[i] = row
	}
	return rows
}
