package records

import (
	"reflect"
	"testing"
)

/*
TestRenameColumn verifies that renaming rewrites both the column order and
every row's key, and that unknown or identical names are no-ops.
*/
func TestRenameColumn(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		wantCols []string
		wantRow  Record
	}{
		{
			name:     "simple_rename",
			old:      "Product Name",
			new:      "product_name",
			wantCols: []string{"product_name", "Price"},
			wantRow:  Record{"product_name": "Apple", "Price": "1.50"},
		},
		{
			name:     "unknown_column_noop",
			old:      "missing",
			new:      "other",
			wantCols: []string{"Product Name", "Price"},
			wantRow:  Record{"Product Name": "Apple", "Price": "1.50"},
		},
		{
			name:     "same_name_noop",
			old:      "Price",
			new:      "Price",
			wantCols: []string{"Product Name", "Price"},
			wantRow:  Record{"Product Name": "Apple", "Price": "1.50"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New([]string{"Product Name", "Price"})
			tbl.Rows = []Record{{"Product Name": "Apple", "Price": "1.50"}}

			tbl.RenameColumn(tt.old, tt.new)

			if !reflect.DeepEqual(tbl.Columns, tt.wantCols) {
				t.Errorf("Columns = %v, want %v", tbl.Columns, tt.wantCols)
			}
			if !reflect.DeepEqual(tbl.Rows[0], tt.wantRow) {
				t.Errorf("Rows[0] = %v, want %v", tbl.Rows[0], tt.wantRow)
			}
		})
	}
}

/*
TestNumberColumns verifies the dynamic type view: a column counts as a number
column when no string cell is present, including when every cell is missing.
*/
func TestNumberColumns(t *testing.T) {
	tests := []struct {
		name string
		rows []Record
		want []string
	}{
		{
			name: "mixed_table",
			rows: []Record{
				{"name": "Apple", "price": 1.5, "qty": 3.0},
				{"name": "Banana", "price": nil, "qty": 5.0},
			},
			want: []string{"price", "qty"},
		},
		{
			name: "string_cell_disqualifies",
			rows: []Record{
				{"name": "Apple", "price": 1.5, "qty": "3"},
			},
			want: []string{"price"},
		},
		{
			name: "all_missing_still_numeric",
			rows: []Record{
				{"name": "Apple", "price": nil, "qty": nil},
			},
			want: []string{"price", "qty"},
		},
		{
			name: "empty_table",
			rows: nil,
			want: []string{"name", "price", "qty"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New([]string{"name", "price", "qty"})
			tbl.Rows = tt.rows
			if got := tbl.NumberColumns(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NumberColumns() = %v, want %v", got, tt.want)
			}
		})
	}
}

/*
TestFilter verifies in-place filtering: the dropped count is returned and
survivors keep their relative order.
*/
func TestFilter(t *testing.T) {
	tbl := New([]string{"n"})
	tbl.Rows = []Record{{"n": 1.0}, {"n": -2.0}, {"n": 3.0}, {"n": -4.0}, {"n": 5.0}}

	dropped := tbl.Filter(func(r Record) bool { return r["n"].(float64) > 0 })

	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	want := []Record{{"n": 1.0}, {"n": 3.0}, {"n": 5.0}}
	if !reflect.DeepEqual(tbl.Rows, want) {
		t.Errorf("Rows = %v, want %v", tbl.Rows, want)
	}
}

/*
TestRowValues verifies that rows materialize aligned to the column order,
with the missing marker passing through as nil.
*/
func TestRowValues(t *testing.T) {
	tbl := New([]string{"b", "a"})
	tbl.Rows = []Record{{"a": 1.0, "b": "x"}, {"a": nil, "b": "y"}}

	got := tbl.RowValues()
	want := [][]any{{"x", 1.0}, {"y", nil}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RowValues() = %v, want %v", got, want)
	}
}
