package cleaner

import (
	"reflect"
	"testing"

	"salesclean/pkg/records"
)

/*
TestDropNegativeApply verifies the invalid-value filter: rows with a negative
price or quantity are removed, zero survives, and survivor order is
preserved. Text columns are never inspected.
*/
func TestDropNegativeApply(t *testing.T) {
	tbl := records.New([]string{"product_name", "price", "qty"})
	tbl.Rows = []records.Record{
		{"product_name": "Apple", "price": 1.5, "qty": 3.0},
		{"product_name": "Banana", "price": -2.0, "qty": 5.0},
		{"product_name": "Cherry", "price": 0.0, "qty": 1.0},
		{"product_name": "Durian", "price": 4.0, "qty": -1.0},
		{"product_name": "Elder", "price": 0.5, "qty": 0.0},
	}

	got, err := DropNegative{}.Apply(tbl)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := []records.Record{
		{"product_name": "Apple", "price": 1.5, "qty": 3.0},
		{"product_name": "Cherry", "price": 0.0, "qty": 1.0},
		{"product_name": "Elder", "price": 0.5, "qty": 0.0},
	}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("Rows = %v, want %v", got.Rows, want)
	}
}

/*
TestDropNegativeSkipsNonNumbers verifies that missing markers and leftover
strings in a price-named column do not trigger removal; only real negative
numbers do.
*/
func TestDropNegativeSkipsNonNumbers(t *testing.T) {
	tbl := records.New([]string{"price"})
	tbl.Rows = []records.Record{
		{"price": nil},
		{"price": "-5"},
		{"price": -5.0},
	}

	got, err := DropNegative{}.Apply(tbl)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := []records.Record{{"price": nil}, {"price": "-5"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("Rows = %v, want %v", got.Rows, want)
	}
}
