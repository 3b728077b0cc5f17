package cleaner

import (
	"salesclean/internal/report"
	"salesclean/pkg/records"
)

// DropMissing removes every row holding a missing value in any number-typed
// column. The set of number columns is recomputed here from current cell
// types (Table.NumberColumns), which after coercion is normally exactly the
// price/quantity set.
//
// The drop is deliberate and non-configurable: prices and quantities feed
// financial calculations, and imputing them would fabricate financial facts.
type DropMissing struct {
	Report report.Sink
}

// Name implements Stage.
func (DropMissing) Name() string { return "drop_missing" }

// Apply filters rows in place, preserving the order of survivors.
func (s DropMissing) Apply(t *records.Table) (*records.Table, error) {
	sink := sinkOrNop(s.Report)
	numCols := t.NumberColumns()
	sink.Eventf("numeric columns found: %v", numCols)

	dropped := t.Filter(func(r records.Record) bool {
		for _, col := range numCols {
			if records.IsMissing(r[col]) {
				return false
			}
		}
		return true
	})
	sink.Eventf("dropped %d rows with missing numeric values", dropped)
	return t, nil
}
