package cleaner

import (
	"salesclean/internal/report"
	"salesclean/internal/schema"
	"salesclean/pkg/records"
)

// DropNegative removes every row where a price/quantity column holds a value
// strictly less than zero. Column selection is by name (schema.RoleOf),
// recomputed independently of the coercion stage. Columns are processed in
// sequence; since removal is membership-based, the order across columns does
// not affect the final result set.
//
// Negative prices and quantities are data-entry errors in this dataset, not
// legitimate signed amounts; returns are represented elsewhere.
type DropNegative struct {
	Report report.Sink
}

// Name implements Stage.
func (DropNegative) Name() string { return "drop_negative" }

// Apply filters rows column by column, reporting per-column removals and the
// total.
func (s DropNegative) Apply(t *records.Table) (*records.Table, error) {
	sink := sinkOrNop(s.Report)
	cols := schema.NumericColumns(t.Columns)
	sink.Eventf("checking for negative values in: %v", cols)

	total := 0
	for _, col := range cols {
		removed := t.Filter(func(r records.Record) bool {
			if f, ok := r[col].(float64); ok && f < 0 {
				return false
			}
			return true
		})
		if removed > 0 {
			sink.Eventf("removed %d rows with negative values in %q", removed, col)
		}
		total += removed
	}
	sink.Eventf("total removed: %d rows with invalid (negative) values", total)
	return t, nil
}
