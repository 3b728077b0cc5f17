package cleaner

import (
	"math"
	"strconv"

	"salesclean/internal/report"
	"salesclean/internal/schema"
	"salesclean/pkg/records"
)

// CoerceNumeric converts the cells of every price/quantity column (selected
// by schema.RoleOf on the column name, not by current cell types) to
// float64. A cell that fails to parse becomes the missing marker; coercion
// never returns an error for malformed input. Malformed cells are deferred
// to the missing-value filter.
type CoerceNumeric struct {
	Report report.Sink
}

// Name implements Stage.
func (CoerceNumeric) Name() string { return "coerce_numeric" }

// Apply coerces each selected column in place and reports the conversions.
func (s CoerceNumeric) Apply(t *records.Table) (*records.Table, error) {
	sink := sinkOrNop(s.Report)
	for _, col := range schema.NumericColumns(t.Columns) {
		for _, r := range t.Rows {
			r[col] = parseCell(r[col])
		}
		sink.Eventf("converted %q to numeric type", col)
	}
	return t, nil
}

// parseCell maps a raw cell onto its numeric value or the missing marker.
// Already-numeric cells pass through; NaN counts as missing.
func parseCell(v any) any {
	switch c := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(c) {
			return nil
		}
		return c
	case string:
		f, err := strconv.ParseFloat(c, 64)
		if err != nil || math.IsNaN(f) {
			return nil
		}
		return f
	default:
		return nil
	}
}
