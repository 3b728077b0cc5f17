package cleaner

import (
	"strings"

	"salesclean/internal/report"
	"salesclean/pkg/records"
)

// TrimText strips leading and trailing whitespace from every cell of every
// text column. A column counts as text when it still holds at least one
// string cell; columns already of number type are left untouched. The stage
// is a fixed point: re-trimming trimmed data changes nothing.
//
// TrimText runs before numeric coercion on purpose. Price and quantity
// columns are still textual here, so a value like " 19.99 " is trimmed into
// parseable shape.
type TrimText struct {
	Report report.Sink
}

// Name implements Stage.
func (TrimText) Name() string { return "trim_text" }

// Apply trims string cells column by column, reporting each text column it
// touched.
func (s TrimText) Apply(t *records.Table) (*records.Table, error) {
	sink := sinkOrNop(s.Report)
	for _, col := range t.Columns {
		if !isTextColumn(t, col) {
			continue
		}
		for _, r := range t.Rows {
			if v, ok := r[col].(string); ok {
				r[col] = strings.TrimSpace(v)
			}
		}
		sink.Eventf("cleaned whitespace from %q", col)
	}
	return t, nil
}

// isTextColumn reports whether col currently holds at least one string cell.
// Columns already coerced to numbers and columns of only missing values are
// not text.
func isTextColumn(t *records.Table, col string) bool {
	for _, r := range t.Rows {
		if _, ok := r[col].(string); ok {
			return true
		}
	}
	return false
}
