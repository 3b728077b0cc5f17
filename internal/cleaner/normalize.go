package cleaner

import (
	"fmt"
	"strings"

	"salesclean/internal/report"
	"salesclean/pkg/records"
)

// DuplicateColumnError reports two distinct source columns collapsing onto
// the same canonical name. Silently overwriting one of them would drop data,
// so normalization fails fast instead.
type DuplicateColumnError struct {
	Canonical string
	First     string
	Second    string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column name: %q and %q both normalize to %q",
		e.First, e.Second, e.Canonical)
}

// NormalizeColumns rewrites every column name into canonical form:
// lowercase, spaces replaced with underscores, leading/trailing whitespace
// trimmed. Re-running on already-canonical names is a no-op.
type NormalizeColumns struct {
	Report report.Sink
}

// Name implements Stage.
func (NormalizeColumns) Name() string { return "normalize_columns" }

// Canonical returns the canonical form of a column name. The operations are
// applied in a fixed order: lowercase, then space to underscore, then trim.
func Canonical(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToLower(name), " ", "_"))
}

// Apply renames every column to its canonical form, erroring with
// *DuplicateColumnError when two source columns collide.
func (s NormalizeColumns) Apply(t *records.Table) (*records.Table, error) {
	seen := make(map[string]string, len(t.Columns))
	renames := make([][2]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		canon := Canonical(col)
		if first, dup := seen[canon]; dup {
			return nil, &DuplicateColumnError{Canonical: canon, First: first, Second: col}
		}
		seen[canon] = col
		if canon != col {
			renames = append(renames, [2]string{col, canon})
		}
	}
	for _, rn := range renames {
		t.RenameColumn(rn[0], rn[1])
	}
	sinkOrNop(s.Report).Eventf("standardized column names: %v", t.Columns)
	return t, nil
}
