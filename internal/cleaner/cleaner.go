// Package cleaner contains the transformation stages of the sales data
// cleaning pipeline. Each stage consumes the table produced by the previous
// stage and returns the (mutated) table, or an error that aborts the run.
//
// The canonical stage order is:
//
//	NormalizeColumns -> TrimText -> CoerceNumeric -> DropMissing -> DropNegative
//
// Ordering matters: trimming runs before coercion so that values like
// " 19.99 " parse, and the missing filter runs before the negative filter so
// that every surviving numeric cell is a real number.
package cleaner

import (
	"salesclean/internal/report"
	"salesclean/pkg/records"
)

// Stage is a single table transformation.
type Stage interface {
	// Name identifies the stage in logs and metrics.
	Name() string
	// Apply transforms t in place and returns it. Stages only rename
	// columns, rewrite cell values, or drop rows; they never reorder
	// surviving rows or add data.
	Apply(t *records.Table) (*records.Table, error)
}

// Chain is an ordered list of stages applied sequentially. It stops at the
// first stage error.
type Chain []Stage

// Apply runs every stage in order on t.
func (c Chain) Apply(t *records.Table) (*records.Table, error) {
	out := t
	var err error
	for _, s := range c {
		out, err = s.Apply(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Default returns the canonical cleaning chain, with every stage reporting
// to sink.
func Default(sink report.Sink) Chain {
	return Chain{
		NormalizeColumns{Report: sink},
		TrimText{Report: sink},
		CoerceNumeric{Report: sink},
		DropMissing{Report: sink},
		DropNegative{Report: sink},
	}
}

// sinkOrNop treats a nil sink as report.Nop so stages can report
// unconditionally.
func sinkOrNop(s report.Sink) report.Sink {
	if s == nil {
		return report.Nop
	}
	return s
}
