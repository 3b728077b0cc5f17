// Package report provides the progress sink that pipeline stages emit their
// human-readable status lines to (row counts, converted columns, drop
// reasons).
//
// The package mirrors the metrics abstraction: a narrow interface with a
// no-op default, so stages can report unconditionally while tests and library
// callers stay silent. The output carries no machine-readable contract; it
// exists for operators watching a run.
package report

import (
	"fmt"
	"io"
	"os"
)

// Sink receives formatted progress lines from pipeline stages.
type Sink interface {
	Eventf(format string, args ...any)
}

type nopSink struct{}

func (nopSink) Eventf(string, ...any) {}

// Nop is a sink that discards everything. Stages treat a nil sink as Nop.
var Nop Sink = nopSink{}

type writerSink struct{ w io.Writer }

func (s writerSink) Eventf(format string, args ...any) {
	fmt.Fprintf(s.w, format+"\n", args...)
}

// NewWriter returns a sink that prints each event as one line to w.
func NewWriter(w io.Writer) Sink { return writerSink{w: w} }

// Stdout returns a sink that prints to standard output, the default for CLI
// runs.
func Stdout() Sink { return writerSink{w: os.Stdout} }
