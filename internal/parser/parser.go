// Package parser defines how raw source bytes become an in-memory table.
package parser

import (
	"io"

	"salesclean/pkg/records"
)

// Parser turns a byte stream into a table. The int result is the number of
// malformed rows that were skipped (soft-fail).
type Parser interface {
	Parse(r io.Reader) (*records.Table, int, error)
}
