// Package csv parses delimited sales data into a records.Table. Values are
// read permissively: every cell comes out as a raw string (or nil for an
// empty cell); typing is left to the coercion stage downstream. Header names
// are kept exactly as found in the file, BOM aside, so that column
// normalization remains an observable pipeline stage.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"

	"salesclean/pkg/records"
)

// Options configures the CSV parser. All fields are optional; sensible
// defaults are applied when a field is zero.
type Options struct {
	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune

	// Encoding names the source character encoding (e.g. "utf-8",
	// "windows-1250", "iso-8859-1"). Empty means UTF-8, no transcoding.
	Encoding string
}

// Parser parses CSV input according to Options. It is safe to reuse across
// inputs, but Parser itself is not concurrency-safe.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// Parse consumes CSV records from r and returns the parsed table along with
// the number of rows skipped due to parse errors or field-count mismatches.
//
// The first row is the header; duplicate header names are rejected because
// the table model keys rows by column name. Cells equal to the empty string
// become the missing marker (nil). Rows whose width differs from the header
// are skipped (soft-fail) and counted, matching the loader's permissive
// contract: a malformed row never aborts the run.
func (p *Parser) Parse(r io.Reader) (*records.Table, int, error) {
	dec, err := decodeReader(r, p.opt.Encoding)
	if err != nil {
		return nil, 0, err
	}

	cr := csv.NewReader(dec)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read csv header: %w", err)
	}
	header = StripHeaderBOM(header)

	seen := make(map[string]struct{}, len(header))
	for _, col := range header {
		if _, dup := seen[col]; dup {
			return nil, 0, fmt.Errorf("duplicate column %q in header", col)
		}
		seen[col] = struct{}{}
	}

	t := records.New(header)
	var skipped int
	const logLimit = 400

	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if skipped < logLimit {
				log.Printf("csv: skipping row %d: %v", line, err)
			}
			skipped++
			continue
		}
		if len(row) != len(header) {
			if skipped < logLimit {
				log.Printf("csv: skipping row %d: incorrect number of fields (expected %d, got %d)",
					line, len(header), len(row))
			}
			skipped++
			continue
		}

		rec := make(records.Record, len(row))
		for i, val := range row {
			rec[header[i]] = emptyToNil(val)
		}
		t.Rows = append(t.Rows, rec)
	}

	return t, skipped, nil
}

// emptyToNil converts an empty string to the missing marker; all other values
// are returned as-is.
func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
