// Package probe inspects a sample of a raw sales CSV and reports what the
// cleaning pipeline would do with it: the canonical name each column will
// get, its inferred role, and how many sampled values in price/quantity
// columns actually parse as numbers. The probe never mutates anything; it is
// a pre-flight check for operators pointing the pipeline at a new extract.
package probe

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"salesclean/internal/cleaner"
	"salesclean/internal/config"
	parsercsv "salesclean/internal/parser/csv"
	"salesclean/internal/schema"
)

// Column describes one probed column.
type Column struct {
	// Name is the header cell as found in the file.
	Name string
	// Canonical is the name the normalizer stage will produce.
	Canonical string
	// Slug is an ASCII identifier suggestion (accents stripped), useful
	// when the canonical name still carries non-ASCII characters.
	Slug string
	// Role is the inferred semantic role of the canonical name.
	Role schema.Role
	// Values counts sampled non-empty cells.
	Values int
	// Numeric counts sampled cells that parse as numbers after trimming.
	Numeric int
}

// Unparseable returns the number of sampled values that coercion would turn
// into missing markers. Only meaningful for price/quantity columns.
func (c Column) Unparseable() int { return c.Values - c.Numeric }

// Report summarizes a probed sample.
type Report struct {
	// Rows is the number of sampled data rows.
	Rows int
	// Columns describes each header column in file order.
	Columns []Column
}

// Sample reads up to limit data rows from r and builds a Report. Rows whose
// width differs from the header are ignored, mirroring the loader's
// permissive behavior.
func Sample(r io.Reader, comma rune, limit int) (*Report, error) {
	if limit <= 0 {
		limit = 200
	}

	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	header = parsercsv.StripHeaderBOM(header)

	rep := &Report{Columns: make([]Column, len(header))}
	for i, name := range header {
		canon := cleaner.Canonical(name)
		rep.Columns[i] = Column{
			Name:      name,
			Canonical: canon,
			Slug:      Slug(name),
			Role:      schema.RoleOf(canon),
		}
	}

	for rep.Rows < limit {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(row) != len(header) {
			continue
		}
		rep.Rows++
		for i, val := range row {
			v := strings.TrimSpace(val)
			if v == "" {
				continue
			}
			rep.Columns[i].Values++
			if _, err := strconv.ParseFloat(v, 64); err == nil {
				rep.Columns[i].Numeric++
			}
		}
	}

	return rep, nil
}

// SuggestedPipeline builds a starter pipeline config for the probed file.
func (rep *Report) SuggestedPipeline(job, sourcePath, outputPath string) config.Pipeline {
	return config.Pipeline{
		Job:    job,
		Source: config.Source{Kind: "file", File: config.SourceFile{Path: sourcePath}},
		Output: config.Output{Path: outputPath},
	}
}

// Slug converts arbitrary header text into a lowercase ASCII identifier:
//  1. lowercase
//  2. strip accents (NFD, remove Mn, NFC)
//  3. keep [a-z0-9_]; convert space/dash/dot to underscore; drop others
//  4. fallback to "col" if empty
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	ascii, _, _ := transform.String(t, s)

	var b strings.Builder
	prevUnderscore := false
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		case r == '_' || r == ' ' || r == '-' || r == '.':
			if !prevUnderscore {
				b.WriteRune('_')
				prevUnderscore = true
			}
		default:
			// drop anything else
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "col"
	}
	return name
}
