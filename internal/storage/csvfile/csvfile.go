// Package csvfile implements the default storage backend: a CSV file on the
// local filesystem. It is the pipeline's Writer stage. Parent directories
// are created as needed and an existing destination is overwritten without
// warning.
//
// Output is written to a temporary file in the destination directory and
// renamed into place after a successful flush, so a failed run never leaves
// a partial dataset at the destination path.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zeebo/xxh3"

	"salesclean/internal/storage"
)

func init() {
	storage.Register("csvfile", func(_ context.Context, cfg storage.Config) (storage.Repository, error) {
		return New(cfg)
	})
}

// Repository writes the cleaned table to a single CSV file.
type Repository struct {
	path  string
	comma rune
}

// New constructs a csvfile Repository from cfg. Path is required.
func New(cfg storage.Config) (*Repository, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("csvfile: destination path must not be empty")
	}
	comma := cfg.Comma
	if comma == 0 {
		comma = ','
	}
	return &Repository{path: cfg.Path, comma: comma}, nil
}

// CopyFrom serializes the header and all rows in order. Cells format as:
// strings verbatim, float64 in shortest round-trip decimal form, missing as
// the empty string. It returns the number of data rows written.
func (r *Repository) CopyFrom(ctx context.Context, columns []string, rows [][]any) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("csvfile: create destination dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "."+filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("csvfile: create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	h := xxh3.New()
	w := csv.NewWriter(io.MultiWriter(tmp, h))
	w.Comma = r.comma

	if err := w.Write(columns); err != nil {
		return 0, fmt.Errorf("csvfile: write header: %w", err)
	}

	var written int64
	cells := make([]string, len(columns))
	for _, row := range rows {
		if len(row) != len(columns) {
			return written, fmt.Errorf("csvfile: row length %d != columns length %d", len(row), len(columns))
		}
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		if err := w.Write(cells); err != nil {
			return written, fmt.Errorf("csvfile: write row: %w", err)
		}
		written++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return written, fmt.Errorf("csvfile: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return written, fmt.Errorf("csvfile: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return written, fmt.Errorf("csvfile: move into place: %w", err)
	}

	log.Printf("csvfile: wrote rows=%d path=%s xxh3=%016x", written, r.path, h.Sum64())
	return written, nil
}

// Close implements storage.Repository; the file handle does not outlive
// CopyFrom.
func (r *Repository) Close() error { return nil }

// formatCell renders a cell value for CSV output.
func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}
