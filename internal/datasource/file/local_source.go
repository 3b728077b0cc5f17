// Package file implements a local filesystem-backed data source.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrSourceNotFound is returned when the configured source path does not
// exist. It is the pipeline's only fatal load-time condition; callers detect
// it with errors.Is.
var ErrSourceNotFound = errors.New("source file not found")

// Local is a filesystem data source that opens files from the local disk.
type Local struct{ path string }

// NewLocal returns a Local data source bound to the provided path.
func NewLocal(path string) *Local { return &Local{path: path} }

// Open opens the configured path for reading.
//
// Behavior:
//   - If the context is already canceled at the time of the call, Open
//     returns the context error without touching the filesystem.
//   - A missing file maps to ErrSourceNotFound (still satisfying
//     errors.Is(err, fs.ErrNotExist) through wrapping).
//   - Any other filesystem error is wrapped with the path for context.
func (l *Local) Open(ctx context.Context) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, l.path, err)
		}
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	return f, nil
}
