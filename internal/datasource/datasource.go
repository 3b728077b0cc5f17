// Package datasource defines where raw sales data is read from.
package datasource

import (
	"context"
	"io"
)

// Source opens a stream of raw bytes for the pipeline to parse.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}
