package csv

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// decodeReader wraps r with a decoder for the named character encoding.
// UTF-8 (and the empty name) pass through untouched.
func decodeReader(r io.Reader, name string) (io.Reader, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "utf-8" || n == "utf8" {
		return r, nil
	}
	enc, err := htmlindex.Get(n)
	if err != nil {
		return nil, fmt.Errorf("unsupported source encoding %q: %w", name, err)
	}
	return enc.NewDecoder().Reader(r), nil
}
