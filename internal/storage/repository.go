// Package storage contains storage-agnostic contracts for persisting the
// cleaned dataset, plus a small kind registry so the pipeline can stay
// backend-agnostic. Concrete backends (csvfile, sqlite, postgres) live in
// subpackages and register themselves via init; importing storage/all wires
// them all in.
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Repository is the minimal sink contract. CopyFrom persists the given rows,
// aligned to the columns order, and returns the number of rows written.
type Repository interface {
	CopyFrom(ctx context.Context, columns []string, rows [][]any) (int64, error)
	Close() error
}

// TableCreator is implemented by database backends that can create the
// destination table before loading.
type TableCreator interface {
	CreateTable(ctx context.Context, columns []string) error
}

// Config selects and configures a storage backend.
type Config struct {
	// Kind selects the backend: "csvfile", "sqlite", "postgres".
	Kind string

	// Path is the destination file path (csvfile).
	Path string
	// Comma is the output field delimiter (csvfile). Zero means ','.
	Comma rune

	// DSN is the connection string (sqlite, postgres).
	DSN string
	// Table is the destination table name (sqlite, postgres).
	Table string
}

// Factory constructs a Repository from a Config.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register installs a backend factory under kind. Backends call this from
// init; a duplicate kind panics to surface wiring mistakes at startup.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[kind]; dup {
		panic(fmt.Sprintf("storage: duplicate backend kind %q", kind))
	}
	registry[kind] = f
}

// Kinds returns the registered backend kinds, sorted.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New opens a Repository for cfg.Kind using the registered factory.
func New(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	f, ok := registry[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: unknown backend kind %q (registered: %v)", cfg.Kind, Kinds())
	}
	return f(ctx, cfg)
}
