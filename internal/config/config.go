// Package config defines the canonical, JSON-serializable configuration
// model for the cleaning pipeline. It is intentionally small, explicit, and
// dependency-free so that pipelines can be loaded from disk and passed
// through the program without additional glue code.
//
// Design goals:
//
//  1. Stability: changes to this package should be additive and backwards-
//     compatible whenever possible.
//  2. Clarity: field names in Go mirror the JSON structure used in pipeline
//     files under configs/pipelines/*.json.
//  3. Minimalism: no third-party config libraries; decoding is performed by
//     the standard library, with a light Options helper for typed access.
//
// Example:
//
//	{
//	  "job":    "sales_clean",
//	  "source": { "kind": "file", "file": { "path": "data/raw/sales_data_raw.csv" },
//	              "options": { "comma": ",", "encoding": "utf-8" } },
//	  "output": { "path": "data/processed/sales_data_clean.csv" },
//	  "storage": { "kind": "sqlite",
//	               "db": { "dsn": "clean.db", "table": "sales_clean", "auto_create_table": true } }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline describes one full cleaning run in JSON. It is the top-level
// object decoded from a pipeline file.
type Pipeline struct {
	// Job names the run for metrics labeling and log lines.
	Job string `json:"job"`

	// Source describes where raw input data comes from.
	Source Source `json:"source"`

	// Output configures the cleaned CSV destination (always written).
	Output Output `json:"output"`

	// Storage optionally configures an additional database sink for the
	// cleaned dataset. Kind "" or "none" disables it.
	Storage Storage `json:"storage"`
}

// Source identifies the data source. Additional kinds can be added over time.
type Source struct {
	// Kind selects the source implementation. Current value: "file".
	// Empty defaults to "file".
	Kind string `json:"kind"`

	// File carries options for the "file" source kind.
	File SourceFile `json:"file"`

	// Options is a free-form map interpreted by the parser. For CSV the
	// keys are: comma (string, single character) and encoding (string,
	// e.g. "utf-8", "windows-1250").
	Options Options `json:"options"`
}

// SourceFile holds configuration for the "file" source kind.
type SourceFile struct {
	// Path is the local filesystem path to the raw input file.
	Path string `json:"path"`
}

// Output configures the cleaned CSV file destination. Parent directories are
// created as needed; an existing file is overwritten.
type Output struct {
	// Path is the destination file path.
	Path string `json:"path"`

	// Comma optionally overrides the output delimiter (single character).
	Comma string `json:"comma,omitempty"`
}

// Storage selects an optional database sink for the cleaned dataset.
type Storage struct {
	// Kind selects the sink implementation: "sqlite" or "postgres".
	// "" and "none" disable the database sink.
	Kind string `json:"kind"`

	// DB carries the database sink options.
	DB DBConfig `json:"db"`
}

// DBConfig configures a database sink.
type DBConfig struct {
	// DSN is the connection string (driver-specific).
	DSN string `json:"dsn"`

	// Table is the destination table name (may be schema-qualified for
	// Postgres, e.g. "public.sales_clean").
	Table string `json:"table"`

	// AutoCreateTable creates the destination table before loading,
	// deriving column types from column roles.
	AutoCreateTable bool `json:"auto_create_table"`
}

// Load decodes a Pipeline from the JSON file at path.
func Load(path string) (Pipeline, error) {
	var p Pipeline
	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&p); err != nil {
		return p, fmt.Errorf("decode config %s: %w", path, err)
	}
	return p, nil
}

// Options is a small helper to fetch typed values from arbitrary JSON maps
// without introducing third-party configuration libraries. It purposefully
// performs only minimal type coercion and returns provided defaults when a
// key is absent or of an unexpected type.
type Options map[string]any

// String returns the string value for key or def if key is missing or not a string.
func (o Options) String(key, def string) string {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Bool returns the bool value for key or def if key is missing or not a bool.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Rune returns the first rune of a string value for key, or def if key is
// missing or empty. This is useful for single-character parser settings such
// as a CSV delimiter.
func (o Options) Rune(key string, def rune) rune {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok && len(s) > 0 {
			return []rune(s)[0]
		}
	}
	return def
}
