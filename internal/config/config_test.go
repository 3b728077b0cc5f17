package config

import (
	"os"
	"path/filepath"
	"testing"
)

/*
TestLoad decodes a full pipeline file and checks every section survives the
round trip from disk.
*/
func TestLoad(t *testing.T) {
	raw := `{
  "job": "sales_clean",
  "source": {
    "kind": "file",
    "file": { "path": "data/raw/sales_data_raw.csv" },
    "options": { "comma": ";", "encoding": "windows-1250" }
  },
  "output": { "path": "data/processed/sales_data_clean.csv" },
  "storage": {
    "kind": "sqlite",
    "db": { "dsn": "clean.db", "table": "sales_clean", "auto_create_table": true }
  }
}`
	path := filepath.Join(t.TempDir(), "pipeline.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if p.Job != "sales_clean" {
		t.Errorf("Job = %q", p.Job)
	}
	if p.Source.Kind != "file" || p.Source.File.Path != "data/raw/sales_data_raw.csv" {
		t.Errorf("Source = %+v", p.Source)
	}
	if got := p.Source.Options.Rune("comma", ','); got != ';' {
		t.Errorf("comma option = %q", got)
	}
	if got := p.Source.Options.String("encoding", ""); got != "windows-1250" {
		t.Errorf("encoding option = %q", got)
	}
	if p.Output.Path != "data/processed/sales_data_clean.csv" {
		t.Errorf("Output.Path = %q", p.Output.Path)
	}
	if p.Storage.Kind != "sqlite" || p.Storage.DB.Table != "sales_clean" || !p.Storage.DB.AutoCreateTable {
		t.Errorf("Storage = %+v", p.Storage)
	}
}

/*
TestLoadErrors covers the two load failure modes: missing file and malformed
JSON.
*/
func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("Load(missing) expected error, got nil")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(malformed) expected error, got nil")
	}
}

/*
TestOptions exercises the typed-access helpers, including defaults on
missing keys and on type mismatches.
*/
func TestOptions(t *testing.T) {
	o := Options{"comma": ";", "strict": true, "n": 3.0}

	if got := o.String("comma", ","); got != ";" {
		t.Errorf("String(comma) = %q", got)
	}
	if got := o.String("missing", "def"); got != "def" {
		t.Errorf("String(missing) = %q", got)
	}
	if got := o.String("n", "def"); got != "def" {
		t.Errorf("String on non-string = %q", got)
	}
	if !o.Bool("strict", false) || o.Bool("missing", false) {
		t.Error("Bool helper misbehaves")
	}
	if got := o.Rune("comma", ','); got != ';' {
		t.Errorf("Rune(comma) = %q", got)
	}
	if got := o.Rune("missing", ','); got != ',' {
		t.Errorf("Rune(missing) = %q", got)
	}
	if got := Options(nil).String("any", "def"); got != "def" {
		t.Errorf("nil Options String = %q", got)
	}
}
