package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"salesclean/internal/probe"
)

// main probes a raw sales CSV and prints, per column, the canonical name the
// pipeline will assign, the inferred role, and numeric-parse health. With
// -emit-config it prints a starter pipeline config JSON instead.
func main() {
	var (
		path       string
		delimiter  string
		sample     int
		emitConfig bool
		outPath    string
	)

	flag.StringVar(&path, "path", "", "raw CSV path (required)")
	flag.StringVar(&delimiter, "delimiter", ",", "field delimiter (single character)")
	flag.IntVar(&sample, "sample", 200, "maximum number of rows to sample")
	flag.BoolVar(&emitConfig, "emit-config", false, "print a starter pipeline config JSON and exit")
	flag.StringVar(&outPath, "out", "data/processed/sales_data_clean.csv", "output path used in the emitted config")

	flag.Parse()

	if path == "" {
		fatalf("usage: salesprobe -path raw.csv [-delimiter ';'] [-sample 200] [-emit-config]")
	}
	comma := ','
	if r := []rune(delimiter); len(r) == 1 {
		comma = r[0]
	} else if len(r) > 1 {
		fatalf("delimiter must be a single character, got %q", delimiter)
	}

	f, err := os.Open(path)
	if err != nil {
		fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rep, err := probe.Sample(f, comma, sample)
	if err != nil {
		fatalf("probe %s: %v", path, err)
	}

	if emitConfig {
		cfg := rep.SuggestedPipeline("sales_clean", path, outPath)
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			fatalf("encode config: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("%s: sampled %d rows, %d columns\n", path, rep.Rows, len(rep.Columns))
	for _, c := range rep.Columns {
		line := fmt.Sprintf("  %-24s -> %-24s role=%-8s values=%d", quoted(c.Name), c.Canonical, c.Role, c.Values)
		if c.Role.Numeric() {
			line += fmt.Sprintf(" numeric=%d unparseable=%d", c.Numeric, c.Unparseable())
		}
		if c.Slug != c.Canonical {
			line += fmt.Sprintf(" (ascii suggestion: %s)", c.Slug)
		}
		fmt.Println(line)
	}
}

func quoted(s string) string {
	if strings.ContainsAny(s, " \t") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
