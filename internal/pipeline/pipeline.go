// Package pipeline drives the end-to-end cleaning run.
//
// A run is strictly sequential: load the source into a table, apply the
// cleaning chain stage by stage, then persist the result. Exactly one
// mutable table exists for the duration of a run and ownership transfers
// stage to stage; there is no shared state across runs.
//
// Only two conditions terminate a run: a load failure (including a missing
// source file) and a destination write failure. Everything else - malformed
// numeric cells, missing values, negative values - is handled by marking or
// dropping data inside the chain and reported through the progress sink.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"salesclean/internal/cleaner"
	"salesclean/internal/config"
	"salesclean/internal/datasource"
	"salesclean/internal/datasource/file"
	"salesclean/internal/metrics"
	"salesclean/internal/parser"
	csvparser "salesclean/internal/parser/csv"
	"salesclean/internal/report"
	"salesclean/internal/storage"
)

// Summary captures the observable outcome of a run.
type Summary struct {
	RunID           string
	SourceRows      int
	ParseSkipped    int
	DroppedMissing  int
	DroppedNegative int
	OutputColumns   []string
	OutputRows      int64
	DBRows          int64
	Elapsed         time.Duration
}

// Run executes the full pipeline described by p, reporting progress to sink
// (nil means silent). The cleaned CSV is always written; a database sink is
// loaded additionally when configured.
func Run(ctx context.Context, p config.Pipeline, sink report.Sink) (Summary, error) {
	if sink == nil {
		sink = report.Nop
	}
	job := p.Job
	if job == "" {
		job = "salesclean"
	}

	sum := Summary{RunID: uuid.NewString()}
	start := time.Now()
	defer func() { sum.Elapsed = time.Since(start) }()

	// Load. The driver depends on the source and parser contracts only; the
	// config currently binds them to the local-file source and the CSV parser.
	srcPath := p.Source.File.Path
	var src datasource.Source = file.NewLocal(srcPath)
	var prs parser.Parser = csvparser.NewParser(csvparser.Options{
		Comma:    p.Source.Options.Rune("comma", ','),
		Encoding: p.Source.Options.String("encoding", ""),
	})

	loadStart := time.Now()
	rc, err := src.Open(ctx)
	if err != nil {
		metrics.RecordStep(job, "load", err, time.Since(loadStart))
		return sum, err
	}
	tbl, skipped, err := prs.Parse(rc)
	rc.Close()
	metrics.RecordStep(job, "load", err, time.Since(loadStart))
	if err != nil {
		return sum, fmt.Errorf("load %s: %w", srcPath, err)
	}
	sum.SourceRows = tbl.Len()
	sum.ParseSkipped = skipped
	metrics.RecordRows(job, "loaded", int64(tbl.Len()))
	metrics.RecordRows(job, "parse_skipped", int64(skipped))
	sink.Eventf("loaded %d rows from %s", tbl.Len(), srcPath)
	sink.Eventf("original columns: %v", tbl.Columns)

	// Clean.
	for _, st := range cleaner.Default(sink) {
		before := tbl.Len()
		stageStart := time.Now()
		tbl, err = st.Apply(tbl)
		metrics.RecordStep(job, st.Name(), err, time.Since(stageStart))
		if err != nil {
			return sum, fmt.Errorf("stage %s: %w", st.Name(), err)
		}
		switch st.Name() {
		case "drop_missing":
			sum.DroppedMissing = before - tbl.Len()
			metrics.RecordRows(job, "dropped_missing", int64(sum.DroppedMissing))
		case "drop_negative":
			sum.DroppedNegative = before - tbl.Len()
			metrics.RecordRows(job, "dropped_negative", int64(sum.DroppedNegative))
		}
	}
	sum.OutputColumns = tbl.Columns

	// Write. Rows are materialized once and shared by both sinks.
	rows := tbl.RowValues()

	outComma := ','
	if p.Output.Comma != "" {
		outComma = []rune(p.Output.Comma)[0]
	}
	writeStart := time.Now()
	written, err := writeTo(ctx, storage.Config{
		Kind:  "csvfile",
		Path:  p.Output.Path,
		Comma: outComma,
	}, false, tbl.Columns, rows)
	metrics.RecordStep(job, "write", err, time.Since(writeStart))
	if err != nil {
		return sum, fmt.Errorf("write %s: %w", p.Output.Path, err)
	}
	sum.OutputRows = written
	metrics.RecordRows(job, "written", written)
	sink.Eventf("saved cleaned data to %s (%d rows)", p.Output.Path, written)

	// Optional database sink.
	if kind := p.Storage.Kind; kind != "" && kind != "none" {
		storeStart := time.Now()
		stored, err := writeTo(ctx, storage.Config{
			Kind:  kind,
			DSN:   p.Storage.DB.DSN,
			Table: p.Storage.DB.Table,
		}, p.Storage.DB.AutoCreateTable, tbl.Columns, rows)
		metrics.RecordStep(job, "store", err, time.Since(storeStart))
		if err != nil {
			return sum, fmt.Errorf("store into %s: %w", kind, err)
		}
		sum.DBRows = stored
		sink.Eventf("loaded %d rows into %s table %q", stored, kind, p.Storage.DB.Table)
	}

	return sum, nil
}

// writeTo opens the configured storage backend, optionally creates the
// destination table, copies all rows, and closes the backend.
func writeTo(ctx context.Context, cfg storage.Config, autoCreate bool, columns []string, rows [][]any) (int64, error) {
	repo, err := storage.New(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer repo.Close()

	if autoCreate {
		if tc, ok := repo.(storage.TableCreator); ok {
			if err := tc.CreateTable(ctx, columns); err != nil {
				return 0, err
			}
		}
	}
	return repo.CopyFrom(ctx, columns, rows)
}
