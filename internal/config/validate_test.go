package config

import "testing"

func validPipeline() Pipeline {
	return Pipeline{
		Job: "sales_clean",
		Source: Source{
			Kind: "file",
			File: SourceFile{Path: "in.csv"},
		},
		Output: Output{Path: "out.csv"},
	}
}

/*
TestValidatePipeline checks the linter finding by finding: each mutation of a
valid pipeline produces the expected issue at the expected path.
*/
func TestValidatePipeline(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*Pipeline)
		wantPath     string
		wantSeverity IssueSeverity
	}{
		{
			name:         "empty_job",
			mutate:       func(p *Pipeline) { p.Job = " " },
			wantPath:     "job",
			wantSeverity: SeverityError,
		},
		{
			name:         "unknown_source_kind",
			mutate:       func(p *Pipeline) { p.Source.Kind = "http" },
			wantPath:     "source.kind",
			wantSeverity: SeverityError,
		},
		{
			name:         "missing_source_path",
			mutate:       func(p *Pipeline) { p.Source.File.Path = "" },
			wantPath:     "source.file.path",
			wantSeverity: SeverityError,
		},
		{
			name:         "multichar_source_delimiter",
			mutate:       func(p *Pipeline) { p.Source.Options = Options{"comma": "::"} },
			wantPath:     "source.options.comma",
			wantSeverity: SeverityError,
		},
		{
			name:         "missing_output_path",
			mutate:       func(p *Pipeline) { p.Output.Path = "" },
			wantPath:     "output.path",
			wantSeverity: SeverityError,
		},
		{
			name:         "multichar_output_delimiter",
			mutate:       func(p *Pipeline) { p.Output.Comma = "ab" },
			wantPath:     "output.comma",
			wantSeverity: SeverityError,
		},
		{
			name: "unknown_storage_kind_warns",
			mutate: func(p *Pipeline) {
				p.Storage = Storage{Kind: "mongodb", DB: DBConfig{DSN: "x", Table: "t"}}
			},
			wantPath:     "storage.kind",
			wantSeverity: SeverityWarning,
		},
		{
			name: "storage_missing_dsn",
			mutate: func(p *Pipeline) {
				p.Storage = Storage{Kind: "sqlite", DB: DBConfig{Table: "t"}}
			},
			wantPath:     "storage.db.dsn",
			wantSeverity: SeverityError,
		},
		{
			name: "storage_missing_table",
			mutate: func(p *Pipeline) {
				p.Storage = Storage{Kind: "postgres", DB: DBConfig{DSN: "x"}}
			},
			wantPath:     "storage.db.table",
			wantSeverity: SeverityError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPipeline()
			tt.mutate(&p)

			issues := ValidatePipeline(p)
			for _, is := range issues {
				if is.Path == tt.wantPath && is.Severity == tt.wantSeverity {
					return
				}
			}
			t.Errorf("ValidatePipeline() = %v, want issue at %q (%s)", issues, tt.wantPath, tt.wantSeverity)
		})
	}
}

/*
TestValidatePipelineClean verifies the happy paths: a fully valid pipeline
and one with storage disabled produce no issues at all.
*/
func TestValidatePipelineClean(t *testing.T) {
	if issues := ValidatePipeline(validPipeline()); len(issues) != 0 {
		t.Errorf("ValidatePipeline(valid) = %v, want none", issues)
	}

	p := validPipeline()
	p.Storage.Kind = "none"
	if issues := ValidatePipeline(p); len(issues) != 0 {
		t.Errorf("ValidatePipeline(storage none) = %v, want none", issues)
	}

	p = validPipeline()
	p.Source.Kind = "" // defaults to file
	if issues := ValidatePipeline(p); len(issues) != 0 {
		t.Errorf("ValidatePipeline(default source kind) = %v, want none", issues)
	}
}

/*
TestIssueError checks the error-interface rendering of a finding.
*/
func TestIssueError(t *testing.T) {
	i := Issue{Severity: SeverityError, Path: "output.path", Message: "must not be empty"}
	want := "error at output.path: must not be empty"
	if got := i.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
