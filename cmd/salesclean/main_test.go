package main

import "testing"

/*
TestResolveMetricsBackend verifies backend-name resolution: an explicitly set
flag always wins, the environment variable fills in when the flag was left at
its default, and the default stands when neither is given.
*/
func TestResolveMetricsBackend(t *testing.T) {
	tests := []struct {
		name      string
		flagValue string
		flagSet   bool
		env       string
		want      string
	}{
		{"flag_wins_over_env", "datadog", true, "pushgateway", "datadog"},
		{"explicit_none_wins", "none", true, "pushgateway", "none"},
		{"env_overrides_default", "none", false, "pushgateway", "pushgateway"},
		{"default_when_unset", "none", false, "", "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveMetricsBackend(tt.flagValue, tt.flagSet, tt.env); got != tt.want {
				t.Errorf("resolveMetricsBackend(%q, %v, %q) = %q, want %q",
					tt.flagValue, tt.flagSet, tt.env, got, tt.want)
			}
		})
	}
}

/*
TestLoadPipelineOverrides checks flag overrides and the default job name.
*/
func TestLoadPipelineOverrides(t *testing.T) {
	p, err := loadPipeline("", "raw.csv", "clean.csv")
	if err != nil {
		t.Fatalf("loadPipeline() error = %v", err)
	}
	if p.Source.File.Path != "raw.csv" || p.Output.Path != "clean.csv" {
		t.Errorf("paths = %q, %q", p.Source.File.Path, p.Output.Path)
	}
	if p.Job != "salesclean" {
		t.Errorf("Job = %q, want default", p.Job)
	}
}
