package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"salesclean/internal/config"
	"salesclean/internal/metrics"
	"salesclean/internal/metrics/datadog"
	"salesclean/internal/metrics/prompush"
	"salesclean/internal/pipeline"
	"salesclean/internal/report"

	// register all storage backends with the storage factory.
	// config specifies which to use but we build in support for all of them.
	_ "salesclean/internal/storage/all"
)

// main is the entry point for the salesclean binary. It loads the pipeline
// config, optionally initializes a metrics backend, and executes the run.
func main() {
	var (
		cfgPath           string
		sourceFlg         string
		destFlg           string
		metricsBackendFlg string
		pushGatewayURLFlg string
		datadogAddrFlg    string
		validate          bool
	)

	flag.StringVar(&cfgPath, "config", "", "pipeline config JSON path (optional when -source and -dest are set)")
	flag.StringVar(&sourceFlg, "source", "", "raw CSV path (overrides config source.file.path)")
	flag.StringVar(&destFlg, "dest", "", "cleaned CSV path (overrides config output.path)")
	flag.StringVar(&metricsBackendFlg, "metrics-backend", "none", "metrics backend to use (pushgateway, datadog, none)")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	flag.StringVar(&datadogAddrFlg, "datadog-addr", "", "DogStatsD address (overrides env DD_AGENT_ADDR)")
	flag.BoolVar(&validate, "validate", false, "validate the configuration and exit")
	verbose := flag.Bool("v", false, "enable verbose logs")

	flag.Parse()

	p, err := loadPipeline(cfgPath, sourceFlg, destFlg)
	if err != nil {
		fatalf("%v", err)
	}

	// Validate pipeline config.
	issues := config.ValidatePipeline(p)
	hasError := false
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		if iss.Severity == config.SeverityError {
			hasError = true
		}
	}
	if hasError {
		log.Printf("configuration is invalid")
		os.Exit(1)
	}

	// If validate flag is set, only validate the configuration and exit.
	if validate {
		log.Printf("configuration is valid")
		os.Exit(0)
	}

	// Decide metrics backend: flag -> env -> default.
	flagSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "metrics-backend" {
			flagSet = true
		}
	})
	backendName := resolveMetricsBackend(metricsBackendFlg, flagSet, os.Getenv("METRICS_BACKEND"))
	switch backendName {
	case "pushgateway":
		gwURL := pushGatewayURLFlg
		if gwURL == "" {
			gwURL = os.Getenv("PUSHGATEWAY_URL")
		}
		if gwURL == "" {
			gwURL = "http://localhost:9091"
		}
		b, err := prompush.NewBackend(p.Job, gwURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
		} else {
			log.Printf("metrics: url=%v, backend=%v, job_name=%v", gwURL, backendName, p.Job)
			metrics.SetBackend(b)
		}

	case "datadog":
		addr := datadogAddrFlg
		if addr == "" {
			addr = os.Getenv("DD_AGENT_ADDR")
		}
		if addr == "" {
			addr = "127.0.0.1:8125"
		}
		b, err := datadog.NewBackend(datadog.Config{Addr: addr, Namespace: "salesclean."})
		if err != nil {
			log.Printf("metrics: failed to init datadog backend: %v; using nop", err)
		} else {
			log.Printf("metrics: addr=%v, backend=%v, job_name=%v", addr, backendName, p.Job)
			metrics.SetBackend(b)
		}

	case "", "none":
		// metrics disabled; nop backend remains
		if *verbose {
			log.Printf("metrics: disabled (backend=%q)", backendName)
		}

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}
	defer func() {
		if err := metrics.Flush(); err != nil {
			log.Printf("metrics: flush error: %v", err)
		}
	}()

	ctx := context.Background()

	banner := strings.Repeat("=", 60)
	fmt.Println(banner)
	fmt.Println("Starting Data Cleaning Pipeline")
	fmt.Println(banner)

	sum, err := pipeline.Run(ctx, p, report.Stdout())
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(banner)
	fmt.Printf("Cleaning complete: run_id=%s rows_in=%d rows_out=%d dropped_missing=%d dropped_negative=%d elapsed=%s\n",
		sum.RunID, sum.SourceRows, sum.OutputRows, sum.DroppedMissing, sum.DroppedNegative,
		sum.Elapsed.Truncate(time.Millisecond))
}

// loadPipeline builds the pipeline config from a file and/or the -source and
// -dest overrides. With no config file, the two paths form the minimal
// two-input invocation.
func loadPipeline(cfgPath, source, dest string) (config.Pipeline, error) {
	var p config.Pipeline
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return p, err
		}
		p = loaded
	}
	if source != "" {
		p.Source.File.Path = source
	}
	if dest != "" {
		p.Output.Path = dest
	}
	if p.Job == "" {
		p.Job = "salesclean"
	}
	return p, nil
}

// resolveMetricsBackend picks the metrics backend name. A flag the user set
// explicitly wins; otherwise the METRICS_BACKEND environment variable, when
// non-empty, overrides the flag default.
func resolveMetricsBackend(flagValue string, flagSet bool, env string) string {
	if flagSet {
		return flagValue
	}
	if env != "" {
		return env
	}
	return flagValue
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
