package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/sportfit/internal/probe"
	"github.com/okian/sportfit/pkg/logger"
)

// Default configuration constants.
const (
	defaultProfiles     = 1000
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultProbeTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		profiles   = flag.Int("profiles", defaultProfiles, "Number of profiles to generate and submit")
		topK       = flag.Int("top", 0, "top_k sent with every request; 0 picks one per profile")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed       = flag.Int64("seed", 0, "Generator seed; 0 uses the clock")
		locale     = flag.String("locale", "en", "Locale sent with every request")
		refine     = flag.Bool("refine", false, "Ask the service for model refinement")
		outputFile = flag.String("output", "", "File to save the generated profiles to")
		verbose    = flag.Bool("verbose", false, "Log every violated guarantee")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultProbeTimeout)
	defer cancel()

	cfg := probe.Config{
		BaseURL:    *baseURL,
		Profiles:   *profiles,
		TopK:       *topK,
		Workers:    *workers,
		Timeout:    *timeout,
		Seed:       *seed,
		Locale:     *locale,
		Refine:     *refine,
		OutputFile: *outputFile,
		Verbose:    *verbose,
	}

	if _, err := probe.Run(ctx, cfg, logger.Named("probe")); err != nil {
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
