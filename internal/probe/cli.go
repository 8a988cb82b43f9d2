package probe

import (
	"io"
	"os"
)

// ShowHelp prints usage information for the probe tool.
func ShowHelp() {
	writeHelp(os.Stdout)
}

func writeHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Sportfit Probe
==============

Sends random athlete profiles to a running sportfit service and checks
every ranking it returns: list size, rank order, score bounds, gender
eligibility and labels.

Usage:
  go run ./cmd/probe [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -profiles int
        Number of profiles to generate and submit (default 1000)
  -top int
        top_k sent with every request; 0 picks a random value per profile
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -seed int
        Generator seed; 0 uses the clock
  -locale string
        Locale sent with every request (default "en")
  -refine
        Ask the service for model refinement
  -output string
        File to save the generated profiles to
  -verbose
        Log every violated guarantee
  -help
        Show this help message

Examples:
  # Probe a local service
  go run ./cmd/probe

  # Reproducible run against another host
  go run ./cmd/probe -profiles 5000 -seed 42 -url http://localhost:8080

The tool exits with status 1 when any guarantee is violated.
`)
}
