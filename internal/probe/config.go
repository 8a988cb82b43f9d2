// Package probe drives a running service with random profiles and checks
// every answer against the ranking guarantees.
package probe

import (
	"time"

	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/types"
)

// Config holds configuration for a probe run.
type Config struct {
	BaseURL    string        // Base URL of the service
	Profiles   int           // Number of profiles to generate
	TopK       int           // Requested list size; 0 lets each case pick one
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	Seed       int64         // Generator seed; 0 uses the clock
	Locale     string        // Locale sent with every request
	Refine     bool          // Ask for model refinement
	OutputFile string        // Where to save generated profiles; empty skips saving
	Verbose    bool          // Log every violation
}

// Case is one generated request.
type Case struct {
	ID      string            `json:"id"`
	Profile model.UserProfile `json:"profile"`
	TopK    int               `json:"top_k"`
	Locale  string            `json:"locale,omitempty"`
	Refine  bool              `json:"refine,omitempty"`
}

// Response mirrors POST /recommendations.
type Response struct {
	RequestID string `json:"request_id"`
	types.RecommendationResult
}

// Stats holds run statistics.
type Stats struct {
	Generated  int
	Submitted  int
	Successful int
	Rejected   int
	Failed     int
	Violations int
	Cached     int
	Refined    int
	Fallbacks  int
	MinScore   int
	MaxScore   int
	StartTime  time.Time
	Duration   time.Duration
}
