package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/okian/sportfit/internal/domain/types"
	"github.com/okian/sportfit/pkg/logger"
)

// ErrViolations is returned when any answer broke a guarantee.
var ErrViolations = errors.New("ranking guarantees violated")

const directoryPermission = 0o750

// Run executes a complete probe against cfg.BaseURL.
func Run(ctx context.Context, cfg Config, log logger.Logger) (*Stats, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	stats := &Stats{StartTime: time.Now(), MinScore: maxScore}

	log.Info(ctx, "starting sportfit probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("profiles", cfg.Profiles),
		logger.Int("workers", cfg.Workers),
		logger.Int("topK", cfg.TopK),
		logger.Bool("refine", cfg.Refine),
		logger.Any("seed", seed))

	c := newClient(cfg.BaseURL, cfg.Timeout)
	if err := c.get(ctx, "/healthz"); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	cases := NewGenerator(seed).Cases(cfg.Profiles, cfg.TopK, cfg.Locale, cfg.Refine)
	stats.Generated = len(cases)

	submit(ctx, c, cfg, cases, stats, log)

	if cfg.OutputFile != "" {
		if err := saveCases(cfg.OutputFile, cases); err != nil {
			log.Warn(ctx, "failed to save profiles", logger.Error(err))
		} else {
			log.Info(ctx, "profiles saved", logger.String("file", cfg.OutputFile))
		}
	}

	stats.Duration = time.Since(stats.StartTime)
	report(ctx, stats, log)
	if stats.Violations > 0 {
		return stats, fmt.Errorf("%w: %d", ErrViolations, stats.Violations)
	}
	return stats, nil
}

// submit posts cases concurrently and folds every answer into stats.
func submit(ctx context.Context, c *client, cfg Config, cases []Case, stats *Stats, log logger.Logger) {
	jobs := make(chan Case, cfg.Workers*2)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cs := range jobs {
				var resp Response
				err := c.postJSON(ctx, "/recommendations", cs, &resp)
				var problems []string
				if err == nil {
					problems = Verify(cs, resp.Recommendations)
				}

				mu.Lock()
				record(stats, err, resp, problems)
				mu.Unlock()

				if err != nil && !isRejection(err) {
					log.Debug(ctx, "request failed", logger.String("case", cs.ID), logger.Error(err))
				}
				if len(problems) > 0 && cfg.Verbose {
					log.Warn(ctx, "guarantee violated",
						logger.String("case", cs.ID),
						logger.String("request_id", resp.RequestID),
						logger.Any("problems", problems))
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, cs := range cases {
			select {
			case <-ctx.Done():
				return
			case jobs <- cs:
			}
		}
	}()
	wg.Wait()
}

func record(stats *Stats, err error, resp Response, problems []string) {
	stats.Submitted++
	switch {
	case isRejection(err):
		stats.Rejected++
		return
	case err != nil:
		stats.Failed++
		return
	}
	stats.Successful++
	stats.Violations += len(problems)
	if resp.Cached {
		stats.Cached++
	}
	if resp.Refined {
		stats.Refined++
	}
	for _, r := range resp.Recommendations {
		if r.Source == types.SourceFallback {
			stats.Fallbacks++
			break
		}
	}
	for _, r := range resp.Recommendations {
		stats.MinScore = min(stats.MinScore, r.Compatibility)
		stats.MaxScore = max(stats.MaxScore, r.Compatibility)
	}
}

// isRejection reports answers the service is allowed to give: incomplete
// profiles under require_complete and rate limiting.
func isRejection(err error) bool {
	var se *statusError
	if !errors.As(err, &se) {
		return false
	}
	return se.code == http.StatusUnprocessableEntity || se.code == http.StatusTooManyRequests
}

func saveCases(filename string, cases []Case) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}
	return os.WriteFile(filename, data, 0o600)
}

func report(ctx context.Context, stats *Stats, log logger.Logger) {
	var perSecond float64
	if stats.Duration > 0 {
		perSecond = float64(stats.Submitted) / stats.Duration.Seconds()
	}
	log.Info(ctx, "final statistics",
		logger.Int("generated", stats.Generated),
		logger.Int("submitted", stats.Submitted),
		logger.Int("successful", stats.Successful),
		logger.Int("rejected", stats.Rejected),
		logger.Int("failed", stats.Failed),
		logger.Int("violations", stats.Violations),
		logger.Int("cached", stats.Cached),
		logger.Int("refined", stats.Refined),
		logger.Int("fallbacks", stats.Fallbacks),
		logger.Int("minScore", stats.MinScore),
		logger.Int("maxScore", stats.MaxScore),
		logger.Duration("duration", stats.Duration),
		logger.Float64("requestsPerSecond", perSecond))
}
