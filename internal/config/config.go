// Package config defines service configuration structures and loading hooks.
package config

import (
	"time"

	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/scoring"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	Catalogue      CatalogueConfig      `koanf:"catalogue"`
	Scoring        ScoringConfig        `koanf:"scoring"`
	Recommendation RecommendationConfig `koanf:"recommendation"`
	LLM            LLMConfig            `koanf:"llm"`
	Cache          CacheConfig          `koanf:"cache"`
	HTTP           HTTPConfig           `koanf:"http"`
}

// CatalogueConfig points at the sport catalogue. An empty path selects the
// embedded catalogue.
type CatalogueConfig struct {
	Path string `koanf:"path"`
}

// ScoringConfig overrides the compatibility policy.
type ScoringConfig struct {
	IndividualWeights model.Weights `koanf:"individual_weights"`
	CollectiveWeights model.Weights `koanf:"collective_weights"`
	BaseScale         float64       `koanf:"base_scale"`
	ClampMin          int           `koanf:"clamp_min"`
	ClampMax          int           `koanf:"clamp_max"`
	AgePivot          float64       `koanf:"age_pivot"`
	AgeSpan           float64       `koanf:"age_span"`
	AgeMinFactor      float64       `koanf:"age_min_factor"`
	DefaultAge        int           `koanf:"default_age"`
	RequireComplete   bool          `koanf:"require_complete"`
}

// RecommendationConfig controls list size, labelling and localization.
type RecommendationConfig struct {
	TopK          int    `koanf:"top_k"`
	MaxTopK       int    `koanf:"max_top_k"`
	LabelMode     string `koanf:"label_mode"`
	DefaultLocale string `koanf:"default_locale"`
}

// LLMConfig selects the optional refinement provider. Provider "none"
// disables refinement.
type LLMConfig struct {
	Provider    string        `koanf:"provider"`
	Model       string        `koanf:"model"`
	BaseURL     string        `koanf:"base_url"`
	APIKey      string        `koanf:"api_key"`
	Timeout     time.Duration `koanf:"timeout"`
	MaxRetries  int           `koanf:"max_retries"`
	Temperature float64       `koanf:"temperature"`
}

// CacheConfig selects the recommendation memo backend: memory, redis or none.
type CacheConfig struct {
	Backend       string        `koanf:"backend"`
	Size          int           `koanf:"size"`
	TTL           time.Duration `koanf:"ttl"`
	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
}

// HTTPConfig configures the outer middleware and server timeouts.
type HTTPConfig struct {
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitPerMin int           `koanf:"rate_limit_per_min"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
}

// New returns a Config populated with defaults.
func New() *Config {
	p := scoring.DefaultPolicy()
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Addr:      ":9080",
		Scoring: ScoringConfig{
			IndividualWeights: p.IndividualWeights,
			CollectiveWeights: p.CollectiveWeights,
			BaseScale:         p.BaseScale,
			ClampMin:          p.ClampMin,
			ClampMax:          p.ClampMax,
			AgePivot:          p.Age.Pivot,
			AgeSpan:           p.Age.Span,
			AgeMinFactor:      p.Age.Min,
			DefaultAge:        p.Age.DefaultAge,
		},
		Recommendation: RecommendationConfig{
			TopK:          5,
			MaxTopK:       10,
			LabelMode:     "relevance",
			DefaultLocale: "en",
		},
		LLM: LLMConfig{
			Provider:    "none",
			Timeout:     15 * time.Second,
			MaxRetries:  3,
			Temperature: 0.7,
		},
		Cache: CacheConfig{
			Backend: "memory",
			Size:    10_000,
			TTL:     time.Hour,
		},
		HTTP: HTTPConfig{
			CORSOrigins:     []string{"*"},
			RateLimitPerMin: 600,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
		},
	}
}

// Policy converts the scoring section into a scoring policy. Bonus and
// biotype tables keep their defaults.
func (c *Config) Policy() scoring.Policy {
	p := scoring.DefaultPolicy()
	p.IndividualWeights = c.Scoring.IndividualWeights
	p.CollectiveWeights = c.Scoring.CollectiveWeights
	p.BaseScale = c.Scoring.BaseScale
	p.ClampMin = c.Scoring.ClampMin
	p.ClampMax = c.Scoring.ClampMax
	p.Age.Pivot = c.Scoring.AgePivot
	p.Age.Span = c.Scoring.AgeSpan
	p.Age.Min = c.Scoring.AgeMinFactor
	p.Age.DefaultAge = c.Scoring.DefaultAge
	return p
}
