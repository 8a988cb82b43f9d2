package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/okian/sportfit/internal/domain/labels"
)

// Environment conventions.
const (
	EnvPrefix     = "SPORTFIT_"
	EnvConfigFile = "SPORTFIT_CONFIG"
	EnvDotFile    = ".env"
)

// ErrLoadConfig wraps failures reading a source; ErrInvalidConfig wraps
// values that load but cannot run the service.
var (
	ErrLoadConfig    = errors.New("load config failed")
	ErrInvalidConfig = errors.New("invalid config")
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SPORTFIT_CONFIG is set
//  3. env (prefix SPORTFIT_, "__" separates nested keys)
//
// A .env file in the working directory is read first; variables already in
// the environment win over it.
func Load(_ context.Context) (*Config, error) {
	if err := godotenv.Load(EnvDotFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, EnvDotFile, err)
	}

	base := New()
	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// SPORTFIT_LLM__PROVIDER -> llm.provider, SPORTFIT_ADDR -> addr.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		if s == strings.TrimPrefix(EnvConfigFile, EnvPrefix) {
			return ""
		}
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("%w: scoring: %w", ErrInvalidConfig, err)
	}
	r := c.Recommendation
	if r.MaxTopK < 1 || r.TopK < 1 || r.TopK > r.MaxTopK {
		return fmt.Errorf("%w: recommendation top_k %d / max_top_k %d", ErrInvalidConfig, r.TopK, r.MaxTopK)
	}
	switch labels.Mode(r.LabelMode) {
	case labels.ModeDeclaration, labels.ModeRelevance:
	default:
		return fmt.Errorf("%w: recommendation label_mode %q", ErrInvalidConfig, r.LabelMode)
	}
	switch c.LLM.Provider {
	case "none", "":
	case "openai", "gemini":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("%w: llm provider %q needs api_key", ErrInvalidConfig, c.LLM.Provider)
		}
		if c.LLM.Timeout <= 0 {
			return fmt.Errorf("%w: llm timeout must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: llm provider %q", ErrInvalidConfig, c.LLM.Provider)
	}
	switch c.Cache.Backend {
	case "none":
	case "memory":
		if c.Cache.Size < 0 {
			return fmt.Errorf("%w: cache size must not be negative", ErrInvalidConfig)
		}
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("%w: cache redis_addr is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: cache backend %q", ErrInvalidConfig, c.Cache.Backend)
	}
	if c.HTTP.RateLimitPerMin < 0 {
		return fmt.Errorf("%w: http rate_limit_per_min must not be negative", ErrInvalidConfig)
	}
	return nil
}
