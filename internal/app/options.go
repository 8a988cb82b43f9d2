package service

import (
	"time"

	"github.com/okian/sportfit/internal/adapters/catalogue"
	"github.com/okian/sportfit/internal/adapters/llm"
	"github.com/okian/sportfit/internal/domain/labels"
	"github.com/okian/sportfit/internal/domain/memo"
	"github.com/okian/sportfit/internal/domain/scoring"
	"github.com/okian/sportfit/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCataloguePath loads the catalogue from a JSON, YAML or CSV file on
// Start. An empty path keeps the embedded catalogue.
func WithCataloguePath(path string) Option {
	return func(s *Service) {
		s.cataloguePath = path
	}
}

// WithCatalogue uses an already loaded catalogue.
func WithCatalogue(store catalogue.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithPolicy sets the scoring policy. Invalid policies are ignored.
func WithPolicy(p scoring.Policy) Option {
	return func(s *Service) {
		if p.Validate() == nil {
			s.policy = p
		}
	}
}

// WithRequireComplete rejects profiles missing any assessment category.
func WithRequireComplete(require bool) Option {
	return func(s *Service) {
		s.requireComplete = require
	}
}

// WithTopK sets the default and maximum list sizes.
func WithTopK(def, max int) Option {
	return func(s *Service) {
		if def > 0 && max >= def {
			s.topK, s.maxTopK = def, max
		}
	}
}

// WithLabelMode selects how strengths and development areas are ordered.
func WithLabelMode(m labels.Mode) Option {
	return func(s *Service) {
		if m != "" {
			s.labelMode = m
		}
	}
}

// WithDefaultLocale sets the locale used when a request names none.
func WithDefaultLocale(locale string) Option {
	return func(s *Service) {
		if locale != "" {
			s.defaultLocale = locale
		}
	}
}

// WithLLM configures the refinement provider built on Start.
func WithLLM(cfg llm.Config, timeout time.Duration) Option {
	return func(s *Service) {
		s.llmConfig = cfg
		if timeout > 0 {
			s.llmTimeout = timeout
		}
	}
}

// WithRefiner uses r for refinement instead of building one from config.
func WithRefiner(r llm.Refiner) Option {
	return func(s *Service) {
		if r != nil {
			s.refiner = r
		}
	}
}

// WithCacheBackend selects memory, redis or none for recommendation memos.
func WithCacheBackend(backend string, size int, ttl time.Duration) Option {
	return func(s *Service) {
		if backend != "" {
			s.cacheBackend = backend
		}
		if size >= 0 {
			s.cacheSize = size
		}
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithRedis sets the Redis connection used by the redis cache backend.
func WithRedis(addr, password string, db int) Option {
	return func(s *Service) {
		s.redisAddr, s.redisPassword, s.redisDB = addr, password, db
	}
}

// WithCache uses c as the memo cache and reports it under backend.
func WithCache(c memo.Cache, backend string) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
			s.cacheBackend = backend
		}
	}
}
