// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/sportfit/internal/adapters/cache/rediscache"
	"github.com/okian/sportfit/internal/adapters/catalogue"
	"github.com/okian/sportfit/internal/adapters/i18n"
	"github.com/okian/sportfit/internal/adapters/llm"
	"github.com/okian/sportfit/internal/adapters/report"
	"github.com/okian/sportfit/internal/domain/labels"
	"github.com/okian/sportfit/internal/domain/memo"
	"github.com/okian/sportfit/internal/domain/ranking"
	"github.com/okian/sportfit/internal/domain/scoring"
	"github.com/okian/sportfit/pkg/logger"
	"github.com/okian/sportfit/pkg/metrics"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// ErrNotStarted is returned by operations called before Start.
var ErrNotStarted = errors.New("service not started")

// Service implements the API dependencies for the recommendation system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      catalogue.Store
	scorer     *scoring.PolicyScorer
	ranker     *ranking.Ranker
	translator *i18n.Translator
	renderer   *report.Renderer
	cache      memo.Cache
	refiner    llm.Refiner
	closers    []io.Closer
	owned      []func()

	// Configuration
	cataloguePath   string
	policy          scoring.Policy
	requireComplete bool
	topK            int
	maxTopK         int
	labelMode       labels.Mode
	defaultLocale   string
	llmConfig       llm.Config
	llmTimeout      time.Duration
	cacheBackend    string
	cacheSize       int
	cacheTTL        time.Duration
	redisAddr       string
	redisPassword   string
	redisDB         int

	// State
	started bool
	counters

	// Logging
	logger logger.Logger
}

type counters struct {
	recommendations atomic.Int64
	refined         atomic.Int64
	fallbacks       atomic.Int64
	cacheHits       atomic.Int64
	cacheMisses     atomic.Int64
	llmFailures     atomic.Int64
	summaries       atomic.Int64
	reports         atomic.Int64
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		policy:        scoring.DefaultPolicy(),
		topK:          5,
		maxTopK:       10,
		labelMode:     labels.ModeRelevance,
		defaultLocale: i18n.English,
		llmConfig:     llm.Config{Provider: llm.ProviderNone},
		llmTimeout:    15 * time.Second,
		cacheBackend:  CacheMemory,
		cacheSize:     10_000,
		cacheTTL:      time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the catalogue and builds the pipeline components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting recommendation service...")

	if s.store == nil {
		store, err := s.loadCatalogue(ctx)
		if err != nil {
			return fmt.Errorf("load catalogue: %w", err)
		}
		s.store = store
	}
	size := s.store.Count(ctx)
	metrics.UpdateCatalogueSize(size)

	s.translator = i18n.New(s.defaultLocale)
	s.scorer = scoring.NewPolicyScorer(scoring.WithPolicy(s.policy))
	s.ranker = ranking.New(
		ranking.WithScorer(s.scorer),
		ranking.WithLabeler(labels.New(labels.WithMode(s.labelMode))),
		ranking.WithLocalizer(s.translator),
		ranking.WithTopK(s.topK, s.maxTopK),
		ranking.WithRequireComplete(s.requireComplete),
	)
	s.renderer = report.New(report.WithLabeler(s.translator))

	s.startCache(ctx)
	s.startRefiner(ctx)

	s.started = true
	s.logger.Info(ctx, "recommendation service started",
		logger.Int("catalogue", size),
		logger.String("cache", s.cacheBackend),
		logger.String("llm", providerName(s.refiner)),
		logger.Bool("require_complete", s.requireComplete),
	)
	return nil
}

// loadCatalogue reads the configured catalogue. A file that is missing,
// unreadable or has no sports leaves the service on an empty store, so every
// request is answered from the built-in fallback list. A file that exists but
// cannot be parsed is a configuration error.
func (s *Service) loadCatalogue(ctx context.Context) (catalogue.Store, error) {
	var (
		store *catalogue.MemoryStore
		err   error
	)
	if s.cataloguePath == "" {
		store, err = catalogue.LoadDefault()
	} else {
		store, err = catalogue.Load(s.cataloguePath)
	}
	switch {
	case err == nil:
		return store, nil
	case errors.Is(err, catalogue.ErrMalformed), errors.Is(err, catalogue.ErrUnsupportedFormat):
		return nil, err
	}
	s.logger.Warn(ctx, "catalogue unavailable, serving fallback recommendations",
		logger.String("path", s.cataloguePath),
		logger.Error(err))
	return catalogue.NewMemoryStore(nil), nil
}

// startCache builds the memo backend. Memoization is optional: a Redis
// server that cannot be reached is logged and replaced by the in-memory cache.
func (s *Service) startCache(ctx context.Context) {
	if s.cache != nil {
		return
	}
	configured := s.cacheBackend
	switch s.cacheBackend {
	case CacheNone:
	case CacheRedis:
		c, err := rediscache.Dial(ctx, s.redisAddr, s.redisPassword, s.redisDB,
			rediscache.WithTTL(s.cacheTTL),
			rediscache.WithLogger(s.logger.Named("rediscache")),
		)
		if err != nil {
			s.logger.Warn(ctx, "redis cache unavailable, using in-memory cache",
				logger.String("addr", s.redisAddr),
				logger.Error(err))
			s.cacheBackend = CacheMemory
			s.cache = memo.NewInMemoryCache(memo.WithMaxSize(s.cacheSize))
			break
		}
		s.cache = c
		s.closers = append(s.closers, c)
	default:
		s.cacheBackend = CacheMemory
		s.cache = memo.NewInMemoryCache(memo.WithMaxSize(s.cacheSize))
	}
	s.owned = append(s.owned, func() { s.cache, s.cacheBackend = nil, configured })
}

// startRefiner builds the configured provider. Refinement is optional, so a
// provider that cannot be built is logged and left disabled.
func (s *Service) startRefiner(ctx context.Context) {
	if s.refiner != nil {
		return
	}
	p := s.policy
	r, closer, err := llm.New(ctx, s.llmConfig, s.logger.Named("llm"), llm.WithClamp(p.ClampMin, p.ClampMax))
	switch {
	case errors.Is(err, llm.ErrDisabled):
		return
	case err != nil:
		s.logger.Warn(ctx, "llm refinement disabled", logger.String("provider", s.llmConfig.Provider), logger.Error(err))
		return
	}
	s.refiner = r
	s.closers = append(s.closers, closer)
	s.owned = append(s.owned, func() { s.refiner = nil })
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx := context.Background()
	s.logger.Info(ctx, "stopping recommendation service...")
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Warn(ctx, "close failed", logger.Error(err))
		}
	}
	// Components built by Start are rebuilt by the next Start.
	for _, reset := range s.owned {
		reset()
	}
	s.closers, s.owned = nil, nil
	s.started = false
	s.logger.Info(ctx, "recommendation service stopped")
}

// pipeline is the set of components one request works with. It is copied
// under the read lock so a concurrent Stop cannot clear it mid-request.
type pipeline struct {
	store        catalogue.Store
	scorer       *scoring.PolicyScorer
	ranker       *ranking.Ranker
	translator   *i18n.Translator
	renderer     *report.Renderer
	cache        memo.Cache
	cacheBackend string
	refiner      llm.Refiner
	llmTimeout   time.Duration
}

// running returns the started components, or ErrNotStarted.
func (s *Service) running() (pipeline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return pipeline{}, ErrNotStarted
	}
	return pipeline{
		store:        s.store,
		scorer:       s.scorer,
		ranker:       s.ranker,
		translator:   s.translator,
		renderer:     s.renderer,
		cache:        s.cache,
		cacheBackend: s.cacheBackend,
		refiner:      s.refiner,
		llmTimeout:   s.llmTimeout,
	}, nil
}

func providerName(r llm.Refiner) string {
	if r == nil {
		return llm.ProviderNone
	}
	if p, ok := r.(interface{ Provider() string }); ok {
		return p.Provider()
	}
	return "custom"
}
