package service

import (
	"context"
)

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":          s.started,
		"top_k":            s.topK,
		"max_top_k":        s.maxTopK,
		"require_complete": s.requireComplete,
		"default_locale":   s.defaultLocale,
		"cache_backend":    s.cacheBackend,
		"llm_provider":     providerName(s.refiner),
		"recommendations":  s.recommendations.Load(),
		"refined":          s.refined.Load(),
		"fallbacks":        s.fallbacks.Load(),
		"cache_hits":       s.cacheHits.Load(),
		"cache_misses":     s.cacheMisses.Load(),
		"llm_failures":     s.llmFailures.Load(),
		"summaries":        s.summaries.Load(),
		"reports":          s.reports.Load(),
	}
	if s.started {
		stats["catalogue_size"] = s.store.Count(context.Background())
		if s.cache != nil {
			stats["cache_size"] = s.cache.Size()
		}
	}
	return stats
}
