package service

import (
	"context"
	"errors"
	"time"

	"github.com/okian/sportfit/internal/adapters/llm"
	"github.com/okian/sportfit/internal/domain/memo"
	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/ranking"
	"github.com/okian/sportfit/internal/domain/types"
	"github.com/okian/sportfit/pkg/logger"
	"github.com/okian/sportfit/pkg/metrics"
)

const cacheKeyPrefix = "rec:"

// cacheKey is the canonical form of a deterministic recommendation request.
type cacheKey struct {
	Profile model.UserProfile `json:"profile"`
	TopK    int               `json:"top_k"`
	Locale  string            `json:"locale"`
}

// Recommend ranks the catalogue for q.Profile. When q.Refine is set and a
// provider is configured the list is passed through the model; any failure
// there keeps the deterministic list.
func (s *Service) Recommend(ctx context.Context, q types.RecommendationQuery) (types.RecommendationResult, error) {
	start := time.Now()
	p, err := s.running()
	if err != nil {
		return types.RecommendationResult{}, err
	}
	locale := p.translator.Match(q.Locale)
	topK := p.ranker.TopK(q.TopK)
	res := types.RecommendationResult{Locale: locale}

	key, keyErr := memo.Key(cacheKeyPrefix, cacheKey{Profile: q.Profile, TopK: topK, Locale: locale})
	recs, hit := s.lookup(ctx, p, key, keyErr)
	if !hit {
		recs, err = p.ranker.Rank(ctx, ranking.Request{
			User:      q.Profile,
			Catalogue: p.store.All(ctx),
			TopK:      topK,
			Locale:    locale,
		})
		if err != nil {
			metrics.RecordRecommendationError(errorReason(err))
			return res, err
		}
		if keyErr == nil && p.cache != nil {
			p.cache.Put(ctx, key, recs)
		}
	}
	res.Cached = hit

	source := types.SourceScorer
	if len(recs) > 0 && recs[0].Source == types.SourceFallback {
		source = types.SourceFallback
		s.fallbacks.Add(1)
		metrics.RecordFallback()
	}

	if q.Refine {
		if refined, ok := s.refine(ctx, p, q.Profile, locale, recs); ok {
			recs = refined
			res.Refined = true
			source = types.SourceLLM
			s.refined.Add(1)
		}
	}
	res.Recommendations = recs

	s.recommendations.Add(1)
	metrics.RecordRecommendation(source, float64(time.Since(start).Milliseconds()))
	return res, nil
}

func (s *Service) lookup(ctx context.Context, p pipeline, key string, keyErr error) ([]types.Recommendation, bool) {
	if p.cache == nil {
		return nil, false
	}
	if keyErr != nil {
		s.logger.Warn(ctx, "cache key failed", logger.Error(keyErr))
		return nil, false
	}
	recs, ok := p.cache.Get(ctx, key)
	if ok {
		s.cacheHits.Add(1)
		metrics.RecordCacheHit(p.cacheBackend)
		return recs, true
	}
	s.cacheMisses.Add(1)
	metrics.RecordCacheMiss(p.cacheBackend)
	return nil, false
}

// refine calls the model with a bounded timeout. It never fails the request.
func (s *Service) refine(ctx context.Context, p pipeline, u model.UserProfile, locale string, recs []types.Recommendation) ([]types.Recommendation, bool) {
	if p.refiner == nil || len(recs) == 0 {
		return nil, false
	}
	provider := providerName(p.refiner)
	ctx, cancel := context.WithTimeout(ctx, p.llmTimeout)
	defer cancel()

	start := time.Now()
	out, err := p.refiner.Refine(ctx, llm.Request{
		Age:             u.Age,
		Gender:          string(u.EffectiveGender()),
		Locale:          locale,
		Profile:         p.scorer.Profile(u),
		Recommendations: recs,
	})
	ms := float64(time.Since(start).Milliseconds())
	if err != nil {
		s.llmFailures.Add(1)
		metrics.RecordLLMRequest(provider, llmOutcome(err), ms)
		s.logger.Warn(ctx, "refinement failed, keeping deterministic ranking",
			logger.String("provider", provider),
			logger.Float64("latency_ms", ms),
			logger.Error(err))
		return nil, false
	}
	metrics.RecordLLMRequest(provider, "ok", ms)
	return out, true
}

func llmOutcome(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, llm.ErrMalformedResponse), errors.Is(err, llm.ErrEmptyResponse):
		return "malformed"
	default:
		return "error"
	}
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, ranking.ErrIncompleteProfile):
		return "incomplete_profile"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}

// Summarize describes u independently of any sport, with attribute labels
// in the requested locale.
func (s *Service) Summarize(ctx context.Context, u model.UserProfile, locale string) (types.ProfileSummary, error) {
	p, err := s.running()
	if err != nil {
		return types.ProfileSummary{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.ProfileSummary{}, err
	}
	locale = p.translator.Match(locale)
	summary := p.scorer.Table().Summarize(u)
	for _, list := range [][]types.AttributeScore{summary.Attributes, summary.TopAttributes, summary.FocusAttributes} {
		for i := range list {
			list[i].Label = p.translator.Label(list[i].Attribute, locale)
		}
	}
	s.summaries.Add(1)
	metrics.RecordSummary()
	return summary, nil
}

// Sports lists the catalogue with display names in locale.
func (s *Service) Sports(ctx context.Context, locale string) ([]types.SportInfo, error) {
	p, err := s.running()
	if err != nil {
		return nil, err
	}
	locale = p.translator.Match(locale)
	all := p.store.All(ctx)
	out := make([]types.SportInfo, 0, len(all))
	for _, sp := range all {
		keys := make([]string, 0, len(sp.KeyAttributes))
		for _, a := range sp.KeyAttributes {
			keys = append(keys, string(a))
		}
		out = append(out, types.SportInfo{
			EventName:     sp.EventName,
			SportName:     p.translator.SportName(sp.EventName, locale),
			Category:      string(sp.Category),
			Gender:        string(sp.Gender),
			Tags:          sp.Tags.Sorted(),
			KeyAttributes: keys,
		})
	}
	return out, nil
}
