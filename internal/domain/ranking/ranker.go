// Package ranking scores a catalogue for one user and selects the top-K
// recommendations.
package ranking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/okian/sportfit/internal/domain/labels"
	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/scoring"
	"github.com/okian/sportfit/internal/domain/types"
)

// Default selection bounds.
const (
	defaultTopK = 5
	maxTopK     = 10
)

// Sentinel errors.
var (
	ErrIncompleteProfile = errors.New("profile is missing assessment categories")
)

// Localizer turns event names and label keys into display text.
type Localizer interface {
	SportName(eventName, locale string) string
	Label(key, locale string) string
}

// identity leaves names and keys untouched.
type identity struct{}

func (identity) SportName(eventName, _ string) string { return eventName }
func (identity) Label(key, _ string) string           { return key }

// Request is one ranking call.
type Request struct {
	User      model.UserProfile
	Catalogue []model.SportCandidate
	// TopK is clamped to [1, max]; zero selects the default.
	TopK   int
	Locale string
}

// Ranker builds ordered recommendation lists.
type Ranker struct {
	scorer          scoring.Scorer
	labeler         *labels.Labeler
	localizer       Localizer
	fallback        func(model.Gender) []model.SportCandidate
	defaultTopK     int
	maxTopK         int
	requireComplete bool
}

// New creates a Ranker with the default scorer, labeler and fallback list.
func New(opts ...Option) *Ranker {
	r := &Ranker{
		scorer:      scoring.NewPolicyScorer(),
		labeler:     labels.New(),
		localizer:   identity{},
		fallback:    FallbackCandidates,
		defaultTopK: defaultTopK,
		maxTopK:     maxTopK,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.defaultTopK > r.maxTopK {
		r.defaultTopK = r.maxTopK
	}
	return r
}

// TopK resolves a requested list size against the configured bounds.
func (r *Ranker) TopK(requested int) int {
	switch {
	case requested <= 0:
		return r.defaultTopK
	case requested > r.maxTopK:
		return r.maxTopK
	default:
		return requested
	}
}

// Rank returns at most TopK recommendations sorted by descending
// compatibility. Ties keep catalogue order. When no catalogue entry is
// eligible for the user, the built-in fallback list is ranked instead, so the
// result is never empty.
func (r *Ranker) Rank(ctx context.Context, req Request) ([]types.Recommendation, error) {
	if r.requireComplete && !req.User.Complete() {
		return nil, ErrIncompleteProfile
	}
	gender := req.User.EffectiveGender()

	eligible := make([]model.SportCandidate, 0, len(req.Catalogue))
	for _, s := range req.Catalogue {
		if s.Gender.Eligible(gender) {
			eligible = append(eligible, s)
		}
	}
	source := types.SourceScorer
	if len(eligible) == 0 {
		eligible = r.fallback(gender)
		source = types.SourceFallback
	}

	profile := r.scorer.Profile(req.User)
	recs := make([]types.Recommendation, 0, len(eligible))
	for _, s := range eligible {
		res, err := r.scorer.Score(ctx, scoring.Input{User: req.User, Profile: &profile, Sport: s})
		if err != nil {
			return nil, fmt.Errorf("score %q: %w", s.EventName, err)
		}
		recs = append(recs, types.Recommendation{
			SportName:        r.localizer.SportName(s.EventName, req.Locale),
			EventName:        s.EventName,
			Category:         string(s.Category),
			Compatibility:    res.Compatibility,
			Strengths:        r.localize(r.labeler.Strengths(s, req.User), req.Locale),
			DevelopmentAreas: r.localize(r.labeler.DevelopmentAreas(s, req.User), req.Locale),
			Components:       res.Components,
			Source:           source,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Compatibility > recs[j].Compatibility
	})

	if k := r.TopK(req.TopK); len(recs) > k {
		recs = recs[:k]
	}
	for i := range recs {
		recs[i].Rank = i + 1
	}
	return recs, nil
}

func (r *Ranker) localize(keys []string, locale string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = r.localizer.Label(k, locale)
	}
	return out
}
