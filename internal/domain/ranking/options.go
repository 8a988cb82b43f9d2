package ranking

import (
	"github.com/okian/sportfit/internal/domain/labels"
	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/scoring"
)

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithScorer sets the compatibility scorer.
func WithScorer(s scoring.Scorer) Option {
	return func(r *Ranker) {
		if s != nil {
			r.scorer = s
		}
	}
}

// WithLabeler sets the strengths/development labeler.
func WithLabeler(l *labels.Labeler) Option {
	return func(r *Ranker) {
		if l != nil {
			r.labeler = l
		}
	}
}

// WithLocalizer sets the display text provider.
func WithLocalizer(l Localizer) Option {
	return func(r *Ranker) {
		if l != nil {
			r.localizer = l
		}
	}
}

// WithFallback replaces the built-in fallback list provider.
func WithFallback(f func(model.Gender) []model.SportCandidate) Option {
	return func(r *Ranker) {
		if f != nil {
			r.fallback = f
		}
	}
}

// WithTopK sets the default and maximum list sizes.
func WithTopK(def, max int) Option {
	return func(r *Ranker) {
		if max > 0 {
			r.maxTopK = max
		}
		if def > 0 {
			r.defaultTopK = def
		}
	}
}

// WithRequireComplete rejects profiles missing any assessment category.
func WithRequireComplete(require bool) Option {
	return func(r *Ranker) {
		r.requireComplete = require
	}
}
