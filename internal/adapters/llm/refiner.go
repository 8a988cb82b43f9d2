// Package llm refines deterministic recommendations with a language model.
// Every failure is returned to the caller, which keeps the deterministic list.
package llm

import (
	"context"
	"fmt"

	"github.com/okian/sportfit/internal/domain/types"
	"github.com/okian/sportfit/pkg/logger"
)

// Request carries the deterministic result to refine.
type Request struct {
	Age             int
	Gender          string
	Locale          string
	Profile         types.CategoryScores
	Recommendations []types.Recommendation
}

// Refiner adjusts a ranked list.
type Refiner interface {
	Refine(ctx context.Context, req Request) ([]types.Recommendation, error)
}

// Completer sends one system/user prompt pair and returns the raw answer.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Provider() string
}

// ModelRefiner implements Refiner on top of a Completer.
type ModelRefiner struct {
	completer Completer
	clampMin  int
	clampMax  int
	logger    logger.Logger
}

// NewRefiner creates a refiner that talks to c.
func NewRefiner(c Completer, opts ...Option) *ModelRefiner {
	r := &ModelRefiner{
		completer: c,
		clampMin:  20,
		clampMax:  100,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Provider names the backing model provider.
func (r *ModelRefiner) Provider() string {
	return r.completer.Provider()
}

// Refine asks the model to adjust req.Recommendations and merges the answer.
func (r *ModelRefiner) Refine(ctx context.Context, req Request) ([]types.Recommendation, error) {
	if len(req.Recommendations) == 0 {
		return nil, fmt.Errorf("%w: nothing to refine", ErrEmptyResponse)
	}
	user, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}
	raw, err := r.completer.Complete(ctx, systemPrompt, user)
	if err != nil {
		return nil, fmt.Errorf("%s complete: %w", r.completer.Provider(), err)
	}
	suggestions, err := ParseSuggestions(raw)
	if err != nil {
		r.logger.Warn(ctx, "unparseable refinement answer",
			logger.String("provider", r.completer.Provider()),
			logger.Int("length", len(raw)),
			logger.Error(err))
		return nil, err
	}
	out, err := Merge(req.Recommendations, suggestions, r.clampMin, r.clampMax)
	if err != nil {
		return nil, err
	}
	r.logger.Debug(ctx, "refinement merged",
		logger.String("provider", r.completer.Provider()),
		logger.Int("suggestions", len(suggestions)),
		logger.Int("accepted", countSource(out, types.SourceLLM)))
	return out, nil
}

func countSource(recs []types.Recommendation, src string) int {
	n := 0
	for _, r := range recs {
		if r.Source == src {
			n++
		}
	}
	return n
}
