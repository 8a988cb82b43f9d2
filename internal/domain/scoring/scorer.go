package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/types"
)

// Input is one (user, sport) pair to score. Profile may carry the user's
// precomputed category scores; when nil they are built from User.
type Input struct {
	User    model.UserProfile
	Profile *types.CategoryScores
	Sport   model.SportCandidate
}

// Result is the compatibility of a user with one sport.
type Result struct {
	Compatibility int
	Components    types.ScoreComponents
	// Raw is the unclamped value before rounding.
	Raw float64
	// Bonuses lists the names of the bonus rules that fired.
	Bonuses []string
}

// Scorer computes sport compatibility.
type Scorer interface {
	// Profile builds the category scores of a user.
	Profile(u model.UserProfile) types.CategoryScores
	// Score computes compatibility, honoring ctx for cancellation. Bad or
	// missing data never produces an error.
	Score(ctx context.Context, in Input) (Result, error)
}

// PolicyScorer implements Scorer on top of a Policy and a ReferenceTable.
type PolicyScorer struct {
	policy Policy
	table  ReferenceTable
}

// NewPolicyScorer creates a scorer with the default policy and table.
func NewPolicyScorer(opts ...Option) *PolicyScorer {
	s := &PolicyScorer{
		policy: DefaultPolicy(),
		table:  DefaultReferenceTable(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Policy returns a copy of the active policy.
func (s *PolicyScorer) Policy() Policy {
	return s.policy
}

// Profile builds the category scores of u.
func (s *PolicyScorer) Profile(u model.UserProfile) types.CategoryScores {
	return s.table.Build(u)
}

// Table returns the reference table used for profiles.
func (s *PolicyScorer) Table() ReferenceTable {
	return s.table
}

// Score computes the compatibility of in.User with in.Sport.
func (s *PolicyScorer) Score(ctx context.Context, in Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("context cancelled: %w", err)
	}

	profile := in.Profile
	if profile == nil {
		p := s.table.Build(in.User)
		profile = &p
	}

	comp := types.ScoreComponents{
		Biotype:       s.policy.biotypeScore(in.User, in.Sport),
		Physical:      profile.Physical,
		Technical:     profile.Technical,
		Tactical:      profile.Tactical,
		Psychological: profile.Psychological,
	}

	w := s.policy.weightsFor(in.Sport)
	raw := comp.Biotype*w.Biotype +
		comp.Physical*w.Physical +
		comp.Technical*w.Technical +
		comp.Tactical*w.Tactical +
		comp.Psychological*w.Psychological
	raw *= s.policy.BaseScale

	var fired []string
	for _, b := range s.policy.Bonuses {
		if in.Sport.Tags.Has(b.Tag) && b.Threshold.Matches(in.User) {
			raw *= b.Multiplier
			fired = append(fired, b.Name)
		}
	}

	raw *= s.policy.Age.Factor(in.User.Age)

	compat := int(math.Round(clamp(raw, float64(s.policy.ClampMin), float64(s.policy.ClampMax))))

	return Result{
		Compatibility: compat,
		Components:    comp,
		Raw:           raw,
		Bonuses:       fired,
	}, nil
}
