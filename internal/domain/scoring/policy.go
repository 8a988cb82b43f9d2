package scoring

import (
	"errors"
	"fmt"

	"github.com/okian/sportfit/internal/domain/model"
)

// ErrInvalidPolicy is returned by Policy.Validate.
var ErrInvalidPolicy = errors.New("invalid scoring policy")

// BonusRule multiplies the compatibility of sports carrying Tag when the
// user's attribute satisfies the threshold.
type BonusRule struct {
	Name       string
	Tag        model.Tag
	Threshold  model.Threshold
	Multiplier float64
}

// BiotypeRule compares a body measurement against Range for sports carrying Tag.
type BiotypeRule struct {
	Tag       model.Tag
	Attribute model.Attribute
	Range     model.Range
}

// AgeFactor scales compatibility by age: clamp((age-Pivot)/Span, Min, Max).
// Ages at or below zero are replaced by DefaultAge.
type AgeFactor struct {
	Pivot      float64
	Span       float64
	Min        float64
	Max        float64
	DefaultAge int
}

// Factor returns the scaling factor for age.
func (a AgeFactor) Factor(age int) float64 {
	if age <= 0 {
		age = a.DefaultAge
	}
	if a.Span <= 0 {
		return a.Max
	}
	return clamp((float64(age)-a.Pivot)/a.Span, a.Min, a.Max)
}

// Policy is the complete, data-driven scoring configuration.
type Policy struct {
	IndividualWeights model.Weights
	CollectiveWeights model.Weights
	BaseScale         float64
	Bonuses           []BonusRule
	Biotype           []BiotypeRule
	Age               AgeFactor
	ClampMin          int
	ClampMax          int
}

// DefaultBonusRules returns the built-in bonus table.
func DefaultBonusRules() []BonusRule {
	return []BonusRule{
		{Name: "height", Tag: model.TagHeightSensitive, Threshold: model.Threshold{Attribute: model.AttrHeight, Op: model.AtLeast, Value: 180}, Multiplier: 1.15},
		{Name: "upper_body_strength", Tag: model.TagStrength, Threshold: model.Threshold{Attribute: model.AttrUpperBody, Op: model.AtLeast, Value: 40}, Multiplier: 1.1},
		{Name: "speed", Tag: model.TagSpeed, Threshold: model.Threshold{Attribute: model.AttrSprint, Op: model.AtMost, Value: 3.5}, Multiplier: 1.1},
		{Name: "balance", Tag: model.TagBalance, Threshold: model.Threshold{Attribute: model.AttrBalance, Op: model.AtLeast, Value: 50}, Multiplier: 1.1},
	}
}

// DefaultBiotypeRules returns the built-in body measurement table. Earlier
// rules win when several match the same attribute.
func DefaultBiotypeRules() []BiotypeRule {
	return []BiotypeRule{
		{Tag: model.TagHeightSensitive, Attribute: model.AttrHeight, Range: model.Range{Min: 170, Max: 210, Weight: 1.5}},
		{Tag: model.TagCompactFrame, Attribute: model.AttrHeight, Range: model.Range{Min: 150, Max: 180, Weight: 1.0}},
		{Tag: model.TagHeavyweight, Attribute: model.AttrWeight, Range: model.Range{Min: 80, Max: 120, Weight: 1.3}},
		{Tag: model.TagMiddleweight, Attribute: model.AttrWeight, Range: model.Range{Min: 70, Max: 85, Weight: 1.3}},
		{Tag: model.TagLightweight, Attribute: model.AttrWeight, Range: model.Range{Min: 50, Max: 70, Weight: 1.3}},
		{Tag: model.TagWeightClass, Attribute: model.AttrWeight, Range: model.Range{Min: 40, Max: 120, Weight: 1.3}},
		{Tag: model.TagReach, Attribute: model.AttrWingspan, Range: model.Range{Min: 170, Max: 220, Weight: 1.2}},
	}
}

// DefaultPolicy returns the built-in policy.
func DefaultPolicy() Policy {
	return Policy{
		IndividualWeights: model.Weights{Biotype: 0.25, Physical: 0.25, Technical: 0.20, Tactical: 0.15, Psychological: 0.15},
		CollectiveWeights: model.Weights{Biotype: 0.20, Physical: 0.20, Technical: 0.20, Tactical: 0.25, Psychological: 0.15},
		BaseScale:         0.8,
		Bonuses:           DefaultBonusRules(),
		Biotype:           DefaultBiotypeRules(),
		Age:               AgeFactor{Pivot: 10, Span: 8, Min: 0.6, Max: 1.0, DefaultAge: 18},
		ClampMin:          20,
		ClampMax:          100,
	}
}

// Validate checks the policy for values that would break the range invariant.
func (p Policy) Validate() error {
	if p.ClampMin < 0 || p.ClampMax > 100 || p.ClampMin >= p.ClampMax {
		return fmt.Errorf("%w: clamp range [%d,%d]", ErrInvalidPolicy, p.ClampMin, p.ClampMax)
	}
	if p.BaseScale <= 0 {
		return fmt.Errorf("%w: base scale must be positive", ErrInvalidPolicy)
	}
	if _, ok := p.IndividualWeights.Normalized(); !ok {
		return fmt.Errorf("%w: individual weights are all zero", ErrInvalidPolicy)
	}
	if _, ok := p.CollectiveWeights.Normalized(); !ok {
		return fmt.Errorf("%w: collective weights are all zero", ErrInvalidPolicy)
	}
	for _, b := range p.Bonuses {
		if b.Multiplier <= 0 {
			return fmt.Errorf("%w: bonus %q multiplier must be positive", ErrInvalidPolicy, b.Name)
		}
		if err := b.Threshold.Validate(); err != nil {
			return fmt.Errorf("%w: bonus %q: %w", ErrInvalidPolicy, b.Name, err)
		}
	}
	if p.Age.Min < 0 || p.Age.Min > p.Age.Max {
		return fmt.Errorf("%w: age factor bounds", ErrInvalidPolicy)
	}
	return nil
}

// weightsFor picks the sport's declared weights or the category default.
func (p Policy) weightsFor(s model.SportCandidate) model.Weights {
	if s.RequirementWeights != nil {
		if w, ok := s.RequirementWeights.Normalized(); ok {
			return w
		}
	}
	base := p.IndividualWeights
	if s.Category == model.CategoryCollective {
		base = p.CollectiveWeights
	}
	w, _ := base.Normalized()
	return w
}

// biotypeScore compares the user's body against the sport. Declared sport
// ranges take precedence over tag rules for the same attribute.
func (p Policy) biotypeScore(u model.UserProfile, s model.SportCandidate) float64 {
	var items []weighted
	for _, attr := range []model.Attribute{model.AttrHeight, model.AttrWeight, model.AttrWingspan} {
		v := u.Value(attr)
		if v == nil {
			continue
		}
		r, ok := s.ReferenceRanges[attr]
		if !ok {
			r, ok = p.biotypeRule(s, attr)
		}
		if !ok {
			continue
		}
		items = append(items, weighted{value: Normalize(v, r), weight: r.EffectiveWeight()})
	}
	return weightedMean(NeutralScore, items)
}

func (p Policy) biotypeRule(s model.SportCandidate, attr model.Attribute) (model.Range, bool) {
	for _, rule := range p.Biotype {
		if rule.Attribute == attr && s.Tags.Has(rule.Tag) {
			return rule.Range, true
		}
	}
	return model.Range{}, false
}
