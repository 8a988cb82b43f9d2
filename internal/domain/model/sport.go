package model

import "sort"

// SportCategory distinguishes individual from team sports.
type SportCategory string

// Sport categories.
const (
	CategoryIndividual SportCategory = "individual"
	CategoryCollective SportCategory = "collective"
)

// EventGender is the gender an event is reserved for.
type EventGender string

// Event genders. Neutral means the event name carries no gender marker.
const (
	EventMale    EventGender = "male"
	EventFemale  EventGender = "female"
	EventMixed   EventGender = "mixed"
	EventNeutral EventGender = "neutral"
)

// Eligible reports whether a user of gender g may be recommended this event.
func (e EventGender) Eligible(g Gender) bool {
	switch e {
	case EventMale:
		return g != GenderFemale
	case EventFemale:
		return g != GenderMale
	default:
		return true
	}
}

// Tag is a structured trait of a sport set at catalogue load time.
type Tag string

// Known sport tags.
const (
	TagHeightSensitive Tag = "height_sensitive"
	TagCompactFrame    Tag = "compact_frame"
	TagWeightClass     Tag = "weight_class"
	TagHeavyweight     Tag = "heavyweight"
	TagMiddleweight    Tag = "middleweight"
	TagLightweight     Tag = "lightweight"
	TagReach           Tag = "reach"
	TagSpeed           Tag = "speed"
	TagStrength        Tag = "strength"
	TagBalance         Tag = "balance"
)

// Tags is a set of sport tags.
type Tags map[Tag]struct{}

// NewTags builds a tag set.
func NewTags(tags ...Tag) Tags {
	t := make(Tags, len(tags))
	for _, tag := range tags {
		t[tag] = struct{}{}
	}
	return t
}

// Has reports whether tag is in the set.
func (t Tags) Has(tag Tag) bool {
	_, ok := t[tag]
	return ok
}

// Sorted returns the tags in lexical order.
func (t Tags) Sorted() []string {
	out := make([]string, 0, len(t))
	for tag := range t {
		out = append(out, string(tag))
	}
	sort.Strings(out)
	return out
}

// Range is a reference range for one attribute. Weight is the relative
// weight of the attribute inside its aggregate; zero means 1.
type Range struct {
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Inverse bool    `json:"inverse,omitempty" yaml:"inverse"`
	Weight  float64 `json:"weight,omitempty" yaml:"weight"`
}

// EffectiveWeight returns the weight, defaulting to 1.
func (r Range) EffectiveWeight() float64 {
	if r.Weight <= 0 {
		return 1
	}
	return r.Weight
}

// Weights is a per-category weighting profile.
type Weights struct {
	Biotype       float64 `json:"biotype" yaml:"biotype" koanf:"biotype"`
	Physical      float64 `json:"physical" yaml:"physical" koanf:"physical"`
	Technical     float64 `json:"technical" yaml:"technical" koanf:"technical"`
	Tactical      float64 `json:"tactical" yaml:"tactical" koanf:"tactical"`
	Psychological float64 `json:"psychological" yaml:"psychological" koanf:"psychological"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Biotype + w.Physical + w.Technical + w.Tactical + w.Psychological
}

// Normalized rescales the weights to sum to 1. Negative weights count as
// zero. The second result is false when nothing positive remains.
func (w Weights) Normalized() (Weights, bool) {
	pos := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	w = Weights{pos(w.Biotype), pos(w.Physical), pos(w.Technical), pos(w.Tactical), pos(w.Psychological)}
	sum := w.Sum()
	if sum <= 0 {
		return Weights{}, false
	}
	return Weights{
		Biotype:       w.Biotype / sum,
		Physical:      w.Physical / sum,
		Technical:     w.Technical / sum,
		Tactical:      w.Tactical / sum,
		Psychological: w.Psychological / sum,
	}, true
}

// SportCandidate is one read-only catalogue entry.
type SportCandidate struct {
	EventName          string
	Category           SportCategory
	Gender             EventGender
	Tags               Tags
	KeyAttributes      []Attribute
	ReferenceRanges    map[Attribute]Range
	RequirementWeights *Weights
}

// HasKeyAttribute reports whether attr is listed as a key attribute.
func (s SportCandidate) HasKeyAttribute(attr Attribute) bool {
	for _, a := range s.KeyAttributes {
		if a == attr {
			return true
		}
	}
	return false
}
