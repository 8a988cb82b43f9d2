package model

import "fmt"

// Comparison is the operator of a Threshold.
type Comparison string

// Supported comparisons.
const (
	AtLeast Comparison = "gte"
	AtMost  Comparison = "lte"
	Above   Comparison = "gt"
	Below   Comparison = "lt"
)

// Threshold is a check of one raw attribute against a fixed value.
type Threshold struct {
	Attribute Attribute
	Op        Comparison
	Value     float64
}

// Matches reports whether the user's value satisfies the threshold.
// A missing value never matches.
func (t Threshold) Matches(u UserProfile) bool {
	v := u.Value(t.Attribute)
	if v == nil {
		return false
	}
	switch t.Op {
	case AtLeast:
		return *v >= t.Value
	case AtMost:
		return *v <= t.Value
	case Above:
		return *v > t.Value
	case Below:
		return *v < t.Value
	default:
		return false
	}
}

// Validate checks that the operator is known.
func (t Threshold) Validate() error {
	switch t.Op {
	case AtLeast, AtMost, Above, Below:
		return nil
	default:
		return fmt.Errorf("unknown comparison %q for attribute %q", t.Op, t.Attribute)
	}
}
