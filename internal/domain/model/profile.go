// Package model contains domain models passed between layers.
package model

import (
	"math"
	"strings"
)

// Gender is the declared gender of a user.
type Gender string

// Supported user genders.
const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

// ParseGender maps free-form input (English or Portuguese) to a Gender.
// Unknown input yields GenderUnspecified.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "masculino", "man", "men":
		return GenderMale
	case "female", "f", "feminino", "woman", "women":
		return GenderFemale
	default:
		return GenderUnspecified
	}
}

// Attribute names a single raw measurement of a user profile.
type Attribute string

// Raw measurements collected by the assessment forms.
const (
	AttrHeight         Attribute = "height"
	AttrWeight         Attribute = "weight"
	AttrWingspan       Attribute = "wingspan"
	AttrSprint         Attribute = "sprint"
	AttrUpperBody      Attribute = "upper_body"
	AttrLowerBody      Attribute = "lower_body"
	AttrCoordination   Attribute = "coordination"
	AttrPrecision      Attribute = "precision"
	AttrAgility        Attribute = "agility"
	AttrBalance        Attribute = "balance"
	AttrDecisionMaking Attribute = "decision_making"
	AttrGameVision     Attribute = "game_vision"
	AttrPositioning    Attribute = "positioning"
)

var knownAttributes = map[Attribute]bool{
	AttrHeight: true, AttrWeight: true, AttrWingspan: true,
	AttrSprint: true, AttrUpperBody: true, AttrLowerBody: true,
	AttrCoordination: true, AttrPrecision: true, AttrAgility: true, AttrBalance: true,
	AttrDecisionMaking: true, AttrGameVision: true, AttrPositioning: true,
}

// Valid reports whether a names a known measurement.
func (a Attribute) Valid() bool { return knownAttributes[a] }

// Biotype holds body measurements.
type Biotype struct {
	HeightCM   *float64 `json:"height_cm,omitempty" yaml:"height_cm" validate:"omitempty,gt=0,lte=260"`
	WeightKG   *float64 `json:"weight_kg,omitempty" yaml:"weight_kg" validate:"omitempty,gt=0,lte=300"`
	WingspanCM *float64 `json:"wingspan_cm,omitempty" yaml:"wingspan_cm" validate:"omitempty,gt=0,lte=280"`
}

// Physical holds physical test results.
type Physical struct {
	SprintTimeS   *float64 `json:"sprint_time_s,omitempty" yaml:"sprint_time_s" validate:"omitempty,gt=0,lte=60"`
	UpperBodyReps *float64 `json:"upper_body_reps,omitempty" yaml:"upper_body_reps" validate:"omitempty,gte=0,lte=500"`
	LowerBodyReps *float64 `json:"lower_body_reps,omitempty" yaml:"lower_body_reps" validate:"omitempty,gte=0,lte=500"`
}

// Technical holds technical test results.
type Technical struct {
	Coordination *float64 `json:"coordination,omitempty" yaml:"coordination" validate:"omitempty,gte=0,lte=500"`
	Precision    *float64 `json:"precision,omitempty" yaml:"precision" validate:"omitempty,gte=0,lte=10"`
	AgilityTimeS *float64 `json:"agility_time_s,omitempty" yaml:"agility_time_s" validate:"omitempty,gt=0,lte=120"`
	BalanceS     *float64 `json:"balance_s,omitempty" yaml:"balance_s" validate:"omitempty,gte=0,lte=600"`
}

// Tactical holds tactical self-assessments on a 0-10 scale.
type Tactical struct {
	DecisionMaking *float64 `json:"decision_making,omitempty" yaml:"decision_making" validate:"omitempty,gte=0,lte=10"`
	GameVision     *float64 `json:"game_vision,omitempty" yaml:"game_vision" validate:"omitempty,gte=0,lte=10"`
	Positioning    *float64 `json:"positioning,omitempty" yaml:"positioning" validate:"omitempty,gte=0,lte=10"`
}

// RatingGroup is three 1-10 self ratings that are averaged together.
type RatingGroup [3]*float64

// Psychological holds the three psychological rating groups.
//
// Motivation: dedication, frequency, commitment.
// Resilience: defeats, criticism, mistakes.
// Teamwork: communication, opinions, contribution.
type Psychological struct {
	Motivation *RatingGroup `json:"motivation,omitempty" yaml:"motivation" validate:"omitempty,dive,omitempty,gte=1,lte=10"`
	Resilience *RatingGroup `json:"resilience,omitempty" yaml:"resilience" validate:"omitempty,dive,omitempty,gte=1,lte=10"`
	Teamwork   *RatingGroup `json:"teamwork,omitempty" yaml:"teamwork" validate:"omitempty,dive,omitempty,gte=1,lte=10"`
}

// UserProfile is the immutable input of the recommendation pipeline.
// A nil category pointer marks the category as incomplete.
type UserProfile struct {
	Gender        Gender         `json:"gender" yaml:"gender" validate:"omitempty,oneof=male female unspecified"`
	Age           int            `json:"age" yaml:"age" validate:"gte=0,lte=120"`
	Biotype       *Biotype       `json:"biotype,omitempty" yaml:"biotype" validate:"omitempty"`
	Physical      *Physical      `json:"physical,omitempty" yaml:"physical" validate:"omitempty"`
	Technical     *Technical     `json:"technical,omitempty" yaml:"technical" validate:"omitempty"`
	Tactical      *Tactical      `json:"tactical,omitempty" yaml:"tactical" validate:"omitempty"`
	Psychological *Psychological `json:"psychological,omitempty" yaml:"psychological" validate:"omitempty"`
}

// Value returns the raw measurement for attr, or nil when it was not provided.
func (u UserProfile) Value(attr Attribute) *float64 {
	var v *float64
	switch attr {
	case AttrHeight, AttrWeight, AttrWingspan:
		if u.Biotype == nil {
			return nil
		}
		v = map[Attribute]*float64{
			AttrHeight:   u.Biotype.HeightCM,
			AttrWeight:   u.Biotype.WeightKG,
			AttrWingspan: u.Biotype.WingspanCM,
		}[attr]
	case AttrSprint, AttrUpperBody, AttrLowerBody:
		if u.Physical == nil {
			return nil
		}
		v = map[Attribute]*float64{
			AttrSprint:    u.Physical.SprintTimeS,
			AttrUpperBody: u.Physical.UpperBodyReps,
			AttrLowerBody: u.Physical.LowerBodyReps,
		}[attr]
	case AttrCoordination, AttrPrecision, AttrAgility, AttrBalance:
		if u.Technical == nil {
			return nil
		}
		v = map[Attribute]*float64{
			AttrCoordination: u.Technical.Coordination,
			AttrPrecision:    u.Technical.Precision,
			AttrAgility:      u.Technical.AgilityTimeS,
			AttrBalance:      u.Technical.BalanceS,
		}[attr]
	case AttrDecisionMaking, AttrGameVision, AttrPositioning:
		if u.Tactical == nil {
			return nil
		}
		v = map[Attribute]*float64{
			AttrDecisionMaking: u.Tactical.DecisionMaking,
			AttrGameVision:     u.Tactical.GameVision,
			AttrPositioning:    u.Tactical.Positioning,
		}[attr]
	}
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

// Complete reports whether all four assessment categories are present.
func (u UserProfile) Complete() bool {
	return u.Physical != nil && u.Technical != nil && u.Tactical != nil && u.Psychological != nil
}

// EffectiveGender returns the declared gender, treating empty as unspecified.
func (u UserProfile) EffectiveGender() Gender {
	if u.Gender == "" {
		return GenderUnspecified
	}
	return u.Gender
}

// Float returns a pointer to v. Handy for building profiles in code.
func Float(v float64) *float64 { return &v }
