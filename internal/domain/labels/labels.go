// Package labels derives "strengths" and "areas to develop" for a
// (user, sport) pair from threshold rules on raw attributes.
package labels

import (
	"github.com/okian/sportfit/internal/domain/model"
)

// MaxLabels bounds each label list.
const MaxLabels = 3

// Label keys. Presentation translates them.
const (
	FavorableHeight       = "favorable_height"
	GoodWingspan          = "good_wingspan"
	Speed                 = "speed"
	UpperBodyStrength     = "upper_body_strength"
	LowerBodyStrength     = "lower_body_strength"
	Coordination          = "coordination"
	Precision             = "precision"
	Balance               = "balance"
	Agility               = "agility"
	PendingFullEvaluation = "pending_full_evaluation"
	PendingEvaluation     = "pending_evaluation"
)

// Mode selects how fired rules are ordered.
type Mode string

// Ordering modes.
const (
	// ModeDeclaration keeps the rule table order.
	ModeDeclaration Mode = "declaration"
	// ModeRelevance puts rules relevant to the sport first, then the rest.
	ModeRelevance Mode = "relevance"
)

// Rule fires Label when the threshold holds. A rule with a Tag only applies
// to sports carrying that tag.
type Rule struct {
	Label     string
	Tag       model.Tag
	Threshold model.Threshold
}

func (r Rule) applies(s model.SportCandidate) bool {
	return r.Tag == "" || s.Tags.Has(r.Tag)
}

func (r Rule) relevant(s model.SportCandidate) bool {
	return (r.Tag != "" && s.Tags.Has(r.Tag)) || s.HasKeyAttribute(r.Threshold.Attribute)
}

func rule(label string, tag model.Tag, attr model.Attribute, op model.Comparison, v float64) Rule {
	return Rule{Label: label, Tag: tag, Threshold: model.Threshold{Attribute: attr, Op: op, Value: v}}
}

// DefaultStrengthRules returns the built-in strength table.
func DefaultStrengthRules() []Rule {
	return []Rule{
		rule(FavorableHeight, model.TagHeightSensitive, model.AttrHeight, model.AtLeast, 180),
		rule(GoodWingspan, model.TagReach, model.AttrWingspan, model.AtLeast, 190),
		rule(Speed, model.TagSpeed, model.AttrSprint, model.AtMost, 3.5),
		rule(UpperBodyStrength, "", model.AttrUpperBody, model.AtLeast, 40),
		rule(LowerBodyStrength, "", model.AttrLowerBody, model.AtLeast, 50),
		rule(Coordination, "", model.AttrCoordination, model.AtLeast, 40),
		rule(Precision, "", model.AttrPrecision, model.AtLeast, 8),
		rule(Balance, "", model.AttrBalance, model.AtLeast, 50),
	}
}

// DefaultDevelopmentRules returns the built-in development table.
func DefaultDevelopmentRules() []Rule {
	return []Rule{
		rule(Speed, model.TagSpeed, model.AttrSprint, model.Above, 4.0),
		rule(UpperBodyStrength, "", model.AttrUpperBody, model.Below, 30),
		rule(LowerBodyStrength, "", model.AttrLowerBody, model.Below, 40),
		rule(Coordination, "", model.AttrCoordination, model.Below, 30),
		rule(Precision, "", model.AttrPrecision, model.Below, 6),
		rule(Balance, "", model.AttrBalance, model.Below, 40),
		rule(Agility, "", model.AttrAgility, model.Above, 10),
	}
}

// Labeler evaluates the strength and development tables.
type Labeler struct {
	strengths   []Rule
	development []Rule
	mode        Mode
}

// New creates a Labeler with the built-in tables in relevance mode.
func New(opts ...Option) *Labeler {
	l := &Labeler{
		strengths:   DefaultStrengthRules(),
		development: DefaultDevelopmentRules(),
		mode:        ModeRelevance,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Strengths returns at most MaxLabels strength keys, never empty.
func (l *Labeler) Strengths(s model.SportCandidate, u model.UserProfile) []string {
	return l.evaluate(l.strengths, s, u, PendingFullEvaluation)
}

// DevelopmentAreas returns at most MaxLabels development keys, never empty.
func (l *Labeler) DevelopmentAreas(s model.SportCandidate, u model.UserProfile) []string {
	return l.evaluate(l.development, s, u, PendingEvaluation)
}

func (l *Labeler) evaluate(rules []Rule, s model.SportCandidate, u model.UserProfile, placeholder string) []string {
	var first, rest []string
	for _, r := range rules {
		if !r.applies(s) || !r.Threshold.Matches(u) {
			continue
		}
		if l.mode == ModeRelevance && r.relevant(s) {
			first = appendUnique(first, r.Label)
			continue
		}
		rest = appendUnique(rest, r.Label)
	}
	out := first
	for _, label := range rest {
		out = appendUnique(out, label)
	}
	if len(out) == 0 {
		return []string{placeholder}
	}
	if len(out) > MaxLabels {
		out = out[:MaxLabels]
	}
	return out
}

func appendUnique(list []string, label string) []string {
	for _, l := range list {
		if l == label {
			return list
		}
	}
	return append(list, label)
}
