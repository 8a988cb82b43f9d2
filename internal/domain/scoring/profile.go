package scoring

import (
	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/types"
)

// Missing psychological ratings inside a present group count as the scale midpoint.
const defaultRating = 5.0

// AttributeRange binds an attribute to its reference range.
type AttributeRange struct {
	Attribute model.Attribute
	Range     model.Range
}

// ReferenceTable holds the per-category normalization ranges used to build a
// user profile.
type ReferenceTable struct {
	Physical      []AttributeRange
	Technical     []AttributeRange
	Tactical      []AttributeRange
	Psychological model.Range
}

// DefaultReferenceTable returns the empirically chosen ranges of the
// assessment forms.
func DefaultReferenceTable() ReferenceTable {
	return ReferenceTable{
		Physical: []AttributeRange{
			{model.AttrSprint, model.Range{Min: 2.5, Max: 5.0, Inverse: true}},
			{model.AttrUpperBody, model.Range{Min: 0, Max: 50}},
			{model.AttrLowerBody, model.Range{Min: 0, Max: 60}},
		},
		Technical: []AttributeRange{
			{model.AttrCoordination, model.Range{Min: 0, Max: 50}},
			{model.AttrPrecision, model.Range{Min: 0, Max: 10}},
			{model.AttrAgility, model.Range{Min: 5, Max: 15, Inverse: true}},
			{model.AttrBalance, model.Range{Min: 0, Max: 60}},
		},
		Tactical: []AttributeRange{
			{model.AttrDecisionMaking, model.Range{Min: 0, Max: 10}},
			{model.AttrGameVision, model.Range{Min: 0, Max: 10}},
			{model.AttrPositioning, model.Range{Min: 1, Max: 10}},
		},
		Psychological: model.Range{Min: 1, Max: 10},
	}
}

// BuildProfile computes the category scores of u with the default table.
func BuildProfile(u model.UserProfile) types.CategoryScores {
	return DefaultReferenceTable().Build(u)
}

// Build computes the category scores of u. Absent categories score
// NeutralScore.
func (t ReferenceTable) Build(u model.UserProfile) types.CategoryScores {
	out := types.CategoryScores{
		Physical:      NeutralScore,
		Technical:     NeutralScore,
		Tactical:      NeutralScore,
		Psychological: NeutralScore,
	}
	if u.Physical != nil {
		out.Physical = t.category(u, t.Physical)
	}
	if u.Technical != nil {
		out.Technical = t.category(u, t.Technical)
	}
	if u.Tactical != nil {
		out.Tactical = t.category(u, t.Tactical)
	}
	if u.Psychological != nil {
		out.Psychological = t.psychological(u.Psychological)
	}
	return out
}

// category averages the normalized attributes that are present.
func (t ReferenceTable) category(u model.UserProfile, ranges []AttributeRange) float64 {
	scores := make([]*float64, 0, len(ranges))
	for _, ar := range ranges {
		v := u.Value(ar.Attribute)
		if v == nil {
			continue
		}
		s := Normalize(v, ar.Range)
		scores = append(scores, &s)
	}
	return AverageOr(NeutralScore, scores...)
}

func (t ReferenceTable) psychological(p *model.Psychological) float64 {
	groups := []*model.RatingGroup{p.Motivation, p.Resilience, p.Teamwork}
	scores := make([]*float64, 0, len(groups))
	for _, g := range groups {
		if g == nil {
			continue
		}
		mean := groupMean(g)
		s := Normalize(&mean, t.Psychological)
		scores = append(scores, &s)
	}
	return AverageOr(NeutralScore, scores...)
}

func groupMean(g *model.RatingGroup) float64 {
	vals := make([]*float64, len(g))
	for i, r := range g {
		if r == nil {
			d := defaultRating
			r = &d
		}
		vals[i] = r
	}
	return AverageOr(defaultRating, vals...)
}

// AttributeScores returns the normalized score of every attribute the user
// provided, in table order. Psychological groups are reported under their
// group names.
func (t ReferenceTable) AttributeScores(u model.UserProfile) []types.AttributeScore {
	var out []types.AttributeScore
	for _, ranges := range [][]AttributeRange{t.Physical, t.Technical, t.Tactical} {
		for _, ar := range ranges {
			v := u.Value(ar.Attribute)
			if v == nil {
				continue
			}
			out = append(out, types.AttributeScore{
				Attribute: string(ar.Attribute),
				Score:     Normalize(v, ar.Range),
			})
		}
	}
	if p := u.Psychological; p != nil {
		named := []struct {
			name  string
			group *model.RatingGroup
		}{
			{"motivation", p.Motivation},
			{"resilience", p.Resilience},
			{"teamwork", p.Teamwork},
		}
		for _, n := range named {
			if n.group == nil {
				continue
			}
			mean := groupMean(n.group)
			out = append(out, types.AttributeScore{
				Attribute: n.name,
				Score:     Normalize(&mean, t.Psychological),
			})
		}
	}
	return out
}
