package scoring

import (
	"sort"

	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/types"
)

const (
	highlightThreshold = 60.0
	highlightCount     = 5
	potentialAge       = 18
	potentialPerYear   = 10.0
)

// AgeGroup buckets an age the way the assessment norms are published.
func AgeGroup(age int) string {
	switch {
	case age <= 0:
		return "unknown"
	case age < 10:
		return "under-10"
	case age <= 12:
		return "10-12"
	case age <= 15:
		return "13-15"
	case age <= 18:
		return "16-18"
	default:
		return "adult"
	}
}

// DevelopmentPotential estimates room for growth: younger users with lower
// current scores have more of it. The result is in [0,100].
func DevelopmentPotential(age int, c types.CategoryScores) float64 {
	if age <= 0 {
		return 0
	}
	base := clamp(float64(potentialAge-age)*potentialPerYear, minScore, maxScore)
	improvement := (maxScore - clamp(c.Mean(), minScore, maxScore)) / maxScore
	return base * improvement
}

// Summarize describes u independently of any sport.
func (t ReferenceTable) Summarize(u model.UserProfile) types.ProfileSummary {
	cats := t.Build(u)
	attrs := t.AttributeScores(u)

	byScore := make([]types.AttributeScore, len(attrs))
	copy(byScore, attrs)
	sort.SliceStable(byScore, func(i, j int) bool { return byScore[i].Score > byScore[j].Score })

	top := make([]types.AttributeScore, 0, highlightCount)
	for _, a := range byScore {
		if a.Score >= highlightThreshold && len(top) < highlightCount {
			top = append(top, a)
		}
	}
	focus := make([]types.AttributeScore, 0, highlightCount)
	for i := len(byScore) - 1; i >= 0; i-- {
		if byScore[i].Score < highlightThreshold && len(focus) < highlightCount {
			focus = append(focus, byScore[i])
		}
	}

	return types.ProfileSummary{
		Categories:           cats,
		Attributes:           attrs,
		TopAttributes:        top,
		FocusAttributes:      focus,
		AgeGroup:             AgeGroup(u.Age),
		DevelopmentPotential: DevelopmentPotential(u.Age, cats),
		Complete:             u.Complete(),
	}
}
