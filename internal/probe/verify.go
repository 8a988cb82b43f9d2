package probe

import (
	"fmt"

	"github.com/okian/sportfit/internal/adapters/catalogue"
	"github.com/okian/sportfit/internal/domain/types"
)

// Bounds the service guarantees for every answer.
const (
	defaultTopK = 5
	maxTopK     = 10
	minScore    = 20
	maxScore    = 100
)

// Verify returns every guarantee the response breaks for c.
func Verify(c Case, recs []types.Recommendation) []string {
	var out []string
	want := c.TopK
	if want <= 0 {
		want = defaultTopK
	}
	if want > maxTopK {
		want = maxTopK
	}
	if len(recs) == 0 {
		out = append(out, "empty recommendation list")
	}
	if len(recs) > want {
		out = append(out, fmt.Sprintf("got %d recommendations, top_k allows %d", len(recs), want))
	}
	gender := c.Profile.EffectiveGender()
	for i, r := range recs {
		if r.Rank != i+1 {
			out = append(out, fmt.Sprintf("position %d has rank %d", i+1, r.Rank))
		}
		if r.Compatibility < minScore || r.Compatibility > maxScore {
			out = append(out, fmt.Sprintf("%s: compatibility %d out of range", r.EventName, r.Compatibility))
		}
		if i > 0 && r.Compatibility > recs[i-1].Compatibility {
			out = append(out, fmt.Sprintf("%s: compatibility %d above previous %d", r.EventName, r.Compatibility, recs[i-1].Compatibility))
		}
		if !catalogue.ParseEventGender(r.EventName).Eligible(gender) {
			out = append(out, fmt.Sprintf("%s: not eligible for %s", r.EventName, gender))
		}
		if len(r.Strengths) == 0 || len(r.DevelopmentAreas) == 0 {
			out = append(out, fmt.Sprintf("%s: missing labels", r.EventName))
		}
	}
	return out
}
