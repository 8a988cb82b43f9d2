package llm

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/okian/sportfit/internal/domain/types"
)

const maxLabels = 3

// Merge applies model suggestions to the deterministic list. Suggestions
// naming a sport outside base are dropped, compatibility is clamped to
// [lo, hi], labels are capped and missing fields keep the deterministic
// value. Sports the model did not mention stay in the list. The result is
// re-sorted by compatibility and re-ranked.
func Merge(base []types.Recommendation, suggestions []Suggestion, lo, hi int) ([]types.Recommendation, error) {
	index := make(map[string]int, len(base)*2)
	for i, r := range base {
		for _, name := range []string{r.EventName, r.SportName} {
			if n := normalizeName(name); n != "" {
				if _, dup := index[n]; !dup {
					index[n] = i
				}
			}
		}
	}

	out := make([]types.Recommendation, len(base))
	copy(out, base)
	touched := make([]bool, len(base))
	accepted := 0
	for _, s := range suggestions {
		i, ok := index[normalizeName(s.Name)]
		if !ok || touched[i] {
			continue
		}
		touched[i] = true
		accepted++

		r := &out[i]
		if s.Compatibility > 0 && !math.IsNaN(s.Compatibility) && !math.IsInf(s.Compatibility, 0) {
			r.Compatibility = clampInt(int(math.Round(s.Compatibility)), lo, hi)
		}
		if l := capLabels(s.Strengths); len(l) > 0 {
			r.Strengths = l
		}
		if l := capLabels(s.Development); len(l) > 0 {
			r.DevelopmentAreas = l
		}
		if rat := strings.TrimSpace(s.Rationale); rat != "" {
			r.Rationale = rat
		}
		r.Source = types.SourceLLM
	}
	if accepted == 0 {
		return nil, fmt.Errorf("%w: no known sport in answer", ErrMalformedResponse)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Compatibility > out[j].Compatibility
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func capLabels(in []string) []string {
	out := make([]string, 0, maxLabels)
	for _, l := range in {
		if l = strings.TrimSpace(l); l == "" {
			continue
		}
		out = append(out, l)
		if len(out) == maxLabels {
			break
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
