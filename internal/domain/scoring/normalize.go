// Package scoring turns raw assessment results into category scores and
// per-sport compatibility.
package scoring

import (
	"math"

	"github.com/okian/sportfit/internal/domain/model"
)

// Score bounds and the neutral value used for missing data.
const (
	minScore     = 0.0
	maxScore     = 100.0
	NeutralScore = 50.0
)

// Normalize maps v into [0,100] using r. A nil, NaN or infinite value, or a
// degenerate range, yields NeutralScore.
func Normalize(v *float64, r model.Range) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || r.Max <= r.Min {
		return NeutralScore
	}
	x := *v
	var s float64
	if r.Inverse {
		switch {
		case x <= r.Min:
			s = maxScore
		case x >= r.Max:
			s = minScore
		default:
			s = (r.Max - x) / (r.Max - r.Min) * maxScore
		}
	} else {
		switch {
		case x <= r.Min:
			s = minScore
		case x >= r.Max:
			s = maxScore
		default:
			s = (x - r.Min) / (r.Max - r.Min) * maxScore
		}
	}
	return clamp(s, minScore, maxScore)
}

// Average returns the mean of the present values, or 0 when none is present.
func Average(values ...*float64) float64 {
	return AverageOr(0, values...)
}

// AverageOr returns the mean of the present values, or def when none is present.
func AverageOr(def float64, values ...*float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return def
	}
	return sum / float64(n)
}

type weighted struct {
	value  float64
	weight float64
}

// weightedMean returns def for an empty input.
func weightedMean(def float64, items []weighted) float64 {
	var sum, total float64
	for _, it := range items {
		sum += it.value * it.weight
		total += it.weight
	}
	if total <= 0 {
		return def
	}
	return sum / total
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
