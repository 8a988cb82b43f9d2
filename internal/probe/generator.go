package probe

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/okian/sportfit/internal/domain/model"
)

// Generator builds random but plausible assessment profiles. Every category
// is dropped with some probability to exercise partial profiles.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a fixed seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // reproducible test data
}

// Cases returns n cases. A topK of zero gives each case a random size in
// [0,10].
func (g *Generator) Cases(n, topK int, locale string, refine bool) []Case {
	out := make([]Case, n)
	for i := range out {
		k := topK
		if k == 0 {
			k = g.rng.Intn(11)
		}
		out[i] = Case{
			ID:      uuid.NewString(),
			Profile: g.Profile(),
			TopK:    k,
			Locale:  locale,
			Refine:  refine,
		}
	}
	return out
}

// Profile returns one random profile.
func (g *Generator) Profile() model.UserProfile {
	genders := []model.Gender{model.GenderMale, model.GenderFemale, model.GenderUnspecified}
	u := model.UserProfile{
		Gender: genders[g.rng.Intn(len(genders))],
		Age:    g.rng.Intn(30),
	}
	if g.keep() {
		u.Biotype = &model.Biotype{
			HeightCM:   g.value(130, 215),
			WeightKG:   g.value(30, 130),
			WingspanCM: g.value(130, 225),
		}
	}
	if g.keep() {
		u.Physical = &model.Physical{
			SprintTimeS:   g.value(2.4, 6),
			UpperBodyReps: g.value(0, 70),
			LowerBodyReps: g.value(0, 80),
		}
	}
	if g.keep() {
		u.Technical = &model.Technical{
			Coordination: g.value(0, 60),
			Precision:    g.value(0, 10),
			AgilityTimeS: g.value(4, 18),
			BalanceS:     g.value(0, 90),
		}
	}
	if g.keep() {
		u.Tactical = &model.Tactical{
			DecisionMaking: g.value(0, 10),
			GameVision:     g.value(0, 10),
			Positioning:    g.value(1, 10),
		}
	}
	if g.keep() {
		u.Psychological = &model.Psychological{
			Motivation: g.ratings(),
			Resilience: g.ratings(),
			Teamwork:   g.ratings(),
		}
	}
	return u
}

func (g *Generator) keep() bool { return g.rng.Intn(5) != 0 }

// value returns a random measurement, occasionally missing.
func (g *Generator) value(lo, hi float64) *float64 {
	if g.rng.Intn(8) == 0 {
		return nil
	}
	return model.Float(lo + g.rng.Float64()*(hi-lo))
}

func (g *Generator) ratings() *model.RatingGroup {
	var r model.RatingGroup
	for i := range r {
		r[i] = model.Float(float64(1 + g.rng.Intn(10)))
	}
	return &r
}
