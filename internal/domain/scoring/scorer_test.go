package scoring_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func topProfile(age int, height float64) model.UserProfile {
	ten := model.Float(10)
	return model.UserProfile{
		Age:     age,
		Biotype: &model.Biotype{HeightCM: model.Float(height)},
		Physical: &model.Physical{
			SprintTimeS:   model.Float(2.5),
			UpperBodyReps: model.Float(50),
			LowerBodyReps: model.Float(60),
		},
		Technical: &model.Technical{
			Coordination: model.Float(50),
			Precision:    model.Float(10),
			AgilityTimeS: model.Float(5),
			BalanceS:     model.Float(60),
		},
		Tactical: &model.Tactical{DecisionMaking: ten, GameVision: ten, Positioning: ten},
		Psychological: &model.Psychological{
			Motivation: &model.RatingGroup{ten, ten, ten},
			Resilience: &model.RatingGroup{ten, ten, ten},
			Teamwork:   &model.RatingGroup{ten, ten, ten},
		},
	}
}

func TestPolicyScorer_Score(t *testing.T) {
	Convey("Given the default policy scorer", t, func() {
		ctx := context.Background()
		scorer := scoring.NewPolicyScorer()
		neutral := model.SportCandidate{EventName: "Rowing Men's Single Sculls", Category: model.CategoryIndividual}

		Convey("When the profile is completely empty", func() {
			res, err := scorer.Score(ctx, scoring.Input{Sport: neutral})

			Convey("Then every component is neutral and the score is the baseline", func() {
				So(err, ShouldBeNil)
				So(res.Components.Biotype, ShouldEqual, 50)
				So(res.Components.Psychological, ShouldEqual, 50)
				So(res.Compatibility, ShouldEqual, 40)
			})
		})

		Convey("When the profile is empty for a team sport", func() {
			team := model.SportCandidate{EventName: "Handball Women's Handball", Category: model.CategoryCollective}
			res, _ := scorer.Score(ctx, scoring.Input{Sport: team})
			So(res.Compatibility, ShouldEqual, 40)
		})

		Convey("When every result is the worst possible", func() {
			one := model.Float(1)
			zero := model.Float(0)
			u := model.UserProfile{
				Age:           10,
				Physical:      &model.Physical{SprintTimeS: model.Float(5), UpperBodyReps: zero, LowerBodyReps: zero},
				Technical:     &model.Technical{Coordination: zero, Precision: zero, AgilityTimeS: model.Float(15), BalanceS: zero},
				Tactical:      &model.Tactical{DecisionMaking: zero, GameVision: zero, Positioning: one},
				Psychological: &model.Psychological{Motivation: &model.RatingGroup{one, one, one}},
			}
			res, _ := scorer.Score(ctx, scoring.Input{User: u, Sport: neutral})

			Convey("Then the score is clamped to the floor", func() {
				So(res.Raw, ShouldBeLessThan, 20)
				So(res.Compatibility, ShouldEqual, 20)
			})
		})

		Convey("When a tall top athlete is scored for basketball", func() {
			basketball := model.SportCandidate{
				EventName: "Basketball Men's Basketball",
				Category:  model.CategoryCollective,
				Gender:    model.EventMale,
				Tags:      model.NewTags(model.TagHeightSensitive, model.TagReach),
			}
			res, _ := scorer.Score(ctx, scoring.Input{User: topProfile(18, 200), Sport: basketball})

			Convey("Then the height rule drives the biotype score and the bonus fires", func() {
				So(res.Components.Biotype, ShouldAlmostEqual, 75, 1e-9)
				So(res.Components.Physical, ShouldEqual, 100)
				So(res.Bonuses, ShouldResemble, []string{"height"})
				So(res.Raw, ShouldAlmostEqual, 95*0.8*1.15, 1e-9)
				So(res.Compatibility, ShouldEqual, 87)
			})
		})

		Convey("When a declared reference range exists", func() {
			sport := model.SportCandidate{
				EventName:       "Volleyball Women's Volleyball",
				Tags:            model.NewTags(model.TagHeightSensitive),
				ReferenceRanges: map[model.Attribute]model.Range{model.AttrHeight: {Min: 160, Max: 200}},
			}
			u := model.UserProfile{Biotype: &model.Biotype{HeightCM: model.Float(180)}}
			res, _ := scorer.Score(ctx, scoring.Input{User: u, Sport: sport})

			Convey("Then it overrides the tag rule", func() {
				So(res.Components.Biotype, ShouldEqual, 50)
			})
		})

		Convey("When a fast sprinter is scored for a speed sport", func() {
			sprint := model.SportCandidate{EventName: "Athletics Men's 100 metres", Tags: model.NewTags(model.TagSpeed)}
			u := model.UserProfile{Physical: &model.Physical{SprintTimeS: model.Float(3.2)}}
			res, _ := scorer.Score(ctx, scoring.Input{User: u, Sport: sprint})

			Convey("Then the speed bonus multiplies the weighted sum", func() {
				So(res.Bonuses, ShouldResemble, []string{"speed"})
				So(res.Compatibility, ShouldEqual, 49)
			})
		})

		Convey("When the sport declares requirement weights", func() {
			sport := model.SportCandidate{
				EventName:          "Cycling Women's Road Race",
				RequirementWeights: &model.Weights{Physical: 3},
			}
			u := model.UserProfile{Physical: &model.Physical{SprintTimeS: model.Float(3.2)}}
			res, _ := scorer.Score(ctx, scoring.Input{User: u, Sport: sport})

			Convey("Then they replace the default profile", func() {
				So(res.Compatibility, ShouldEqual, 58)
			})
		})

		Convey("When the user is young", func() {
			young, _ := scorer.Score(ctx, scoring.Input{User: model.UserProfile{Age: 14}, Sport: neutral})
			older, _ := scorer.Score(ctx, scoring.Input{User: model.UserProfile{Age: 16}, Sport: neutral})

			Convey("Then the age factor reduces compatibility", func() {
				So(young.Compatibility, ShouldEqual, 24)
				So(older.Compatibility, ShouldEqual, 30)
			})
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := scorer.Score(cctx, scoring.Input{Sport: neutral})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPolicyScorer_RangeInvariant(t *testing.T) {
	Convey("Given random profiles and sports", t, func() {
		rng := rand.New(rand.NewSource(7)) //nolint:gosec // deterministic test data
		scorer := scoring.NewPolicyScorer()
		tags := []model.Tag{model.TagHeightSensitive, model.TagSpeed, model.TagStrength, model.TagBalance, model.TagReach, model.TagHeavyweight}
		f := func(lo, hi float64) *float64 {
			if rng.Intn(5) == 0 {
				return nil
			}
			return model.Float(lo + rng.Float64()*(hi-lo))
		}

		Convey("Then every compatibility stays inside the clamp range", func() {
			for i := 0; i < 500; i++ {
				u := model.UserProfile{
					Age:       rng.Intn(40) - 5,
					Biotype:   &model.Biotype{HeightCM: f(120, 230), WeightKG: f(30, 150), WingspanCM: f(120, 240)},
					Physical:  &model.Physical{SprintTimeS: f(1, 8), UpperBodyReps: f(0, 90), LowerBodyReps: f(0, 90)},
					Technical: &model.Technical{Coordination: f(0, 80), Precision: f(0, 10), AgilityTimeS: f(3, 20), BalanceS: f(0, 90)},
				}
				s := model.SportCandidate{
					EventName: "random",
					Tags:      model.NewTags(tags[rng.Intn(len(tags))], tags[rng.Intn(len(tags))]),
				}
				if rng.Intn(2) == 0 {
					s.Category = model.CategoryCollective
				}
				res, err := scorer.Score(context.Background(), scoring.Input{User: u, Sport: s})
				So(err, ShouldBeNil)
				So(res.Compatibility, ShouldBeBetweenOrEqual, 20, 100)
			}
		})
	})
}

func TestPolicyValidate(t *testing.T) {
	Convey("Given scoring policies", t, func() {
		So(scoring.DefaultPolicy().Validate(), ShouldBeNil)

		p := scoring.DefaultPolicy()
		p.ClampMin, p.ClampMax = 50, 40
		So(errors.Is(p.Validate(), scoring.ErrInvalidPolicy), ShouldBeTrue)

		p = scoring.DefaultPolicy()
		p.Bonuses = append(p.Bonuses, scoring.BonusRule{Name: "bad", Multiplier: 1.2, Threshold: model.Threshold{Op: "??"}})
		So(errors.Is(p.Validate(), scoring.ErrInvalidPolicy), ShouldBeTrue)

		Convey("And an invalid policy option is ignored", func() {
			p := scoring.DefaultPolicy()
			p.BaseScale = 0
			s := scoring.NewPolicyScorer(scoring.WithPolicy(p))
			So(s.Policy().BaseScale, ShouldEqual, 0.8)
		})
	})
}
