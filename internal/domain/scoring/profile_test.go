package scoring_test

import (
	"testing"

	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildProfile(t *testing.T) {
	Convey("Given a user profile", t, func() {
		Convey("When every category is absent", func() {
			p := scoring.BuildProfile(model.UserProfile{})

			Convey("Then every category is neutral", func() {
				So(p.Physical, ShouldEqual, 50)
				So(p.Technical, ShouldEqual, 50)
				So(p.Tactical, ShouldEqual, 50)
				So(p.Psychological, ShouldEqual, 50)
			})
		})

		Convey("When only the sprint time is given", func() {
			p := scoring.BuildProfile(model.UserProfile{
				Physical: &model.Physical{SprintTimeS: model.Float(3.2)},
			})

			Convey("Then the physical score is the sprint sub-score", func() {
				So(p.Physical, ShouldAlmostEqual, 72.0, 1e-9)
				So(p.Technical, ShouldEqual, 50)
			})
		})

		Convey("When a category is present but empty", func() {
			p := scoring.BuildProfile(model.UserProfile{Technical: &model.Technical{}})
			So(p.Technical, ShouldEqual, 50)
		})

		Convey("When technical and tactical results are given", func() {
			p := scoring.BuildProfile(model.UserProfile{
				Technical: &model.Technical{
					Coordination: model.Float(25),
					Precision:    model.Float(10),
					AgilityTimeS: model.Float(15),
					BalanceS:     model.Float(30),
				},
				Tactical: &model.Tactical{
					DecisionMaking: model.Float(10),
					GameVision:     model.Float(5),
					Positioning:    model.Float(1),
				},
			})

			Convey("Then each category is the mean of its sub-scores", func() {
				So(p.Technical, ShouldAlmostEqual, (50.0+100+0+50)/4, 1e-9)
				So(p.Tactical, ShouldAlmostEqual, (100.0+50+0)/3, 1e-9)
			})
		})

		Convey("When a psychological rating is missing inside a group", func() {
			p := scoring.BuildProfile(model.UserProfile{
				Psychological: &model.Psychological{
					Motivation: &model.RatingGroup{model.Float(8), nil, model.Float(6)},
				},
			})

			Convey("Then the missing rating counts as 5", func() {
				mean := (8.0 + 5 + 6) / 3
				So(p.Psychological, ShouldAlmostEqual, (mean-1)/9*100, 1e-9)
			})
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given a 12 year old with mixed results", t, func() {
		u := model.UserProfile{
			Age: 12,
			Physical: &model.Physical{
				SprintTimeS:   model.Float(2.5),
				UpperBodyReps: model.Float(10),
				LowerBodyReps: model.Float(60),
			},
		}
		s := scoring.DefaultReferenceTable().Summarize(u)

		Convey("Then strong attributes and focus attributes are split at 60", func() {
			So(len(s.TopAttributes), ShouldEqual, 2)
			So(s.TopAttributes[0].Score, ShouldEqual, 100)
			So(len(s.FocusAttributes), ShouldEqual, 1)
			So(s.FocusAttributes[0].Attribute, ShouldEqual, string(model.AttrUpperBody))
		})

		Convey("And the age group and potential follow the age", func() {
			So(s.AgeGroup, ShouldEqual, "10-12")
			mean := s.Categories.Mean()
			So(s.DevelopmentPotential, ShouldAlmostEqual, 60*(100-mean)/100, 1e-9)
			So(s.Complete, ShouldBeFalse)
		})
	})

	Convey("Given ages across the groups", t, func() {
		So(scoring.AgeGroup(0), ShouldEqual, "unknown")
		So(scoring.AgeGroup(8), ShouldEqual, "under-10")
		So(scoring.AgeGroup(15), ShouldEqual, "13-15")
		So(scoring.AgeGroup(18), ShouldEqual, "16-18")
		So(scoring.AgeGroup(30), ShouldEqual, "adult")
	})
}
