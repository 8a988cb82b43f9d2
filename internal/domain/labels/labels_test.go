package labels_test

import (
	"testing"

	"github.com/okian/sportfit/internal/domain/labels"
	"github.com/okian/sportfit/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLabeler(t *testing.T) {
	Convey("Given the default labeler", t, func() {
		l := labels.New()
		swimming := model.SportCandidate{
			EventName:     "Swimming Women's 100 metres Freestyle",
			Tags:          model.NewTags(model.TagSpeed, model.TagReach),
			KeyAttributes: []model.Attribute{model.AttrUpperBody},
		}

		Convey("When no attribute is known", func() {
			u := model.UserProfile{}

			Convey("Then both lists carry their placeholder", func() {
				So(l.Strengths(swimming, u), ShouldResemble, []string{labels.PendingFullEvaluation})
				So(l.DevelopmentAreas(swimming, u), ShouldResemble, []string{labels.PendingEvaluation})
			})
		})

		Convey("When many strengths fire", func() {
			u := model.UserProfile{
				Biotype:   &model.Biotype{WingspanCM: model.Float(195)},
				Physical:  &model.Physical{SprintTimeS: model.Float(3.1), UpperBodyReps: model.Float(45), LowerBodyReps: model.Float(55)},
				Technical: &model.Technical{Coordination: model.Float(45), BalanceS: model.Float(55)},
			}
			got := l.Strengths(swimming, u)

			Convey("Then at most three are returned, sport-relevant first", func() {
				So(got, ShouldResemble, []string{labels.GoodWingspan, labels.Speed, labels.UpperBodyStrength})
			})
		})

		Convey("When a tagged rule does not apply to the sport", func() {
			judo := model.SportCandidate{EventName: "Judo Men's Lightweight", Tags: model.NewTags(model.TagWeightClass)}
			u := model.UserProfile{
				Biotype:  &model.Biotype{HeightCM: model.Float(190)},
				Physical: &model.Physical{SprintTimeS: model.Float(3.0), LowerBodyReps: model.Float(52)},
			}

			Convey("Then only general rules fire", func() {
				So(l.Strengths(judo, u), ShouldResemble, []string{labels.LowerBodyStrength})
			})
		})

		Convey("When weak results are given", func() {
			u := model.UserProfile{
				Physical:  &model.Physical{UpperBodyReps: model.Float(10)},
				Technical: &model.Technical{Precision: model.Float(3), AgilityTimeS: model.Float(12), BalanceS: model.Float(20)},
			}

			Convey("Then development areas follow the table, relevant first", func() {
				So(l.DevelopmentAreas(swimming, u), ShouldResemble,
					[]string{labels.UpperBodyStrength, labels.Precision, labels.Balance})
			})

			Convey("And declaration mode keeps table order", func() {
				d := labels.New(labels.WithMode(labels.ModeDeclaration))
				So(d.DevelopmentAreas(swimming, u), ShouldResemble,
					[]string{labels.UpperBodyStrength, labels.Precision, labels.Balance})
			})
		})

		Convey("When a slow sprinter looks at a speed sport", func() {
			u := model.UserProfile{
				Physical:  &model.Physical{SprintTimeS: model.Float(4.5)},
				Technical: &model.Technical{Coordination: model.Float(10)},
			}
			rowing := model.SportCandidate{EventName: "Rowing"}

			Convey("Then speed is only listed for the speed sport", func() {
				So(l.DevelopmentAreas(swimming, u), ShouldResemble, []string{labels.Speed, labels.Coordination})
				So(l.DevelopmentAreas(rowing, u), ShouldResemble, []string{labels.Coordination})
			})
		})
	})
}
