package ranking_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/okian/sportfit/internal/domain/labels"
	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/ranking"
	"github.com/okian/sportfit/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

type upperLocalizer struct{}

func (upperLocalizer) SportName(event, locale string) string { return locale + ":" + event }
func (upperLocalizer) Label(key, _ string) string            { return strings.ToUpper(key) }

func catalogue() []model.SportCandidate {
	return []model.SportCandidate{
		{EventName: "Rowing Men's Single Sculls", Category: model.CategoryIndividual, Gender: model.EventMale},
		{EventName: "Rowing Women's Single Sculls", Category: model.CategoryIndividual, Gender: model.EventFemale},
		{EventName: "Sailing Mixed Nacra 17", Category: model.CategoryIndividual, Gender: model.EventMixed},
		{EventName: "Athletics Women's 100 metres", Category: model.CategoryIndividual, Gender: model.EventFemale, Tags: model.NewTags(model.TagSpeed)},
		{EventName: "Equestrian Dressage", Category: model.CategoryIndividual, Gender: model.EventNeutral},
		{EventName: "Handball Women's Handball", Category: model.CategoryCollective, Gender: model.EventFemale},
		{EventName: "Hockey Women's Hockey", Category: model.CategoryCollective, Gender: model.EventFemale},
	}
}

func TestRanker_Rank(t *testing.T) {
	Convey("Given a ranker and a mixed-gender catalogue", t, func() {
		ctx := context.Background()
		r := ranking.New()

		Convey("When an empty female profile is ranked", func() {
			recs, err := r.Rank(ctx, ranking.Request{User: model.UserProfile{Gender: model.GenderFemale}, Catalogue: catalogue()})

			Convey("Then the default top five is returned without male events", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 5)
				for _, rec := range recs {
					So(rec.EventName, ShouldNotContainSubstring, "Men's")
					So(rec.Source, ShouldEqual, types.SourceScorer)
				}
			})

			Convey("Then equal scores keep catalogue order and ranks are 1-based", func() {
				So(recs[0].EventName, ShouldEqual, "Rowing Women's Single Sculls")
				So(recs[1].EventName, ShouldEqual, "Sailing Mixed Nacra 17")
				So(recs[2].EventName, ShouldEqual, "Athletics Women's 100 metres")
				for i, rec := range recs {
					So(rec.Rank, ShouldEqual, i+1)
					So(rec.Compatibility, ShouldEqual, 40)
				}
			})

			Convey("Then labels fall back to placeholders", func() {
				So(recs[0].Strengths, ShouldResemble, []string{labels.PendingFullEvaluation})
				So(recs[0].DevelopmentAreas, ShouldResemble, []string{labels.PendingEvaluation})
			})
		})

		Convey("When top_k exceeds the eligible count", func() {
			recs, _ := r.Rank(ctx, ranking.Request{User: model.UserProfile{Gender: model.GenderMale}, Catalogue: catalogue(), TopK: 5})

			Convey("Then every eligible entry is returned", func() {
				So(recs, ShouldHaveLength, 3)
			})
		})

		Convey("When top_k is above the maximum", func() {
			So(r.TopK(50), ShouldEqual, 10)
			So(r.TopK(0), ShouldEqual, 5)
			So(r.TopK(2), ShouldEqual, 2)
		})

		Convey("When a fast sprinter is ranked", func() {
			u := model.UserProfile{Gender: model.GenderFemale, Physical: &model.Physical{SprintTimeS: model.Float(3.2)}}
			recs, _ := r.Rank(ctx, ranking.Request{User: u, Catalogue: catalogue(), TopK: 3})

			Convey("Then the speed event leads with its bonus", func() {
				So(recs, ShouldHaveLength, 3)
				So(recs[0].EventName, ShouldEqual, "Athletics Women's 100 metres")
				So(recs[0].Compatibility, ShouldEqual, 49)
				So(recs[1].Compatibility, ShouldEqual, 44)
				So(recs[0].Strengths, ShouldContain, labels.Speed)
			})

			Convey("Then compatibilities never increase down the list", func() {
				for i := 1; i < len(recs); i++ {
					So(recs[i].Compatibility, ShouldBeLessThanOrEqualTo, recs[i-1].Compatibility)
				}
			})
		})

		Convey("When nothing in the catalogue is eligible", func() {
			onlyMen := catalogue()[:1]
			recs, err := r.Rank(ctx, ranking.Request{User: model.UserProfile{Gender: model.GenderFemale}, Catalogue: onlyMen})

			Convey("Then the fallback list is ranked instead", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 5)
				for _, rec := range recs {
					So(rec.Source, ShouldEqual, types.SourceFallback)
					So(rec.EventName, ShouldContainSubstring, "Women's")
				}
			})
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := r.Rank(cctx, ranking.Request{Catalogue: catalogue()})
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})

	Convey("Given a ranker that requires complete profiles", t, func() {
		r := ranking.New(ranking.WithRequireComplete(true))
		_, err := r.Rank(context.Background(), ranking.Request{User: model.UserProfile{}, Catalogue: catalogue()})
		So(errors.Is(err, ranking.ErrIncompleteProfile), ShouldBeTrue)
	})

	Convey("Given a ranker with a localizer", t, func() {
		r := ranking.New(ranking.WithLocalizer(upperLocalizer{}), ranking.WithTopK(1, 3))
		recs, err := r.Rank(context.Background(), ranking.Request{
			User:      model.UserProfile{Physical: &model.Physical{SprintTimeS: model.Float(3.2)}},
			Catalogue: catalogue(),
			Locale:    "pt-BR",
		})

		So(err, ShouldBeNil)
		So(recs, ShouldHaveLength, 1)
		So(recs[0].SportName, ShouldEqual, "pt-BR:Athletics Women's 100 metres")
		So(recs[0].EventName, ShouldEqual, "Athletics Women's 100 metres")
		So(recs[0].Strengths, ShouldContain, "SPEED")
	})
}

func TestFallbackCandidates(t *testing.T) {
	Convey("Given each user gender", t, func() {
		for _, g := range []model.Gender{model.GenderMale, model.GenderFemale, model.GenderUnspecified} {
			list := ranking.FallbackCandidates(g)
			So(list, ShouldNotBeEmpty)
			for _, s := range list {
				So(s.Gender.Eligible(g), ShouldBeTrue)
			}
		}
	})
}
