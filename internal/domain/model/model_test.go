package model_test

import (
	"math"
	"testing"

	"github.com/okian/sportfit/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseGender(t *testing.T) {
	Convey("Given free-form gender input", t, func() {
		So(model.ParseGender("Female"), ShouldEqual, model.GenderFemale)
		So(model.ParseGender(" masculino "), ShouldEqual, model.GenderMale)
		So(model.ParseGender("m"), ShouldEqual, model.GenderMale)
		So(model.ParseGender(""), ShouldEqual, model.GenderUnspecified)
		So(model.ParseGender("other"), ShouldEqual, model.GenderUnspecified)
	})
}

func TestEventGenderEligible(t *testing.T) {
	Convey("Given event genders", t, func() {
		Convey("Then opposite-gender events are excluded", func() {
			So(model.EventMale.Eligible(model.GenderFemale), ShouldBeFalse)
			So(model.EventFemale.Eligible(model.GenderMale), ShouldBeFalse)
		})

		Convey("And mixed and neutral events are always eligible", func() {
			for _, g := range []model.Gender{model.GenderMale, model.GenderFemale, model.GenderUnspecified} {
				So(model.EventMixed.Eligible(g), ShouldBeTrue)
				So(model.EventNeutral.Eligible(g), ShouldBeTrue)
			}
		})

		Convey("And an unspecified user may see every event", func() {
			So(model.EventMale.Eligible(model.GenderUnspecified), ShouldBeTrue)
			So(model.EventFemale.Eligible(model.GenderUnspecified), ShouldBeTrue)
		})
	})
}

func TestUserProfileValue(t *testing.T) {
	Convey("Given a partially filled profile", t, func() {
		u := model.UserProfile{
			Biotype:  &model.Biotype{HeightCM: model.Float(185)},
			Physical: &model.Physical{SprintTimeS: model.Float(math.NaN())},
		}

		Convey("When reading present values", func() {
			So(*u.Value(model.AttrHeight), ShouldEqual, 185)
		})

		Convey("When reading missing values", func() {
			So(u.Value(model.AttrWeight), ShouldBeNil)
			So(u.Value(model.AttrBalance), ShouldBeNil)
		})

		Convey("When reading a NaN value", func() {
			So(u.Value(model.AttrSprint), ShouldBeNil)
		})

		Convey("Then the profile is not complete", func() {
			So(u.Complete(), ShouldBeFalse)
			So(u.EffectiveGender(), ShouldEqual, model.GenderUnspecified)
		})
	})
}

func TestWeightsNormalized(t *testing.T) {
	Convey("Given requirement weights", t, func() {
		Convey("When they are positive", func() {
			w, ok := model.Weights{Biotype: 2, Physical: 2, Technical: 4, Tactical: 1, Psychological: 1}.Normalized()
			So(ok, ShouldBeTrue)
			So(w.Sum(), ShouldAlmostEqual, 1.0, 1e-9)
			So(w.Technical, ShouldAlmostEqual, 0.4, 1e-9)
		})

		Convey("When they are all zero or negative", func() {
			_, ok := model.Weights{Biotype: -1}.Normalized()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestTags(t *testing.T) {
	Convey("Given a tag set", t, func() {
		tags := model.NewTags(model.TagSpeed, model.TagBalance)
		So(tags.Has(model.TagSpeed), ShouldBeTrue)
		So(tags.Has(model.TagReach), ShouldBeFalse)
		So(tags.Sorted(), ShouldResemble, []string{"balance", "speed"})
	})
}

func TestAttributeValid(t *testing.T) {
	Convey("Given attribute names", t, func() {
		So(model.AttrHeight.Valid(), ShouldBeTrue)
		So(model.AttrPositioning.Valid(), ShouldBeTrue)
		So(model.Attribute("height_cm").Valid(), ShouldBeFalse)
		So(model.Attribute("").Valid(), ShouldBeFalse)
	})
}
