package catalogue

import (
	"strings"

	"github.com/okian/sportfit/internal/domain/model"
)

// keywordTags maps sport keywords found in event names to traits. This is the
// only place the catalogue's free text is interpreted.
var keywordTags = []struct {
	keywords []string
	tag      model.Tag
}{
	{[]string{"basketball", "volleyball"}, model.TagHeightSensitive},
	{[]string{"gymnastics", "wrestling"}, model.TagCompactFrame},
	{[]string{"boxing", "wrestling", "judo", "taekwondo", "weightlifting"}, model.TagWeightClass},
	{[]string{"swimming", "boxing", "basketball"}, model.TagReach},
	{[]string{"weightlifting", "wrestling", "boxing"}, model.TagStrength},
	{[]string{"athletics", "swimming", "cycling"}, model.TagSpeed},
	{[]string{"gymnastics"}, model.TagBalance},
}

// weightClassTags are checked in order; "light heavyweight" is heavyweight.
var weightClassTags = []struct {
	keyword string
	tag     model.Tag
}{
	{"heavyweight", model.TagHeavyweight},
	{"middleweight", model.TagMiddleweight},
	{"lightweight", model.TagLightweight},
}

var teamKeywords = []string{
	"basketball", "volleyball", "football", "handball", "hockey",
	"water polo", "rugby", "baseball", "softball", "team",
}

// keyAttributeWords maps free-text key attributes to measurable attributes.
var keyAttributeWords = []struct {
	words []string
	attr  model.Attribute
}{
	{[]string{"speed", "velocidade", "sprint"}, model.AttrSprint},
	{[]string{"lower body", "lower_body", "leg", "explosive", "jump", "força inferior"}, model.AttrLowerBody},
	{[]string{"upper body", "upper_body", "arms", "strength", "força superior"}, model.AttrUpperBody},
	{[]string{"coordination", "coordenação"}, model.AttrCoordination},
	{[]string{"precision", "accuracy", "precisão"}, model.AttrPrecision},
	{[]string{"agility", "agilidade"}, model.AttrAgility},
	{[]string{"balance", "equilíbrio"}, model.AttrBalance},
	{[]string{"decision", "decisão"}, model.AttrDecisionMaking},
	{[]string{"vision", "visão"}, model.AttrGameVision},
	{[]string{"positioning", "posicionamento"}, model.AttrPositioning},
	{[]string{"height", "altura"}, model.AttrHeight},
	{[]string{"wingspan", "reach", "envergadura"}, model.AttrWingspan},
	{[]string{"body weight", "weight", "peso"}, model.AttrWeight},
}

// KeywordTags derives the trait tags of an event from its name.
func KeywordTags(eventName string) model.Tags {
	name := strings.ToLower(eventName)
	tags := model.NewTags()
	for _, kt := range keywordTags {
		if containsAny(name, kt.keywords) {
			tags[kt.tag] = struct{}{}
		}
	}
	if tags.Has(model.TagWeightClass) {
		for _, wc := range weightClassTags {
			if strings.Contains(name, wc.keyword) {
				tags[wc.tag] = struct{}{}
				break
			}
		}
	}
	return tags
}

// ParseEventGender reads the gender marker of an event name.
func ParseEventGender(eventName string) model.EventGender {
	name := strings.ToLower(eventName)
	switch {
	case strings.Contains(name, "women's") || strings.Contains(name, "women "):
		return model.EventFemale
	case strings.Contains(name, "men's") || strings.Contains(name, "men "):
		return model.EventMale
	case strings.Contains(name, "mixed"):
		return model.EventMixed
	default:
		return model.EventNeutral
	}
}

// parseCategory prefers the declared category and falls back to team keywords.
func parseCategory(declared, eventName string) model.SportCategory {
	switch strings.ToLower(strings.TrimSpace(declared)) {
	case "collective", "team", "coletivo", "coletiva":
		return model.CategoryCollective
	case "individual":
		return model.CategoryIndividual
	}
	if containsAny(strings.ToLower(eventName), teamKeywords) {
		return model.CategoryCollective
	}
	return model.CategoryIndividual
}

// parseKeyAttributes maps free text to attributes, dropping unknown phrases.
func parseKeyAttributes(raw []string) []model.Attribute {
	var out []model.Attribute
	seen := map[model.Attribute]bool{}
	for _, phrase := range raw {
		p := strings.ToLower(strings.TrimSpace(phrase))
		if p == "" {
			continue
		}
		for _, kw := range keyAttributeWords {
			if p == string(kw.attr) || containsAny(p, kw.words) {
				if !seen[kw.attr] {
					seen[kw.attr] = true
					out = append(out, kw.attr)
				}
				break
			}
		}
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
