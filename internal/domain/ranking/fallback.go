package ranking

import "github.com/okian/sportfit/internal/domain/model"

// FallbackCandidates returns a small static list appropriate for gender. It
// is used when the catalogue has nothing eligible for the user.
func FallbackCandidates(g model.Gender) []model.SportCandidate {
	prefix := ""
	eg := model.EventNeutral
	switch g {
	case model.GenderMale:
		prefix, eg = "Men's ", model.EventMale
	case model.GenderFemale:
		prefix, eg = "Women's ", model.EventFemale
	}
	mk := func(sport, event string, cat model.SportCategory, tags ...model.Tag) model.SportCandidate {
		return model.SportCandidate{
			EventName: sport + " " + prefix + event,
			Category:  cat,
			Gender:    eg,
			Tags:      model.NewTags(tags...),
		}
	}
	return []model.SportCandidate{
		mk("Athletics", "100 metres", model.CategoryIndividual, model.TagSpeed),
		mk("Swimming", "100 metres Freestyle", model.CategoryIndividual, model.TagSpeed, model.TagReach),
		mk("Volleyball", "Volleyball", model.CategoryCollective, model.TagHeightSensitive),
		mk("Gymnastics", "Individual All-Around", model.CategoryIndividual, model.TagCompactFrame, model.TagBalance),
		mk("Judo", "Middleweight", model.CategoryIndividual, model.TagWeightClass, model.TagMiddleweight, model.TagStrength),
	}
}
