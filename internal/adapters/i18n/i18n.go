// Package i18n localizes event names and label keys for en and pt-BR.
package i18n

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Supported locales.
const (
	English    = "en"
	Portuguese = "pt-BR"
)

var supported = []language.Tag{language.English, language.BrazilianPortuguese}

// ptVocabulary translates sport and event words. Multi-word entries must win
// over their parts, see newReplacer.
var ptVocabulary = map[string]string{
	"Swimming":              "Natação",
	"Athletics":             "Atletismo",
	"Gymnastics":            "Ginástica",
	"Basketball":            "Basquete",
	"Volleyball":            "Vôlei",
	"Beach Volleyball":      "Vôlei de Praia",
	"Water Polo":            "Polo Aquático",
	"Football":              "Futebol",
	"Handball":              "Handebol",
	"Hockey":                "Hóquei",
	"Tennis":                "Tênis",
	"Table Tennis":          "Tênis de Mesa",
	"Badminton":             "Badminton",
	"Boxing":                "Boxe",
	"Wrestling":             "Luta Livre",
	"Judo":                  "Judô",
	"Karate":                "Karatê",
	"Fencing":               "Esgrima",
	"Shooting":              "Tiro",
	"Archery":               "Tiro com Arco",
	"Cycling":               "Ciclismo",
	"Rowing":                "Remo",
	"Sailing":               "Vela",
	"Canoe":                 "Canoagem",
	"Equestrian":            "Hipismo",
	"Weightlifting":         "Levantamento de Peso",
	"Figure Skating":        "Patinação Artística",
	"Speed Skating":         "Patinação de Velocidade",
	"Singles":               "Individual",
	"Doubles":               "Duplas",
	"Mixed Doubles":         "Duplas Mistas",
	"Mixed":                 "Misto",
	"Team":                  "Equipe",
	"Relay":                 "Revezamento",
	"Marathon":              "Maratona",
	"Road Race":             "Corrida de Estrada",
	"Race":                  "Corrida",
	"Sprint":                "Velocidade",
	"Freestyle":             "Livre",
	"Backstroke":            "Costas",
	"Breaststroke":          "Peito",
	"Butterfly":             "Borboleta",
	"High Jump":             "Salto em Altura",
	"Long Jump":             "Salto em Distância",
	"Lightweight":           "Peso Leve",
	"Middleweight":          "Peso Médio",
	"Heavyweight":           "Peso Pesado",
	"Single Sculls":         "Skiff Simples",
	"Floor Exercise":        "Solo",
	"Individual All-Around": "Individual Geral",
	"Dressage":              "Adestramento",
	"Air Rifle":             "Carabina de Ar",
	"Foil":                  "Florete",
	"metres":                "metros",
}

// Translator localizes catalogue text.
type Translator struct {
	matcher  language.Matcher
	fallback string
	vocab    *regexp.Regexp
	words    map[string]string
	messages map[string]map[string]string
}

// New creates a Translator whose unknown locales resolve to fallback.
func New(fallback string) *Translator {
	t := &Translator{
		matcher:  language.NewMatcher(supported),
		words:    ptVocabulary,
		messages: messages,
	}
	t.vocab = newReplacer(ptVocabulary)
	t.fallback = English
	if fallback != "" {
		t.fallback = t.Match(fallback)
	}
	return t
}

// newReplacer builds one alternation ordered longest-first so a single pass
// never retranslates its own output.
func newReplacer(vocab map[string]string) *regexp.Regexp {
	keys := make([]string, 0, len(vocab))
	for k := range vocab {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)
}

// Match resolves a locale or Accept-Language value to a supported locale.
func (t *Translator) Match(locale string) string {
	if strings.TrimSpace(locale) == "" {
		if t.fallback != "" {
			return t.fallback
		}
		return English
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.fallback
	}
	return supported[idx].String()
}

// SportName returns the display name of an event.
func (t *Translator) SportName(eventName, locale string) string {
	if t.Match(locale) == Portuguese {
		return t.portuguese(eventName)
	}
	return CleanEventName(eventName)
}

// Label returns the display text of a label key, or the key itself.
func (t *Translator) Label(key, locale string) string {
	if m, ok := t.messages[t.Match(locale)]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return key
}

func (t *Translator) portuguese(eventName string) string {
	gender := genderOf(eventName)
	name := dedupeWords(stripGender(eventName))
	name = t.vocab.ReplaceAllStringFunc(name, func(w string) string {
		return t.words[w]
	})
	name = dedupeWords(name)
	switch gender {
	case "Men's":
		name += " Masculino"
	case "Women's":
		name += " Feminino"
	}
	return name
}

// CleanEventName removes consecutive duplicate words and moves the gender
// marker to the front: "Basketball Men's Basketball" -> "Men's Basketball".
func CleanEventName(eventName string) string {
	gender := genderOf(eventName)
	name := dedupeWords(stripGender(eventName))
	if gender != "" {
		name = gender + " " + name
	}
	return name
}

func genderOf(s string) string {
	switch {
	case strings.Contains(s, "Women's"):
		return "Women's"
	case strings.Contains(s, "Men's"):
		return "Men's"
	default:
		return ""
	}
}

func stripGender(s string) string {
	s = strings.ReplaceAll(s, "Women's ", "")
	s = strings.ReplaceAll(s, "Men's ", "")
	return strings.TrimSpace(s)
}

// dedupeWords removes immediately repeated words and phrases:
// "Water Polo Water Polo" -> "Water Polo".
func dedupeWords(s string) string {
	words := strings.Fields(s)
	for i := 0; i < len(words); i++ {
		for k := (len(words) - i) / 2; k >= 1; k-- {
			if equalWords(words[i:i+k], words[i+k:i+2*k]) {
				words = append(words[:i+k], words[i+2*k:]...)
				k = (len(words)-i)/2 + 1
			}
		}
	}
	return strings.Join(words, " ")
}

func equalWords(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
