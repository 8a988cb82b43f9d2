package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = `You are a sports talent identification specialist.
You receive an athlete's category scores (0-100) and a list of sports already
ranked by a deterministic model. Adjust compatibility, strengths and
development areas where your expertise disagrees, and add a one-sentence
rationale per sport. Only use sports from the given list.
Answer with JSON only, no explanations:
{"recommendations":[{"name":"<sport name as given>","compatibility":<0-100>,
"strengths":["..."],"development":["..."],"rationale":"..."}]}`

type promptSport struct {
	Name          string   `json:"name"`
	Compatibility int      `json:"compatibility"`
	Strengths     []string `json:"strengths"`
	Development   []string `json:"development"`
}

type promptProfile struct {
	Age           int     `json:"age,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	Physical      float64 `json:"physical"`
	Technical     float64 `json:"technical"`
	Tactical      float64 `json:"tactical"`
	Psychological float64 `json:"psychological"`
}

// BuildPrompt renders the user prompt for req.
func BuildPrompt(req Request) (string, error) {
	sports := make([]promptSport, len(req.Recommendations))
	for i, r := range req.Recommendations {
		sports[i] = promptSport{
			Name:          r.EventName,
			Compatibility: r.Compatibility,
			Strengths:     r.Strengths,
			Development:   r.DevelopmentAreas,
		}
	}
	profile, err := json.Marshal(promptProfile{
		Age:           req.Age,
		Gender:        req.Gender,
		Physical:      round1(req.Profile.Physical),
		Technical:     round1(req.Profile.Technical),
		Tactical:      round1(req.Profile.Tactical),
		Psychological: round1(req.Profile.Psychological),
	})
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	list, err := json.Marshal(sports)
	if err != nil {
		return "", fmt.Errorf("marshal sports: %w", err)
	}

	var b strings.Builder
	b.WriteString("Athlete profile:\n")
	b.Write(profile)
	b.WriteString("\n\nDeterministic top sports:\n")
	b.Write(list)
	if req.Locale != "" {
		fmt.Fprintf(&b, "\n\nWrite strengths, development areas and rationale in locale %q.", req.Locale)
	}
	return b.String(), nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
