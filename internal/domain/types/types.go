// Package types contains common types used across the application
package types

import "github.com/okian/sportfit/internal/domain/model"

// CategoryScores is the per-user profile vector, each value in [0,100].
type CategoryScores struct {
	Physical      float64 `json:"physical"`
	Technical     float64 `json:"technical"`
	Tactical      float64 `json:"tactical"`
	Psychological float64 `json:"psychological"`
}

// Mean returns the average of the four category scores.
func (c CategoryScores) Mean() float64 {
	return (c.Physical + c.Technical + c.Tactical + c.Psychological) / 4
}

// ScoreComponents are the sub-scores of one (user, sport) pair.
type ScoreComponents struct {
	Biotype       float64 `json:"biotype"`
	Physical      float64 `json:"physical"`
	Technical     float64 `json:"technical"`
	Tactical      float64 `json:"tactical"`
	Psychological float64 `json:"psychological"`
}

// Recommendation sources.
const (
	SourceScorer   = "scorer"
	SourceFallback = "fallback"
	SourceLLM      = "llm"
)

// Recommendation is one ranked sport returned to the presentation layer.
type Recommendation struct {
	Rank             int             `json:"rank"`
	SportName        string          `json:"sport_name"`
	EventName        string          `json:"event_name"`
	Category         string          `json:"category,omitempty"`
	Compatibility    int             `json:"compatibility"`
	Strengths        []string        `json:"strengths"`
	DevelopmentAreas []string        `json:"development_areas"`
	Components       ScoreComponents `json:"components"`
	Rationale        string          `json:"rationale,omitempty"`
	Source           string          `json:"source"`
}

// AttributeScore is a normalized score for a single raw attribute.
type AttributeScore struct {
	Attribute string  `json:"attribute"`
	Label     string  `json:"label"`
	Score     float64 `json:"score"`
}

// ProfileSummary describes a user profile independently of any sport.
type ProfileSummary struct {
	Categories           CategoryScores   `json:"categories"`
	Attributes           []AttributeScore `json:"attributes"`
	TopAttributes        []AttributeScore `json:"top_attributes"`
	FocusAttributes      []AttributeScore `json:"focus_attributes"`
	AgeGroup             string           `json:"age_group"`
	DevelopmentPotential float64          `json:"development_potential"`
	Complete             bool             `json:"complete"`
}

// RecommendationQuery is one recommendation request after boundary
// validation. TopK zero selects the configured default.
type RecommendationQuery struct {
	Profile model.UserProfile `json:"profile"`
	TopK    int               `json:"top_k"`
	Locale  string            `json:"locale"`
	Refine  bool              `json:"refine"`
}

// RecommendationResult is the answer to a RecommendationQuery. Refined is
// true only when the model suggestions were merged.
type RecommendationResult struct {
	Locale          string           `json:"locale"`
	Refined         bool             `json:"refined"`
	Cached          bool             `json:"cached"`
	Recommendations []Recommendation `json:"recommendations"`
}

// SportInfo is the public view of one catalogue entry.
type SportInfo struct {
	EventName     string   `json:"event_name"`
	SportName     string   `json:"sport_name"`
	Category      string   `json:"category"`
	Gender        string   `json:"gender"`
	Tags          []string `json:"tags"`
	KeyAttributes []string `json:"key_attributes,omitempty"`
}
