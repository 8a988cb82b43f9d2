package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Suggestion is one sport as returned by the model.
type Suggestion struct {
	Name          string   `json:"name"`
	Compatibility float64  `json:"compatibility"`
	Strengths     []string `json:"strengths"`
	Development   []string `json:"development"`
	Rationale     string   `json:"rationale"`
}

// CleanResponse strips markdown code fences and surrounding prose, returning
// the text from the first JSON object or array onwards.
func CleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "{[") {
			s = s[nl+1:]
		}
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}
	return strings.TrimSpace(s[start:])
}

// ParseSuggestions decodes the first JSON value of raw. Both
// {"recommendations":[...]} and a bare array are accepted.
func ParseSuggestions(raw string) ([]Suggestion, error) {
	s := CleanResponse(raw)
	if s == "" {
		return nil, fmt.Errorf("%w: no json found", ErrMalformedResponse)
	}
	dec := json.NewDecoder(strings.NewReader(s))
	if s[0] == '[' {
		var list []Suggestion
		if err := dec.Decode(&list); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		return list, nil
	}
	var doc struct {
		Recommendations []Suggestion `json:"recommendations"`
	}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if doc.Recommendations == nil {
		return nil, fmt.Errorf("%w: missing recommendations", ErrMalformedResponse)
	}
	return doc.Recommendations, nil
}
