package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/okian/sportfit/pkg/logger"
)

// blockedFinishReason is genai.FinishReasonSafety.
const blockedFinishReason = genai.FinishReasonSafety

// Gemini calls Google's Gemini models.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      logger.Logger
}

// NewGemini creates a Gemini client. Close releases its connection.
func NewGemini(ctx context.Context, apiKey, model string, temperature float32, log logger.Logger) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Gemini{client: client, model: model, temperature: temperature, logger: log}, nil
}

// Provider implements Completer.
func (g *Gemini) Provider() string { return "gemini" }

// Complete implements Completer.
func (g *Gemini) Complete(ctx context.Context, system, user string) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(g.temperature)
	m.ResponseMIMEType = "application/json"
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	if resp.Candidates[0].FinishReason == blockedFinishReason {
		g.logger.Warn(ctx, "gemini answer blocked by safety filter", logger.String("model", g.model))
		return "", fmt.Errorf("%w: blocked by safety filter", ErrEmptyResponse)
	}
	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			break
		}
	}
	return b.String()
}
