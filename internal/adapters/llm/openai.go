package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/okian/sportfit/pkg/logger"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	maxErrorBody         = 512
)

// OpenAI calls an OpenAI-compatible /chat/completions endpoint.
type OpenAI struct {
	baseURL        string
	apiKey         string
	model          string
	temperature    float32
	maxRetries     int
	initialBackoff time.Duration
	hc             *http.Client
	logger         logger.Logger
}

// NewOpenAI creates a chat completions client.
func NewOpenAI(baseURL, apiKey, model string, opts ...ClientOption) (*OpenAI, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	o := &OpenAI{
		baseURL:        strings.TrimRight(baseURL, "/"),
		apiKey:         apiKey,
		model:          model,
		temperature:    0.7,
		maxRetries:     3,
		initialBackoff: 500 * time.Millisecond,
		hc:             &http.Client{Timeout: 60 * time.Second},
		logger:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Provider implements Completer.
func (o *OpenAI) Provider() string { return "openai" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// statusError is a non-2xx answer.
type statusError struct {
	Status int
	Body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("chat status %d: %s", e.Status, e.Body)
}

// Complete implements Completer. 429 and 5xx answers and transport errors are
// retried with exponential backoff; other 4xx answers fail immediately.
func (o *OpenAI) Complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       o.model,
		Temperature: o.temperature,
		MaxTokens:   1000,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	var out chatResponse
	attempt := 0
	op := func() error {
		attempt++
		// Recreate request each attempt to avoid reusing consumed bodies
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+o.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := o.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			snippet := string(b)
			if len(snippet) > maxErrorBody {
				snippet = snippet[:maxErrorBody]
			}
			serr := &statusError{Status: resp.StatusCode, Body: snippet}
			o.logger.Warn(ctx, "llm provider non-2xx",
				logger.String("provider", o.Provider()),
				logger.String("model", o.model),
				logger.Int("status", resp.StatusCode),
				logger.Int("attempt", attempt))
			if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode < 500 {
				return backoff.Permanent(serr)
			}
			return serr
		}
		if err := json.Unmarshal(b, &out); err != nil {
			return backoff.Permanent(fmt.Errorf("%w: %w", ErrMalformedResponse, err))
		}
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = o.initialBackoff
	expo.MaxInterval = 8 * o.initialBackoff
	expo.MaxElapsedTime = 0
	var bo backoff.BackOff = backoff.WithMaxRetries(expo, uint64(o.maxRetries)) //nolint:gosec // non-negative
	bo = backoff.WithContext(bo, ctx)

	if err := backoff.Retry(op, bo); err != nil {
		return "", fmt.Errorf("openai chat failed after %d attempt(s): %w", attempt, err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return out.Choices[0].Message.Content, nil
}

// StatusCode extracts the HTTP status from an error returned by Complete.
func StatusCode(err error) (int, bool) {
	var se *statusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}
