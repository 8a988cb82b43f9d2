package llm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/okian/sportfit/pkg/logger"
)

// Provider names.
const (
	ProviderNone   = "none"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config selects and configures a provider.
type Config struct {
	Provider    string
	Model       string
	BaseURL     string
	APIKey      string
	MaxRetries  int
	Temperature float32
}

// New builds a refiner for cfg. An empty or "none" provider returns
// ErrDisabled. The returned closer must be closed on shutdown.
func New(ctx context.Context, cfg Config, log logger.Logger, opts ...Option) (*ModelRefiner, io.Closer, error) {
	if log == nil {
		log = logger.Nop()
	}
	var (
		c      Completer
		closer io.Closer = nopCloser{}
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderNone:
		return nil, nil, ErrDisabled
	case ProviderOpenAI:
		o, err := NewOpenAI(cfg.BaseURL, cfg.APIKey, cfg.Model,
			WithMaxRetries(cfg.MaxRetries),
			WithTemperature(cfg.Temperature),
			WithClientLogger(log),
		)
		if err != nil {
			return nil, nil, err
		}
		c = o
	case ProviderGemini:
		g, err := NewGemini(ctx, cfg.APIKey, cfg.Model, cfg.Temperature, log)
		if err != nil {
			return nil, nil, err
		}
		c, closer = g, g
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	opts = append([]Option{WithLogger(log)}, opts...)
	return NewRefiner(c, opts...), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
