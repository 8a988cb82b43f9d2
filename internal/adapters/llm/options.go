package llm

import (
	"net/http"
	"time"

	"github.com/okian/sportfit/pkg/logger"
)

// Option applies a configuration option to the ModelRefiner.
type Option func(*ModelRefiner)

// WithClamp sets the compatibility range suggestions are clamped to.
func WithClamp(lo, hi int) Option {
	return func(r *ModelRefiner) {
		if lo >= 0 && hi > lo {
			r.clampMin, r.clampMax = lo, hi
		}
	}
}

// WithLogger sets the refiner logger.
func WithLogger(l logger.Logger) Option {
	return func(r *ModelRefiner) {
		if l != nil {
			r.logger = l
		}
	}
}

// ClientOption applies a configuration option to the OpenAI client.
type ClientOption func(*OpenAI)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *OpenAI) {
		if c != nil {
			o.hc = c
		}
	}
}

// WithMaxRetries bounds retry attempts after the first call.
func WithMaxRetries(n int) ClientOption {
	return func(o *OpenAI) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

// WithInitialBackoff sets the first retry delay.
func WithInitialBackoff(d time.Duration) ClientOption {
	return func(o *OpenAI) {
		if d > 0 {
			o.initialBackoff = d
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) ClientOption {
	return func(o *OpenAI) {
		if t >= 0 {
			o.temperature = t
		}
	}
}

// WithClientLogger sets the client logger.
func WithClientLogger(l logger.Logger) ClientOption {
	return func(o *OpenAI) {
		if l != nil {
			o.logger = l
		}
	}
}
