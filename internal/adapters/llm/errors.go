package llm

import "errors"

// Sentinel kinds for refinement errors.
var (
	ErrDisabled          = errors.New("llm refinement disabled")
	ErrUnknownProvider   = errors.New("unknown llm provider")
	ErrMalformedResponse = errors.New("malformed llm response")
	ErrEmptyResponse     = errors.New("empty llm response")
	ErrMissingAPIKey     = errors.New("llm api key missing")
)
