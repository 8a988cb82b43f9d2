package catalogue

import "errors"

// Sentinel kinds for catalogue errors.
var (
	ErrNotFound          = errors.New("sport not found")
	ErrUnsupportedFormat = errors.New("unsupported catalogue format")
	ErrEmpty             = errors.New("catalogue is empty")
	ErrMalformed         = errors.New("malformed catalogue")
)
