package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrDecode            = errors.New("source response decode failed")
	ErrNotFound          = errors.New("record not found")
)
