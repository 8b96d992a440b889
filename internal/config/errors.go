package config

import (
	"errors"
)

// Sentinel errors wrapped by Load so callers can tell a rejected value
// from a file or parse failure with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
