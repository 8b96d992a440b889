package repository

import "errors"

// Sentinel kinds for snapshot errors.
var (
	ErrNotFound     = errors.New("person not found")
	ErrInvalidRange = errors.New("invalid list range")
)
