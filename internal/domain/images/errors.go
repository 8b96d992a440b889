package images

import "errors"

// Sentinel kinds for image resolution errors.
var (
	// ErrNoRealImage marks a person whose only available image is the
	// generated placeholder.
	ErrNoRealImage = errors.New("no real image available")
)
