package aging

import "errors"

// Sentinel kinds for aging-collaborator errors.
var (
	ErrDisabled    = errors.New("photo-aging service not configured")
	ErrAgingFailed = errors.New("photo-aging request failed")
)
