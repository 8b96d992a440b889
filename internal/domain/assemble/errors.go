package assemble

import "errors"

// Sentinel kinds for assembly errors.
var (
	ErrNoIdentifier = errors.New("record has no usable identifier")
)
