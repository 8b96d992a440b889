// Package refresh rebuilds the normalized-person snapshot from the source
// on a fixed interval.
package refresh

import (
	"time"

	"github.com/dragnet-io/dragnet/pkg/logger"
)

// Option applies a configuration option to the Refresher.
type Option func(*Refresher)

// WithInterval sets the time between refresh cycles.
func WithInterval(interval time.Duration) Option {
	return func(r *Refresher) {
		if interval > 0 {
			r.interval = interval
		}
	}
}

// WithConcurrency bounds the normalization fan-out per cycle.
func WithConcurrency(n int) Option {
	return func(r *Refresher) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for the refresher.
func WithLogger(l logger.Logger) Option {
	return func(r *Refresher) {
		if l != nil {
			r.logger = l
		}
	}
}
