// Package probe is an operational smoke tool: it fetches a bounded slice
// of the live source listing, runs the full normalization pipeline over
// it, and verifies the pipeline's output guarantees.
package probe

import "time"

// Config holds probe configuration.
type Config struct {
	BaseURL  string
	Pages    int
	PageSize int
	DelayMS  int
	Timeout  time.Duration
	LogFile  string
	Verbose  bool
}

// Stats tracks probe execution statistics.
type Stats struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	RecordsFetched   int
	PersonsAssembled int
	AssembleFailures int
	Placeholders     int
	Violations       int

	ByCategory map[string]int
}
