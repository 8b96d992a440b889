// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env vars on top.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SourceBaseURL is the root of the wanted-records source API.
	SourceBaseURL string `koanf:"source_base_url"`

	// SourceUserAgent identifies this client to the source; the source
	// runs anti-bot defenses, so a realistic value matters.
	SourceUserAgent string `koanf:"source_user_agent"`

	// PageSize sets the records-per-page query parameter.
	PageSize int `koanf:"page_size"`

	// MaxPages caps pagination so a misbehaving source cannot cause a
	// runaway fetch loop.
	MaxPages int `koanf:"max_pages"`

	// PageFetchDelayMS is the minimum delay between successive page
	// fetches, respecting the source's rate limits.
	PageFetchDelayMS int `koanf:"page_fetch_delay_ms"`

	// FetchTimeoutMS bounds each individual source request.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// RefreshIntervalS is how often the snapshot is rebuilt from the source.
	RefreshIntervalS int `koanf:"refresh_interval_s"`

	// AssembleConcurrency bounds the normalization fan-out per refresh.
	AssembleConcurrency int `koanf:"assemble_concurrency"`

	// MaxListLimit caps GET /people?limit.
	MaxListLimit int `koanf:"max_list_limit"`

	// AgingServiceURL locates the photo-aging collaborator. Empty
	// disables the age-progression endpoint.
	AgingServiceURL string `koanf:"aging_service_url"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8080",
		SourceBaseURL:       "https://api.fbi.gov/wanted/v1",
		SourceUserAgent:     "Mozilla/5.0 (compatible; dragnet/1.0)",
		PageSize:            20,
		MaxPages:            50,
		PageFetchDelayMS:    500,
		FetchTimeoutMS:      10_000,
		RefreshIntervalS:    900,
		AssembleConcurrency: runtime.NumCPU(),
		MaxListLimit:        100,
		AgingServiceURL:     "",
	}
}
