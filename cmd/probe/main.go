package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/dragnet-io/dragnet/internal/probe"
)

// Default configuration constants.
const (
	defaultPages        = 2
	defaultPageSize     = 20
	defaultDelayMS      = 500
	defaultTimeout      = 10 * time.Second
	defaultProbeTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "https://api.fbi.gov/wanted/v1", "Base URL of the source listing API")
		pages    = flag.Int("pages", defaultPages, "Maximum number of pages to fetch")
		pageSize = flag.Int("pagesize", defaultPageSize, "Records per page")
		delayMS  = flag.Int("delay", defaultDelayMS, "Delay between page fetches in milliseconds")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile  = flag.String("log", "", "Log file for probe output (default: probe_log_TIMESTAMP.log)")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp()
		return
	}

	// Setup logging
	if err := probe.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultProbeTimeout)
	defer cancel()

	// Create probe configuration
	config := &probe.Config{
		BaseURL:  *baseURL,
		Pages:    *pages,
		PageSize: *pageSize,
		DelayMS:  *delayMS,
		Timeout:  *timeout,
		LogFile:  *logFile,
		Verbose:  *verbose,
	}

	// Run the probe
	if err := probe.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
