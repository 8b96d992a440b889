package probe

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dragnet-io/dragnet/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "probe_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the probe tool.
func ShowHelp() {
	os.Stdout.WriteString(`Dragnet Source Probe
====================

Fetches a bounded slice of the live source listing, runs the full
normalization pipeline over it, and verifies the output guarantees.

Usage:
  go run cmd/probe/main.go [options]

Options:
  -url string
        Base URL of the source listing API (default "https://api.fbi.gov/wanted/v1")
  -pages int
        Maximum number of pages to fetch (default 2)
  -pagesize int
        Records per page (default 20)
  -delay int
        Delay between page fetches in milliseconds (default 500)
  -timeout duration
        HTTP request timeout (default 10s)
  -log string
        Log file for probe output (default: probe_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Probe with default settings
  go run cmd/probe/main.go

  # Probe a larger slice, slower
  go run cmd/probe/main.go -pages 5 -delay 1000

  # Probe a local fixture server
  go run cmd/probe/main.go -url http://localhost:9090 -pages 1
`)
}
