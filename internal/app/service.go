// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/dragnet-io/dragnet/internal/adapters/aging"
	"github.com/dragnet-io/dragnet/internal/adapters/refresh"
	"github.com/dragnet-io/dragnet/internal/adapters/repository"
	"github.com/dragnet-io/dragnet/internal/adapters/source"
	"github.com/dragnet-io/dragnet/internal/domain/assemble"
	"github.com/dragnet-io/dragnet/internal/domain/images"
	"github.com/dragnet-io/dragnet/internal/domain/model"
	"github.com/dragnet-io/dragnet/pkg/logger"
)

// Default service configuration constants.
const (
	defaultRefreshInterval = 15 * time.Minute
	shutdownGrace          = 10 * time.Second
	imageFetchTimeout      = 15 * time.Second
)

// SourceClient abstracts the source adapter for the service.
type SourceClient interface {
	FetchAll(ctx context.Context) []model.RawRecord
	FetchByID(ctx context.Context, rawID string) (*model.RawRecord, error)
}

// Ager abstracts the photo-aging collaborator.
type Ager interface {
	Enabled() bool
	Age(ctx context.Context, image []byte, years int) ([]byte, error)
}

// Service implements the API dependencies for the aggregation system.
type Service struct {
	mu sync.RWMutex

	// Core components
	src       SourceClient
	store     repository.Store
	refresher *refresh.Refresher
	ager      Ager

	// Configuration
	refreshInterval     time.Duration
	assembleConcurrency int
	sourceOptions       []source.Option

	// Image download client for age progression.
	imageClient *http.Client

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		refreshInterval:     defaultRefreshInterval,
		assembleConcurrency: runtime.NumCPU(),
		imageClient:         &http.Client{Timeout: imageFetchTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}

	s.logger.Info(ctx, "starting aggregation service...")

	if s.src == nil {
		s.src = source.NewClient(s.sourceOptions...)
	}
	if s.store == nil {
		s.store = repository.NewSnapshotStore()
	}
	if s.ager == nil {
		s.ager = aging.NewClient("")
	}

	s.refresher = refresh.New(s.src, s.store,
		refresh.WithInterval(s.refreshInterval),
		refresh.WithConcurrency(s.assembleConcurrency),
	)
	go s.refresher.Run(ctx)

	s.started = true
	s.logger.Info(ctx, "aggregation service started",
		logger.Duration("refreshInterval", s.refreshInterval),
		logger.Int("assembleConcurrency", s.assembleConcurrency),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	s.logger.Info(ctx, "stopping aggregation service...")
	if s.refresher != nil {
		if err := s.refresher.Shutdown(ctx); err != nil {
			s.logger.Warn(ctx, "refresher shutdown failed", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(ctx, "aggregation service stopped")
}

// List returns a page of the current snapshot.
func (s *Service) List(ctx context.Context, offset, limit int) ([]*model.Person, error) {
	return s.store.List(ctx, offset, limit)
}

// Count returns the size of the current snapshot.
func (s *Service) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}

// Get returns one person by raw identifier. A snapshot miss falls back to
// the source's by-id lookup, so detail views work before the first
// refresh completes and for records that dropped off the listing.
func (s *Service) Get(ctx context.Context, rawID string) (*model.Person, error) {
	person, err := s.store.ByID(ctx, rawID)
	if err == nil {
		return person, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	rec, fetchErr := s.src.FetchByID(ctx, rawID)
	if fetchErr != nil {
		// Keep the not-found sentinel so the API can translate it.
		return nil, fmt.Errorf("%w: %w", repository.ErrNotFound, fetchErr)
	}
	return assemble.Person(rec)
}

// AgeProgression downloads the person's primary real image and runs the
// photo-aging collaborator on it.
func (s *Service) AgeProgression(ctx context.Context, rawID string, years int) ([]byte, error) {
	person, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	primary := images.Primary(person)
	if images.IsPlaceholder(primary) {
		return nil, fmt.Errorf("person %s: %w", rawID, images.ErrNoRealImage)
	}

	payload, err := s.fetchImage(ctx, primary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", aging.ErrAgingFailed, err)
	}
	return s.ager.Age(ctx, payload, years)
}

func (s *Service) fetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	resp, err := s.imageClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return body, nil
}

// Refresh triggers one synchronous snapshot rebuild. The background
// refresher covers normal operation; this exists for tests and tooling
// that need a deterministic rebuild.
func (s *Service) Refresh(ctx context.Context) {
	s.mu.RLock()
	r := s.refresher
	s.mu.RUnlock()
	if r != nil {
		r.Refresh(ctx)
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":          s.started,
		"refreshIntervalS": int(s.refreshInterval.Seconds()),
		"agingEnabled":     s.ager != nil && s.ager.Enabled(),
		"snapshotRecords":  0,
		"lastRebuildUnix":  int64(0),
	}

	if s.store != nil {
		stats["snapshotRecords"] = s.store.Count(ctx)
		if t := s.store.LastRebuild(ctx); !t.IsZero() {
			stats["lastRebuildUnix"] = t.Unix()
		}
	}

	return stats
}
