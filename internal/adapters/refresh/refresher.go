// Package refresh rebuilds the normalized-person snapshot from the source
// on a fixed interval.
package refresh

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dragnet-io/dragnet/internal/domain/assemble"
	"github.com/dragnet-io/dragnet/internal/domain/images"
	"github.com/dragnet-io/dragnet/internal/domain/model"
	"github.com/dragnet-io/dragnet/pkg/logger"
	"github.com/dragnet-io/dragnet/pkg/metrics"
)

// Default refresher configuration constants.
const (
	defaultInterval    = 15 * time.Minute
	defaultConcurrency = 8
)

// Fetcher abstracts the source client.
type Fetcher interface {
	FetchAll(ctx context.Context) []model.RawRecord
}

// Replacer abstracts the snapshot swap.
type Replacer interface {
	Replace(ctx context.Context, persons []*model.Person)
}

// Refresher periodically fetches the full listing, runs the normalization
// pipeline over it, and swaps the snapshot. A failed or empty fetch keeps
// the previous snapshot untouched.
type Refresher struct {
	fetcher     Fetcher
	store       Replacer
	interval    time.Duration
	concurrency int

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// New creates a refresher with configuration options.
func New(fetcher Fetcher, store Replacer, opts ...Option) *Refresher {
	r := &Refresher{
		fetcher:     fetcher,
		store:       store,
		interval:    defaultInterval,
		concurrency: defaultConcurrency,
		shutdown:    make(chan struct{}),
		done:        make(chan struct{}),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = logger.Get().Named("refresh")
	}

	return r
}

// Run refreshes once immediately and then on every interval tick until
// ctx is canceled or Shutdown is called.
func (r *Refresher) Run(ctx context.Context) {
	defer close(r.done)

	r.Refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.shutdown:
			return
		case <-ticker.C:
			r.Refresh(ctx)
		}
	}
}

// Shutdown gracefully stops the refresher.
func (r *Refresher) Shutdown(ctx context.Context) error {
	close(r.shutdown)

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		r.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// Refresh performs one fetch-normalize-swap cycle.
func (r *Refresher) Refresh(ctx context.Context) {
	start := time.Now()

	raws := r.fetcher.FetchAll(ctx)
	if len(raws) == 0 {
		metrics.RecordRefreshError()
		r.logger.Warn(ctx, "fetch returned no records; keeping previous snapshot")
		return
	}

	// Assembly is pure, so records fan out and order is restored by index.
	results := make([]*model.Person, len(raws))
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i := range raws {
		g.Go(func() error {
			p, err := assemble.Person(&raws[i])
			if err != nil {
				metrics.RecordRecordDropped()
				r.logger.Debug(ctx, "dropping unassemblable record", logger.Error(err))
				return nil
			}
			results[i] = p
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; drops are handled inline

	persons := make([]*model.Person, 0, len(results))
	for _, p := range results {
		if p == nil {
			continue
		}
		metrics.RecordClassification(p.Classification.String())
		if images.IsPlaceholder(p.ThumbnailURL) {
			metrics.RecordPlaceholderFallback()
		}
		persons = append(persons, p)
	}

	r.store.Replace(ctx, persons)

	elapsed := time.Since(start)
	metrics.RecordRefresh()
	metrics.RecordSnapshotRebuild(float64(elapsed.Milliseconds()), time.Now().Unix())
	r.logger.Info(ctx, "snapshot rebuilt",
		logger.Int("records", len(persons)),
		logger.Int("dropped", len(raws)-len(persons)),
		logger.Duration("elapsed", elapsed),
	)
}
