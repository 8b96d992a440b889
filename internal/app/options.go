package app

import (
	"time"

	"github.com/dragnet-io/dragnet/internal/adapters/repository"
	"github.com/dragnet-io/dragnet/internal/adapters/source"
	"github.com/dragnet-io/dragnet/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the source client. Mostly useful for tests; Start
// builds the real client from the source options otherwise.
func WithSource(src SourceClient) Option {
	return func(s *Service) {
		if src != nil {
			s.src = src
		}
	}
}

// WithSourceOptions forwards options to the source client built in Start.
func WithSourceOptions(opts ...source.Option) Option {
	return func(s *Service) {
		s.sourceOptions = append(s.sourceOptions, opts...)
	}
}

// WithStore sets the snapshot store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithAger sets the photo-aging collaborator client.
func WithAger(ager Ager) Option {
	return func(s *Service) {
		if ager != nil {
			s.ager = ager
		}
	}
}

// WithRefreshInterval sets how often the snapshot is rebuilt.
func WithRefreshInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.refreshInterval = interval
		}
	}
}

// WithAssembleConcurrency bounds the normalization fan-out.
func WithAssembleConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.assembleConcurrency = n
		}
	}
}

// WithLogger sets the logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
