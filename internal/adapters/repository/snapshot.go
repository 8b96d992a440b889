package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dragnet-io/dragnet/internal/domain/model"
	"github.com/dragnet-io/dragnet/pkg/metrics"
)

// SnapshotStore implements Store with an in-memory snapshot that is
// replaced wholesale on every refresh. Reads take a shared lock; the only
// writer is the refresher.
type SnapshotStore struct {
	mu          sync.RWMutex
	persons     []*model.Person
	byID        map[string]*model.Person
	lastRebuild time.Time
}

// NewSnapshotStore creates an empty snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		byID: make(map[string]*model.Person),
	}
}

// Replace swaps the whole snapshot atomically.
func (s *SnapshotStore) Replace(ctx context.Context, persons []*model.Person) {
	byID := make(map[string]*model.Person, len(persons))
	for _, p := range persons {
		if _, exists := byID[p.RawID]; exists {
			// First occurrence wins; later pages can re-serve a record.
			continue
		}
		byID[p.RawID] = p
	}

	s.mu.Lock()
	s.persons = persons
	s.byID = byID
	s.lastRebuild = time.Now()
	s.mu.Unlock()

	metrics.UpdateSnapshotRecords(len(persons))
}

// List returns a page of the snapshot in stored order.
func (s *SnapshotStore) List(ctx context.Context, offset, limit int) ([]*model.Person, error) {
	if offset < 0 || limit < 1 {
		return nil, fmt.Errorf("offset %d limit %d: %w", offset, limit, ErrInvalidRange)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset >= len(s.persons) {
		return []*model.Person{}, nil
	}
	end := offset + limit
	if end > len(s.persons) {
		end = len(s.persons)
	}
	out := make([]*model.Person, end-offset)
	copy(out, s.persons[offset:end])
	return out, nil
}

// ByID returns the person with the given raw identifier.
func (s *SnapshotStore) ByID(ctx context.Context, rawID string) (*model.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[rawID]
	if !ok {
		return nil, fmt.Errorf("id %s: %w", rawID, ErrNotFound)
	}
	return p, nil
}

// Count returns the number of persons in the snapshot.
func (s *SnapshotStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.persons)
}

// LastRebuild returns when the snapshot was last replaced.
func (s *SnapshotStore) LastRebuild(ctx context.Context) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRebuild
}
