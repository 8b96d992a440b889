// Package repository defines the normalized-person read model and errors.
package repository

import (
	"context"
	"time"

	"github.com/dragnet-io/dragnet/internal/domain/model"
)

// Store provides read access to the current snapshot of normalized
// persons plus the atomic swap used by the refresher. Persons are
// immutable once stored, so readers may share the returned pointers.
type Store interface {
	// Replace swaps the whole snapshot atomically, preserving the given
	// order (publication order from the source).
	Replace(ctx context.Context, persons []*model.Person)

	// List returns a page of the snapshot in stored order.
	List(ctx context.Context, offset, limit int) ([]*model.Person, error)

	// ByID returns the person with the given raw identifier.
	// Returns ErrNotFound if the id is unknown.
	ByID(ctx context.Context, rawID string) (*model.Person, error)

	// Count returns the number of persons in the snapshot.
	Count(ctx context.Context) int

	// LastRebuild returns when the snapshot was last replaced; zero when
	// no refresh has completed yet.
	LastRebuild(ctx context.Context) time.Time
}
