package storage

import (
	"context"

	"github.com/rah-0/kepler/internal/models"
	"golang.org/x/sync/semaphore"
)

// LaunchStore defines the document-store contract for launch records.
// Filters and patches are mongo-style maps keyed by launch field name
// (e.g. "flightNumber", "rocket", "mission").
type LaunchStore interface {
	// FindOne returns the first launch matching the filter. The bool
	// reports whether a match was found; the error reports store failure.
	FindOne(ctx context.Context, filter map[string]any) (*models.Launch, bool, error)

	// FindLatest returns the launch with the greatest value of the given
	// field, or false if the store is empty.
	FindLatest(ctx context.Context, field string) (*models.Launch, bool, error)

	// FindAll returns every stored launch with internal storage metadata
	// stripped, ordered by ascending flight number.
	FindAll(ctx context.Context) ([]models.Launch, error)

	// Upsert replaces the launch matching the filter, inserting it if no
	// match exists.
	Upsert(ctx context.Context, filter map[string]any, launch models.Launch) error

	// UpdateOne applies the patch to the first launch matching the filter
	// and returns the number of modified documents (0 or 1). A match
	// whose field values the patch leaves unchanged counts as 0.
	UpdateOne(ctx context.Context, filter map[string]any, patch map[string]any) (int64, error)
}

// ContextMutex is a context-aware mutex that can be cancelled
// It uses semaphore.Weighted under the hood to support context cancellation
type ContextMutex struct {
	sem *semaphore.Weighted
}

// NewContextMutex creates a new context-aware mutex
func NewContextMutex() *ContextMutex {
	return &ContextMutex{
		sem: semaphore.NewWeighted(1),
	}
}

// Lock acquires the lock, blocking until it is available or the context is cancelled
func (m *ContextMutex) Lock(ctx context.Context) error {
	return m.sem.Acquire(ctx, 1)
}

// TryLock attempts to acquire the lock without blocking
func (m *ContextMutex) TryLock() bool {
	return m.sem.TryAcquire(1)
}

// Unlock releases the lock
func (m *ContextMutex) Unlock() {
	m.sem.Release(1)
}
