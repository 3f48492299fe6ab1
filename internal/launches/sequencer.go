package launches

import (
	"context"

	"github.com/rah-0/kepler/internal/storage"
)

// DefaultFlightNumber is the flight number assigned to the first launch
// ever scheduled against an empty store.
const DefaultFlightNumber = 100

// Sequencer derives the next flight number from the current persisted
// maximum. It is a pure read; callers needing isolation from concurrent
// writers must serialize around it (see Service.Schedule).
type Sequencer struct {
	store storage.LaunchStore
}

// NewSequencer creates a sequencer reading from the given store
func NewSequencer(store storage.LaunchStore) *Sequencer {
	return &Sequencer{store: store}
}

// NextFlightNumber returns DefaultFlightNumber when the store is empty,
// otherwise the stored maximum plus one.
func (s *Sequencer) NextFlightNumber(ctx context.Context) (int, error) {
	latest, ok, err := s.store.FindLatest(ctx, "flightNumber")
	if err != nil {
		return 0, err
	}
	if !ok {
		return DefaultFlightNumber, nil
	}

	return latest.FlightNumber + 1, nil
}
