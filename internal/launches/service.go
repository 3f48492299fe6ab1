// Package launches owns the launch-record lifecycle: scheduling new
// launches against the planet catalog, listing and aborting stored
// records, and importing historical data from the remote provider.
package launches

import (
	"context"
	"errors"

	"github.com/rah-0/kepler/internal/models"
	"github.com/rah-0/kepler/internal/planets"
	"github.com/rah-0/kepler/internal/storage"
)

// ErrNoMatchingPlanet is returned by Schedule when the draft's target
// does not resolve to a planet catalog entry. Nothing is persisted.
var ErrNoMatchingPlanet = errors.New("no matching planet was found")

// DefaultCustomers is the fixed sponsor roster assigned to every
// scheduled launch, replacing whatever the draft supplied.
var DefaultCustomers = []string{"ZTM", "NASA"}

// Service is the launch lifecycle manager. It validates against the
// planet catalog, consults the sequencer and writes through the store.
type Service struct {
	store   storage.LaunchStore
	catalog planets.Catalog
	seq     *Sequencer

	// Serializes Schedule so two callers cannot read the same current
	// maximum and race to write the same flight number.
	scheduleMu *storage.ContextMutex
}

// NewService creates a lifecycle manager over the given collaborators
func NewService(store storage.LaunchStore, catalog planets.Catalog) *Service {
	return &Service{
		store:      store,
		catalog:    catalog,
		seq:        NewSequencer(store),
		scheduleMu: storage.NewContextMutex(),
	}
}

// Exists reports whether a launch with the given flight number is stored
func (s *Service) Exists(ctx context.Context, flightNumber int) (bool, error) {
	_, ok, err := s.store.FindOne(ctx, map[string]any{"flightNumber": flightNumber})
	return ok, err
}

// ListAll returns every stored launch. Sort field and order follow the
// same validation as the listing endpoint; invalid values fall back to
// ascending flight number.
func (s *Service) ListAll(ctx context.Context, sortField, order string) ([]models.Launch, error) {
	launches, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	storage.SortLaunches(launches, storage.ParseSortOptions(sortField, order))

	return launches, nil
}

// Schedule validates the draft's target, assigns the next flight number
// and persists the launch. The stored record always has success=true,
// upcoming=true and the default customer roster.
func (s *Service) Schedule(ctx context.Context, draft models.LaunchDraft) (*models.Launch, error) {
	if err := s.scheduleMu.Lock(ctx); err != nil {
		return nil, err
	}
	defer s.scheduleMu.Unlock()

	// Target validation happens before number assignment so a failed
	// validation leaves no side effects at all.
	_, ok, err := s.catalog.FindByName(ctx, draft.Target)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoMatchingPlanet
	}

	flightNumber, err := s.seq.NextFlightNumber(ctx)
	if err != nil {
		return nil, err
	}

	launch := models.Launch{
		FlightNumber: flightNumber,
		Mission:      draft.Mission,
		Rocket:       draft.Rocket,
		LaunchDate:   draft.LaunchDate,
		Target:       draft.Target,
		Customers:    append([]string(nil), DefaultCustomers...),
		Upcoming:     true,
		Success:      true,
	}

	if err := s.store.Upsert(ctx, map[string]any{"flightNumber": flightNumber}, launch); err != nil {
		return nil, err
	}

	return &launch, nil
}

// Abort marks the launch as no longer upcoming and unsuccessful. It
// returns true iff exactly one record was modified; false means the
// flight number is unknown, which is a normal outcome, not an error.
// All other fields of the record are left untouched.
func (s *Service) Abort(ctx context.Context, flightNumber int) (bool, error) {
	modified, err := s.store.UpdateOne(ctx,
		map[string]any{"flightNumber": flightNumber},
		map[string]any{"upcoming": false, "success": false})
	if err != nil {
		return false, err
	}

	return modified == 1, nil
}
