package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/rah-0/kepler/internal/models"
	"github.com/rah-0/kepler/internal/utils"
)

// launchDocument wraps a launch with the store's own metadata. The
// surrogate ID and version never leave the store; reads return only
// the launch value.
type launchDocument struct {
	id      uuid.UUID
	version int
	launch  models.Launch
}

// MemoryLaunchStore is an in-memory implementation of LaunchStore
type MemoryLaunchStore struct {
	mu   *ContextMutex // Protects docs
	docs []*launchDocument
}

// NewMemoryLaunchStore creates a new in-memory launch store
func NewMemoryLaunchStore() *MemoryLaunchStore {
	return &MemoryLaunchStore{
		mu: NewContextMutex(),
	}
}

func (s *MemoryLaunchStore) FindOne(ctx context.Context, filter map[string]any) (*models.Launch, bool, error) {
	if err := s.mu.Lock(ctx); err != nil {
		return nil, false, err
	}
	defer s.mu.Unlock()

	for _, doc := range s.docs {
		if matchesFilter(doc.launch, filter) {
			launch := copyLaunch(doc.launch)
			return &launch, true, nil
		}
	}
	return nil, false, nil
}

func (s *MemoryLaunchStore) FindLatest(ctx context.Context, field string) (*models.Launch, bool, error) {
	if err := s.mu.Lock(ctx); err != nil {
		return nil, false, err
	}
	defer s.mu.Unlock()

	var latest *launchDocument
	for _, doc := range s.docs {
		if latest == nil || lessByField(latest.launch, doc.launch, field) {
			latest = doc
		}
	}
	if latest == nil {
		return nil, false, nil
	}

	launch := copyLaunch(latest.launch)
	return &launch, true, nil
}

func (s *MemoryLaunchStore) FindAll(ctx context.Context) ([]models.Launch, error) {
	if err := s.mu.Lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	launches := make([]models.Launch, 0, len(s.docs))
	for _, doc := range s.docs {
		launches = append(launches, copyLaunch(doc.launch))
	}

	// Stable default order so callers see a consistent listing
	SortLaunches(launches, NewSortOptions())

	return launches, nil
}

func (s *MemoryLaunchStore) Upsert(ctx context.Context, filter map[string]any, launch models.Launch) error {
	if err := s.mu.Lock(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	for _, doc := range s.docs {
		if matchesFilter(doc.launch, filter) {
			doc.launch = copyLaunch(launch)
			doc.version++
			return nil
		}
	}

	s.docs = append(s.docs, &launchDocument{
		id:     uuid.New(),
		launch: copyLaunch(launch),
	})
	return nil
}

func (s *MemoryLaunchStore) UpdateOne(ctx context.Context, filter map[string]any, patch map[string]any) (int64, error) {
	if err := s.mu.Lock(ctx); err != nil {
		return 0, err
	}
	defer s.mu.Unlock()

	for _, doc := range s.docs {
		if matchesFilter(doc.launch, filter) {
			// A matched document only counts as modified when the patch
			// changed a field value, mirroring mongo's modifiedCount
			if !applyPatch(&doc.launch, patch) {
				return 0, nil
			}
			doc.version++
			return 1, nil
		}
	}
	return 0, nil
}

// copyLaunch returns a deep copy so callers can never alias stored state
func copyLaunch(l models.Launch) models.Launch {
	out := l
	if l.Customers != nil {
		out.Customers = make([]string, len(l.Customers))
		copy(out.Customers, l.Customers)
	}
	return out
}

// matchesFilter reports whether the launch satisfies every field in the
// filter. Unknown filter keys never match.
func matchesFilter(l models.Launch, filter map[string]any) bool {
	for key := range filter {
		switch key {
		case "flightNumber":
			if l.FlightNumber != utils.GetIntValue(filter, key) {
				return false
			}
		case "mission":
			if l.Mission != utils.GetStringValue(filter, key) {
				return false
			}
		case "rocket":
			if l.Rocket != utils.GetStringValue(filter, key) {
				return false
			}
		case "target":
			if l.Target != utils.GetStringValue(filter, key) {
				return false
			}
		case "upcoming":
			if l.Upcoming != utils.GetBoolValue(filter, key) {
				return false
			}
		case "success":
			if l.Success != utils.GetBoolValue(filter, key) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// applyPatch updates the patchable launch fields in place and reports
// whether any field value actually changed
func applyPatch(l *models.Launch, patch map[string]any) bool {
	changed := false
	for key := range patch {
		switch key {
		case "upcoming":
			if value := utils.GetBoolValue(patch, key); l.Upcoming != value {
				l.Upcoming = value
				changed = true
			}
		case "success":
			if value := utils.GetBoolValue(patch, key); l.Success != value {
				l.Success = value
				changed = true
			}
		case "mission":
			if value := utils.GetStringValue(patch, key); l.Mission != value {
				l.Mission = value
				changed = true
			}
		case "rocket":
			if value := utils.GetStringValue(patch, key); l.Rocket != value {
				l.Rocket = value
				changed = true
			}
		case "target":
			if value := utils.GetStringValue(patch, key); l.Target != value {
				l.Target = value
				changed = true
			}
		}
	}
	return changed
}
