package planets

import (
	"context"
	"sort"

	"github.com/rah-0/kepler/internal/models"
)

// Catalog is a read-only lookup of valid launch targets
type Catalog interface {
	// FindByName returns the planet with the given Kepler name. The bool
	// reports whether the catalog contains it.
	FindByName(ctx context.Context, keplerName string) (*models.Planet, bool, error)

	// All returns every catalog entry, ordered by name
	All(ctx context.Context) ([]models.Planet, error)
}

// DefaultNames is the built-in habitable-planet roster used when no
// external catalog source is configured.
var DefaultNames = []string{
	"Kepler-1229 b",
	"Kepler-1410 b",
	"Kepler-1544 b",
	"Kepler-1649 b",
	"Kepler-186 f",
	"Kepler-296 A f",
	"Kepler-442 b",
	"Kepler-452 b",
	"Kepler-62 f",
}

// MemoryCatalog is an in-memory implementation of Catalog. Entries are
// fixed at construction time, so lookups need no locking.
type MemoryCatalog struct {
	planets map[string]models.Planet
}

// NewMemoryCatalog creates a catalog containing the given Kepler names
func NewMemoryCatalog(keplerNames ...string) *MemoryCatalog {
	planets := make(map[string]models.Planet, len(keplerNames))
	for _, name := range keplerNames {
		planets[name] = models.Planet{KeplerName: name}
	}
	return &MemoryCatalog{planets: planets}
}

func (c *MemoryCatalog) FindByName(ctx context.Context, keplerName string) (*models.Planet, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	planet, ok := c.planets[keplerName]
	if !ok {
		return nil, false, nil
	}
	return &planet, true, nil
}

func (c *MemoryCatalog) All(ctx context.Context) ([]models.Planet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := make([]models.Planet, 0, len(c.planets))
	for _, planet := range c.planets {
		all = append(all, planet)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].KeplerName < all[j].KeplerName
	})

	return all, nil
}
