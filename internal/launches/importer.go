package launches

import (
	"context"
	"fmt"
	"log"

	"github.com/rah-0/kepler/internal/models"
	"github.com/rah-0/kepler/internal/spacex"
	"github.com/rah-0/kepler/internal/storage"
)

// LaunchProvider is the remote source of historical launch data
type LaunchProvider interface {
	QueryLaunches(ctx context.Context) ([]spacex.LaunchDoc, error)
}

// Importer performs the one-shot ingestion of historical launches into
// the store. Safe to run on every process start: a sentinel record
// written by a prior successful import turns the run into a no-op.
type Importer struct {
	store    storage.LaunchStore
	provider LaunchProvider
}

// NewImporter creates an importer writing provider data into the store
func NewImporter(store storage.LaunchStore, provider LaunchProvider) *Importer {
	return &Importer{store: store, provider: provider}
}

// sentinelFilter identifies the first historical SpaceX launch. Its
// presence means a prior import completed.
var sentinelFilter = map[string]any{
	"flightNumber": 1,
	"rocket":       "Falcon 1",
	"mission":      "FalconSat",
}

// Run imports every historical launch. Imported records carry no target
// and are written straight to the store, bypassing schedule-time planet
// validation. Any remote failure aborts the whole batch; the next run
// starts from scratch since the sentinel was never written.
func (i *Importer) Run(ctx context.Context) error {
	_, loaded, err := i.store.FindOne(ctx, sentinelFilter)
	if err != nil {
		return err
	}
	if loaded {
		log.Println("Launch data already loaded")
		return nil
	}

	log.Println("Downloading launch data")
	docs, err := i.provider.QueryLaunches(ctx)
	if err != nil {
		return fmt.Errorf("downloading launch data: %w", err)
	}

	for _, doc := range docs {
		launch := models.Launch{
			FlightNumber: doc.FlightNumber,
			Mission:      doc.Name,
			Rocket:       doc.Rocket.Name,
			LaunchDate:   doc.DateLocal,
			Customers:    doc.Customers(),
			Upcoming:     doc.Upcoming,
			Success:      doc.Success,
		}

		if err := i.store.Upsert(ctx, map[string]any{"flightNumber": launch.FlightNumber}, launch); err != nil {
			return err
		}
	}

	log.Printf("Imported %d launches", len(docs))
	return nil
}
