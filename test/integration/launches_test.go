package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/rah-0/kepler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHistoricalImport verifies the startup import against the fake
// remote provider.
func TestHistoricalImport(t *testing.T) {
	// The server imported on startup in TestMain
	launches, err := getLaunches()
	require.NoError(t, err, "Failed to get launches")
	require.Len(t, launches, 2, "Expected the two historical launches")

	first := launches[0]
	assert.Equal(t, 1, first.FlightNumber)
	assert.Equal(t, "FalconSat", first.Mission)
	assert.Equal(t, "Falcon 1", first.Rocket)
	assert.Equal(t, []string{"DARPA"}, first.Customers)
	assert.Empty(t, first.Target, "Imported launches carry no target")

	second := launches[1]
	assert.Equal(t, 2, second.FlightNumber)
	assert.Equal(t, []string{"DARPA", "DARPA"}, second.Customers)
}

// TestScheduleAndAbortFlow walks a launch through its full lifecycle
// over the HTTP surface.
func TestScheduleAndAbortFlow(t *testing.T) {
	// Schedule a new launch; numbering continues after the imported max
	scheduleJSON := `{
		"mission": "Kepler Exploration X",
		"rocket": "Explorer IS1",
		"launchDate": "December 27, 2030",
		"target": "Kepler-442 b"
	}`

	resp, err := http.Post(serverURL+"/launches", "application/json", strings.NewReader(scheduleJSON))
	require.NoError(t, err, "Failed to schedule launch")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	launches, err := getLaunches()
	require.NoError(t, err)
	require.Len(t, launches, 3)

	scheduled := launches[2]
	assert.Equal(t, 3, scheduled.FlightNumber, "Expected imported max plus one")
	assert.True(t, scheduled.Upcoming)
	assert.True(t, scheduled.Success)
	assert.Equal(t, []string{"ZTM", "NASA"}, scheduled.Customers)

	// Abort it
	req, _ := http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/launches/%d", serverURL, scheduled.FlightNumber), nil)
	abortResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "Failed to abort launch")
	defer abortResp.Body.Close()
	assert.Equal(t, http.StatusOK, abortResp.StatusCode)

	launches, err = getLaunches()
	require.NoError(t, err)
	aborted := launches[2]
	assert.False(t, aborted.Upcoming)
	assert.False(t, aborted.Success)
	assert.Equal(t, scheduled.Mission, aborted.Mission, "Abort must not touch other fields")

	// Aborting an unknown flight number is a 404
	req, _ = http.NewRequest(http.MethodDelete, serverURL+"/launches/999", nil)
	missingResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer missingResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, missingResp.StatusCode)
}

// TestScheduleRejectsUnknownTarget verifies validation over HTTP
func TestScheduleRejectsUnknownTarget(t *testing.T) {
	before, err := getLaunches()
	require.NoError(t, err)

	scheduleJSON := `{
		"mission": "Wayward",
		"rocket": "Explorer IS1",
		"launchDate": "December 27, 2030",
		"target": "Gliese 581 g"
	}`

	resp, err := http.Post(serverURL+"/launches", "application/json", strings.NewReader(scheduleJSON))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	after, err := getLaunches()
	require.NoError(t, err)
	assert.Len(t, after, len(before), "Rejected draft must not be persisted")
}

// TestPlanetCatalog verifies the planets endpoint serves the catalog
func TestPlanetCatalog(t *testing.T) {
	resp, err := http.Get(serverURL + "/planets")
	require.NoError(t, err, "Failed to get planets")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var planets []models.Planet
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&planets))
	assert.NotEmpty(t, planets)

	names := make([]string, 0, len(planets))
	for _, p := range planets {
		names = append(names, p.KeplerName)
	}
	assert.Contains(t, names, "Kepler-442 b")
}
