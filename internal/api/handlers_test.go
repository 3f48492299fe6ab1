package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rah-0/kepler/internal/launches"
	"github.com/rah-0/kepler/internal/models"
	"github.com/rah-0/kepler/internal/planets"
	"github.com/rah-0/kepler/internal/storage"
)

// setupTestServer creates a test server with all routes registered
func setupTestServer(h *Handler) *httptest.Server {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return httptest.NewServer(mux)
}

func newTestHandler() *Handler {
	store := storage.NewMemoryLaunchStore()
	catalog := planets.NewMemoryCatalog("Kepler-442 b", "Kepler-62 f")
	return NewHandler(launches.NewService(store, catalog), catalog)
}

// decodeJSON is a generic helper to decode JSON responses in tests
func decodeJSON[T any](t *testing.T, body io.Reader) T {
	var out T
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode JSON: %v", err)
	}
	return out
}

func scheduleLaunch(t *testing.T, serverURL string, req ScheduleRequest) *http.Response {
	t.Helper()
	payload, _ := json.Marshal(req)
	resp, err := http.Post(serverURL+"/launches", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	return resp
}

func TestHandleScheduleLaunch(t *testing.T) {
	server := setupTestServer(newTestHandler())
	defer server.Close()

	resp := scheduleLaunch(t, server.URL, ScheduleRequest{
		Mission:    "Kepler Exploration X",
		Rocket:     "Explorer IS1",
		LaunchDate: "December 27, 2030",
		Target:     "Kepler-442 b",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("Expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}

	launch := decodeJSON[models.Launch](t, resp.Body)
	if launch.FlightNumber != 100 {
		t.Errorf("Expected flight number 100, got %d", launch.FlightNumber)
	}
	if !launch.Upcoming || !launch.Success {
		t.Errorf("Expected scheduled launch to be upcoming and successful")
	}
	if len(launch.Customers) != 2 {
		t.Errorf("Expected the default customer roster, got %v", launch.Customers)
	}
}

func TestHandleScheduleLaunchValidation(t *testing.T) {
	server := setupTestServer(newTestHandler())
	defer server.Close()

	testCases := []struct {
		name          string
		request       ScheduleRequest
		expectedError string
	}{
		{
			name: "Missing mission",
			request: ScheduleRequest{
				Rocket:     "Explorer IS1",
				LaunchDate: "December 27, 2030",
				Target:     "Kepler-442 b",
			},
			expectedError: "missing required launch property",
		},
		{
			name: "Missing target",
			request: ScheduleRequest{
				Mission:    "Kepler Exploration X",
				Rocket:     "Explorer IS1",
				LaunchDate: "December 27, 2030",
			},
			expectedError: "missing required launch property",
		},
		{
			name: "Unparseable launch date",
			request: ScheduleRequest{
				Mission:    "Kepler Exploration X",
				Rocket:     "Explorer IS1",
				LaunchDate: "sometime soon",
				Target:     "Kepler-442 b",
			},
			expectedError: "invalid launch date",
		},
		{
			name: "Unknown target planet",
			request: ScheduleRequest{
				Mission:    "Kepler Exploration X",
				Rocket:     "Explorer IS1",
				LaunchDate: "December 27, 2030",
				Target:     "Gliese 581 g",
			},
			expectedError: "no matching planet was found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := scheduleLaunch(t, server.URL, tc.request)
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("Expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
			}

			body := decodeJSON[map[string]string](t, resp.Body)
			if body["error"] != tc.expectedError {
				t.Errorf("Expected error %q, got %q", tc.expectedError, body["error"])
			}
		})
	}

	// No launch may have been persisted by any of the rejected drafts
	resp, err := http.Get(server.URL + "/launches")
	if err != nil {
		t.Fatalf("Failed to list launches: %v", err)
	}
	defer resp.Body.Close()

	stored := decodeJSON[[]models.Launch](t, resp.Body)
	if len(stored) != 0 {
		t.Errorf("Expected no stored launches after rejected drafts, got %d", len(stored))
	}
}

func TestHandleListLaunches(t *testing.T) {
	server := setupTestServer(newTestHandler())
	defer server.Close()

	missions := []string{"Ceres Survey", "Artemis Echo"}
	for _, mission := range missions {
		resp := scheduleLaunch(t, server.URL, ScheduleRequest{
			Mission:    mission,
			Rocket:     "Explorer IS1",
			LaunchDate: "2030-12-27",
			Target:     "Kepler-62 f",
		})
		resp.Body.Close()
	}

	// Default listing is ascending flight number
	resp, err := http.Get(server.URL + "/launches")
	if err != nil {
		t.Fatalf("Failed to list launches: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	listed := decodeJSON[[]models.Launch](t, resp.Body)
	if len(listed) != 2 {
		t.Fatalf("Expected 2 launches, got %d", len(listed))
	}
	if listed[0].FlightNumber != 100 || listed[1].FlightNumber != 101 {
		t.Errorf("Expected flight numbers 100 and 101, got %d and %d",
			listed[0].FlightNumber, listed[1].FlightNumber)
	}

	// Sorted listing by mission
	resp2, err := http.Get(server.URL + "/launches?sort=mission&order=asc")
	if err != nil {
		t.Fatalf("Failed to list launches: %v", err)
	}
	defer resp2.Body.Close()

	sorted := decodeJSON[[]models.Launch](t, resp2.Body)
	if sorted[0].Mission != "Artemis Echo" {
		t.Errorf("Expected mission-sorted listing, got %s first", sorted[0].Mission)
	}
}

func TestHandleAbortLaunch(t *testing.T) {
	server := setupTestServer(newTestHandler())
	defer server.Close()

	resp := scheduleLaunch(t, server.URL, ScheduleRequest{
		Mission:    "Kepler Exploration X",
		Rocket:     "Explorer IS1",
		LaunchDate: "2030-12-27",
		Target:     "Kepler-442 b",
	})
	launch := decodeJSON[models.Launch](t, resp.Body)
	resp.Body.Close()

	// Abort the scheduled launch
	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/launches/%d", server.URL, launch.FlightNumber), nil)
	abortResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send abort request: %v", err)
	}
	defer abortResp.Body.Close()

	if abortResp.StatusCode != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, abortResp.StatusCode)
	}

	// The launch is now concluded
	listResp, err := http.Get(server.URL + "/launches")
	if err != nil {
		t.Fatalf("Failed to list launches: %v", err)
	}
	defer listResp.Body.Close()
	listed := decodeJSON[[]models.Launch](t, listResp.Body)
	if listed[0].Upcoming || listed[0].Success {
		t.Errorf("Expected aborted launch to have upcoming=false success=false")
	}

	// Aborting the same launch again leaves it unmodified, which the
	// handler reports as a bad request
	req, _ = http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/launches/%d", server.URL, launch.FlightNumber), nil)
	repeatResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send abort request: %v", err)
	}
	defer repeatResp.Body.Close()

	if repeatResp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, repeatResp.StatusCode)
	}
	repeatBody := decodeJSON[map[string]string](t, repeatResp.Body)
	if repeatBody["error"] != "Launch not aborted" {
		t.Errorf("Expected error %q, got %q", "Launch not aborted", repeatBody["error"])
	}

	// Unknown flight number
	req, _ = http.NewRequest(http.MethodDelete, server.URL+"/launches/999", nil)
	notFoundResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send abort request: %v", err)
	}
	defer notFoundResp.Body.Close()

	if notFoundResp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, notFoundResp.StatusCode)
	}

	// Non-numeric flight number
	req, _ = http.NewRequest(http.MethodDelete, server.URL+"/launches/zero", nil)
	badResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send abort request: %v", err)
	}
	defer badResp.Body.Close()

	if badResp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, badResp.StatusCode)
	}
}

func TestHandleListPlanets(t *testing.T) {
	server := setupTestServer(newTestHandler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/planets")
	if err != nil {
		t.Fatalf("Failed to list planets: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	listed := decodeJSON[[]models.Planet](t, resp.Body)
	if len(listed) != 2 {
		t.Fatalf("Expected 2 planets, got %d", len(listed))
	}
	if listed[0].KeplerName != "Kepler-442 b" {
		t.Errorf("Expected Kepler-442 b first, got %s", listed[0].KeplerName)
	}
}

func TestHandleHealth(t *testing.T) {
	server := setupTestServer(newTestHandler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("Failed to check health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	body := decodeJSON[map[string]string](t, resp.Body)
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %s", body["status"])
	}
}
