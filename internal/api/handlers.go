package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rah-0/kepler/internal/launches"
	"github.com/rah-0/kepler/internal/planets"
)

// Handler contains the dependencies needed for the API handlers
type Handler struct {
	Launches *launches.Service
	Planets  planets.Catalog
}

func NewHandler(svc *launches.Service, catalog planets.Catalog) *Handler {
	return &Handler{Launches: svc, Planets: catalog}
}

// RegisterRoutes registers all API routes with the provided http.ServeMux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Root path redirects to Swagger
	mux.HandleFunc("GET /", h.HandleRoot)

	// Launch lifecycle endpoints
	mux.HandleFunc("GET /launches", h.HandleListLaunches)
	mux.HandleFunc("POST /launches", h.HandleScheduleLaunch)
	mux.HandleFunc("DELETE /launches/{id}", h.HandleAbortLaunch)

	// Planet catalog
	mux.HandleFunc("GET /planets", h.HandleListPlanets)

	// Health check endpoint
	mux.HandleFunc("GET /health", h.HandleHealth)

	// Serve Swagger documentation
	mux.HandleFunc("GET /swagger", h.HandleSwagger)
	mux.HandleFunc("GET /swagger/{path...}", h.HandleSwaggerAssets)
}

// HandleListLaunches handles the GET /launches endpoint
// @Summary List all launches
// @Description Get all stored launches, optionally sorted by specified field and order
// @Tags launches
// @Produce json
// @Param sort query string false "Sort field (e.g., 'flightnumber', 'mission', 'rocket', 'launchdate')"
// @Param order query string false "Sort order ('asc' or 'desc')"
// @Success 200 {array} models.Launch "List of launches"
// @Router /launches [get]
func (h *Handler) HandleListLaunches(w http.ResponseWriter, r *http.Request) {
	// Get the sort and order parameters
	sortField := r.URL.Query().Get("sort")
	order := r.URL.Query().Get("order")

	result, err := h.Launches.ListAll(r.Context(), sortField, order)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list launches: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// HandleScheduleLaunch handles the POST /launches endpoint
// @Summary Schedule a new launch
// @Description Validate the target planet, assign the next flight number and persist the launch
// @Tags launches
// @Accept json
// @Produce json
// @Param launch body ScheduleRequest true "Launch draft"
// @Success 201 {object} models.Launch "Scheduled launch"
// @Failure 400 {object} map[string]any "Bad request"
// @Router /launches [post]
func (h *Handler) HandleScheduleLaunch(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	// Validate the draft
	draft, err := validateScheduleRequest(req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	launch, err := h.Launches.Schedule(r.Context(), draft)
	if err != nil {
		if errors.Is(err, launches.ErrNoMatchingPlanet) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to schedule launch: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, launch)
}

// HandleAbortLaunch handles the DELETE /launches/{id} endpoint
// @Summary Abort a launch
// @Description Mark the launch as no longer upcoming and unsuccessful
// @Tags launches
// @Produce json
// @Param id path int true "Flight number"
// @Success 200 {object} map[string]any "Abort result"
// @Failure 400 {object} map[string]any "Invalid flight number or launch not aborted"
// @Failure 404 {object} map[string]any "Launch not found"
// @Router /launches/{id} [delete]
func (h *Handler) HandleAbortLaunch(w http.ResponseWriter, r *http.Request) {
	flightNumber, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flight number")
		return
	}

	exists, err := h.Launches.Exists(r.Context(), flightNumber)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to look up launch: "+err.Error())
		return
	}
	if !exists {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("Launch %d not found", flightNumber))
		return
	}

	aborted, err := h.Launches.Abort(r.Context(), flightNumber)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to abort launch: "+err.Error())
		return
	}
	if !aborted {
		respondWithError(w, http.StatusBadRequest, "Launch not aborted")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"ok": true,
	})
}

// HandleListPlanets handles the GET /planets endpoint
// @Summary List all planets
// @Description Get every entry in the target planet catalog
// @Tags planets
// @Produce json
// @Success 200 {array} models.Planet "List of planets"
// @Router /planets [get]
func (h *Handler) HandleListPlanets(w http.ResponseWriter, r *http.Request) {
	result, err := h.Planets.All(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list planets: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// HandleSwagger serves the Swagger UI index
func (h *Handler) HandleSwagger(w http.ResponseWriter, r *http.Request) {
	// Redirect to swagger/ (with trailing slash) to ensure relative paths resolve correctly
	if r.URL.Path == "/swagger" {
		http.Redirect(w, r, "/swagger/", http.StatusFound)
		return
	}

	http.ServeFile(w, r, "./docs/swagger/index.html")
}

// HandleSwaggerAssets serves static Swagger assets
func (h *Handler) HandleSwaggerAssets(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("path")

	// If it's the root of /swagger/ directory, serve index.html
	if filePath == "" {
		http.ServeFile(w, r, "./docs/swagger/index.html")
		return
	}

	// Serve the Swagger UI assets
	http.ServeFile(w, r, "./docs/swagger/"+filePath)
}

// HandleRoot redirects to the Swagger UI
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	// Redirect to Swagger UI
	http.Redirect(w, r, "/swagger/", http.StatusFound)
}

// HandleHealth handles the GET /health endpoint for healthcheck
// @Summary Health check
// @Description Returns 200 OK when the service is healthy
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "Service status"
// @Router /health [get]
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	// Return simple health status
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Helper functions for HTTP responses

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
