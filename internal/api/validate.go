package api

import (
	"errors"
	"time"

	"github.com/rah-0/kepler/internal/models"
)

// ScheduleRequest is the wire shape of a launch draft
type ScheduleRequest struct {
	Mission    string   `json:"mission"`
	Rocket     string   `json:"rocket"`
	LaunchDate string   `json:"launchDate"`
	Target     string   `json:"target"`
	Customers  []string `json:"customers,omitempty"` // Accepted but replaced by the fixed roster
}

// launchDateLayouts are the accepted launchDate formats, tried in order
var launchDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
}

// validateScheduleRequest ensures an incoming draft contains all
// required properties and a parseable date
func validateScheduleRequest(req ScheduleRequest) (models.LaunchDraft, error) {
	if req.Mission == "" || req.Rocket == "" || req.LaunchDate == "" || req.Target == "" {
		return models.LaunchDraft{}, errors.New("missing required launch property")
	}

	launchDate, err := parseLaunchDate(req.LaunchDate)
	if err != nil {
		return models.LaunchDraft{}, errors.New("invalid launch date")
	}

	return models.LaunchDraft{
		Mission:    req.Mission,
		Rocket:     req.Rocket,
		LaunchDate: launchDate,
		Target:     req.Target,
		Customers:  req.Customers,
	}, nil
}

func parseLaunchDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range launchDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
