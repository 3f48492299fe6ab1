package models

import "time"

// Launch represents a scheduled or historical spaceflight event
type Launch struct {
	FlightNumber int       `json:"flightNumber"`     // Unique, monotonically assigned identifier
	Mission      string    `json:"mission"`          // Human-readable campaign name
	Rocket       string    `json:"rocket"`           // Vehicle name
	LaunchDate   time.Time `json:"launchDate"`       // Launch date, may lack time-of-day precision
	Target       string    `json:"target,omitempty"` // Planet catalog entry; empty for imported records
	Customers    []string  `json:"customers"`        // Sponsoring organizations, duplicates allowed
	Upcoming     bool      `json:"upcoming"`         // True until the launch occurs or is aborted
	Success      bool      `json:"success"`          // Outcome flag, meaningful once Upcoming is false
}

// LaunchDraft is the caller-supplied input to schedule a new launch.
// Customers is accepted but overwritten with the fixed default roster
// at schedule time.
type LaunchDraft struct {
	Mission    string
	Rocket     string
	LaunchDate time.Time
	Target     string
	Customers  []string
}

// Planet is an entry in the target planet catalog
type Planet struct {
	KeplerName string `json:"keplerName"`
}
