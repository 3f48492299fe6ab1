package storage

import (
	"sort"
	"strings"

	"github.com/rah-0/kepler/internal/models"
)

// ValidSortFields defines the allowed fields for sorting launches
var ValidSortFields = map[string]bool{
	"flightnumber": true,
	"mission":      true,
	"rocket":       true,
	"launchdate":   true,
	"upcoming":     true,
}

// ValidOrders defines the allowed sort orders
var ValidOrders = map[string]bool{
	"asc":  true,
	"desc": true,
}

type SortOptions struct {
	Field string
	Order string
}

func NewSortOptions() SortOptions {
	return SortOptions{
		Field: "flightnumber",
		Order: "asc",
	}
}

// SortLaunches sorts launches in place based on the provided options
func SortLaunches(launches []models.Launch, options SortOptions) {
	sortFunc := func(i, j int) bool {
		result := lessByField(launches[i], launches[j], options.Field)

		// Reverse the result if descending order is requested
		if options.Order == "desc" {
			return !result
		}

		return result
	}

	sort.SliceStable(launches, sortFunc)
}

// lessByField compares two launches on the given field, falling back to
// flight number for unknown fields
func lessByField(a, b models.Launch, field string) bool {
	switch strings.ToLower(field) {
	case "mission":
		return a.Mission < b.Mission
	case "rocket":
		return a.Rocket < b.Rocket
	case "launchdate":
		return a.LaunchDate.Before(b.LaunchDate)
	case "upcoming":
		return !a.Upcoming && b.Upcoming
	default:
		return a.FlightNumber < b.FlightNumber
	}
}

// ParseSortOptions parses and validates sort and order parameters,
// falling back to defaults if invalid values are provided
func ParseSortOptions(sortField, order string) SortOptions {
	options := NewSortOptions()

	// Check if sort field is valid
	sortField = strings.ToLower(sortField)
	if sortField != "" && ValidSortFields[sortField] {
		options.Field = sortField
	}

	// Check if order is valid
	order = strings.ToLower(order)
	if order != "" && ValidOrders[order] {
		options.Order = order
	}

	return options
}
