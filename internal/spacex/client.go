// Package spacex is a minimal client for the SpaceX REST API's launch
// query endpoint, requesting exactly the fields and joined collections
// the importer needs.
package spacex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultAPIURL is the production launch query endpoint
const DefaultAPIURL = "https://api.spacexdata.com/v4/launches/query"

// Client talks to the remote launch-data provider
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the given query endpoint URL, falling
// back to the production endpoint when empty.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultAPIURL
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// LaunchDoc is one historical launch as returned by the query endpoint
// with rocket and payload projections populated.
type LaunchDoc struct {
	FlightNumber int    `json:"flight_number"`
	Name         string `json:"name"`
	Rocket       struct {
		Name string `json:"name"`
	} `json:"rocket"`
	DateLocal time.Time `json:"date_local"`
	Upcoming  bool      `json:"upcoming"`
	Success   bool      `json:"success"`
	Payloads  []struct {
		Customers []string `json:"customers"`
	} `json:"payloads"`
}

// Customers flattens the customers of every payload into a single list,
// preserving order without deduplication.
func (d LaunchDoc) Customers() []string {
	customers := []string{}
	for _, payload := range d.Payloads {
		customers = append(customers, payload.Customers...)
	}
	return customers
}

type queryRequest struct {
	Query   map[string]any `json:"query"`
	Options queryOptions   `json:"options"`
}

type queryOptions struct {
	Populate []populateOption `json:"populate"`
}

type populateOption struct {
	Path   string         `json:"path"`
	Select map[string]int `json:"select"`
}

type queryResponse struct {
	Docs []LaunchDoc `json:"docs"`
}

// QueryLaunches requests every historical launch with the rocket name
// and payload customers joined in.
func (c *Client) QueryLaunches(ctx context.Context) ([]LaunchDoc, error) {
	body, err := json.Marshal(queryRequest{
		Query: map[string]any{},
		Options: queryOptions{
			Populate: []populateOption{
				{Path: "rocket", Select: map[string]int{"name": 1}},
				{Path: "payloads", Select: map[string]int{"customers": 1}},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding launch query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building launch query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying launch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("launch data request failed with status %d", resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding launch data: %w", err)
	}

	return decoded.Docs, nil
}
