package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"weatherhub/manager"
)

const (
	defaultBaseURL = "https://api.opencagedata.com/geocode/v1/json"
	requestTimeout = 10 * time.Second
)

// New builds a geocoder. An empty apiKey is allowed: every lookup then
// goes straight to the static fallback table.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		http:    resty.New().SetTimeout(requestTimeout),
		baseURL: defaultBaseURL,
	}
}

// Client resolves free-text place names through the OpenCage geocoding
// service, falling back to a fixed table of well-known cities.
type Client struct {
	apiKey  string
	http    *resty.Client
	baseURL string
}

// Resolve returns the coordinates and canonical display name for a query.
// Transport errors and empty result sets degrade to the fallback table;
// only a miss on both paths reports manager.ErrNotFound.
func (c *Client) Resolve(ctx context.Context, query string) (manager.Location, error) {
	if c.apiKey != "" {
		if loc, err := c.lookup(ctx, query); err == nil {
			return loc, nil
		}
	}

	if loc, ok := fallbackLookup(query); ok {
		return loc, nil
	}

	return manager.Location{}, fmt.Errorf(
		"city %q: %w (try one of: %s)",
		query, manager.ErrNotFound, strings.Join(KnownCities(), ", "),
	)
}

func (c *Client) lookup(ctx context.Context, query string) (manager.Location, error) {
	request := c.http.R().SetContext(ctx)
	request.SetQueryParams(map[string]string{
		"q":     query,
		"key":   c.apiKey,
		"limit": "1",
	})

	response, err := request.Get(c.baseURL)
	if err != nil {
		return manager.Location{}, fmt.Errorf("geocode request: %w", err)
	}

	if response.StatusCode() != 200 {
		return manager.Location{}, fmt.Errorf("geocode status code: %d", response.StatusCode())
	}

	var body struct {
		Results []struct {
			Geometry struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"geometry"`
			Formatted string `json:"formatted"`
		} `json:"results"`
	}
	if err := json.Unmarshal(response.Body(), &body); err != nil {
		return manager.Location{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(body.Results) == 0 {
		return manager.Location{}, manager.ErrNotFound
	}

	first := body.Results[0]
	return manager.Location{
		Name:      first.Formatted,
		Latitude:  first.Geometry.Lat,
		Longitude: first.Geometry.Lng,
	}, nil
}
