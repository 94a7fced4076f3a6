package manager

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is reported when a city cannot be resolved by any
// geocoding path.
var ErrNotFound = errors.New("not found")

const (
	// MinForecastDays and MaxForecastDays bound the forecast_days request
	// parameter.
	MinForecastDays = 1
	MaxForecastDays = 7
)

// ClampDays forces days into the supported [1,7] range.
func ClampDays(days int) int {
	if days < MinForecastDays {
		return MinForecastDays
	}
	if days > MaxForecastDays {
		return MaxForecastDays
	}
	return days
}

func New(geocoder Geocoder, api WeatherAPI) *weather {
	return &weather{geocoder: geocoder, api: api}
}

type weather struct {
	geocoder Geocoder
	api      WeatherAPI
}

// Report resolves the query and fetches current conditions and the
// forecast, sequentially. A failure at any step aborts the whole lookup;
// there is no retry.
func (w *weather) Report(ctx context.Context, query string, unit Unit, days int) (Report, error) {
	if w.geocoder == nil || w.api == nil {
		return Report{}, fmt.Errorf("manager is not fully wired")
	}

	loc, err := w.geocoder.Resolve(ctx, query)
	if err != nil {
		return Report{}, fmt.Errorf("resolve %q: %w", query, err)
	}

	current, err := w.api.FetchCurrent(ctx, loc, unit)
	if err != nil {
		return Report{}, fmt.Errorf("current weather for %s: %w", loc.Name, err)
	}

	forecast, err := w.api.FetchForecast(ctx, loc, unit, ClampDays(days))
	if err != nil {
		return Report{}, fmt.Errorf("forecast for %s: %w", loc.Name, err)
	}

	return Report{
		Location: loc,
		Unit:     unit,
		Current:  current,
		Forecast: forecast,
	}, nil
}
