package openmeteo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"weatherhub/manager"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

	currentFields  = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,cloud_cover,wind_speed_10m,wind_direction_10m"
	hourlyFields   = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation_probability,weather_code,cloud_cover,wind_speed_10m"
	dailyFields    = "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max"
	requestTimeout = 10 * time.Second
)

func New() *Client {
	return &Client{
		http:    resty.New().SetTimeout(requestTimeout),
		baseURL: defaultBaseURL,
	}
}

// Client talks to the Open-Meteo forecast endpoint. No API key is needed.
type Client struct {
	http    *resty.Client
	baseURL string
}

// FetchCurrent requests present conditions for a location.
func (c *Client) FetchCurrent(ctx context.Context, loc manager.Location, unit manager.Unit) (manager.CurrentWeather, error) {
	params := c.baseParams(loc, unit)
	params["current"] = currentFields

	body, err := c.get(ctx, params)
	if err != nil {
		return manager.CurrentWeather{}, err
	}

	var response struct {
		Current manager.CurrentWeather `json:"current"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return manager.CurrentWeather{}, fmt.Errorf("decode current weather: %w", err)
	}

	return response.Current, nil
}

// FetchForecast requests the hourly series and daily aggregates for
// 1..7 forecast days.
func (c *Client) FetchForecast(ctx context.Context, loc manager.Location, unit manager.Unit, days int) (manager.ForecastResponse, error) {
	params := c.baseParams(loc, unit)
	params["hourly"] = hourlyFields
	params["daily"] = dailyFields
	params["forecast_days"] = strconv.Itoa(manager.ClampDays(days))

	body, err := c.get(ctx, params)
	if err != nil {
		return manager.ForecastResponse{}, err
	}

	var response manager.ForecastResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return manager.ForecastResponse{}, fmt.Errorf("decode forecast: %w", err)
	}

	return response, nil
}

func (c *Client) baseParams(loc manager.Location, unit manager.Unit) map[string]string {
	if unit != manager.UnitFahrenheit {
		unit = manager.UnitCelsius
	}
	return map[string]string{
		"latitude":         strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		"longitude":        strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		"temperature_unit": string(unit),
		"wind_speed_unit":  unit.WindUnit(),
		"timezone":         "auto",
	}
}

func (c *Client) get(ctx context.Context, params map[string]string) ([]byte, error) {
	request := c.http.R().SetContext(ctx)
	request.SetQueryParams(params)

	response, err := request.Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}

	if response.StatusCode() != 200 {
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, response.Body(), "", "  "); err != nil {
			return nil, fmt.Errorf("status code: %d", response.StatusCode())
		}
		return nil, fmt.Errorf("status code: %d\n%s", response.StatusCode(), buf.String())
	}

	return response.Body(), nil
}
