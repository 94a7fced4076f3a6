package manager

import (
	"context"
)

// Weather produces a full weather report for a free-text city query.
type Weather interface {
	Report(ctx context.Context, query string, unit Unit, days int) (Report, error)
}

// Geocoder resolves a free-text place name to coordinates and a display name.
type Geocoder interface {
	Resolve(ctx context.Context, query string) (Location, error)
}

// WeatherAPI is a forecast data provider.
type WeatherAPI interface {
	FetchCurrent(ctx context.Context, loc Location, unit Unit) (CurrentWeather, error)
	FetchForecast(ctx context.Context, loc Location, unit Unit, days int) (ForecastResponse, error)
}

// Advisor generates natural-language text from a prompt and a
// JSON-serializable context object.
type Advisor interface {
	Generate(ctx context.Context, prompt string, contextData any) (string, error)
	Chat(ctx context.Context, history []Turn, message string) (string, error)
}

// Unit selects the measurement system for a weather request.
type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitFahrenheit Unit = "fahrenheit"
)

// WindUnit returns the wind-speed unit paired with the temperature unit:
// km/h for celsius, mph for fahrenheit.
func (u Unit) WindUnit() string {
	if u == UnitFahrenheit {
		return "mph"
	}
	return "kmh"
}

// Symbol returns the display symbol for the temperature unit.
func (u Unit) Symbol() string {
	if u == UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

// Location is a resolved place. Immutable once produced by a Geocoder.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentWeather is a snapshot of present conditions at a location.
type CurrentWeather struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature_2m"`
	Humidity      float64 `json:"relative_humidity_2m"`
	FeelsLike     float64 `json:"apparent_temperature"`
	Precipitation float64 `json:"precipitation"`
	WeatherCode   int     `json:"weather_code"`
	CloudCover    float64 `json:"cloud_cover"`
	WindSpeed     float64 `json:"wind_speed_10m"`
	WindDirection float64 `json:"wind_direction_10m"`
}

// HourlyBlock holds the hourly series as parallel arrays keyed by field
// name, one entry per hour, exactly as the forecast API returns them.
type HourlyBlock struct {
	Time                     []string  `json:"time"`
	Temperature              []float64 `json:"temperature_2m"`
	Humidity                 []float64 `json:"relative_humidity_2m"`
	FeelsLike                []float64 `json:"apparent_temperature"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	WeatherCode              []int     `json:"weather_code"`
	CloudCover               []float64 `json:"cloud_cover"`
	WindSpeed                []float64 `json:"wind_speed_10m"`
}

// DailyBlock holds the daily aggregates as parallel arrays, one entry per day.
type DailyBlock struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WindSpeedMax     []float64 `json:"wind_speed_10m_max"`
}

// ForecastResponse is the decoded forecast payload.
type ForecastResponse struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Timezone  string      `json:"timezone"`
	Hourly    HourlyBlock `json:"hourly"`
	Daily     DailyBlock  `json:"daily"`
}

// Report bundles everything one weather lookup produces.
type Report struct {
	Location Location         `json:"location"`
	Unit     Unit             `json:"unit"`
	Current  CurrentWeather   `json:"current"`
	Forecast ForecastResponse `json:"forecast"`
}

// Turn is one message in a chat transcript.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
