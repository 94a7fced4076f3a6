package forecast

import (
	"math"

	"weatherhub/apis/openmeteo"
	"weatherhub/manager"
)

// contextDays caps how many daily summaries are handed to the advisor.
const contextDays = 5

// snapshotHours caps how many hourly entries a chat snapshot carries.
const snapshotHours = 24

// ContextCurrent is the rounded current-conditions slice of an advisor
// context.
type ContextCurrent struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Condition   string  `json:"condition"`
}

// ContextDay is one rounded daily summary of an advisor context.
type ContextDay struct {
	Date          string  `json:"date"`
	TempMax       float64 `json:"temp_max"`
	TempMin       float64 `json:"temp_min"`
	Precipitation float64 `json:"precipitation"`
	WindMax       float64 `json:"wind_max"`
	Condition     string  `json:"condition"`
}

// Context is the reduced, JSON-serializable object handed to the advisor
// as grounding data. Every numeric field is a rounded projection of a
// value present in the source response.
type Context struct {
	City     string         `json:"city"`
	Current  ContextCurrent `json:"current"`
	Forecast []ContextDay   `json:"forecast"`
}

// BuildContext reduces a current snapshot and daily summaries to the
// advisor context: rounded values, at most five days.
func BuildContext(city string, current manager.CurrentWeather, daily []DailySummary) Context {
	label, _ := openmeteo.Describe(current.WeatherCode)

	ctx := Context{
		City: city,
		Current: ContextCurrent{
			Temperature: round1(current.Temperature),
			FeelsLike:   round1(current.FeelsLike),
			Humidity:    current.Humidity,
			WindSpeed:   round1(current.WindSpeed),
			Condition:   label,
		},
	}

	for i := 0; i < len(daily) && i < contextDays; i++ {
		d := daily[i]
		ctx.Forecast = append(ctx.Forecast, ContextDay{
			Date:          d.Date.Format("Monday, January 02"),
			TempMax:       round1(d.TempMax),
			TempMin:       round1(d.TempMin),
			Precipitation: round1(d.PrecipitationSum),
			WindMax:       round1(d.WindMax),
			Condition:     d.Condition,
		})
	}

	return ctx
}

// SnapshotHour is one hour of a chat snapshot.
type SnapshotHour struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temp"`
	Condition   string  `json:"condition"`
}

// Snapshot is the compact weather object merged into a chat prompt when
// the user asks about a specific city.
type Snapshot struct {
	City        string         `json:"city"`
	Temperature float64        `json:"temperature"`
	FeelsLike   float64        `json:"feels_like"`
	Condition   string         `json:"condition"`
	Humidity    float64        `json:"humidity"`
	WindSpeed   float64        `json:"wind_speed"`
	NextHours   []SnapshotHour `json:"forecast_next_hours"`
}

// BuildSnapshot reduces a current snapshot and hourly records to the chat
// context: rounded values, at most the next 24 hours.
func BuildSnapshot(city string, current manager.CurrentWeather, records []HourlyRecord) Snapshot {
	label, _ := openmeteo.Describe(current.WeatherCode)

	snap := Snapshot{
		City:        city,
		Temperature: round1(current.Temperature),
		FeelsLike:   round1(current.FeelsLike),
		Condition:   label,
		Humidity:    current.Humidity,
		WindSpeed:   round1(current.WindSpeed),
	}

	for i := 0; i < len(records) && i < snapshotHours; i++ {
		r := records[i]
		snap.NextHours = append(snap.NextHours, SnapshotHour{
			Time:        r.Timestamp.Format("15:04"),
			Temperature: round1(r.Temperature),
			Condition:   r.Condition,
		})
	}

	return snap
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
