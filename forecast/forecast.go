// Package forecast reshapes raw forecast payloads into flat, time-indexed
// records and computes the descriptive statistics the dashboard and the
// advisor prompts are built from.
package forecast

import (
	"time"

	"weatherhub/apis/openmeteo"
	"weatherhub/manager"
)

const (
	hourlyTimeLayout = "2006-01-02T15:04"
	dailyTimeLayout  = "2006-01-02"
)

// HourlyRecord is one hour of forecast data, flattened from the API's
// parallel arrays. Records are ordered by timestamp ascending; the
// ordering is load-bearing for charting.
type HourlyRecord struct {
	Timestamp         time.Time `json:"datetime"`
	Temperature       float64   `json:"temperature"`
	FeelsLike         float64   `json:"feels_like"`
	Humidity          float64   `json:"humidity"`
	PrecipProbability float64   `json:"precipitation_prob"`
	WindSpeed         float64   `json:"wind_speed"`
	CloudCover        float64   `json:"clouds"`
	WeatherCode       int       `json:"weather_code"`
	Condition         string    `json:"condition"`
	Icon              string    `json:"icon"`
}

// DailySummary is one day of aggregated forecast data.
type DailySummary struct {
	Date             time.Time `json:"date"`
	TempMax          float64   `json:"temp_max"`
	TempMin          float64   `json:"temp_min"`
	PrecipitationSum float64   `json:"precipitation_sum"`
	WindMax          float64   `json:"wind_max"`
	WeatherCode      int       `json:"weather_code"`
	Condition        string    `json:"condition"`
	Icon             string    `json:"icon"`
}

// FlattenHourly truncates the hourly block to days*24 entries (or fewer
// if the source has less) and flattens it, preserving source order.
// An empty or malformed hourly block yields an empty slice, not an error;
// callers must check for emptiness before computing statistics.
func FlattenHourly(resp manager.ForecastResponse, days int) []HourlyRecord {
	hourly := resp.Hourly

	n := days * 24
	if n < 0 {
		n = 0
	}
	if len(hourly.Time) < n {
		n = len(hourly.Time)
	}
	// Guard against ragged parallel arrays.
	for _, l := range []int{
		len(hourly.Temperature), len(hourly.Humidity), len(hourly.FeelsLike),
		len(hourly.PrecipitationProbability), len(hourly.WeatherCode),
		len(hourly.CloudCover), len(hourly.WindSpeed),
	} {
		if l < n {
			n = l
		}
	}

	records := make([]HourlyRecord, 0, n)
	for i := 0; i < n; i++ {
		ts, err := time.Parse(hourlyTimeLayout, hourly.Time[i])
		if err != nil {
			continue
		}

		label, icon := openmeteo.Describe(hourly.WeatherCode[i])
		records = append(records, HourlyRecord{
			Timestamp:         ts,
			Temperature:       hourly.Temperature[i],
			FeelsLike:         hourly.FeelsLike[i],
			Humidity:          hourly.Humidity[i],
			PrecipProbability: hourly.PrecipitationProbability[i],
			WindSpeed:         hourly.WindSpeed[i],
			CloudCover:        hourly.CloudCover[i],
			WeatherCode:       hourly.WeatherCode[i],
			Condition:         label,
			Icon:              icon,
		})
	}

	return records
}

// DailySummaries flattens the daily block, one summary per day in source
// order. Malformed input yields an empty slice.
func DailySummaries(resp manager.ForecastResponse) []DailySummary {
	daily := resp.Daily

	n := len(daily.Time)
	for _, l := range []int{
		len(daily.WeatherCode), len(daily.TemperatureMax), len(daily.TemperatureMin),
		len(daily.PrecipitationSum), len(daily.WindSpeedMax),
	} {
		if l < n {
			n = l
		}
	}

	summaries := make([]DailySummary, 0, n)
	for i := 0; i < n; i++ {
		date, err := time.Parse(dailyTimeLayout, daily.Time[i])
		if err != nil {
			continue
		}

		label, icon := openmeteo.Describe(daily.WeatherCode[i])
		summaries = append(summaries, DailySummary{
			Date:             date,
			TempMax:          daily.TemperatureMax[i],
			TempMin:          daily.TemperatureMin[i],
			PrecipitationSum: daily.PrecipitationSum[i],
			WindMax:          daily.WindSpeedMax[i],
			WeatherCode:      daily.WeatherCode[i],
			Condition:        label,
			Icon:             icon,
		})
	}

	return summaries
}
