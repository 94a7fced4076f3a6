package forecast

import (
	"errors"
)

// ErrEmptySeries is reported by aggregate helpers when there are no
// records to aggregate over.
var ErrEmptySeries = errors.New("empty record series")

// Field selectors for the aggregate helpers.
func Temperature(r HourlyRecord) float64       { return r.Temperature }
func FeelsLike(r HourlyRecord) float64         { return r.FeelsLike }
func Humidity(r HourlyRecord) float64          { return r.Humidity }
func PrecipProbability(r HourlyRecord) float64 { return r.PrecipProbability }
func WindSpeed(r HourlyRecord) float64         { return r.WindSpeed }
func Condition(r HourlyRecord) string          { return r.Condition }
func WeatherCode(r HourlyRecord) int           { return r.WeatherCode }

// Mean averages a field over a non-empty record series.
func Mean(records []HourlyRecord, field func(HourlyRecord) float64) (float64, error) {
	if len(records) == 0 {
		return 0, ErrEmptySeries
	}

	sum := 0.0
	for _, r := range records {
		sum += field(r)
	}
	return sum / float64(len(records)), nil
}

// Min returns the smallest field value in a non-empty record series.
func Min(records []HourlyRecord, field func(HourlyRecord) float64) (float64, error) {
	if len(records) == 0 {
		return 0, ErrEmptySeries
	}

	min := field(records[0])
	for _, r := range records[1:] {
		if v := field(r); v < min {
			min = v
		}
	}
	return min, nil
}

// Max returns the largest field value in a non-empty record series.
func Max(records []HourlyRecord, field func(HourlyRecord) float64) (float64, error) {
	if len(records) == 0 {
		return 0, ErrEmptySeries
	}

	max := field(records[0])
	for _, r := range records[1:] {
		if v := field(r); v > max {
			max = v
		}
	}
	return max, nil
}

// Mode returns the most frequent field value in a non-empty record
// series. Ties break toward the value encountered first in record order.
func Mode[T comparable](records []HourlyRecord, field func(HourlyRecord) T) (T, error) {
	var mode T
	if len(records) == 0 {
		return mode, ErrEmptySeries
	}

	counts := make(map[T]int, len(records))
	best := 0
	for _, r := range records {
		v := field(r)
		counts[v]++
		if counts[v] > best {
			best = counts[v]
			mode = v
		}
	}
	return mode, nil
}

// FrequencyTable counts occurrences of a field value. The result is
// unordered.
func FrequencyTable[T comparable](records []HourlyRecord, field func(HourlyRecord) T) map[T]int {
	counts := make(map[T]int, len(records))
	for _, r := range records {
		counts[field(r)]++
	}
	return counts
}

// Insights is the dashboard's derived statistics block.
type Insights struct {
	AvgTemperature   float64 `json:"avg_temperature"`
	MaxTemperature   float64 `json:"max_temperature"`
	MinTemperature   float64 `json:"min_temperature"`
	TemperatureRange float64 `json:"temperature_range"`
	CommonCondition  string  `json:"most_common_condition"`
	CommonShare      float64 `json:"condition_share_pct"`
	AvgPrecipProb    float64 `json:"avg_precipitation_prob"`
}

// Summarize derives the insight statistics from a non-empty record series.
func Summarize(records []HourlyRecord) (Insights, error) {
	if len(records) == 0 {
		return Insights{}, ErrEmptySeries
	}

	avg, _ := Mean(records, Temperature)
	max, _ := Max(records, Temperature)
	min, _ := Min(records, Temperature)
	common, _ := Mode(records, Condition)
	precip, _ := Mean(records, PrecipProbability)

	share := float64(FrequencyTable(records, Condition)[common]) / float64(len(records)) * 100

	return Insights{
		AvgTemperature:   avg,
		MaxTemperature:   max,
		MinTemperature:   min,
		TemperatureRange: max - min,
		CommonCondition:  common,
		CommonShare:      share,
		AvgPrecipProb:    precip,
	}, nil
}
