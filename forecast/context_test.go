package forecast

import (
	"testing"
	"time"

	"weatherhub/manager"
)

func testCurrent() manager.CurrentWeather {
	return manager.CurrentWeather{
		Temperature: 23.456,
		FeelsLike:   25.912,
		Humidity:    68,
		WindSpeed:   12.34,
		WeatherCode: 3,
	}
}

func TestBuildContextRoundsValues(t *testing.T) {
	ctx := BuildContext("Madrid", testCurrent(), nil)

	if ctx.City != "Madrid" {
		t.Errorf("expected city Madrid, got %s", ctx.City)
	}
	if ctx.Current.Temperature != 23.5 {
		t.Errorf("expected temperature rounded to 23.5, got %f", ctx.Current.Temperature)
	}
	if ctx.Current.FeelsLike != 25.9 {
		t.Errorf("expected feels like rounded to 25.9, got %f", ctx.Current.FeelsLike)
	}
	if ctx.Current.WindSpeed != 12.3 {
		t.Errorf("expected wind rounded to 12.3, got %f", ctx.Current.WindSpeed)
	}
	if ctx.Current.Condition != "Overcast" {
		t.Errorf("expected condition Overcast, got %s", ctx.Current.Condition)
	}
}

func TestBuildContextCapsDays(t *testing.T) {
	daily := make([]DailySummary, 7)
	for i := range daily {
		daily[i] = DailySummary{
			Date:      time.Date(2026, 8, 26+i, 0, 0, 0, 0, time.UTC),
			TempMax:   30,
			TempMin:   20,
			Condition: "Clear sky",
		}
	}

	ctx := BuildContext("Madrid", testCurrent(), daily)
	if len(ctx.Forecast) != 5 {
		t.Fatalf("expected at most 5 forecast days, got %d", len(ctx.Forecast))
	}
	if ctx.Forecast[0].Date != "Wednesday, August 26" {
		t.Errorf("unexpected date rendering: %s", ctx.Forecast[0].Date)
	}
}

func TestBuildSnapshotCapsHours(t *testing.T) {
	records := FlattenHourly(hourlyResponse(48), 2)

	snap := BuildSnapshot("Tokyo", testCurrent(), records)
	if snap.City != "Tokyo" {
		t.Errorf("expected city Tokyo, got %s", snap.City)
	}
	if len(snap.NextHours) != 24 {
		t.Fatalf("expected 24 snapshot hours, got %d", len(snap.NextHours))
	}
	if snap.NextHours[0].Time != "00:00" {
		t.Errorf("expected first hour 00:00, got %s", snap.NextHours[0].Time)
	}
	if snap.NextHours[23].Time != "23:00" {
		t.Errorf("expected last hour 23:00, got %s", snap.NextHours[23].Time)
	}
}

func TestBuildSnapshotFewRecords(t *testing.T) {
	records := FlattenHourly(hourlyResponse(3), 1)

	snap := BuildSnapshot("Tokyo", testCurrent(), records)
	if len(snap.NextHours) != 3 {
		t.Fatalf("expected 3 snapshot hours, got %d", len(snap.NextHours))
	}
}
