package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"weatherhub/apis/gemini"
	"weatherhub/config"
	"weatherhub/manager"
)

type stubWeather struct {
	report manager.Report
	err    error

	gotQuery string
	gotUnit  manager.Unit
	gotDays  int
}

func (s *stubWeather) Report(ctx context.Context, query string, unit manager.Unit, days int) (manager.Report, error) {
	s.gotQuery = query
	s.gotUnit = unit
	s.gotDays = days
	if s.err != nil {
		return manager.Report{}, s.err
	}
	report := s.report
	report.Unit = unit
	return report, nil
}

type stubAdvisor struct {
	reply string
	err   error
}

func (s *stubAdvisor) Generate(ctx context.Context, prompt string, contextData any) (string, error) {
	return s.reply, s.err
}

func (s *stubAdvisor) Chat(ctx context.Context, history []manager.Turn, message string) (string, error) {
	return s.reply, s.err
}

func testReport() manager.Report {
	report := manager.Report{
		Location: manager.Location{Name: "Lisbon, Portugal", Latitude: 38.7223, Longitude: -9.1393},
		Current: manager.CurrentWeather{
			Temperature: 24.6,
			FeelsLike:   26.1,
			Humidity:    55,
			WindSpeed:   11.2,
			WeatherCode: 1,
		},
	}
	base := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 48; i++ {
		report.Forecast.Hourly.Time = append(report.Forecast.Hourly.Time, base.Add(time.Duration(i)*time.Hour).Format("2006-01-02T15:04"))
		report.Forecast.Hourly.Temperature = append(report.Forecast.Hourly.Temperature, 22)
		report.Forecast.Hourly.Humidity = append(report.Forecast.Hourly.Humidity, 55)
		report.Forecast.Hourly.FeelsLike = append(report.Forecast.Hourly.FeelsLike, 23)
		report.Forecast.Hourly.PrecipitationProbability = append(report.Forecast.Hourly.PrecipitationProbability, 5)
		report.Forecast.Hourly.WeatherCode = append(report.Forecast.Hourly.WeatherCode, 1)
		report.Forecast.Hourly.CloudCover = append(report.Forecast.Hourly.CloudCover, 10)
		report.Forecast.Hourly.WindSpeed = append(report.Forecast.Hourly.WindSpeed, 12)
	}
	report.Forecast.Daily.Time = []string{"2026-08-26", "2026-08-27"}
	report.Forecast.Daily.WeatherCode = []int{1, 0}
	report.Forecast.Daily.TemperatureMax = []float64{27.3, 28.1}
	report.Forecast.Daily.TemperatureMin = []float64{18.9, 19.2}
	report.Forecast.Daily.PrecipitationSum = []float64{0, 0}
	report.Forecast.Daily.WindSpeedMax = []float64{15.4, 13.2}
	return report
}

func run(t *testing.T, cfg *config.Config, weather manager.Weather, advisor manager.Advisor, args ...string) (string, error) {
	t.Helper()

	cmd, err := New(cfg, weather, advisor)
	if err != nil {
		t.Fatalf("new cli: %v", err)
	}

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGetCommandText(t *testing.T) {
	weather := &stubWeather{report: testReport()}

	out, err := run(t, &config.Config{}, weather, &stubAdvisor{}, "get", "lisbon", "--days", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if weather.gotQuery != "lisbon" {
		t.Errorf("expected query lisbon, got %q", weather.gotQuery)
	}
	if weather.gotUnit != manager.UnitCelsius {
		t.Errorf("expected celsius by default, got %s", weather.gotUnit)
	}
	if weather.gotDays != 2 {
		t.Errorf("expected 2 days, got %d", weather.gotDays)
	}

	for _, want := range []string{"Lisbon, Portugal", "Temperature:", "24.6°C", "2-day forecast", "Insights"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestGetCommandMultiWordCity(t *testing.T) {
	weather := &stubWeather{report: testReport()}

	if _, err := run(t, &config.Config{}, weather, &stubAdvisor{}, "get", "new", "york"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weather.gotQuery != "new york" {
		t.Errorf("expected joined query, got %q", weather.gotQuery)
	}
}

func TestGetCommandJSON(t *testing.T) {
	out, err := run(t, &config.Config{}, &stubWeather{report: testReport()}, &stubAdvisor{}, "get", "lisbon", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	for _, key := range []string{"location", "current", "hourly", "daily", "insights"} {
		if _, ok := body[key]; !ok {
			t.Errorf("expected key %q in JSON output", key)
		}
	}
}

func TestGetCommandFahrenheit(t *testing.T) {
	weather := &stubWeather{report: testReport()}

	if _, err := run(t, &config.Config{}, weather, &stubAdvisor{}, "get", "lisbon", "-u", "fahrenheit"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weather.gotUnit != manager.UnitFahrenheit {
		t.Errorf("expected fahrenheit, got %s", weather.gotUnit)
	}
}

func TestAdviseRequiresKey(t *testing.T) {
	_, err := run(t, &config.Config{}, &stubWeather{report: testReport()}, &stubAdvisor{reply: "x"}, "advise", "lisbon")
	if !errors.Is(err, gemini.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestAdviseCommand(t *testing.T) {
	cfg := &config.Config{}
	cfg.Gemini.APIKey = "test-key"

	out, err := run(t, cfg, &stubWeather{report: testReport()}, &stubAdvisor{reply: "Go in spring."},
		"advise", "lisbon", "rome", "--purpose", "city break")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Go in spring.") {
		t.Errorf("expected the advice in the output, got:\n%s", out)
	}
	if !strings.Contains(out, "lisbon, rome") {
		t.Errorf("expected the city list in the header, got:\n%s", out)
	}
}

func TestAdviseWeatherFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.Gemini.APIKey = "test-key"

	_, err := run(t, cfg, &stubWeather{err: errors.New("api down")}, &stubAdvisor{reply: "x"}, "advise", "lisbon")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
