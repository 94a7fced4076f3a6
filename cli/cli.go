// Package cli wires the weather pipeline and the advisor into cobra
// commands.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"weatherhub/apis/openmeteo"
	"weatherhub/config"
	"weatherhub/forecast"
	"weatherhub/manager"
)

func New(cfg *config.Config, weather manager.Weather, advisor manager.Advisor) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "weatherhub",
		Short: "Weather analysis and AI-assisted travel planning",
		Long: "Fetches current conditions and forecasts, derives statistics,\n" +
			"and turns them into travel advice and a conversational assistant.",
	}

	root.AddCommand(
		newGetCmd(weather),
		newAdviseCmd(cfg, weather, advisor),
		newChatCmd(cfg, weather, advisor),
		newServeCmd(cfg, weather, advisor),
	)

	return root, nil
}

func newGetCmd(weather manager.Weather) *cobra.Command {
	var (
		unitFlag   string
		daysFlag   int
		outputFlag string
	)

	cmd := &cobra.Command{
		Use:   "get [city]",
		Short: "Show current weather, forecast summary and statistics for a city",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			city := strings.Join(args, " ")
			unit := parseUnit(unitFlag)
			days := manager.ClampDays(daysFlag)

			report, err := weather.Report(cmd.Context(), city, unit, days)
			if err != nil {
				return err
			}

			if outputFlag == "json" {
				return printJSON(cmd, report, days)
			}
			printReport(cmd, report, days)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unitFlag, "unit", "u", "celsius", "temperature unit (celsius, fahrenheit)")
	cmd.Flags().IntVarP(&daysFlag, "days", "d", 3, "forecast days (1-7)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "output format (text, json)")

	return cmd
}

func parseUnit(value string) manager.Unit {
	if strings.EqualFold(value, string(manager.UnitFahrenheit)) {
		return manager.UnitFahrenheit
	}
	return manager.UnitCelsius
}

func printJSON(cmd *cobra.Command, report manager.Report, days int) error {
	records := forecast.FlattenHourly(report.Forecast, days)

	out := map[string]any{
		"location": report.Location,
		"unit":     report.Unit,
		"current":  report.Current,
		"hourly":   records,
		"daily":    forecast.DailySummaries(report.Forecast),
	}
	if insights, err := forecast.Summarize(records); err == nil {
		out["insights"] = insights
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}

func printReport(cmd *cobra.Command, report manager.Report, days int) {
	symbol := report.Unit.Symbol()
	wind := report.Unit.WindUnit()

	label, icon := openmeteo.Describe(report.Current.WeatherCode)
	cmd.Printf("%s  %s\n", icon, report.Location.Name)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Temperature:\t%.1f%s\n", report.Current.Temperature, symbol)
	fmt.Fprintf(tw, "Feels like:\t%.1f%s\n", report.Current.FeelsLike, symbol)
	fmt.Fprintf(tw, "Condition:\t%s\n", label)
	fmt.Fprintf(tw, "Humidity:\t%.0f%%\n", report.Current.Humidity)
	fmt.Fprintf(tw, "Wind:\t%.1f %s\n", report.Current.WindSpeed, wind)
	fmt.Fprintf(tw, "Cloud cover:\t%.0f%%\n", report.Current.CloudCover)
	tw.Flush()

	daily := forecast.DailySummaries(report.Forecast)
	if len(daily) > 0 {
		cmd.Printf("\n%d-day forecast\n", days)
		tw = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tMAX\tMIN\tPRECIP\tWIND\tCONDITION")
		for _, d := range daily {
			fmt.Fprintf(tw, "%s\t%.1f%s\t%.1f%s\t%.1f mm\t%.1f %s\t%s %s\n",
				d.Date.Format("Mon, Jan 02"),
				d.TempMax, symbol,
				d.TempMin, symbol,
				d.PrecipitationSum,
				d.WindMax, wind,
				d.Icon, d.Condition,
			)
		}
		tw.Flush()
	}

	records := forecast.FlattenHourly(report.Forecast, days)
	insights, err := forecast.Summarize(records)
	if err != nil {
		return
	}

	cmd.Printf("\nInsights\n")
	cmd.Printf("Average %.1f%s, range %.1f%s to %.1f%s\n",
		insights.AvgTemperature, symbol,
		insights.MinTemperature, symbol,
		insights.MaxTemperature, symbol,
	)
	cmd.Printf("Most frequent: %s (%.0f%% of hours)\n", insights.CommonCondition, insights.CommonShare)
	cmd.Printf("Average precipitation chance: %.0f%%\n", insights.AvgPrecipProb)
}
