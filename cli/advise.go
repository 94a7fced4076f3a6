package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"weatherhub/apis/gemini"
	"weatherhub/config"
	"weatherhub/forecast"
	"weatherhub/manager"
)

const maxAdviseCities = 4

func newAdviseCmd(cfg *config.Config, weather manager.Weather, advisor manager.Advisor) *cobra.Command {
	var (
		purposeFlag string
		promptFlag  string
	)

	cmd := &cobra.Command{
		Use:   "advise [city]...",
		Short: "Generate AI travel advice for one or more cities",
		Args:  cobra.RangeArgs(1, maxAdviseCities),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Gemini.APIKey == "" {
				return gemini.ErrMissingKey
			}

			contexts := make(map[string]forecast.Context, len(args))
			for _, city := range args {
				report, err := weather.Report(cmd.Context(), city, manager.UnitCelsius, manager.MaxForecastDays)
				if err != nil {
					return fmt.Errorf("weather for %s: %w", city, err)
				}
				contexts[city] = forecast.BuildContext(city, report.Current, forecast.DailySummaries(report.Forecast))
			}

			prompt := gemini.AdvicePrompt(args, purposeFlag, promptFlag)
			text, err := advisor.Generate(cmd.Context(), prompt, contexts)
			if err != nil {
				return fmt.Errorf("%s", gemini.Classify(err).UserMessage())
			}

			cmd.Printf("Travel advice for %s\n\n", strings.Join(args, ", "))
			cmd.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&purposeFlag, "purpose", "p", "", "travel purpose (beach vacation, business trip, ...)")
	cmd.Flags().StringVar(&promptFlag, "prompt", "", "additional free-text request for the advisor")

	return cmd
}
