package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"weatherhub/apis/gemini"
	"weatherhub/chat"
	"weatherhub/config"
	"weatherhub/manager"
)

func newChatCmd(cfg *config.Config, weather manager.Weather, advisor manager.Advisor) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the weather assistant interactively",
		Long: "Starts a conversation with the assistant. Mention a city\n" +
			"(\"weather in Tokyo\") to ground replies in live data.\n" +
			"Type /clear to reset the conversation, /quit to leave.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Gemini.APIKey == "" {
				return gemini.ErrMissingKey
			}

			session := chat.NewSession(weather, advisor)
			cmd.Println("Weather assistant ready. Ask about any city (/quit to exit).")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				cmd.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}

				line := strings.TrimSpace(scanner.Text())
				switch {
				case line == "":
					continue
				case line == "/quit", line == "/exit":
					return nil
				case line == "/clear":
					session.Clear()
					cmd.Println("Conversation cleared.")
					continue
				}

				cmd.Println(session.Handle(cmd.Context(), line))
			}
		},
	}
}
