package gemini

import (
	"fmt"
	"strings"
)

// AdvicePrompt composes the user request for the travel-advice flows:
// a comparison brief for several cities, a single-destination brief
// otherwise. An optional purpose and free-text request are appended.
func AdvicePrompt(cities []string, purpose, request string) string {
	var sb strings.Builder

	if len(cities) > 1 {
		sb.WriteString("Compare weather for these cities and provide travel advice:\n\n")
		fmt.Fprintf(&sb, "Cities: %s\n", strings.Join(cities, ", "))
		if purpose != "" {
			fmt.Fprintf(&sb, "Travel Purpose: %s\n", purpose)
		}
		sb.WriteString("\nProvide:\n")
		sb.WriteString("1. Detailed weather comparison\n")
		sb.WriteString("2. Pros and cons of each destination\n")
		if purpose != "" {
			fmt.Fprintf(&sb, "3. Best city for %s\n", purpose)
		} else {
			sb.WriteString("3. Best city overall\n")
		}
		sb.WriteString("4. Specific recommendations\n")
		sb.WriteString("5. What to expect and prepare\n")
	} else {
		fmt.Fprintf(&sb, "Provide travel advice for %s based on the forecast:\n\n", cities[0])
		if purpose != "" {
			fmt.Fprintf(&sb, "Travel Purpose: %s\n", purpose)
		}
		sb.WriteString("\nProvide:\n")
		sb.WriteString("1. Day-by-day recommendations\n")
		sb.WriteString("2. What to wear and pack\n")
		sb.WriteString("3. Activities to avoid and alternatives\n")
		sb.WriteString("4. Pro tips for the weather\n")
	}

	if request != "" {
		fmt.Fprintf(&sb, "\nAdditional request: %s\n", request)
	}

	return sb.String()
}
