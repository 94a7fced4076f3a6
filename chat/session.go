// Package chat holds the per-session conversational state of the weather
// assistant: an append-only transcript plus the heuristic that pulls a
// city name out of a user message so live weather can be merged into the
// prompt.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"weatherhub/apis/gemini"
	"weatherhub/forecast"
	"weatherhub/manager"
)

// snapshotDays is how much forecast a chat turn fetches for context.
const snapshotDays = 3

const contextTemplate = `CURRENT WEATHER DATA:
%s

USER MESSAGE: %s

Provide a helpful response using the weather data. Be specific with actual numbers.`

// Session is one user's conversation. It lives for the lifetime of the
// interactive session and is never persisted.
type Session struct {
	id      string
	weather manager.Weather
	advisor manager.Advisor

	mu    sync.Mutex
	turns []manager.Turn
}

func NewSession(weather manager.Weather, advisor manager.Advisor) *Session {
	return &Session{
		id:      uuid.NewString(),
		weather: weather,
		advisor: advisor,
	}
}

// ID identifies the session for the lifetime of the process.
func (s *Session) ID() string { return s.id }

// History returns a copy of the transcript in turn order.
func (s *Session) History() []manager.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]manager.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Clear resets the transcript. The next Handle starts a fresh
// conversation with the model.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}

// Handle records the user turn, optionally enriches the prompt with a
// live weather snapshot for a city mentioned in the message, and returns
// the assistant reply. Failures never escape: a weather fetch that fails
// degrades to a plain chat turn, and a generation failure becomes the
// reply text so the conversation can continue.
func (s *Session) Handle(ctx context.Context, message string) string {
	s.mu.Lock()
	history := make([]manager.Turn, len(s.turns))
	copy(history, s.turns)
	s.turns = append(s.turns, manager.Turn{Role: manager.RoleUser, Content: message})
	s.mu.Unlock()

	prompt := message
	if city, ok := ExtractCity(message); ok {
		if snap, err := s.snapshot(ctx, city); err == nil {
			data, err := json.MarshalIndent(snap, "", "  ")
			if err == nil {
				prompt = fmt.Sprintf(contextTemplate, data, message)
			}
		}
	}

	reply, err := s.advisor.Chat(ctx, history, prompt)
	if err != nil {
		reply = gemini.Classify(err).UserMessage()
	}

	s.mu.Lock()
	s.turns = append(s.turns, manager.Turn{Role: manager.RoleAssistant, Content: reply})
	s.mu.Unlock()

	return reply
}

func (s *Session) snapshot(ctx context.Context, city string) (forecast.Snapshot, error) {
	report, err := s.weather.Report(ctx, city, manager.UnitCelsius, snapshotDays)
	if err != nil {
		return forecast.Snapshot{}, err
	}

	records := forecast.FlattenHourly(report.Forecast, 1)
	return forecast.BuildSnapshot(city, report.Current, records), nil
}

// Lead-in phrases that signal the user is asking about a specific city.
var cityLeadIns = []string{
	"weather in ",
	"weather for ",
	"forecast for ",
	"forecast in ",
	"temperature in ",
	"how's the weather in ",
	"what's the weather like in ",
}

// ExtractCity pulls a city name out of a chat message by matching the
// fixed lead-in phrases case-insensitively and taking the substring up to
// the first '?', ',' or '.'. The original casing of the city is kept.
// This is a fallback heuristic, not a parser: messages without a
// recognized phrase yield no city.
func ExtractCity(message string) (string, bool) {
	lower := strings.ToLower(message)

	for _, phrase := range cityLeadIns {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			continue
		}

		rest := strings.TrimSpace(message[idx+len(phrase):])
		if cut := strings.IndexAny(rest, "?,."); cut >= 0 {
			rest = rest[:cut]
		}
		if city := strings.TrimSpace(rest); city != "" {
			return city, true
		}
	}

	return "", false
}
