// Package server exposes the weather pipeline and the advisor over a
// small JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"weatherhub/apis/gemini"
	"weatherhub/apis/openmeteo"
	"weatherhub/chat"
	"weatherhub/forecast"
	"weatherhub/manager"
)

const (
	defaultDays = 3
	maxCities   = 4
)

type Server struct {
	weather manager.Weather
	advisor manager.Advisor
	mux     *http.ServeMux

	mu       sync.Mutex
	sessions map[string]*chat.Session
}

func New(weather manager.Weather, advisor manager.Advisor) *Server {
	s := &Server{
		weather:  weather,
		advisor:  advisor,
		mux:      http.NewServeMux(),
		sessions: make(map[string]*chat.Session),
	}
	s.routes()
	return s
}

func (s *Server) Router() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/api/weather", s.handleWeather)
	s.mux.HandleFunc("/api/advice", s.handleAdvice)
	s.mux.HandleFunc("/api/chat", s.handleChat)
	s.mux.HandleFunc("/api/chat/reset", s.handleChatReset)
	s.mux.HandleFunc("/api/health", s.handleHealth)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("encode response:", err)
	}
}

// conditionView decorates a current snapshot with its resolved condition.
type conditionView struct {
	manager.CurrentWeather
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

// GET /api/weather?city=&unit=&days=
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "city is required"})
		return
	}

	unit := manager.UnitCelsius
	if r.URL.Query().Get("unit") == string(manager.UnitFahrenheit) {
		unit = manager.UnitFahrenheit
	}

	days := defaultDays
	if d, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil {
		days = manager.ClampDays(d)
	}

	report, err := s.weather.Report(r.Context(), city, unit, days)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, manager.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{
			Error:   fmt.Sprintf("weather lookup for %q failed", city),
			Details: err.Error(),
		})
		return
	}

	records := forecast.FlattenHourly(report.Forecast, days)
	daily := forecast.DailySummaries(report.Forecast)

	label, icon := openmeteo.Describe(report.Current.WeatherCode)
	response := map[string]any{
		"location":  report.Location,
		"unit":      report.Unit,
		"current":   conditionView{CurrentWeather: report.Current, Condition: label, Icon: icon},
		"hourly":    records,
		"daily":     daily,
		"timestamp": time.Now(),
	}
	if insights, err := forecast.Summarize(records); err == nil {
		response["insights"] = insights
	}

	writeJSON(w, http.StatusOK, response)
}

type adviceRequest struct {
	Cities  []string `json:"cities"`
	Purpose string   `json:"purpose"`
	Prompt  string   `json:"prompt"`
}

// POST /api/advice
func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if len(req.Cities) == 0 || len(req.Cities) > maxCities {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("between 1 and %d cities are required", maxCities),
		})
		return
	}

	contexts := make(map[string]forecast.Context, len(req.Cities))
	for _, city := range req.Cities {
		report, err := s.weather.Report(r.Context(), city, manager.UnitCelsius, manager.MaxForecastDays)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, manager.ErrNotFound) {
				status = http.StatusNotFound
			}
			writeJSON(w, status, errorResponse{
				Error:   fmt.Sprintf("weather lookup for %q failed", city),
				Details: err.Error(),
			})
			return
		}
		contexts[city] = forecast.BuildContext(city, report.Current, forecast.DailySummaries(report.Forecast))
	}

	prompt := gemini.AdvicePrompt(req.Cities, req.Purpose, req.Prompt)
	text, err := s.advisor.Generate(r.Context(), prompt, contexts)
	if err != nil {
		if errors.Is(err, gemini.ErrMissingKey) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "generation failed",
			Details: gemini.Classify(err).UserMessage(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cities":    req.Cities,
		"advice":    text,
		"timestamp": time.Now(),
	})
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// POST /api/chat
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	session := s.session(req.SessionID)
	reply := session.Handle(r.Context(), req.Message)

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": session.ID(),
		"reply":      reply,
	})
}

// POST /api/chat/reset
func (s *Server) handleChatReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	s.mu.Lock()
	session, ok := s.sessions[req.SessionID]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown session"})
		return
	}

	session.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// session returns the session for id, creating a fresh one when id is
// empty or unknown. Sessions are isolated per id; they share nothing.
func (s *Server) session(id string) *chat.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if session, ok := s.sessions[id]; ok {
			return session
		}
	}

	session := chat.NewSession(s.weather, s.advisor)
	s.sessions[session.ID()] = session
	return session
}
