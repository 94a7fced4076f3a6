package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"weatherhub/manager"
)

const testAPIKey = "test-key"

func newTestClient(apiKey, baseURL string) *Client {
	client := New(apiKey)
	client.baseURL = baseURL
	return client
}

func TestResolveFallbackTable(t *testing.T) {
	// No API key: lookups go straight to the table.
	client := New("")

	loc, err := client.Resolve(context.Background(), "Atlanta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.Name != "Atlanta, Georgia, USA" {
		t.Errorf("expected display name Atlanta, Georgia, USA, got %s", loc.Name)
	}
	if loc.Latitude != 33.7490 || loc.Longitude != -84.3880 {
		t.Errorf("expected coordinates 33.7490,-84.3880, got %f,%f", loc.Latitude, loc.Longitude)
	}
}

func TestResolveFallbackNormalizesQuery(t *testing.T) {
	client := New("")

	for _, query := range []string{"atlanta", "ATLANTA", "  Atlanta  "} {
		loc, err := client.Resolve(context.Background(), query)
		if err != nil {
			t.Fatalf("query %q: unexpected error: %v", query, err)
		}
		if loc.Name != "Atlanta, Georgia, USA" {
			t.Errorf("query %q: expected Atlanta, Georgia, USA, got %s", query, loc.Name)
		}
	}
}

func TestResolveUnknownCity(t *testing.T) {
	client := New("")

	_, err := client.Resolve(context.Background(), "Nowhereville")
	if err == nil {
		t.Fatal("expected error for unknown city, got nil")
	}
	if !errors.Is(err, manager.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveViaAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("q"); got != "Tbilisi" {
			t.Errorf("expected q=Tbilisi, got %s", got)
		}
		if got := q.Get("key"); got != testAPIKey {
			t.Errorf("expected key=%s, got %s", testAPIKey, got)
		}
		if got := q.Get("limit"); got != "1" {
			t.Errorf("expected limit=1, got %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"geometry":  map[string]float64{"lat": 41.7151, "lng": 44.8271},
					"formatted": "Tbilisi, Georgia",
				},
			},
		})
	}))
	defer srv.Close()

	loc, err := newTestClient(testAPIKey, srv.URL).Resolve(context.Background(), "Tbilisi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.Name != "Tbilisi, Georgia" {
		t.Errorf("expected Tbilisi, Georgia, got %s", loc.Name)
	}
	if loc.Latitude != 41.7151 || loc.Longitude != 44.8271 {
		t.Errorf("expected coordinates 41.7151,44.8271, got %f,%f", loc.Latitude, loc.Longitude)
	}
}

func TestResolveAPIFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	// The table still knows Tokyo, so the failed lookup must not surface.
	loc, err := newTestClient(testAPIKey, srv.URL).Resolve(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Name != "Tokyo, Japan" {
		t.Errorf("expected Tokyo, Japan, got %s", loc.Name)
	}
}

func TestResolveAPIEmptyResultsFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	}))
	defer srv.Close()

	loc, err := newTestClient(testAPIKey, srv.URL).Resolve(context.Background(), "paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Name != "Paris, France" {
		t.Errorf("expected Paris, France, got %s", loc.Name)
	}
}

func TestKnownCitiesSorted(t *testing.T) {
	cities := KnownCities()
	if len(cities) != len(cityTable) {
		t.Fatalf("expected %d cities, got %d", len(cityTable), len(cities))
	}
	for i := 1; i < len(cities); i++ {
		if cities[i-1] >= cities[i] {
			t.Errorf("cities not sorted at %d: %s >= %s", i, cities[i-1], cities[i])
		}
	}
}
