package geocoding

import (
	"sort"
	"strings"

	"weatherhub/manager"
)

// Hand-picked coordinates for well-known cities, used when the geocoding
// service is unavailable or returns nothing. Lookup is exact,
// case-insensitive, and whitespace-trimmed.
var cityTable = map[string]manager.Location{
	"atlanta":        {Name: "Atlanta, Georgia, USA", Latitude: 33.7490, Longitude: -84.3880},
	"new york":       {Name: "New York, New York, USA", Latitude: 40.7128, Longitude: -74.0060},
	"los angeles":    {Name: "Los Angeles, California, USA", Latitude: 34.0522, Longitude: -118.2437},
	"chicago":        {Name: "Chicago, Illinois, USA", Latitude: 41.8781, Longitude: -87.6298},
	"houston":        {Name: "Houston, Texas, USA", Latitude: 29.7604, Longitude: -95.3698},
	"miami":          {Name: "Miami, Florida, USA", Latitude: 25.7617, Longitude: -80.1918},
	"boston":         {Name: "Boston, Massachusetts, USA", Latitude: 42.3601, Longitude: -71.0589},
	"seattle":        {Name: "Seattle, Washington, USA", Latitude: 47.6062, Longitude: -122.3321},
	"san francisco":  {Name: "San Francisco, California, USA", Latitude: 37.7749, Longitude: -122.4194},
	"denver":         {Name: "Denver, Colorado, USA", Latitude: 39.7392, Longitude: -104.9903},
	"washington":     {Name: "Washington, D.C., USA", Latitude: 38.9072, Longitude: -77.0369},
	"philadelphia":   {Name: "Philadelphia, Pennsylvania, USA", Latitude: 39.9526, Longitude: -75.1652},
	"phoenix":        {Name: "Phoenix, Arizona, USA", Latitude: 33.4484, Longitude: -112.0740},
	"las vegas":      {Name: "Las Vegas, Nevada, USA", Latitude: 36.1699, Longitude: -115.1398},
	"portland":       {Name: "Portland, Oregon, USA", Latitude: 45.5152, Longitude: -122.6784},
	"austin":         {Name: "Austin, Texas, USA", Latitude: 30.2672, Longitude: -97.7431},
	"nashville":      {Name: "Nashville, Tennessee, USA", Latitude: 36.1627, Longitude: -86.7816},
	"london":         {Name: "London, United Kingdom", Latitude: 51.5074, Longitude: -0.1278},
	"paris":          {Name: "Paris, France", Latitude: 48.8566, Longitude: 2.3522},
	"tokyo":          {Name: "Tokyo, Japan", Latitude: 35.6762, Longitude: 139.6503},
	"sydney":         {Name: "Sydney, Australia", Latitude: 33.8688, Longitude: 151.2093},
	"toronto":        {Name: "Toronto, Canada", Latitude: 43.6532, Longitude: -79.3832},
	"berlin":         {Name: "Berlin, Germany", Latitude: 52.5200, Longitude: 13.4050},
	"rome":           {Name: "Rome, Italy", Latitude: 41.9028, Longitude: 12.4964},
	"madrid":         {Name: "Madrid, Spain", Latitude: 40.4168, Longitude: -3.7038},
	"amsterdam":      {Name: "Amsterdam, Netherlands", Latitude: 52.3676, Longitude: 4.9041},
	"dubai":          {Name: "Dubai, UAE", Latitude: 25.2048, Longitude: 55.2708},
	"singapore":      {Name: "Singapore", Latitude: 1.3521, Longitude: 103.8198},
	"hong kong":      {Name: "Hong Kong", Latitude: 22.3193, Longitude: 114.1694},
	"moscow":         {Name: "Moscow, Russia", Latitude: 55.7558, Longitude: 37.6173},
	"beijing":        {Name: "Beijing, China", Latitude: 39.9042, Longitude: 116.4074},
	"mumbai":         {Name: "Mumbai, India", Latitude: 19.0760, Longitude: 72.8777},
	"rio de janeiro": {Name: "Rio de Janeiro, Brazil", Latitude: -22.9068, Longitude: -43.1729},
	"barcelona":      {Name: "Barcelona, Spain", Latitude: 41.3851, Longitude: 2.1734},
	"melbourne":      {Name: "Melbourne, Australia", Latitude: -37.8136, Longitude: 144.9631},
	"vancouver":      {Name: "Vancouver, Canada", Latitude: 49.2827, Longitude: -123.1207},
	"bangkok":        {Name: "Bangkok, Thailand", Latitude: 13.7563, Longitude: 100.5018},
}

func fallbackLookup(query string) (manager.Location, bool) {
	loc, ok := cityTable[strings.ToLower(strings.TrimSpace(query))]
	return loc, ok
}

// KnownCities lists the fallback table entries that are guaranteed to
// resolve, sorted for stable output.
func KnownCities() []string {
	names := make([]string, 0, len(cityTable))
	for name := range cityTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
