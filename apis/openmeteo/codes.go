package openmeteo

// Condition is a human-readable rendering of a WMO weather code.
type Condition struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Unknown is returned for any weather code outside the fixed table.
var Unknown = Condition{Label: "Unknown", Icon: "🌡️"}

// WMO interpretation codes as used by the forecast API.
var weatherCodes = map[int]Condition{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Foggy", "🌫️"},
	48: {"Foggy", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	61: {"Slight rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	71: {"Slight snow", "🌨️"},
	73: {"Moderate snow", "🌨️"},
	75: {"Heavy snow", "❄️"},
	77: {"Snow grains", "❄️"},
	80: {"Slight rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌧️"},
	82: {"Violent rain showers", "⛈️"},
	85: {"Slight snow showers", "🌨️"},
	86: {"Heavy snow showers", "❄️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with hail", "⛈️"},
	99: {"Thunderstorm with hail", "⛈️"},
}

// Describe maps a WMO weather code to its label and icon. It is total:
// unrecognized codes yield the Unknown sentinel, never an error.
func Describe(code int) (string, string) {
	if c, ok := weatherCodes[code]; ok {
		return c.Label, c.Icon
	}
	return Unknown.Label, Unknown.Icon
}
