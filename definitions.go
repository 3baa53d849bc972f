package main

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"k8s.io/utils/ptr"
)

// Upstream endpoints and request defaults
const (
	forecastURL         = "https://api.open-meteo.com/v1/forecast"
	openMeteoReverseURL = "https://geocoding-api.open-meteo.com/v1/reverse"
	nominatimReverseURL = "https://nominatim.openstreetmap.org/reverse"
	ipLocateURL         = "http://ip-api.com/json/"

	defaultUserAgent = "WxPoint/1.0 (https://github.com/rmitchellscott/WxPoint)"
	requestTimeout   = 10 * time.Second
)

// Forecast variables requested for both the current and hourly endpoints
var forecastFields = []string{
	"temperature_2m",
	"apparent_temperature",
	"relative_humidity_2m",
	"precipitation",
	"weather_code",
	"cloud_cover",
	"pressure_msl",
	"wind_speed_10m",
	"wind_direction_10m",
}

// Units used when the forecast response leaves one out
var defaultUnits = map[string]string{
	"temperature_2m":       "°C",
	"apparent_temperature": "°C",
	"relative_humidity_2m": "%",
	"precipitation":        "mm",
	"cloud_cover":          "%",
	"pressure_msl":         "hPa",
	"wind_speed_10m":       "km/h",
	"wind_direction_10m":   "°",
}

// WMO weather interpretation codes as documented by Open-Meteo
var wmoDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snowfall",
	73: "Moderate snowfall",
	75: "Heavy snowfall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// describeWeatherCode returns the text for a WMO code, or a generic label for unknown codes
func describeWeatherCode(code int) string {
	if desc, ok := wmoDescriptions[code]; ok {
		return desc
	}
	return fmt.Sprintf("Weather code %d", code)
}

// describeOptionalWeatherCode handles a code the API may have left null or sent as a
// non-integral number; only whole codes are looked up in the table
func describeOptionalWeatherCode(code *json.Number) string {
	if f, err := ptr.Deref(code, "").Float64(); err == nil && f == math.Trunc(f) {
		if desc, ok := wmoDescriptions[int(f)]; ok {
			return desc
		}
	}
	return "Weather code " + formatValue(code)
}

// Coordinate is a validated latitude/longitude pair
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// String renders the coordinate with five decimals, as shown in reports
func (c Coordinate) String() string {
	return fmt.Sprintf("%.5f, %.5f", c.Latitude, c.Longitude)
}

// LocationSource identifies which geocoder produced a label
type LocationSource string

const (
	SourceNone      LocationSource = ""
	SourceOpenMeteo LocationSource = "open-meteo"
	SourceOSM       LocationSource = "osm"
)

// LocationLabel is the result of reverse geocoding. An empty Label means no provider
// produced a usable name.
type LocationLabel struct {
	Label       string
	Name        string
	Admin1      string
	Admin2      string
	Country     string
	CountryCode string
	Source      LocationSource
}

// Measurement is a forecast value with its unit. A nil Value means the API omitted it.
type Measurement struct {
	Value *json.Number
	Unit  string
}

// WeatherReading holds the conditions for one moment
type WeatherReading struct {
	Time          string
	Description   string
	Temperature   Measurement
	FeelsLike     Measurement
	Humidity      Measurement
	Precipitation Measurement
	CloudCover    Measurement
	Pressure      Measurement
	WindSpeed     Measurement
	WindDir       Measurement
}

// TargetTime is either "now" or a wall-clock time local to the coordinates
type TargetTime struct {
	Now   bool
	Local time.Time
}

// HourlyResult is the outcome of a time-targeted lookup. When Found is false,
// Reason explains why no reading is available.
type HourlyResult struct {
	Reading WeatherReading
	Found   bool
	Reason  string
}

// UnitSystem selects the units requested from the forecast API
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)
