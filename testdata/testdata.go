package testdata

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed *.json
var data embed.FS

func read(t *testing.T, path string) []byte {
	t.Helper()
	b, err := data.ReadFile(path)
	require.NoError(t, err)
	return b
}

// ForecastCurrent is an Open-Meteo forecast response for current conditions
func ForecastCurrent(t *testing.T) []byte {
	return read(t, "forecast_current.json")
}

// ForecastHourly is an Open-Meteo hourly response for 2024-06-01 with a short
// pressure_msl series and a null weather code at 05:00
func ForecastHourly(t *testing.T) []byte {
	return read(t, "forecast_hourly.json")
}

// ForecastHourlyEmpty is an hourly response with no time entries
func ForecastHourlyEmpty(t *testing.T) []byte {
	return read(t, "forecast_hourly_empty.json")
}

// OpenMeteoReverse is an Open-Meteo reverse geocoding response
func OpenMeteoReverse(t *testing.T) []byte {
	return read(t, "openmeteo_reverse.json")
}

// NominatimReverse is a Nominatim jsonv2 reverse geocoding response
func NominatimReverse(t *testing.T) []byte {
	return read(t, "nominatim_reverse.json")
}
