package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ForecastClient reads current and hourly conditions from the Open-Meteo forecast API
type ForecastClient struct {
	client *resty.Client
	url    string
	units  UnitSystem
	logger *slog.Logger
}

func NewForecastClient(client *resty.Client, url string, units UnitSystem, logger *slog.Logger) *ForecastClient {
	return &ForecastClient{client: client, url: url, units: units, logger: logger}
}

// forecastValues holds one moment of forecast variables; nil means the API omitted the value.
// Numbers keep their JSON text so 0.0 and 66 print the way the API sent them.
type forecastValues struct {
	Time                string       `json:"time"`
	Temperature         *json.Number `json:"temperature_2m"`
	ApparentTemperature *json.Number `json:"apparent_temperature"`
	RelativeHumidity    *json.Number `json:"relative_humidity_2m"`
	Precipitation       *json.Number `json:"precipitation"`
	WeatherCode         *json.Number `json:"weather_code"`
	CloudCover          *json.Number `json:"cloud_cover"`
	PressureMSL         *json.Number `json:"pressure_msl"`
	WindSpeed           *json.Number `json:"wind_speed_10m"`
	WindDirection       *json.Number `json:"wind_direction_10m"`
}

// hourlySeries holds parallel arrays indexed by position in Time
type hourlySeries struct {
	Time                []string       `json:"time"`
	Temperature         []*json.Number `json:"temperature_2m"`
	ApparentTemperature []*json.Number `json:"apparent_temperature"`
	RelativeHumidity    []*json.Number `json:"relative_humidity_2m"`
	Precipitation       []*json.Number `json:"precipitation"`
	WeatherCode         []*json.Number `json:"weather_code"`
	CloudCover          []*json.Number `json:"cloud_cover"`
	PressureMSL         []*json.Number `json:"pressure_msl"`
	WindSpeed           []*json.Number `json:"wind_speed_10m"`
	WindDirection       []*json.Number `json:"wind_direction_10m"`
}

// forecastUnits maps variable name to unit label
type forecastUnits map[string]string

type forecastResponse struct {
	Current      forecastValues `json:"current"`
	CurrentUnits forecastUnits  `json:"current_units"`
	Hourly       hourlySeries   `json:"hourly"`
	HourlyUnits  forecastUnits  `json:"hourly_units"`
}

// unit returns the unit the API reported for a field, or the metric default
func (u forecastUnits) unit(field string) string {
	if s, ok := u[field]; ok {
		return s
	}
	return defaultUnits[field]
}

// valueAt reads one entry of a series; a series shorter than idx yields nil
func valueAt(series []*json.Number, idx int) *json.Number {
	if idx < 0 || idx >= len(series) {
		return nil
	}
	return series[idx]
}

// at collects every variable at one index, tolerating short or missing series
func (h hourlySeries) at(idx int) forecastValues {
	return forecastValues{
		Time:                h.Time[idx],
		Temperature:         valueAt(h.Temperature, idx),
		ApparentTemperature: valueAt(h.ApparentTemperature, idx),
		RelativeHumidity:    valueAt(h.RelativeHumidity, idx),
		Precipitation:       valueAt(h.Precipitation, idx),
		WeatherCode:         valueAt(h.WeatherCode, idx),
		CloudCover:          valueAt(h.CloudCover, idx),
		PressureMSL:         valueAt(h.PressureMSL, idx),
		WindSpeed:           valueAt(h.WindSpeed, idx),
		WindDirection:       valueAt(h.WindDirection, idx),
	}
}

// buildReading pairs each value with its unit and decodes the weather code
func buildReading(v forecastValues, units forecastUnits) WeatherReading {
	return WeatherReading{
		Time:          v.Time,
		Description:   describeOptionalWeatherCode(v.WeatherCode),
		Temperature:   Measurement{Value: v.Temperature, Unit: units.unit("temperature_2m")},
		FeelsLike:     Measurement{Value: v.ApparentTemperature, Unit: units.unit("apparent_temperature")},
		Humidity:      Measurement{Value: v.RelativeHumidity, Unit: units.unit("relative_humidity_2m")},
		Precipitation: Measurement{Value: v.Precipitation, Unit: units.unit("precipitation")},
		CloudCover:    Measurement{Value: v.CloudCover, Unit: units.unit("cloud_cover")},
		Pressure:      Measurement{Value: v.PressureMSL, Unit: units.unit("pressure_msl")},
		WindSpeed:     Measurement{Value: v.WindSpeed, Unit: units.unit("wind_speed_10m")},
		WindDir:       Measurement{Value: v.WindDirection, Unit: units.unit("wind_direction_10m")},
	}
}

// baseParams are the query parameters shared by the current and hourly requests
func (f *ForecastClient) baseParams(coord Coordinate) map[string]string {
	params := map[string]string{
		"latitude":  formatCoordinate(coord.Latitude),
		"longitude": formatCoordinate(coord.Longitude),
		"timezone":  "auto",
	}
	if f.units == UnitsImperial {
		params["temperature_unit"] = "fahrenheit"
		params["wind_speed_unit"] = "mph"
		params["precipitation_unit"] = "inch"
	}
	return params
}

// Current fetches live conditions at the coordinate
func (f *ForecastClient) Current(ctx context.Context, coord Coordinate) (WeatherReading, error) {
	params := f.baseParams(coord)
	params["current"] = strings.Join(forecastFields, ",")

	var resp forecastResponse
	if err := getJSON(ctx, f.client, f.url, params, &resp); err != nil {
		return WeatherReading{}, fmt.Errorf("error fetching current weather: %w", err)
	}

	return buildReading(resp.Current, resp.CurrentUnits), nil
}

// At fetches the hourly forecast for the hour nearest to local, a wall-clock time at the
// coordinate. The requested day follows the rounded hour, so 23:45 asks for the next day.
func (f *ForecastClient) At(ctx context.Context, coord Coordinate, local time.Time) (HourlyResult, error) {
	target := roundToNearestHour(local)
	day := target.Format(time.DateOnly)

	params := f.baseParams(coord)
	params["hourly"] = strings.Join(forecastFields, ",")
	params["start_date"] = day
	params["end_date"] = day

	var resp forecastResponse
	if err := getJSON(ctx, f.client, f.url, params, &resp); err != nil {
		return HourlyResult{}, fmt.Errorf("error fetching hourly weather: %w", err)
	}

	times := resp.Hourly.Time
	if len(times) == 0 {
		return HourlyResult{
			Reason: "No hourly data returned for that date. It may be outside the available range. For older dates, use the Open-Meteo Archive API.",
		}, nil
	}

	stamp := hourlyTimestamp(target)
	for idx, t := range times {
		if t == stamp {
			f.logger.Debug("matched hourly entry", "time", stamp, "index", idx)
			return HourlyResult{
				Reading: buildReading(resp.Hourly.at(idx), resp.HourlyUnits),
				Found:   true,
			}, nil
		}
	}

	return HourlyResult{
		Reason: fmt.Sprintf("No data for %s local time. Try a different time within the same day, or check forecast range.", stamp),
	}, nil
}
