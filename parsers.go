package main

import (
	"strconv"
	"strings"
	"time"
)

// Accepted layouts for a target time, tried in order. Month, day, hour and minute
// may be one or two digits, so 2024-6-1 4:05 and 2024-06-01 04:05 both parse.
var timeLayouts = []string{
	"2006-1-2 15:4",
	"2006-1-2T15:4",
	"2006-1-2 15",
	"2006-1-2T15",
}

// parseCoordinateArgs parses latitude and longitude from the first two positional arguments
func parseCoordinateArgs(args []string) (Coordinate, error) {
	if len(args) < 2 {
		return Coordinate{}, invalidInput("Please provide exactly two values (lat lon).")
	}

	lat, errLat := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
	if errLat != nil || errLon != nil {
		return Coordinate{}, invalidInput("Latitude and longitude must be numbers.")
	}

	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

// parseCoordinateLine parses a "lat lon" or "lat, lon" line typed at the prompt
func parseCoordinateLine(raw string) (Coordinate, error) {
	raw = strings.TrimSpace(raw)

	var parts []string
	if strings.Contains(raw, ",") {
		for _, p := range strings.Split(raw, ",") {
			parts = append(parts, strings.TrimSpace(p))
		}
	} else {
		parts = strings.Fields(raw)
	}

	if len(parts) != 2 {
		return Coordinate{}, promptInputError("Please provide exactly two values (lat lon).")
	}

	coord, err := parseCoordinateArgs(parts)
	if err != nil {
		return Coordinate{}, promptInputError(err.Error())
	}
	return coord, nil
}

// validateCoordinate enforces latitude in [-90, 90] and longitude in [-180, 180].
// Written as negated ranges so NaN is rejected too.
func validateCoordinate(c Coordinate) error {
	if !(c.Latitude >= -90 && c.Latitude <= 90) {
		return invalidInput("Latitude must be between -90 and 90.")
	}
	if !(c.Longitude >= -180 && c.Longitude <= 180) {
		return invalidInput("Longitude must be between -180 and 180.")
	}
	return nil
}

// parseTimeInput turns user input into a target time. Blank or "now" selects current weather.
func parseTimeInput(raw string) (TargetTime, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "now") {
		return TargetTime{Now: true}, nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return TargetTime{Local: t}, nil
		}
	}

	// Printed without a prefix, unlike coordinate errors
	return TargetTime{}, &InputError{
		Kind: ErrUnparsableTime,
		Msg:  "Could not parse time. Please use 'now' or 'YYYY-MM-DD HH:MM' (local time at the coordinates).",
	}
}
