package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color definitions using fatih/color
var (
	labelColor   = color.New(color.FgCyan)
	sectionColor = color.New(color.FgBlue)
)

// formatLocation renders the place and coordinate lines that open every report
func formatLocation(label string, coord Coordinate) []string {
	return []string{
		"Location: " + label,
		"Coordinates: " + coord.String(),
	}
}

// formatReading renders the conditions block. Spacing between value and unit differs per field.
func formatReading(r WeatherReading) []string {
	return []string{
		fmt.Sprintf("- Conditions: %s", r.Description),
		fmt.Sprintf("- Temperature: %s%s (feels like %s%s)",
			formatValue(r.Temperature.Value), r.Temperature.Unit,
			formatValue(r.FeelsLike.Value), r.FeelsLike.Unit),
		fmt.Sprintf("- Humidity: %s%s    Pressure: %s %s",
			formatValue(r.Humidity.Value), r.Humidity.Unit,
			formatValue(r.Pressure.Value), r.Pressure.Unit),
		fmt.Sprintf("- Wind: %s %s at %s%s",
			formatValue(r.WindSpeed.Value), r.WindSpeed.Unit,
			formatValue(r.WindDir.Value), r.WindDir.Unit),
		fmt.Sprintf("- Cloud cover: %s%s    Precipitation: %s %s",
			formatValue(r.CloudCover.Value), r.CloudCover.Unit,
			formatValue(r.Precipitation.Value), r.Precipitation.Unit),
	}
}

// mapURL links the coordinate on openstreetmap.org
func mapURL(coord Coordinate) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=12/%.6f/%.6f",
		coord.Latitude, coord.Longitude, coord.Latitude, coord.Longitude)
}

// formatReport assembles the full report in display order
func formatReport(label string, coord Coordinate, r WeatherReading, isCurrent bool) []string {
	lines := formatLocation(label, coord)

	if isCurrent {
		lines = append(lines, fmt.Sprintf("Current weather at local time %s:", r.Time))
	} else {
		lines = append(lines, fmt.Sprintf("Weather at local time %s (nearest hour to your input):", r.Time))
	}

	lines = append(lines, formatReading(r)...)
	lines = append(lines, "- Map: "+mapURL(coord))
	return lines
}

// printLines writes report lines, colouring the label before the first ": ".
// Header lines ending in ':' are coloured as sections.
func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		if strings.HasSuffix(line, ":") {
			sectionColor.Fprintln(w, line)
			continue
		}

		label, rest, found := strings.Cut(line, ": ")
		if !found {
			fmt.Fprintln(w, line)
			continue
		}
		labelColor.Fprint(w, label+": ")
		fmt.Fprintln(w, rest)
	}
}
