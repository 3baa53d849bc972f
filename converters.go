package main

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"k8s.io/utils/ptr"
)

// roundToNearestHour drops minutes and seconds, moving to the next hour from :30 onwards
func roundToNearestHour(t time.Time) time.Time {
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	if t.Minute() >= 30 {
		base = base.Add(time.Hour)
	}
	return base
}

// hourlyTimestamp formats a time the way the forecast API labels hourly entries
func hourlyTimestamp(t time.Time) string {
	return t.Format("2006-01-02T15:00")
}

// formatValue renders an optional measurement without inventing a value for missing data.
// Integers print as sent; decimals keep at least one fractional digit (0.0, 28.0).
func formatValue(v *json.Number) string {
	n := ptr.Deref(v, "")
	if n == "" {
		return "None"
	}
	if !strings.ContainsAny(n.String(), ".eE") {
		return n.String()
	}

	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// formatCoordinate renders a coordinate component for query strings
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
