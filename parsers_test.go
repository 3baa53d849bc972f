package main

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinateArgs(t *testing.T) {
	t.Parallel()

	coord, err := parseCoordinateArgs([]string{"3.081", "101.585"})
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Latitude: 3.081, Longitude: 101.585}, coord)

	coord, err = parseCoordinateArgs([]string{"-33.8688", "151.2093", "extra"})
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Latitude: -33.8688, Longitude: 151.2093}, coord)

	_, err = parseCoordinateArgs([]string{"north", "101.585"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "Latitude and longitude must be numbers.", err.Error())

	_, err = parseCoordinateArgs([]string{"3.081"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseCoordinateLine(t *testing.T) {
	t.Parallel()

	valid := map[string]Coordinate{
		"3.081 101.585":    {Latitude: 3.081, Longitude: 101.585},
		"3.081, 101.585":   {Latitude: 3.081, Longitude: 101.585},
		"  -1.5,36.8 ":     {Latitude: -1.5, Longitude: 36.8},
		"51.5074\t-0.1278": {Latitude: 51.5074, Longitude: -0.1278},
		"0 0":              {},
		"-90   180":        {Latitude: -90, Longitude: 180},
	}
	for input, want := range valid {
		got, err := parseCoordinateLine(input)
		if assert.NoError(t, err, input) {
			assert.Equal(t, want, got, input)
		}
	}

	invalid := []string{
		"",
		"3.081",
		"1 2 3",
		"3.081,",
		"1,2,3",
		"abc def",
		"3.081 east",
	}
	for _, input := range invalid {
		_, err := parseCoordinateLine(input)
		var inputErr *InputError
		if assert.ErrorAs(t, err, &inputErr, input) {
			assert.ErrorIs(t, err, ErrInvalidInput, input)
			assert.Equal(t, "Input error: ", inputErr.Prefix, input)
		}
	}
}

func TestValidateCoordinate(t *testing.T) {
	t.Parallel()

	for _, lat := range []float64{-90, -45.5, 0, 45.5, 90} {
		for _, lon := range []float64{-180, -90.25, 0, 90.25, 180} {
			assert.NoError(t, validateCoordinate(Coordinate{Latitude: lat, Longitude: lon}), "%v,%v", lat, lon)
		}
	}

	tests := []struct {
		coord Coordinate
		msg   string
	}{
		{Coordinate{Latitude: 90.0001}, "Latitude must be between -90 and 90."},
		{Coordinate{Latitude: -91}, "Latitude must be between -90 and 90."},
		{Coordinate{Latitude: math.NaN()}, "Latitude must be between -90 and 90."},
		{Coordinate{Longitude: 180.5}, "Longitude must be between -180 and 180."},
		{Coordinate{Longitude: -181}, "Longitude must be between -180 and 180."},
		{Coordinate{Longitude: math.Inf(1)}, "Longitude must be between -180 and 180."},
	}
	for _, tt := range tests {
		err := validateCoordinate(tt.coord)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, tt.msg, err.Error())
	}
}

func TestParseTimeInput_now(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "   ", "now", "NOW", "Now "} {
		got, err := parseTimeInput(input)
		require.NoError(t, err, input)
		assert.True(t, got.Now, input)
	}
}

func TestParseTimeInput_layouts(t *testing.T) {
	t.Parallel()

	tests := map[string]time.Time{
		"2024-01-01 12:34": time.Date(2024, 1, 1, 12, 34, 0, 0, time.UTC),
		"2024-01-01T12:34": time.Date(2024, 1, 1, 12, 34, 0, 0, time.UTC),
		"2024-01-01 07":    time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC),
		"2024-01-01T23":    time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
		"2024-6-1 4:05":    time.Date(2024, 6, 1, 4, 5, 0, 0, time.UTC),
		"2024-6-1T4:5":     time.Date(2024, 6, 1, 4, 5, 0, 0, time.UTC),
		"2024-1-1T7":       time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC),
		"2024-12-9 9":      time.Date(2024, 12, 9, 9, 0, 0, 0, time.UTC),
	}
	for input, want := range tests {
		got, err := parseTimeInput(input)
		require.NoError(t, err, input)
		assert.False(t, got.Now, input)
		assert.True(t, want.Equal(got.Local), "%s: got %v", input, got.Local)
	}
}

func TestParseTimeInput_invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"2024-01-01 25:00",
		"2024-13-01 10:00",
		"tomorrow",
		"2024/01/01 10:00",
		"2024-01-01",
		"2024-01-01 10:00:00",
		"2024-6-1 4:60",
		"2024-6-1 4:",
	} {
		_, err := parseTimeInput(input)
		require.ErrorIs(t, err, ErrUnparsableTime, input)
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr, input)
		assert.Empty(t, inputErr.Prefix, input)
		assert.NotErrorIs(t, err, ErrInvalidInput, input)
		assert.Contains(t, err.Error(), "'now' or 'YYYY-MM-DD HH:MM'", input)
	}
}
