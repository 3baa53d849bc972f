package main

import (
	"flag"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseConfig_defaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(nil, envMap(nil), io.Discard)
	require.NoError(t, err)

	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.AtSet)
	assert.False(t, cfg.Locate)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, UnitsMetric, cfg.Units)
	assert.Equal(t, defaultUserAgent, cfg.UserAgent)
	assert.Equal(t, requestTimeout, cfg.Timeout)
	assert.Equal(t, forecastURL, cfg.ForecastURL)
	assert.Equal(t, openMeteoReverseURL, cfg.OpenMeteoReverseURL)
	assert.Equal(t, nominatimReverseURL, cfg.NominatimReverseURL)
	assert.Empty(t, cfg.Args)
}

func TestParseConfig_flags(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig([]string{"-no-color", "-units", "Imperial", "-at", "2024-06-01 04:10", "-verbose", "3.081", "101.585"}, envMap(nil), io.Discard)
	require.NoError(t, err)

	assert.True(t, cfg.NoColor)
	assert.Equal(t, UnitsImperial, cfg.Units)
	assert.True(t, cfg.AtSet)
	assert.Equal(t, "2024-06-01 04:10", cfg.At)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"3.081", "101.585"}, cfg.Args)
}

func TestParseConfig_negativeCoordinates(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig([]string{"-33.8688", "-151.2093"}, envMap(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"-33.8688", "-151.2093"}, cfg.Args)

	cfg, err = parseConfig([]string{"-no-color", "-33.8688", "151.2093"}, envMap(nil), io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, []string{"-33.8688", "151.2093"}, cfg.Args)
}

func TestParseConfig_emptyAtMeansNow(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig([]string{"-at", ""}, envMap(nil), io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.AtSet)

	target, err := parseTimeInput(cfg.At)
	require.NoError(t, err)
	assert.True(t, target.Now)
}

func TestParseConfig_env(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(nil, envMap(map[string]string{
		"NO_COLOR":           "1",
		"WXPOINT_LOG_LEVEL":  "info",
		"WXPOINT_USER_AGENT": "MyScript/2.0 (me@example.com)",
	}), io.Discard)
	require.NoError(t, err)

	assert.True(t, cfg.NoColor)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "MyScript/2.0 (me@example.com)", cfg.UserAgent)
}

func TestParseConfig_errors(t *testing.T) {
	t.Parallel()

	_, err := parseConfig([]string{"-units", "kelvin"}, envMap(nil), io.Discard)
	assert.ErrorContains(t, err, "invalid -units")

	_, err = parseConfig(nil, envMap(map[string]string{"WXPOINT_LOG_LEVEL": "loud"}), io.Discard)
	assert.ErrorContains(t, err, "invalid WXPOINT_LOG_LEVEL")

	_, err = parseConfig([]string{"-bogus"}, envMap(nil), io.Discard)
	assert.Error(t, err)

	_, err = parseConfig([]string{"-h"}, envMap(nil), io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestSeparatePositionals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want []string
	}{
		{nil, nil},
		{[]string{"-no-color"}, []string{"-no-color"}},
		{[]string{"-5", "10"}, []string{"--", "-5", "10"}},
		{[]string{"-verbose", "5", "-10"}, []string{"-verbose", "--", "5", "-10"}},
		{[]string{"--", "-5", "10"}, []string{"--", "-5", "10"}},
		{[]string{"-at", "now", "1e1", "2"}, []string{"-at", "now", "--", "1e1", "2"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, separatePositionals(tt.in), tt.in)
	}
}
