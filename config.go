package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Config is loaded once at startup and never mutated afterwards
type Config struct {
	NoColor   bool
	LogLevel  slog.Level
	Units     UnitSystem
	At        string
	AtSet     bool
	Locate    bool
	UserAgent string
	Timeout   time.Duration

	ForecastURL         string
	OpenMeteoReverseURL string
	NominatimReverseURL string
	IPLocateURL         string

	// Positional arguments left after flag parsing
	Args []string
}

func defaultConfig() Config {
	return Config{
		LogLevel:            slog.LevelWarn,
		Units:               UnitsMetric,
		UserAgent:           defaultUserAgent,
		Timeout:             requestTimeout,
		ForecastURL:         forecastURL,
		OpenMeteoReverseURL: openMeteoReverseURL,
		NominatimReverseURL: nominatimReverseURL,
		IPLocateURL:         ipLocateURL,
	}
}

// parseConfig reads flags from args and settings from the environment via getenv
func parseConfig(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("wxpoint", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: wxpoint [flags] [latitude longitude]")
		fs.PrintDefaults()
	}

	noColor := fs.Bool("no-color", false, "Disable color output")
	verbose := fs.Bool("verbose", false, "Log upstream requests to stderr")
	units := fs.String("units", string(UnitsMetric), "Unit system: metric or imperial")
	at := fs.String("at", "", "Time to query: now, YYYY-MM-DD HH:MM, YYYY-MM-DDTHH:MM, YYYY-MM-DD HH or YYYY-MM-DDTHH")
	locate := fs.Bool("locate", false, "Use IP geolocation instead of entering coordinates")

	if err := fs.Parse(separatePositionals(args)); err != nil {
		return Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "at" {
			cfg.AtSet = true
		}
	})

	cfg.NoColor = *noColor || getenv("NO_COLOR") != ""
	cfg.At = *at
	cfg.Locate = *locate
	cfg.Args = fs.Args()

	switch UnitSystem(strings.ToLower(*units)) {
	case UnitsMetric:
		cfg.Units = UnitsMetric
	case UnitsImperial:
		cfg.Units = UnitsImperial
	default:
		return Config{}, fmt.Errorf("invalid -units %q (allowed: metric, imperial)", *units)
	}

	if lvl := strings.TrimSpace(getenv("WXPOINT_LOG_LEVEL")); lvl != "" {
		level, err := parseLogLevel(lvl)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}

	if ua := strings.TrimSpace(getenv("WXPOINT_USER_AGENT")); ua != "" {
		cfg.UserAgent = ua
	}

	return cfg, nil
}

// separatePositionals ends flag parsing at the first numeric token so that a negative
// latitude such as -33.86 is not mistaken for a flag.
func separatePositionals(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if _, err := strconv.ParseFloat(arg, 64); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid WXPOINT_LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
