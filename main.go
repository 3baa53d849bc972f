package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
)

const appName = "wxpoint"

// App wires the geocoder and forecast client for a single lookup
type App struct {
	cfg      Config
	logger   *slog.Logger
	http     *resty.Client
	geocoder *ReverseGeocoder
	forecast *ForecastClient
}

func newApp(cfg Config, logger *slog.Logger) *App {
	client := newRestClient(cfg.UserAgent, cfg.Timeout, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		http:   client,
		geocoder: NewReverseGeocoder(logger,
			NewOpenMeteoGeocoder(client, cfg.OpenMeteoReverseURL),
			NewNominatimGeocoder(client, cfg.NominatimReverseURL),
		),
		forecast: NewForecastClient(client, cfg.ForecastURL, cfg.Units, logger),
	}
}

// coordinates takes the position from IP geolocation, positional arguments or the prompt, in that order
func (a *App) coordinates(ctx context.Context, p *Prompter) (Coordinate, error) {
	if a.cfg.Locate {
		return LocateByIP(ctx, a.http, a.cfg.IPLocateURL)
	}
	if len(a.cfg.Args) >= 2 {
		return parseCoordinateArgs(a.cfg.Args)
	}
	return p.promptForCoordinates()
}

func (a *App) targetTime(p *Prompter) (TargetTime, error) {
	if a.cfg.AtSet {
		return parseTimeInput(a.cfg.At)
	}
	return p.promptForTime()
}

// run performs one lookup and writes the report to out
func (a *App) run(ctx context.Context, in io.Reader, out io.Writer) error {
	prompter := newPrompter(in, out)

	coord, err := a.coordinates(ctx, prompter)
	if err != nil {
		return err
	}
	if err := validateCoordinate(coord); err != nil {
		return err
	}

	location := a.geocoder.Resolve(ctx, coord)
	label := location.Label
	if label == "" {
		label = coord.String()
	}
	a.logger.Debug("location resolved", "label", label, "source", location.Source)

	target, err := a.targetTime(prompter)
	if err != nil {
		return err
	}

	if target.Now {
		reading, err := a.forecast.Current(ctx, coord)
		if err != nil {
			return err
		}
		printLines(out, formatReport(label, coord, reading, true))
		return nil
	}

	result, err := a.forecast.At(ctx, coord, target.Local)
	if err != nil {
		return err
	}
	if !result.Found {
		printLines(out, formatLocation(label, coord))
		return &NoDataError{Reason: result.Reason}
	}

	printLines(out, formatReport(label, coord, result.Reading, false))
	return nil
}

func main() {
	// A .env file is optional
	envErr := godotenv.Load()

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.NoColor {
		color.NoColor = true // disables colorized output globally
	}

	logger := newLogger(os.Stderr, cfg.LogLevel, cfg.NoColor)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Debug("no .env file loaded", "err", envErr)
	}

	if err := newApp(cfg, logger).run(context.Background(), os.Stdin, os.Stdout); err != nil {
		logger.Debug("lookup failed", "err", err)
		printError(os.Stdout, err)
		os.Exit(1)
	}
}
