package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ReverseGeocodeProvider resolves a coordinate to a place. An empty Label with a nil
// error means the provider had nothing for that point.
type ReverseGeocodeProvider interface {
	Name() string
	ReverseGeocode(ctx context.Context, coord Coordinate) (LocationLabel, error)
}

// ReverseGeocoder tries its providers in order and stops at the first usable label
type ReverseGeocoder struct {
	providers []ReverseGeocodeProvider
	logger    *slog.Logger
}

func NewReverseGeocoder(logger *slog.Logger, providers ...ReverseGeocodeProvider) *ReverseGeocoder {
	return &ReverseGeocoder{providers: providers, logger: logger}
}

// Resolve never fails: when no provider yields a label the zero LocationLabel is returned
// and the caller shows the raw coordinates instead.
func (g *ReverseGeocoder) Resolve(ctx context.Context, coord Coordinate) LocationLabel {
	for _, p := range g.providers {
		loc, err := p.ReverseGeocode(ctx, coord)
		if err != nil {
			g.logger.Debug("reverse geocoding failed", "provider", p.Name(), "err", err)
			continue
		}
		if loc.Label != "" {
			g.logger.Debug("reverse geocoded", "provider", p.Name(), "label", loc.Label)
			return loc
		}
		g.logger.Debug("reverse geocoding returned no label", "provider", p.Name())
	}
	return LocationLabel{Source: SourceNone}
}

// OpenMeteoGeocoder queries the Open-Meteo reverse geocoding API
type OpenMeteoGeocoder struct {
	client *resty.Client
	url    string
}

func NewOpenMeteoGeocoder(client *resty.Client, url string) *OpenMeteoGeocoder {
	return &OpenMeteoGeocoder{client: client, url: url}
}

func (g *OpenMeteoGeocoder) Name() string { return string(SourceOpenMeteo) }

type openMeteoReverseResponse struct {
	Results []struct {
		Name        string `json:"name"`
		Admin1      string `json:"admin1"`
		Admin2      string `json:"admin2"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"results"`
}

func (g *OpenMeteoGeocoder) ReverseGeocode(ctx context.Context, coord Coordinate) (LocationLabel, error) {
	params := map[string]string{
		"latitude":  formatCoordinate(coord.Latitude),
		"longitude": formatCoordinate(coord.Longitude),
		"language":  "en",
		"format":    "json",
	}

	var result openMeteoReverseResponse
	if err := getJSON(ctx, g.client, g.url, params, &result); err != nil {
		return LocationLabel{}, err
	}
	if len(result.Results) == 0 {
		return LocationLabel{}, nil
	}

	item := result.Results[0]
	countryCode := strings.ToUpper(item.CountryCode)

	return LocationLabel{
		Label:       joinLabel(item.Name, firstNonEmpty(item.Admin2, item.Admin1), firstNonEmpty(countryCode, item.Country)),
		Name:        item.Name,
		Admin1:      item.Admin1,
		Admin2:      item.Admin2,
		Country:     item.Country,
		CountryCode: countryCode,
		Source:      SourceOpenMeteo,
	}, nil
}

// NominatimGeocoder queries an OpenStreetMap Nominatim-compatible reverse endpoint.
// Nominatim's usage policy requires an identifying User-Agent, which the shared client sets.
type NominatimGeocoder struct {
	client *resty.Client
	url    string
}

func NewNominatimGeocoder(client *resty.Client, url string) *NominatimGeocoder {
	return &NominatimGeocoder{client: client, url: url}
}

func (g *NominatimGeocoder) Name() string { return string(SourceOSM) }

type nominatimReverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Suburb      string `json:"suburb"`
		Hamlet      string `json:"hamlet"`
		County      string `json:"county"`
		State       string `json:"state"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

func (g *NominatimGeocoder) ReverseGeocode(ctx context.Context, coord Coordinate) (LocationLabel, error) {
	params := map[string]string{
		"format":         "jsonv2",
		"lat":            formatCoordinate(coord.Latitude),
		"lon":            formatCoordinate(coord.Longitude),
		"addressdetails": "1",
		"zoom":           "12",
	}

	var result nominatimReverseResponse
	if err := getJSON(ctx, g.client, g.url, params, &result); err != nil {
		return LocationLabel{}, err
	}

	addr := result.Address
	name := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Suburb, addr.Hamlet)
	countryCode := strings.ToUpper(addr.CountryCode)

	label := joinLabel(name, addr.State, firstNonEmpty(countryCode, addr.Country))
	if label == "" {
		label = result.DisplayName
	}

	return LocationLabel{
		Label:       label,
		Name:        name,
		Admin1:      addr.State,
		Admin2:      addr.County,
		Country:     addr.Country,
		CountryCode: countryCode,
		Source:      SourceOSM,
	}, nil
}
