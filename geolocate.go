package main

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ipLocation is the subset of the ip-api.com response we use
type ipLocation struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Region  string  `json:"regionName"`
	Country string  `json:"country"`
}

// LocateByIP uses a free IP geolocation service to approximate the caller's coordinates.
// ip-api.com is free for non-commercial use.
func LocateByIP(ctx context.Context, client *resty.Client, url string) (Coordinate, error) {
	var result ipLocation
	if err := getJSON(ctx, client, url, nil, &result); err != nil {
		return Coordinate{}, fmt.Errorf("error fetching location: %w", err)
	}

	if result.Status != "success" {
		return Coordinate{}, fmt.Errorf("geolocation failed: %s", result.Message)
	}

	return Coordinate{Latitude: result.Lat, Longitude: result.Lon}, nil
}
