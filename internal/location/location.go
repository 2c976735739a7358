// Package location abstracts one-shot device location lookups.
package location

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrDenied means the user or platform refused access to location.
	ErrDenied = errors.New("location access denied")

	// ErrUnavailable means no location source exists on this device.
	ErrUnavailable = errors.New("location services unavailable")
)

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.5f, %.5f", c.Latitude, c.Longitude)
}

// Provider performs a single location request.
type Provider interface {
	Request(ctx context.Context) (Coordinates, error)
}

// StaticProvider returns fixed, configured coordinates.
type StaticProvider struct {
	Coords Coordinates
}

func (p StaticProvider) Request(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	return p.Coords, nil
}

// UnavailableProvider is used when no location source is configured.
type UnavailableProvider struct{}

func (UnavailableProvider) Request(context.Context) (Coordinates, error) {
	return Coordinates{}, ErrUnavailable
}

// DeniedProvider always refuses, as if the user declined the permission.
type DeniedProvider struct{}

func (DeniedProvider) Request(context.Context) (Coordinates, error) {
	return Coordinates{}, ErrDenied
}

// ParseCoordinates parses "lat,lon" in decimal degrees.
func ParseCoordinates(s string) (Coordinates, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinates{}, fmt.Errorf("parse coordinates %q: want \"lat,lon\"", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parse longitude: %w", err)
	}
	if lat < -90 || lat > 90 {
		return Coordinates{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinates{}, fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

// FromSetting builds a provider from a configuration value. An empty value
// yields UnavailableProvider and "denied" yields DeniedProvider.
func FromSetting(s string) (Provider, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "":
		return UnavailableProvider{}, nil
	case "denied":
		return DeniedProvider{}, nil
	}
	c, err := ParseCoordinates(s)
	if err != nil {
		return nil, err
	}
	return StaticProvider{Coords: c}, nil
}
