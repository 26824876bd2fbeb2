package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GeoJSONPoint is the GeoJSON type tag of a single position
const GeoJSONPoint = "Point"

var ErrMalformedLocation = errors.New(`location must be "latitude,longitude"`)

// GeoPoint is a GeoJSON point. Coordinates are stored longitude first.
type GeoPoint struct {
	Type        string     `json:"type" bson:"type"`
	Coordinates [2]float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoPoint builds a point from latitude/longitude in that order.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Type: GeoJSONPoint, Coordinates: [2]float64{lon, lat}}
}

// Longitude returns the first stored coordinate
func (p GeoPoint) Longitude() float64 { return p.Coordinates[0] }

// Latitude returns the second stored coordinate
func (p GeoPoint) Latitude() float64 { return p.Coordinates[1] }

// ParseLatLon parses a "lat,lon" string as submitted by the intake forms.
// No range check is applied.
func ParseLatLon(s string) (GeoPoint, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return GeoPoint{}, ErrMalformedLocation
	}

	lat, err := parseCoordinate(latStr)
	if err != nil {
		return GeoPoint{}, fmt.Errorf("%w: latitude: %v", ErrMalformedLocation, err)
	}
	lon, err := parseCoordinate(lonStr)
	if err != nil {
		return GeoPoint{}, fmt.Errorf("%w: longitude: %v", ErrMalformedLocation, err)
	}

	return NewGeoPoint(lat, lon), nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
