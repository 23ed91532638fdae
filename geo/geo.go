// SPDX-License-Identifier: MIT
// Package geo holds WGS84 coordinates and great-circle distance.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

// ErrInvalidCoordinates indicates latitude outside [-90,90] or longitude outside [-180,180].
var ErrInvalidCoordinates = errors.New("geo: coordinates out of range")

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Validate reports ErrInvalidCoordinates for out-of-range or NaN values.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: lat=%v lng=%v", ErrInvalidCoordinates, c.Lat, c.Lng)
	}

	return nil
}

// Distance returns the great-circle distance between from and to in meters,
// using the haversine formula. Coincident points are exactly 0.
func Distance(from, to Coordinates) float64 {
	if from == to {
		return 0
	}

	phi1 := toRadians(from.Lat)
	phi2 := toRadians(to.Lat)
	deltaPhi := toRadians(to.Lat - from.Lat)
	deltaLambda := toRadians(to.Lng - from.Lng)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
