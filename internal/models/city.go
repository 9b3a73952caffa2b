package models

import "fmt"

// City is a registry entry: a display name bound to a geographic point.
// Names are matched exactly, accents included ("São Paulo" != "Sao Paulo").
type City struct {
	Name      string
	Latitude  float64
	Longitude float64
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c City) Coordinates() Coordinates {
	return Coordinates{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

// ValidateCoordinates rejects points outside the valid lat/lon ranges.
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("invalid latitude: %f (must be between -90 and 90)", lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("invalid longitude: %f (must be between -180 and 180)", lon)
	}
	return nil
}
