// Package registry holds the immutable city coordinate table and derives
// great-circle distances from it.
package registry

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ecotrip/go-trip-carbon/internal/models"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// ErrCityNotFound signals a city name with no registry entry. Callers are
// expected to fall back to a manually supplied distance.
var ErrCityNotFound = errors.New("city not found")

// Registry is a read-only city -> coordinates mapping. Built once at startup;
// safe for concurrent use without locking.
type Registry struct {
	cities map[string]models.Coordinates
	names  []string
}

// New builds a registry from a city list. Coordinates out of range are a
// configuration error and abort the load.
func New(cities []models.City) (*Registry, error) {
	r := &Registry{
		cities: make(map[string]models.Coordinates, len(cities)),
		names:  make([]string, 0, len(cities)),
	}

	for _, c := range cities {
		if err := models.ValidateCoordinates(c.Latitude, c.Longitude); err != nil {
			return nil, fmt.Errorf("city %s: %w", c.Name, err)
		}
		if _, exists := r.cities[c.Name]; exists {
			return nil, fmt.Errorf("duplicate city: %s", c.Name)
		}
		r.cities[c.Name] = c.Coordinates()
		r.names = append(r.names, c.Name)
	}
	sort.Strings(r.names)

	return r, nil
}

// List returns all city names in alphabetical order. The returned slice is a
// copy; callers may not mutate registry state through it.
func (r *Registry) List() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Lookup resolves a city name to its coordinates. Matching is exact, accents
// included.
func (r *Registry) Lookup(name string) (models.Coordinates, error) {
	coords, ok := r.cities[name]
	if !ok {
		return models.Coordinates{}, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}
	return coords, nil
}

// DistanceBetween computes the great-circle distance in kilometers between
// two registered cities, rounded to 2 decimal places. It is symmetric and
// zero when origin and destination are the same city.
func (r *Registry) DistanceBetween(origin, destination string) (float64, error) {
	from, err := r.Lookup(origin)
	if err != nil {
		return 0, err
	}
	to, err := r.Lookup(destination)
	if err != nil {
		return 0, err
	}
	return round2(Haversine(from.Latitude, from.Longitude, to.Latitude, to.Longitude)), nil
}

// Haversine returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
