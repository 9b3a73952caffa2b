// Package emission converts trip distances into CO2 mass per transport mode
// and ranks modes against the car baseline.
package emission

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ecotrip/go-trip-carbon/internal/models"
)

// ErrNegativeDistance signals a distance below zero. Callers are expected to
// validate input before invoking the engine; the engine still refuses to
// produce nonsense.
var ErrNegativeDistance = errors.New("distance must be >= 0")

// Engine computes emissions from an immutable factor table (kg CO2 per km).
// Safe for concurrent use.
type Engine struct {
	factors map[models.TransportMode]float64
}

// NewEngine builds an engine over a factor table. Every mode in the
// enumeration must have a non-negative factor; anything else is a
// configuration error.
func NewEngine(factors map[models.TransportMode]float64) (*Engine, error) {
	own := make(map[models.TransportMode]float64, len(factors))
	for _, mode := range models.AllModes() {
		factor, ok := factors[mode]
		if !ok {
			return nil, fmt.Errorf("no emission factor for mode %s", mode)
		}
		if factor < 0 {
			return nil, fmt.Errorf("negative emission factor for mode %s: %f", mode, factor)
		}
		own[mode] = factor
	}
	return &Engine{factors: own}, nil
}

// For returns the CO2 emission in kg for a trip of distanceKm under the given
// mode, rounded to 2 decimal places. Zero-factor modes always yield exactly 0.
func (e *Engine) For(distanceKm float64, mode models.TransportMode) (float64, error) {
	if distanceKm < 0 {
		return 0, fmt.Errorf("%w, got %f", ErrNegativeDistance, distanceKm)
	}
	factor, ok := e.factors[mode]
	if !ok {
		return 0, fmt.Errorf("%w: %q", models.ErrUnknownMode, mode)
	}
	return round2(distanceKm * factor), nil
}

// CompareAll ranks every configured mode for the given distance, ascending by
// emission. Ties keep mode declaration order (stable sort). Each entry carries
// its emission as a percentage of the car emission; when the car emission is 0
// the percentage is undefined and flagged as such.
func (e *Engine) CompareAll(distanceKm float64) ([]models.ComparisonEntry, error) {
	if distanceKm < 0 {
		return nil, fmt.Errorf("%w, got %f", ErrNegativeDistance, distanceKm)
	}

	carEmission := distanceKm * e.factors[models.ModeCar]

	entries := make([]models.ComparisonEntry, 0, len(e.factors))
	for _, mode := range models.AllModes() {
		kg := distanceKm * e.factors[mode]
		entry := models.ComparisonEntry{
			Mode:       mode,
			EmissionKg: round2(kg),
		}
		if carEmission != 0 {
			entry.PercentOfCar = round2(kg / carEmission * 100)
			entry.PercentDefined = true
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EmissionKg < entries[j].EmissionKg
	})

	return entries, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
