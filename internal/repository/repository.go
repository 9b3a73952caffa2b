package repository

import (
	"context"

	"github.com/ecotrip/go-trip-carbon/internal/models"
)

// CityRepository stores the city coordinate table the registry is built from.
// The table is read once at startup; nothing writes to it afterwards.
type CityRepository interface {
	ListCities(ctx context.Context) ([]models.City, error)
	AddCity(ctx context.Context, c models.City) error
}
