package repository

import "github.com/ecotrip/go-trip-carbon/internal/models"

// DefaultCities is the city table seeded on first boot. Coordinates are city
// centers in decimal degrees.
var DefaultCities = []models.City{
	{Name: "Belo Horizonte", Latitude: -19.9167, Longitude: -43.9345},
	{Name: "Belém", Latitude: -1.4558, Longitude: -48.4902},
	{Name: "Brasília", Latitude: -15.7939, Longitude: -47.8828},
	{Name: "Campinas", Latitude: -22.9056, Longitude: -47.0608},
	{Name: "Campo Grande", Latitude: -20.4697, Longitude: -54.6201},
	{Name: "Curitiba", Latitude: -25.4284, Longitude: -49.2733},
	{Name: "Florianópolis", Latitude: -27.5954, Longitude: -48.5480},
	{Name: "Fortaleza", Latitude: -3.7319, Longitude: -38.5267},
	{Name: "Goiânia", Latitude: -16.6869, Longitude: -49.2648},
	{Name: "Maceió", Latitude: -9.6658, Longitude: -35.7353},
	{Name: "Manaus", Latitude: -3.1190, Longitude: -60.0217},
	{Name: "Natal", Latitude: -5.7945, Longitude: -35.2110},
	{Name: "Porto Alegre", Latitude: -30.0346, Longitude: -51.2177},
	{Name: "Recife", Latitude: -8.0476, Longitude: -34.8770},
	{Name: "Rio de Janeiro", Latitude: -22.9068, Longitude: -43.1729},
	{Name: "Salvador", Latitude: -12.9777, Longitude: -38.5016},
	{Name: "São Luís", Latitude: -2.5307, Longitude: -44.3068},
	{Name: "São Paulo", Latitude: -23.5505, Longitude: -46.6333},
}
