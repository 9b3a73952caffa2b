package repository

import (
	"context"
	"testing"

	"github.com/ecotrip/go-trip-carbon/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteDB {
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	return db
}

func TestSQLiteDB_SeedsDefaultCities(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cities, err := db.ListCities(context.Background())
	if err != nil {
		t.Fatalf("ListCities failed: %v", err)
	}
	if len(cities) != len(DefaultCities) {
		t.Fatalf("expected %d seeded cities, got %d", len(DefaultCities), len(cities))
	}

	found := false
	for _, c := range cities {
		if c.Name == "São Paulo" {
			found = true
			if c.Latitude != -23.5505 || c.Longitude != -46.6333 {
				t.Errorf("unexpected São Paulo coordinates: %f, %f", c.Latitude, c.Longitude)
			}
		}
	}
	if !found {
		t.Error("expected São Paulo in seeded cities")
	}
}

func TestSQLiteDB_SeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// Running seed again must not duplicate or overwrite rows.
	if err := db.seed(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	cities, err := db.ListCities(context.Background())
	if err != nil {
		t.Fatalf("ListCities failed: %v", err)
	}
	if len(cities) != len(DefaultCities) {
		t.Errorf("expected %d cities after reseed, got %d", len(DefaultCities), len(cities))
	}
}

func TestSQLiteDB_AddCity(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	err := db.AddCity(ctx, models.City{Name: "Uberlândia", Latitude: -18.9186, Longitude: -48.2772})
	if err != nil {
		t.Fatalf("AddCity failed: %v", err)
	}

	cities, err := db.ListCities(ctx)
	if err != nil {
		t.Fatalf("ListCities failed: %v", err)
	}
	if len(cities) != len(DefaultCities)+1 {
		t.Errorf("expected %d cities, got %d", len(DefaultCities)+1, len(cities))
	}
}

func TestSQLiteDB_AddCity_RejectsBadCoordinates(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := db.AddCity(context.Background(), models.City{Name: "Nowhere", Latitude: 91, Longitude: 0})
	if err == nil {
		t.Fatal("expected error for latitude out of range")
	}
}

func TestSQLiteDB_ListCities_SortedByName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cities, err := db.ListCities(context.Background())
	if err != nil {
		t.Fatalf("ListCities failed: %v", err)
	}
	for i := 1; i < len(cities); i++ {
		if cities[i-1].Name > cities[i].Name {
			t.Errorf("cities not sorted: %q before %q", cities[i-1].Name, cities[i].Name)
		}
	}
}
