package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ecotrip/go-trip-carbon/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}
	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("error while seeding city table: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS cities (
			name TEXT PRIMARY KEY,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// seed inserts the default city table. INSERT OR IGNORE keeps it idempotent,
// so a database that was provisioned with its own cities is left untouched.
func (s *SQLiteDB) seed() error {
	stmt, err := s.db.Prepare(`INSERT OR IGNORE INTO cities (name, latitude, longitude) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range DefaultCities {
		if _, err := stmt.Exec(c.Name, c.Latitude, c.Longitude); err != nil {
			return fmt.Errorf("seeding city %s: %w", c.Name, err)
		}
	}
	return nil
}

func (s *SQLiteDB) ListCities(ctx context.Context) ([]models.City, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, latitude, longitude FROM cities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing cities: %w", err)
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.Name, &c.Latitude, &c.Longitude); err != nil {
			return nil, fmt.Errorf("error scanning city row: %w", err)
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (s *SQLiteDB) AddCity(ctx context.Context, c models.City) error {
	if err := models.ValidateCoordinates(c.Latitude, c.Longitude); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO cities (name, latitude, longitude) VALUES (?, ?, ?)`,
		c.Name, c.Latitude, c.Longitude)
	if err != nil {
		return fmt.Errorf("error adding city %s: %w", c.Name, err)
	}
	return nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
