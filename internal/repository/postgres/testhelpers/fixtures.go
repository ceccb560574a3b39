package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lib/pq"
)

// Fixture users from testdata/fixtures/users.sql
const (
	UserAlice = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	UserBob   = "9b2d3a4f-1c3e-4a5b-8d7e-6f1a2b3c4d5e"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// GetUserPlaces reads a user's place list directly, bypassing repositories
func GetUserPlaces(db *sql.DB, userID string) ([]string, error) {
	var places pq.StringArray
	err := db.QueryRowContext(context.Background(),
		"SELECT places::text[] FROM users WHERE id = $1", userID).Scan(&places)
	if err != nil {
		return nil, fmt.Errorf("get places of user %s: %w", userID, err)
	}
	return []string(places), nil
}

// CountPlaces returns the number of place rows with the given id
func CountPlaces(db *sql.DB, placeID string) (int, error) {
	var n int
	err := db.QueryRowContext(context.Background(),
		"SELECT count(*) FROM places WHERE id = $1", placeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count places %s: %w", placeID, err)
	}
	return n, nil
}
