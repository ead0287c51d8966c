package sqlite

import "github.com/jmoiron/sqlx"

// Schema statements mirror migrations/0001_init.sql for the Postgres
// backend. Idempotent; applied on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		building TEXT,
		block TEXT,
		road TEXT NOT NULL,
		address TEXT NOT NULL,
		postal_code TEXT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS facility_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		slug TEXT,
		description TEXT,
		display_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS amenities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		is_multiple_applicable INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS facilities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		location_id INTEGER NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
		facility_type_id INTEGER NOT NULL REFERENCES facility_types(id) ON DELETE CASCADE,
		floor TEXT,
		description TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		has_diaper_changing_station INTEGER NOT NULL DEFAULT 1,
		has_lactation_room INTEGER NOT NULL DEFAULT 0,
		how_to_access TEXT,
		created_by TEXT NOT NULL,
		females_only INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS facility_amenities (
		facility_id INTEGER NOT NULL REFERENCES facilities(id) ON DELETE CASCADE,
		amenity_id INTEGER NOT NULL REFERENCES amenities(id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (facility_id, amenity_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_facilities_location_id ON facilities(location_id)`,
	`CREATE INDEX IF NOT EXISTS idx_facilities_facility_type_id ON facilities(facility_type_id)`,
	`CREATE INDEX IF NOT EXISTS idx_locations_address ON locations(address)`,
}

func migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
