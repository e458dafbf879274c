package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the schema version written to PRAGMA user_version after migrating.
const SchemaVersion = 4

// addressColumnVersion is the first schema version that carries restaurants.address.
// Databases created by releases at version 3 or lower may lack the column.
const addressColumnVersion = 4

// schema creates the tables of a fresh database at SchemaVersion.
// The products foreign key is declared without cascading behaviour and is not
// enforced, so products outlive a deleted restaurant.
const schema = `
CREATE TABLE IF NOT EXISTS restaurants (
    _id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    image_res_id INTEGER,
    image_path TEXT,
    address TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS products (
    _id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    unit TEXT NOT NULL,
    quantity REAL NOT NULL CHECK (quantity >= 0),
    restaurant_id INTEGER NOT NULL,
    FOREIGN KEY (restaurant_id) REFERENCES restaurants(_id)
);

CREATE INDEX IF NOT EXISTS idx_products_restaurant_id ON products(restaurant_id);
`

// runMigrations brings the database to SchemaVersion.
// A fresh file (user_version 0) gets the full schema. Older files are upgraded
// in place without dropping data.
func runMigrations(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback()

	var version int
	if err := tx.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > SchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, SchemaVersion)
	}

	if version == 0 {
		if _, err := tx.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if version < addressColumnVersion {
		if err := addAddressColumn(ctx, tx); err != nil {
			return err
		}
	}

	if version != SchemaVersion {
		// PRAGMA does not accept bound parameters.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}
	return nil
}

// addAddressColumn adds restaurants.address when it is missing.
// Existing rows read back an empty string.
func addAddressColumn(ctx context.Context, tx *sql.Tx) error {
	exists, err := hasColumn(ctx, tx, RestaurantsTable, RestaurantColumnAddress)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT DEFAULT ''", RestaurantsTable, RestaurantColumnAddress)
	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to add address column: %w", err)
	}
	return nil
}

func hasColumn(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	var count int
	err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?",
		table, column,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	return count > 0, nil
}
