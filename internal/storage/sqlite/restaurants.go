package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/internal/storage"
)

const restaurantColumns = "_id, name, description, image_res_id, image_path, address"

// CreateRestaurant inserts a new restaurant and sets its ID.
func (s *SQLiteStore) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	if restaurant.ImageResID == 0 {
		restaurant.ImageResID = models.DefaultImageResID
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO restaurants (name, description, image_res_id, image_path, address)
		 VALUES (?, ?, ?, ?, ?)`,
		restaurant.Name, restaurant.Description, restaurant.ImageResID,
		nullable(restaurant.ImagePath), restaurant.Address,
	)
	if err != nil {
		return fmt.Errorf("failed to insert restaurant: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read restaurant id: %w", err)
	}
	restaurant.ID = id

	return nil
}

// GetRestaurant retrieves a restaurant by ID.
func (s *SQLiteStore) GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants WHERE _id = ?",
		id,
	)

	restaurant, err := scanRestaurant(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("restaurant %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return restaurant, nil
}

// ListRestaurants returns every restaurant in insertion order.
func (s *SQLiteStore) ListRestaurants(ctx context.Context) ([]*models.Restaurant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants ORDER BY _id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*models.Restaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}

	return restaurants, nil
}

// UpdateRestaurant overwrites name, description, image and address of a restaurant.
func (s *SQLiteStore) UpdateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE restaurants
		 SET name = ?, description = ?, image_res_id = ?, image_path = ?, address = ?
		 WHERE _id = ?`,
		restaurant.Name, restaurant.Description, restaurant.ImageResID,
		nullable(restaurant.ImagePath), restaurant.Address, restaurant.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	return requireOneRow(result, "restaurant", restaurant.ID)
}

// DeleteRestaurant removes exactly one restaurant row. Its products stay in
// place until RestoreRestaurant moves them to the restored row.
func (s *SQLiteStore) DeleteRestaurant(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM restaurants WHERE _id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}

	return requireOneRow(result, "restaurant", id)
}

// RestoreRestaurant re-inserts a deleted restaurant under a new ID and moves
// the products still pointing at previousID to it, in one transaction.
func (s *SQLiteStore) RestoreRestaurant(ctx context.Context, restaurant *models.Restaurant, previousID int64) error {
	if restaurant.ImageResID == 0 {
		restaurant.ImageResID = models.DefaultImageResID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO restaurants (name, description, image_res_id, image_path, address)
		 VALUES (?, ?, ?, ?, ?)`,
		restaurant.Name, restaurant.Description, restaurant.ImageResID,
		nullable(restaurant.ImagePath), restaurant.Address,
	)
	if err != nil {
		return fmt.Errorf("failed to insert restaurant: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read restaurant id: %w", err)
	}

	if previousID > 0 {
		if _, err := tx.ExecContext(ctx,
			`UPDATE products SET restaurant_id = ?
			 WHERE restaurant_id = ? AND NOT EXISTS (SELECT 1 FROM restaurants WHERE _id = ?)`,
			id, previousID, previousID,
		); err != nil {
			return fmt.Errorf("failed to reattach products: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	restaurant.ID = id

	return nil
}

// RestaurantAddress returns the stored address of a restaurant, empty when unset.
func (s *SQLiteStore) RestaurantAddress(ctx context.Context, id int64) (string, error) {
	var address sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT address FROM restaurants WHERE _id = ?", id).Scan(&address)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("restaurant %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get restaurant address: %w", err)
	}
	return address.String, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row scanner) (*models.Restaurant, error) {
	restaurant := &models.Restaurant{}
	var imageResID sql.NullInt64
	var imagePath, address sql.NullString

	if err := row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Description,
		&imageResID,
		&imagePath,
		&address,
	); err != nil {
		return nil, err
	}

	restaurant.ImageResID = imageResID.Int64
	restaurant.ImagePath = imagePath.String
	restaurant.Address = address.String

	return restaurant, nil
}

// requireOneRow turns a zero-row update or delete into storage.ErrNotFound.
func requireOneRow(result sql.Result, kind string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}
