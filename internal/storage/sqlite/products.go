package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/internal/storage"
)

// insertProduct writes a product only when its restaurant exists, since the
// foreign key is not enforced by the connection.
const insertProduct = `INSERT INTO products (name, unit, quantity, restaurant_id)
	SELECT ?, ?, ?, _id FROM restaurants WHERE _id = ?`

// CreateProduct inserts a new product and sets its ID.
func (s *SQLiteStore) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.Quantity < 0 {
		return storage.ErrNegativeQuantity
	}

	result, err := s.db.ExecContext(ctx, insertProduct,
		product.Name, product.Unit, product.Quantity, product.RestaurantID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	if err := requireOneRow(result, "restaurant", product.RestaurantID); err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read product id: %w", err)
	}
	product.ID = id

	return nil
}

// BulkInsertProducts inserts all products in one transaction.
// If any row fails, nothing is written and no product ID is assigned.
func (s *SQLiteStore) BulkInsertProducts(ctx context.Context, products []*models.Product) error {
	for _, product := range products {
		if product.Quantity < 0 {
			return fmt.Errorf("product %q: %w", product.Name, storage.ErrNegativeQuantity)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertProduct)
	if err != nil {
		return fmt.Errorf("failed to prepare product insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, len(products))
	for i, product := range products {
		result, err := stmt.ExecContext(ctx, product.Name, product.Unit, product.Quantity, product.RestaurantID)
		if err != nil {
			return fmt.Errorf("failed to insert product %q: %w", product.Name, err)
		}
		if err := requireOneRow(result, "restaurant", product.RestaurantID); err != nil {
			return fmt.Errorf("product %q: %w", product.Name, err)
		}
		if ids[i], err = result.LastInsertId(); err != nil {
			return fmt.Errorf("failed to read product id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	for i, product := range products {
		product.ID = ids[i]
	}

	return nil
}

// GetProduct retrieves a product by ID.
func (s *SQLiteStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product := &models.Product{}
	err := s.db.QueryRowContext(ctx,
		"SELECT _id, name, unit, quantity, restaurant_id FROM products WHERE _id = ?",
		id,
	).Scan(&product.ID, &product.Name, &product.Unit, &product.Quantity, &product.RestaurantID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// ListProducts returns the products of a restaurant in insertion order.
func (s *SQLiteStore) ListProducts(ctx context.Context, restaurantID int64) ([]*models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT _id, name, unit, quantity, restaurant_id FROM products WHERE restaurant_id = ? ORDER BY _id",
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Unit, &product.Quantity, &product.RestaurantID); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// UpdateProductQuantity sets the stock quantity of a product.
func (s *SQLiteStore) UpdateProductQuantity(ctx context.Context, id int64, quantity float64) error {
	if quantity < 0 {
		return storage.ErrNegativeQuantity
	}

	result, err := s.db.ExecContext(ctx, "UPDATE products SET quantity = ? WHERE _id = ?", quantity, id)
	if err != nil {
		return fmt.Errorf("failed to update product quantity: %w", err)
	}

	return requireOneRow(result, "product", id)
}

// DeleteProduct removes a product by ID.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE _id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return requireOneRow(result, "product", id)
}
