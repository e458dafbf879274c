// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/ordena/internal/models"
)

var (
	// ErrNotFound is returned (wrapped) when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNegativeQuantity is returned when a product quantity below zero is written.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// RestaurantStore holds restaurant query and command operations.
type RestaurantStore interface {
	// CreateRestaurant persists a new restaurant.
	// The restaurant.ID field will be populated by the store.
	CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error

	// GetRestaurant retrieves a restaurant by its ID.
	GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error)

	// ListRestaurants returns all restaurants in insertion order.
	ListRestaurants(ctx context.Context) ([]*models.Restaurant, error)

	// UpdateRestaurant overwrites the mutable fields of an existing restaurant.
	UpdateRestaurant(ctx context.Context, restaurant *models.Restaurant) error

	// DeleteRestaurant removes one restaurant row. Its products are kept.
	DeleteRestaurant(ctx context.Context, id int64) error

	// RestoreRestaurant re-inserts a deleted restaurant under a new ID and
	// moves the products left behind by previousID onto it.
	RestoreRestaurant(ctx context.Context, restaurant *models.Restaurant, previousID int64) error

	// RestaurantAddress returns the stored address, empty when unset.
	RestaurantAddress(ctx context.Context, id int64) (string, error)
}

// ProductStore holds product query and command operations.
type ProductStore interface {
	// CreateProduct persists a new product. The product.ID field will be populated.
	// The owning restaurant must exist.
	CreateProduct(ctx context.Context, product *models.Product) error

	// BulkInsertProducts inserts all products atomically: all rows commit or none do.
	BulkInsertProducts(ctx context.Context, products []*models.Product) error

	// GetProduct retrieves a product by its ID.
	GetProduct(ctx context.Context, id int64) (*models.Product, error)

	// ListProducts returns the products of one restaurant in insertion order.
	ListProducts(ctx context.Context, restaurantID int64) ([]*models.Product, error)

	// UpdateProductQuantity sets the stock quantity of a product.
	UpdateProductQuantity(ctx context.Context, id int64, quantity float64) error

	// DeleteProduct removes a product by ID.
	DeleteProduct(ctx context.Context, id int64) error
}

// Store defines the interface for inventory storage operations.
// This abstraction allows swapping storage backends without changing
// the service layer.
type Store interface {
	RestaurantStore
	ProductStore

	// Close releases any resources held by the store.
	Close() error
}
