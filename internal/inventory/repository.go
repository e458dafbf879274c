package inventory

import (
	"context"
	"fmt"

	"github.com/mmynk/ordena/internal/calculator"
	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/internal/storage"
)

// RestaurantRepository is the data access the restaurant screens need.
type RestaurantRepository interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	AddRestaurant(ctx context.Context, r models.Restaurant) (models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int64) error

	// RestoreRestaurant re-inserts a deleted restaurant. The copy gets a new ID;
	// r.ID names the deleted row whose products move to the copy.
	RestoreRestaurant(ctx context.Context, r models.Restaurant) (models.Restaurant, error)
}

// ProductRepository is the data access the product board needs.
type ProductRepository interface {
	GetRestaurant(ctx context.Context, id int64) (models.Restaurant, error)

	// RestaurantAddress returns the stored address of a restaurant, empty when unset.
	RestaurantAddress(ctx context.Context, id int64) (string, error)

	ListProducts(ctx context.Context, restaurantID int64) ([]models.Product, error)
	AddProduct(ctx context.Context, p models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// AdjustQuantity adds delta to a product's quantity, clamped at zero, and returns the product.
	AdjustQuantity(ctx context.Context, id int64, delta float64) (models.Product, error)
}

// PhotoSaver stores captured photo bytes and returns the stored path.
type PhotoSaver interface {
	Save(ctx context.Context, data []byte) (string, error)
}

// StoreRepository implements both repositories on a local storage.Store.
type StoreRepository struct {
	store storage.Store
}

// NewStoreRepository wraps store.
func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := r.store.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Restaurant, len(rows))
	for i, row := range rows {
		out[i] = *row
	}
	return out, nil
}

func (r *StoreRepository) AddRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	restaurant.ID = 0
	if err := r.store.CreateRestaurant(ctx, &restaurant); err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (r *StoreRepository) DeleteRestaurant(ctx context.Context, id int64) error {
	return r.store.DeleteRestaurant(ctx, id)
}

func (r *StoreRepository) RestoreRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	previousID := restaurant.ID
	restaurant.ID = 0
	if err := r.store.RestoreRestaurant(ctx, &restaurant, previousID); err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (r *StoreRepository) GetRestaurant(ctx context.Context, id int64) (models.Restaurant, error) {
	restaurant, err := r.store.GetRestaurant(ctx, id)
	if err != nil {
		return models.Restaurant{}, err
	}
	return *restaurant, nil
}

func (r *StoreRepository) RestaurantAddress(ctx context.Context, id int64) (string, error) {
	return r.store.RestaurantAddress(ctx, id)
}

func (r *StoreRepository) ListProducts(ctx context.Context, restaurantID int64) ([]models.Product, error) {
	rows, err := r.store.ListProducts(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, len(rows))
	for i, row := range rows {
		out[i] = *row
	}
	return out, nil
}

func (r *StoreRepository) AddProduct(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = 0
	if err := r.store.CreateProduct(ctx, &p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *StoreRepository) DeleteProduct(ctx context.Context, id int64) error {
	return r.store.DeleteProduct(ctx, id)
}

func (r *StoreRepository) AdjustQuantity(ctx context.Context, id int64, delta float64) (models.Product, error) {
	p, err := r.store.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	next := calculator.ApplyDelta(p.Quantity, delta)
	if err := r.store.UpdateProductQuantity(ctx, id, next); err != nil {
		return models.Product{}, fmt.Errorf("failed to adjust quantity: %w", err)
	}
	return p.WithQuantity(next), nil
}
