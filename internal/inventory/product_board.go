package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/ordena/internal/calculator"
	"github.com/mmynk/ordena/internal/listview"
	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/internal/storage"
)

// ProductBoard is the stock screen of one restaurant.
type ProductBoard struct {
	Screen

	repo       ProductRepository
	monitor    *StockMonitor
	list       *listview.List[models.Product]
	restaurant models.Restaurant
}

// NewProductBoard creates a board. monitor may be nil when alerts are raised elsewhere,
// in which case rows are flagged at calculator.DefaultLowStockThreshold.
func NewProductBoard(repo ProductRepository, monitor *StockMonitor, observer listview.Observer) *ProductBoard {
	threshold := calculator.DefaultLowStockThreshold
	if monitor != nil {
		threshold = monitor.Threshold()
	}
	return &ProductBoard{
		repo:    repo,
		monitor: monitor,
		list:    listview.New(listview.ProductRow(threshold), observer, nil),
	}
}

// Open binds the board to a restaurant. A zero id, or one that does not exist, is ErrMissingRestaurant.
func (b *ProductBoard) Open(ctx context.Context, restaurantID int64) error {
	if restaurantID <= 0 {
		return ErrMissingRestaurant
	}
	r, err := b.repo.GetRestaurant(ctx, restaurantID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %d", ErrMissingRestaurant, restaurantID)
	}
	if err != nil {
		return fmt.Errorf("failed to open restaurant: %w", err)
	}
	if err := b.Activate(); err != nil {
		return err
	}
	b.restaurant = r
	return nil
}

// Restaurant returns the restaurant the board is open on.
func (b *ProductBoard) Restaurant() models.Restaurant {
	return b.restaurant
}

// Load lists the products, refreshes the board and runs the low-stock scan.
// It returns the number of alerts raised.
func (b *ProductBoard) Load(ctx context.Context) (int, error) {
	if err := b.requireActive(); err != nil {
		return 0, err
	}
	products, err := b.repo.ListProducts(ctx, b.restaurant.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to load products: %w", err)
	}
	b.list.Replace(products)

	if b.monitor == nil {
		return 0, nil
	}
	return b.monitor.Scan(ctx, products)
}

// Products returns the products currently shown.
func (b *ProductBoard) Products() []models.Product {
	return b.list.Items()
}

// Rows renders the board.
func (b *ProductBoard) Rows() []listview.Row {
	return b.list.Rows()
}

// Add creates a product from form input. Unparseable or negative quantities become 0.
func (b *ProductBoard) Add(ctx context.Context, name, unit, quantityText string) (models.Product, error) {
	if err := b.requireActive(); err != nil {
		return models.Product{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Product{}, &FieldError{Field: "name", Message: "must not be empty"}
	}

	p, err := b.repo.AddProduct(ctx, models.Product{
		Name:         name,
		Unit:         strings.TrimSpace(unit),
		Quantity:     calculator.ParseQuantity(quantityText),
		RestaurantID: b.restaurant.ID,
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to add product: %w", err)
	}
	b.list.Append(p)
	return p, nil
}

// Delete removes the product at position.
func (b *ProductBoard) Delete(ctx context.Context, position int) error {
	if err := b.requireActive(); err != nil {
		return err
	}
	p, err := b.list.At(position)
	if err != nil {
		return err
	}
	if err := b.repo.DeleteProduct(ctx, p.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	_, err = b.list.Remove(position)
	return err
}

// Increment raises the quantity at position by one.
func (b *ProductBoard) Increment(ctx context.Context, position int) (models.Product, error) {
	return b.adjust(ctx, position, calculator.Step)
}

// Decrement lowers the quantity at position by one, never below zero.
func (b *ProductBoard) Decrement(ctx context.Context, position int) (models.Product, error) {
	return b.adjust(ctx, position, -calculator.Step)
}

func (b *ProductBoard) adjust(ctx context.Context, position int, delta float64) (models.Product, error) {
	if err := b.requireActive(); err != nil {
		return models.Product{}, err
	}
	p, err := b.list.At(position)
	if err != nil {
		return models.Product{}, err
	}
	updated, err := b.repo.AdjustQuantity(ctx, p.ID, delta)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to update quantity: %w", err)
	}
	if err := b.list.Set(position, updated); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// Close leaves the board.
func (b *ProductBoard) Close() error {
	return b.Cancel()
}

// BoardActions routes row buttons to a ProductBoard. Errors go to OnError.
type BoardActions struct {
	Board   *ProductBoard
	Ctx     context.Context
	OnError func(error)
}

var _ listview.ProductActions = BoardActions{}

// DeleteRequested deletes the product at position.
func (a BoardActions) DeleteRequested(position int) {
	a.report(a.Board.Delete(a.Ctx, position))
}

// QuantityChangeRequested increments for a positive delta and decrements otherwise.
func (a BoardActions) QuantityChangeRequested(position int, delta float64) {
	var err error
	if delta > 0 {
		_, err = a.Board.Increment(a.Ctx, position)
	} else {
		_, err = a.Board.Decrement(a.Ctx, position)
	}
	a.report(err)
}

func (a BoardActions) report(err error) {
	if err != nil && a.OnError != nil {
		a.OnError(err)
	}
}
