package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/internal/calculator"
	"github.com/mmynk/ordena/internal/inventory"
	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/internal/storage"
	"github.com/mmynk/ordena/pkg/api"
	"github.com/mmynk/ordena/pkg/api/apiconnect"
)

// ProductService implements the Connect ProductService
type ProductService struct {
	apiconnect.UnimplementedProductServiceHandler
	store   storage.Store
	monitor *inventory.StockMonitor
}

// NewProductService creates a new ProductService. Every ListProducts call is a
// load pass that runs monitor's low-stock scan.
func NewProductService(store storage.Store, monitor *inventory.StockMonitor) *ProductService {
	return &ProductService{store: store, monitor: monitor}
}

func (s *ProductService) toAPI(p models.Product) *api.Product {
	return api.FromProduct(p, calculator.IsLowStock(p.Quantity, s.monitor.Threshold()))
}

func validateProduct(name string, quantity float64) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("product name is required")
	case math.IsNaN(quantity) || math.IsInf(quantity, 0):
		return fmt.Errorf("invalid quantity %v", quantity)
	case quantity < 0:
		return fmt.Errorf("%w: %v", storage.ErrNegativeQuantity, quantity)
	}
	return nil
}

// ListProducts lists a restaurant's products, flags low stock and raises alerts.
func (s *ProductService) ListProducts(ctx context.Context, req *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error) {
	slog.Info("ListProducts request received", "restaurant_id", req.Msg.RestaurantId)

	if _, err := s.store.GetRestaurant(ctx, req.Msg.RestaurantId); err != nil {
		slog.Error("ListProducts failed", "restaurant_id", req.Msg.RestaurantId, "error", err)
		return nil, storageError(err)
	}

	rows, err := s.store.ListProducts(ctx, req.Msg.RestaurantId)
	if err != nil {
		slog.Error("ListProducts failed", "restaurant_id", req.Msg.RestaurantId, "error", err)
		return nil, storageError(err)
	}

	products := make([]models.Product, len(rows))
	out := make([]*api.Product, len(rows))
	for i, p := range rows {
		products[i] = *p
		out[i] = s.toAPI(*p)
	}

	// Alert delivery problems never fail the listing.
	alerts, err := s.monitor.Scan(ctx, products)
	if err != nil {
		slog.Error("Low-stock alerts failed", "restaurant_id", req.Msg.RestaurantId, "error", err)
	}

	slog.Info("ListProducts successful",
		"restaurant_id", req.Msg.RestaurantId,
		"count", len(out),
		"alerts", alerts,
	)

	return connect.NewResponse(&api.ListProductsResponse{
		Products:          out,
		LowStockThreshold: s.monitor.Threshold(),
		AlertsRaised:      int32(alerts),
	}), nil
}

// AddProduct creates one product.
func (s *ProductService) AddProduct(ctx context.Context, req *connect.Request[api.AddProductRequest]) (*connect.Response[api.AddProductResponse], error) {
	slog.Info("AddProduct request received",
		"restaurant_id", req.Msg.RestaurantId,
		"name", req.Msg.Name,
		"quantity", req.Msg.Quantity,
	)

	if err := validateProduct(req.Msg.Name, req.Msg.Quantity); err != nil {
		return nil, invalidArgument(err)
	}
	if _, err := s.store.GetRestaurant(ctx, req.Msg.RestaurantId); err != nil {
		slog.Error("AddProduct failed", "restaurant_id", req.Msg.RestaurantId, "error", err)
		return nil, storageError(err)
	}

	p := &models.Product{
		Name:         strings.TrimSpace(req.Msg.Name),
		Unit:         strings.TrimSpace(req.Msg.Unit),
		Quantity:     req.Msg.Quantity,
		RestaurantID: req.Msg.RestaurantId,
	}
	if err := s.store.CreateProduct(ctx, p); err != nil {
		slog.Error("AddProduct failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Product created", "product_id", p.ID, "restaurant_id", p.RestaurantID)

	return connect.NewResponse(&api.AddProductResponse{Product: s.toAPI(*p)}), nil
}

// AddProducts inserts several products for one restaurant: all of them or none.
func (s *ProductService) AddProducts(ctx context.Context, req *connect.Request[api.AddProductsRequest]) (*connect.Response[api.AddProductsResponse], error) {
	slog.Info("AddProducts request received",
		"restaurant_id", req.Msg.RestaurantId,
		"count", len(req.Msg.Products),
	)

	if len(req.Msg.Products) == 0 {
		return nil, invalidArgument(errors.New("at least one product is required"))
	}
	if _, err := s.store.GetRestaurant(ctx, req.Msg.RestaurantId); err != nil {
		slog.Error("AddProducts failed", "restaurant_id", req.Msg.RestaurantId, "error", err)
		return nil, storageError(err)
	}

	products := make([]*models.Product, len(req.Msg.Products))
	for i, in := range req.Msg.Products {
		if in == nil {
			return nil, invalidArgument(fmt.Errorf("product %d is empty", i))
		}
		if err := validateProduct(in.Name, in.Quantity); err != nil {
			return nil, invalidArgument(fmt.Errorf("product %d: %w", i, err))
		}
		products[i] = &models.Product{
			Name:         strings.TrimSpace(in.Name),
			Unit:         strings.TrimSpace(in.Unit),
			Quantity:     in.Quantity,
			RestaurantID: req.Msg.RestaurantId,
		}
	}

	if err := s.store.BulkInsertProducts(ctx, products); err != nil {
		slog.Error("AddProducts failed", "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Product, len(products))
	for i, p := range products {
		out[i] = s.toAPI(*p)
	}

	slog.Info("Products created", "restaurant_id", req.Msg.RestaurantId, "count", len(out))

	return connect.NewResponse(&api.AddProductsResponse{Products: out}), nil
}

// AdjustQuantity applies an increment or decrement, clamping at zero.
func (s *ProductService) AdjustQuantity(ctx context.Context, req *connect.Request[api.AdjustQuantityRequest]) (*connect.Response[api.AdjustQuantityResponse], error) {
	slog.Info("AdjustQuantity request received",
		"product_id", req.Msg.ProductId,
		"delta", req.Msg.Delta,
	)

	if req.Msg.Delta != calculator.Step && req.Msg.Delta != -calculator.Step {
		return nil, invalidArgument(fmt.Errorf("delta must be %v or %v, got %v", calculator.Step, -calculator.Step, req.Msg.Delta))
	}

	p, err := s.store.GetProduct(ctx, req.Msg.ProductId)
	if err != nil {
		slog.Error("AdjustQuantity failed", "product_id", req.Msg.ProductId, "error", err)
		return nil, storageError(err)
	}

	next := calculator.ApplyDelta(p.Quantity, req.Msg.Delta)
	if err := s.store.UpdateProductQuantity(ctx, p.ID, next); err != nil {
		slog.Error("AdjustQuantity failed", "product_id", p.ID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Quantity updated", "product_id", p.ID, "from", p.Quantity, "to", next)

	return connect.NewResponse(&api.AdjustQuantityResponse{Product: s.toAPI(p.WithQuantity(next))}), nil
}

// DeleteProduct removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, req *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	slog.Info("DeleteProduct request received", "product_id", req.Msg.ProductId)

	if err := s.store.DeleteProduct(ctx, req.Msg.ProductId); err != nil {
		slog.Error("DeleteProduct failed", "product_id", req.Msg.ProductId, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Product deleted", "product_id", req.Msg.ProductId)

	return connect.NewResponse(&api.DeleteProductResponse{}), nil
}
