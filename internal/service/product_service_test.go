package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/pkg/api"
)

func TestListProductsRaisesAlerts(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	r := addRestaurant(t, c, "A", "1 Main St")

	_, err := c.products.AddProducts(ctx, connect.NewRequest(&api.AddProductsRequest{
		RestaurantId: r.Id,
		Products: []*api.Product{
			{Name: "Flour", Unit: "kg", Quantity: 10},
			{Name: "Salt", Unit: "kg", Quantity: 2},
			{Name: "Oil", Unit: "l", Quantity: 0.5},
			{Name: "Eggs", Unit: "pcs", Quantity: 12},
		},
	}))
	if err != nil {
		t.Fatalf("AddProducts failed: %v", err)
	}

	for pass := 1; pass <= 2; pass++ {
		resp, err := c.products.ListProducts(ctx, connect.NewRequest(&api.ListProductsRequest{RestaurantId: r.Id}))
		if err != nil {
			t.Fatalf("ListProducts failed: %v", err)
		}
		if len(resp.Msg.Products) != 4 {
			t.Fatalf("expected 4 products, got %d", len(resp.Msg.Products))
		}
		if resp.Msg.AlertsRaised != 2 {
			t.Errorf("pass %d: expected 2 alerts, got %d", pass, resp.Msg.AlertsRaised)
		}
		if resp.Msg.LowStockThreshold != 2 {
			t.Errorf("expected threshold 2, got %v", resp.Msg.LowStockThreshold)
		}

		low := []bool{false, true, true, false}
		for i, p := range resp.Msg.Products {
			if p.LowStock != low[i] {
				t.Errorf("product %s: expected low_stock=%v", p.Name, low[i])
			}
		}
	}

	if got := c.alerts.count(); got != 4 {
		t.Errorf("expected 4 delivered alerts over two passes, got %d", got)
	}

	_, err = c.products.ListProducts(ctx, connect.NewRequest(&api.ListProductsRequest{RestaurantId: 999}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestAddProductsIsAtomic(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	r := addRestaurant(t, c, "A", "1 Main St")

	_, err := c.products.AddProducts(ctx, connect.NewRequest(&api.AddProductsRequest{
		RestaurantId: r.Id,
		Products: []*api.Product{
			{Name: "Flour", Unit: "kg", Quantity: 10},
			{Name: "Salt", Unit: "kg", Quantity: -1},
		},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	resp, err := c.products.ListProducts(ctx, connect.NewRequest(&api.ListProductsRequest{RestaurantId: r.Id}))
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(resp.Msg.Products) != 0 {
		t.Errorf("expected nothing committed, got %d products", len(resp.Msg.Products))
	}
}

func TestAddProductValidation(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	r := addRestaurant(t, c, "A", "1 Main St")

	_, err := c.products.AddProduct(ctx, connect.NewRequest(&api.AddProductRequest{RestaurantId: r.Id, Name: " ", Quantity: 1}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = c.products.AddProduct(ctx, connect.NewRequest(&api.AddProductRequest{RestaurantId: r.Id, Name: "Salt", Quantity: -3}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = c.products.AddProduct(ctx, connect.NewRequest(&api.AddProductRequest{RestaurantId: 999, Name: "Salt", Quantity: 1}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestAdjustQuantity(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	r := addRestaurant(t, c, "A", "1 Main St")

	added, err := c.products.AddProduct(ctx, connect.NewRequest(&api.AddProductRequest{
		RestaurantId: r.Id, Name: "Salt", Unit: "kg", Quantity: 1,
	}))
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	id := added.Msg.Product.Id

	resp, err := c.products.AdjustQuantity(ctx, connect.NewRequest(&api.AdjustQuantityRequest{ProductId: id, Delta: 1}))
	if err != nil {
		t.Fatalf("AdjustQuantity failed: %v", err)
	}
	if resp.Msg.Product.Quantity != 2 || !resp.Msg.Product.LowStock {
		t.Errorf("unexpected product after increment: %+v", resp.Msg.Product)
	}

	for i := 0; i < 3; i++ {
		resp, err = c.products.AdjustQuantity(ctx, connect.NewRequest(&api.AdjustQuantityRequest{ProductId: id, Delta: -1}))
		if err != nil {
			t.Fatalf("AdjustQuantity failed: %v", err)
		}
		if resp.Msg.Product.Quantity < 0 {
			t.Fatalf("quantity went negative: %v", resp.Msg.Product.Quantity)
		}
	}
	if resp.Msg.Product.Quantity != 0 {
		t.Errorf("expected quantity clamped at 0, got %v", resp.Msg.Product.Quantity)
	}

	stored, err := c.store.GetProduct(ctx, id)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if stored.Quantity != 0 {
		t.Errorf("expected stored quantity 0, got %v", stored.Quantity)
	}

	_, err = c.products.AdjustQuantity(ctx, connect.NewRequest(&api.AdjustQuantityRequest{ProductId: id, Delta: 5}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = c.products.AdjustQuantity(ctx, connect.NewRequest(&api.AdjustQuantityRequest{ProductId: 999, Delta: 1}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestDeleteProduct(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	r := addRestaurant(t, c, "A", "1 Main St")

	added, err := c.products.AddProduct(ctx, connect.NewRequest(&api.AddProductRequest{
		RestaurantId: r.Id, Name: "Salt", Unit: "kg", Quantity: 4,
	}))
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}

	if _, err := c.products.DeleteProduct(ctx, connect.NewRequest(&api.DeleteProductRequest{ProductId: added.Msg.Product.Id})); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}

	_, err = c.products.DeleteProduct(ctx, connect.NewRequest(&api.DeleteProductRequest{ProductId: added.Msg.Product.Id}))
	assertCode(t, err, connect.CodeNotFound)
}
