package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/pkg/api"
)

// ProductServiceClient is a client for the ordena.v1.ProductService service.
type ProductServiceClient interface {
	ListProducts(context.Context, *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error)
	AddProduct(context.Context, *connect.Request[api.AddProductRequest]) (*connect.Response[api.AddProductResponse], error)
	AddProducts(context.Context, *connect.Request[api.AddProductsRequest]) (*connect.Response[api.AddProductsResponse], error)
	AdjustQuantity(context.Context, *connect.Request[api.AdjustQuantityRequest]) (*connect.Response[api.AdjustQuantityResponse], error)
	DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error)
}

// NewProductServiceClient constructs a client for the ordena.v1.ProductService service.
func NewProductServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProductServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &productServiceClient{
		listProducts:   connect.NewClient[api.ListProductsRequest, api.ListProductsResponse](httpClient, baseURL+ProductServiceListProductsProcedure, opts...),
		addProduct:     connect.NewClient[api.AddProductRequest, api.AddProductResponse](httpClient, baseURL+ProductServiceAddProductProcedure, opts...),
		addProducts:    connect.NewClient[api.AddProductsRequest, api.AddProductsResponse](httpClient, baseURL+ProductServiceAddProductsProcedure, opts...),
		adjustQuantity: connect.NewClient[api.AdjustQuantityRequest, api.AdjustQuantityResponse](httpClient, baseURL+ProductServiceAdjustQuantityProcedure, opts...),
		deleteProduct:  connect.NewClient[api.DeleteProductRequest, api.DeleteProductResponse](httpClient, baseURL+ProductServiceDeleteProductProcedure, opts...),
	}
}

type productServiceClient struct {
	listProducts   *connect.Client[api.ListProductsRequest, api.ListProductsResponse]
	addProduct     *connect.Client[api.AddProductRequest, api.AddProductResponse]
	addProducts    *connect.Client[api.AddProductsRequest, api.AddProductsResponse]
	adjustQuantity *connect.Client[api.AdjustQuantityRequest, api.AdjustQuantityResponse]
	deleteProduct  *connect.Client[api.DeleteProductRequest, api.DeleteProductResponse]
}

func (c *productServiceClient) ListProducts(ctx context.Context, req *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error) {
	return c.listProducts.CallUnary(ctx, req)
}

func (c *productServiceClient) AddProduct(ctx context.Context, req *connect.Request[api.AddProductRequest]) (*connect.Response[api.AddProductResponse], error) {
	return c.addProduct.CallUnary(ctx, req)
}

func (c *productServiceClient) AddProducts(ctx context.Context, req *connect.Request[api.AddProductsRequest]) (*connect.Response[api.AddProductsResponse], error) {
	return c.addProducts.CallUnary(ctx, req)
}

func (c *productServiceClient) AdjustQuantity(ctx context.Context, req *connect.Request[api.AdjustQuantityRequest]) (*connect.Response[api.AdjustQuantityResponse], error) {
	return c.adjustQuantity.CallUnary(ctx, req)
}

func (c *productServiceClient) DeleteProduct(ctx context.Context, req *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	return c.deleteProduct.CallUnary(ctx, req)
}

// ProductServiceHandler is an implementation of the ordena.v1.ProductService service.
type ProductServiceHandler interface {
	ListProducts(context.Context, *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error)
	AddProduct(context.Context, *connect.Request[api.AddProductRequest]) (*connect.Response[api.AddProductResponse], error)
	AddProducts(context.Context, *connect.Request[api.AddProductsRequest]) (*connect.Response[api.AddProductsResponse], error)
	AdjustQuantity(context.Context, *connect.Request[api.AdjustQuantityRequest]) (*connect.Response[api.AdjustQuantityResponse], error)
	DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error)
}

// NewProductServiceHandler builds an HTTP handler from the service implementation.
func NewProductServiceHandler(svc ProductServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ProductServiceName + "/", route(map[string]http.Handler{
		ProductServiceListProductsProcedure:   connect.NewUnaryHandler(ProductServiceListProductsProcedure, svc.ListProducts, opts...),
		ProductServiceAddProductProcedure:     connect.NewUnaryHandler(ProductServiceAddProductProcedure, svc.AddProduct, opts...),
		ProductServiceAddProductsProcedure:    connect.NewUnaryHandler(ProductServiceAddProductsProcedure, svc.AddProducts, opts...),
		ProductServiceAdjustQuantityProcedure: connect.NewUnaryHandler(ProductServiceAdjustQuantityProcedure, svc.AdjustQuantity, opts...),
		ProductServiceDeleteProductProcedure:  connect.NewUnaryHandler(ProductServiceDeleteProductProcedure, svc.DeleteProduct, opts...),
	})
}

// UnimplementedProductServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedProductServiceHandler struct{}

func (UnimplementedProductServiceHandler) ListProducts(context.Context, *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.ProductService.ListProducts is not implemented"))
}

func (UnimplementedProductServiceHandler) AddProduct(context.Context, *connect.Request[api.AddProductRequest]) (*connect.Response[api.AddProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.ProductService.AddProduct is not implemented"))
}

func (UnimplementedProductServiceHandler) AddProducts(context.Context, *connect.Request[api.AddProductsRequest]) (*connect.Response[api.AddProductsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.ProductService.AddProducts is not implemented"))
}

func (UnimplementedProductServiceHandler) AdjustQuantity(context.Context, *connect.Request[api.AdjustQuantityRequest]) (*connect.Response[api.AdjustQuantityResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.ProductService.AdjustQuantity is not implemented"))
}

func (UnimplementedProductServiceHandler) DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.ProductService.DeleteProduct is not implemented"))
}
