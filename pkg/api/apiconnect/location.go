package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/pkg/api"
)

// LocationServiceClient is a client for the ordena.v1.LocationService service.
type LocationServiceClient interface {
	Geocode(context.Context, *connect.Request[api.GeocodeRequest]) (*connect.Response[api.GeocodeResponse], error)
	MapRestaurants(context.Context, *connect.Request[api.MapRestaurantsRequest]) (*connect.Response[api.MapRestaurantsResponse], error)
}

// NewLocationServiceClient constructs a client for the ordena.v1.LocationService service.
func NewLocationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LocationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &locationServiceClient{
		geocode:        connect.NewClient[api.GeocodeRequest, api.GeocodeResponse](httpClient, baseURL+LocationServiceGeocodeProcedure, opts...),
		mapRestaurants: connect.NewClient[api.MapRestaurantsRequest, api.MapRestaurantsResponse](httpClient, baseURL+LocationServiceMapRestaurantsProcedure, opts...),
	}
}

type locationServiceClient struct {
	geocode        *connect.Client[api.GeocodeRequest, api.GeocodeResponse]
	mapRestaurants *connect.Client[api.MapRestaurantsRequest, api.MapRestaurantsResponse]
}

func (c *locationServiceClient) Geocode(ctx context.Context, req *connect.Request[api.GeocodeRequest]) (*connect.Response[api.GeocodeResponse], error) {
	return c.geocode.CallUnary(ctx, req)
}

func (c *locationServiceClient) MapRestaurants(ctx context.Context, req *connect.Request[api.MapRestaurantsRequest]) (*connect.Response[api.MapRestaurantsResponse], error) {
	return c.mapRestaurants.CallUnary(ctx, req)
}

// LocationServiceHandler is an implementation of the ordena.v1.LocationService service.
type LocationServiceHandler interface {
	Geocode(context.Context, *connect.Request[api.GeocodeRequest]) (*connect.Response[api.GeocodeResponse], error)
	MapRestaurants(context.Context, *connect.Request[api.MapRestaurantsRequest]) (*connect.Response[api.MapRestaurantsResponse], error)
}

// NewLocationServiceHandler builds an HTTP handler from the service implementation.
func NewLocationServiceHandler(svc LocationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + LocationServiceName + "/", route(map[string]http.Handler{
		LocationServiceGeocodeProcedure:        connect.NewUnaryHandler(LocationServiceGeocodeProcedure, svc.Geocode, opts...),
		LocationServiceMapRestaurantsProcedure: connect.NewUnaryHandler(LocationServiceMapRestaurantsProcedure, svc.MapRestaurants, opts...),
	})
}

// UnimplementedLocationServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLocationServiceHandler struct{}

func (UnimplementedLocationServiceHandler) Geocode(context.Context, *connect.Request[api.GeocodeRequest]) (*connect.Response[api.GeocodeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.LocationService.Geocode is not implemented"))
}

func (UnimplementedLocationServiceHandler) MapRestaurants(context.Context, *connect.Request[api.MapRestaurantsRequest]) (*connect.Response[api.MapRestaurantsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.LocationService.MapRestaurants is not implemented"))
}
