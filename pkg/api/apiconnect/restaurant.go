package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/pkg/api"
)

// RestaurantServiceClient is a client for the ordena.v1.RestaurantService service.
type RestaurantServiceClient interface {
	ListRestaurants(context.Context, *connect.Request[api.ListRestaurantsRequest]) (*connect.Response[api.ListRestaurantsResponse], error)
	GetRestaurant(context.Context, *connect.Request[api.GetRestaurantRequest]) (*connect.Response[api.GetRestaurantResponse], error)
	AddRestaurant(context.Context, *connect.Request[api.AddRestaurantRequest]) (*connect.Response[api.AddRestaurantResponse], error)
	DeleteRestaurant(context.Context, *connect.Request[api.DeleteRestaurantRequest]) (*connect.Response[api.DeleteRestaurantResponse], error)
	RestoreRestaurant(context.Context, *connect.Request[api.RestoreRestaurantRequest]) (*connect.Response[api.RestoreRestaurantResponse], error)
	UploadPhoto(context.Context, *connect.Request[api.UploadPhotoRequest]) (*connect.Response[api.UploadPhotoResponse], error)
}

// NewRestaurantServiceClient constructs a client for the ordena.v1.RestaurantService service.
func NewRestaurantServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RestaurantServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &restaurantServiceClient{
		listRestaurants:   connect.NewClient[api.ListRestaurantsRequest, api.ListRestaurantsResponse](httpClient, baseURL+RestaurantServiceListRestaurantsProcedure, opts...),
		getRestaurant:     connect.NewClient[api.GetRestaurantRequest, api.GetRestaurantResponse](httpClient, baseURL+RestaurantServiceGetRestaurantProcedure, opts...),
		addRestaurant:     connect.NewClient[api.AddRestaurantRequest, api.AddRestaurantResponse](httpClient, baseURL+RestaurantServiceAddRestaurantProcedure, opts...),
		deleteRestaurant:  connect.NewClient[api.DeleteRestaurantRequest, api.DeleteRestaurantResponse](httpClient, baseURL+RestaurantServiceDeleteRestaurantProcedure, opts...),
		restoreRestaurant: connect.NewClient[api.RestoreRestaurantRequest, api.RestoreRestaurantResponse](httpClient, baseURL+RestaurantServiceRestoreRestaurantProcedure, opts...),
		uploadPhoto:       connect.NewClient[api.UploadPhotoRequest, api.UploadPhotoResponse](httpClient, baseURL+RestaurantServiceUploadPhotoProcedure, opts...),
	}
}

type restaurantServiceClient struct {
	listRestaurants   *connect.Client[api.ListRestaurantsRequest, api.ListRestaurantsResponse]
	getRestaurant     *connect.Client[api.GetRestaurantRequest, api.GetRestaurantResponse]
	addRestaurant     *connect.Client[api.AddRestaurantRequest, api.AddRestaurantResponse]
	deleteRestaurant  *connect.Client[api.DeleteRestaurantRequest, api.DeleteRestaurantResponse]
	restoreRestaurant *connect.Client[api.RestoreRestaurantRequest, api.RestoreRestaurantResponse]
	uploadPhoto       *connect.Client[api.UploadPhotoRequest, api.UploadPhotoResponse]
}

func (c *restaurantServiceClient) ListRestaurants(ctx context.Context, req *connect.Request[api.ListRestaurantsRequest]) (*connect.Response[api.ListRestaurantsResponse], error) {
	return c.listRestaurants.CallUnary(ctx, req)
}

func (c *restaurantServiceClient) GetRestaurant(ctx context.Context, req *connect.Request[api.GetRestaurantRequest]) (*connect.Response[api.GetRestaurantResponse], error) {
	return c.getRestaurant.CallUnary(ctx, req)
}

func (c *restaurantServiceClient) AddRestaurant(ctx context.Context, req *connect.Request[api.AddRestaurantRequest]) (*connect.Response[api.AddRestaurantResponse], error) {
	return c.addRestaurant.CallUnary(ctx, req)
}

func (c *restaurantServiceClient) DeleteRestaurant(ctx context.Context, req *connect.Request[api.DeleteRestaurantRequest]) (*connect.Response[api.DeleteRestaurantResponse], error) {
	return c.deleteRestaurant.CallUnary(ctx, req)
}

func (c *restaurantServiceClient) RestoreRestaurant(ctx context.Context, req *connect.Request[api.RestoreRestaurantRequest]) (*connect.Response[api.RestoreRestaurantResponse], error) {
	return c.restoreRestaurant.CallUnary(ctx, req)
}

func (c *restaurantServiceClient) UploadPhoto(ctx context.Context, req *connect.Request[api.UploadPhotoRequest]) (*connect.Response[api.UploadPhotoResponse], error) {
	return c.uploadPhoto.CallUnary(ctx, req)
}

// RestaurantServiceHandler is an implementation of the ordena.v1.RestaurantService service.
type RestaurantServiceHandler interface {
	ListRestaurants(context.Context, *connect.Request[api.ListRestaurantsRequest]) (*connect.Response[api.ListRestaurantsResponse], error)
	GetRestaurant(context.Context, *connect.Request[api.GetRestaurantRequest]) (*connect.Response[api.GetRestaurantResponse], error)
	AddRestaurant(context.Context, *connect.Request[api.AddRestaurantRequest]) (*connect.Response[api.AddRestaurantResponse], error)
	DeleteRestaurant(context.Context, *connect.Request[api.DeleteRestaurantRequest]) (*connect.Response[api.DeleteRestaurantResponse], error)
	RestoreRestaurant(context.Context, *connect.Request[api.RestoreRestaurantRequest]) (*connect.Response[api.RestoreRestaurantResponse], error)
	UploadPhoto(context.Context, *connect.Request[api.UploadPhotoRequest]) (*connect.Response[api.UploadPhotoResponse], error)
}

// NewRestaurantServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewRestaurantServiceHandler(svc RestaurantServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + RestaurantServiceName + "/", route(map[string]http.Handler{
		RestaurantServiceListRestaurantsProcedure:   connect.NewUnaryHandler(RestaurantServiceListRestaurantsProcedure, svc.ListRestaurants, opts...),
		RestaurantServiceGetRestaurantProcedure:     connect.NewUnaryHandler(RestaurantServiceGetRestaurantProcedure, svc.GetRestaurant, opts...),
		RestaurantServiceAddRestaurantProcedure:     connect.NewUnaryHandler(RestaurantServiceAddRestaurantProcedure, svc.AddRestaurant, opts...),
		RestaurantServiceDeleteRestaurantProcedure:  connect.NewUnaryHandler(RestaurantServiceDeleteRestaurantProcedure, svc.DeleteRestaurant, opts...),
		RestaurantServiceRestoreRestaurantProcedure: connect.NewUnaryHandler(RestaurantServiceRestoreRestaurantProcedure, svc.RestoreRestaurant, opts...),
		RestaurantServiceUploadPhotoProcedure:       connect.NewUnaryHandler(RestaurantServiceUploadPhotoProcedure, svc.UploadPhoto, opts...),
	})
}

// UnimplementedRestaurantServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedRestaurantServiceHandler struct{}

func (UnimplementedRestaurantServiceHandler) ListRestaurants(context.Context, *connect.Request[api.ListRestaurantsRequest]) (*connect.Response[api.ListRestaurantsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.RestaurantService.ListRestaurants is not implemented"))
}

func (UnimplementedRestaurantServiceHandler) GetRestaurant(context.Context, *connect.Request[api.GetRestaurantRequest]) (*connect.Response[api.GetRestaurantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.RestaurantService.GetRestaurant is not implemented"))
}

func (UnimplementedRestaurantServiceHandler) AddRestaurant(context.Context, *connect.Request[api.AddRestaurantRequest]) (*connect.Response[api.AddRestaurantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.RestaurantService.AddRestaurant is not implemented"))
}

func (UnimplementedRestaurantServiceHandler) DeleteRestaurant(context.Context, *connect.Request[api.DeleteRestaurantRequest]) (*connect.Response[api.DeleteRestaurantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.RestaurantService.DeleteRestaurant is not implemented"))
}

func (UnimplementedRestaurantServiceHandler) RestoreRestaurant(context.Context, *connect.Request[api.RestoreRestaurantRequest]) (*connect.Response[api.RestoreRestaurantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.RestaurantService.RestoreRestaurant is not implemented"))
}

func (UnimplementedRestaurantServiceHandler) UploadPhoto(context.Context, *connect.Request[api.UploadPhotoRequest]) (*connect.Response[api.UploadPhotoResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ordena.v1.RestaurantService.UploadPhoto is not implemented"))
}
