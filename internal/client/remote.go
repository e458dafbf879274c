// Package client adapts the ordena.v1 Connect clients to the repository
// ports of the inventory flows.
package client

import (
	"context"
	"fmt"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/internal/geo"
	"github.com/mmynk/ordena/internal/middleware"
	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/internal/storage"
	"github.com/mmynk/ordena/pkg/api"
	"github.com/mmynk/ordena/pkg/api/apiconnect"
)

// Remote talks to an ordena server.
type Remote struct {
	restaurants apiconnect.RestaurantServiceClient
	products    apiconnect.ProductServiceClient
	location    apiconnect.LocationServiceClient
}

// NewRemote creates a client for baseURL. token may be empty when the server runs without auth.
func NewRemote(httpClient connect.HTTPClient, baseURL, token string) *Remote {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	opts := []connect.ClientOption{connect.WithInterceptors(middleware.BearerToken(token))}
	return &Remote{
		restaurants: apiconnect.NewRestaurantServiceClient(httpClient, baseURL, opts...),
		products:    apiconnect.NewProductServiceClient(httpClient, baseURL, opts...),
		location:    apiconnect.NewLocationServiceClient(httpClient, baseURL, opts...),
	}
}

// translate maps Connect codes back to the sentinels the flows check for.
func translate(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if connect.CodeOf(err) == connect.CodeNotFound && notFound != nil {
		return fmt.Errorf("%w: %v", notFound, err)
	}
	return err
}

func (r *Remote) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	resp, err := r.restaurants.ListRestaurants(ctx, connect.NewRequest(&api.ListRestaurantsRequest{}))
	if err != nil {
		return nil, err
	}
	out := make([]models.Restaurant, len(resp.Msg.Restaurants))
	for i, rest := range resp.Msg.Restaurants {
		out[i] = api.ToRestaurant(rest)
	}
	return out, nil
}

func (r *Remote) GetRestaurant(ctx context.Context, id int64) (models.Restaurant, error) {
	resp, err := r.restaurants.GetRestaurant(ctx, connect.NewRequest(&api.GetRestaurantRequest{RestaurantId: id}))
	if err != nil {
		return models.Restaurant{}, translate(err, storage.ErrNotFound)
	}
	return api.ToRestaurant(resp.Msg.Restaurant), nil
}

// RestaurantAddress reads the address from the restaurant record.
func (r *Remote) RestaurantAddress(ctx context.Context, id int64) (string, error) {
	rest, err := r.GetRestaurant(ctx, id)
	if err != nil {
		return "", err
	}
	return rest.Address, nil
}

func (r *Remote) AddRestaurant(ctx context.Context, rest models.Restaurant) (models.Restaurant, error) {
	resp, err := r.restaurants.AddRestaurant(ctx, connect.NewRequest(&api.AddRestaurantRequest{
		Name:        rest.Name,
		Description: rest.Description,
		Address:     rest.Address,
		ImagePath:   rest.ImagePath,
	}))
	if err != nil {
		return models.Restaurant{}, err
	}
	return api.ToRestaurant(resp.Msg.Restaurant), nil
}

func (r *Remote) DeleteRestaurant(ctx context.Context, id int64) error {
	_, err := r.restaurants.DeleteRestaurant(ctx, connect.NewRequest(&api.DeleteRestaurantRequest{RestaurantId: id}))
	return translate(err, storage.ErrNotFound)
}

func (r *Remote) RestoreRestaurant(ctx context.Context, rest models.Restaurant) (models.Restaurant, error) {
	resp, err := r.restaurants.RestoreRestaurant(ctx, connect.NewRequest(&api.RestoreRestaurantRequest{
		Restaurant: api.FromRestaurant(rest),
	}))
	if err != nil {
		return models.Restaurant{}, err
	}
	return api.ToRestaurant(resp.Msg.Restaurant), nil
}

// Save uploads photo bytes; it makes Remote an inventory.PhotoSaver.
func (r *Remote) Save(ctx context.Context, data []byte) (string, error) {
	resp, err := r.restaurants.UploadPhoto(ctx, connect.NewRequest(&api.UploadPhotoRequest{Data: data}))
	if err != nil {
		return "", err
	}
	return resp.Msg.Path, nil
}

func (r *Remote) ListProducts(ctx context.Context, restaurantID int64) ([]models.Product, error) {
	resp, err := r.products.ListProducts(ctx, connect.NewRequest(&api.ListProductsRequest{RestaurantId: restaurantID}))
	if err != nil {
		return nil, translate(err, storage.ErrNotFound)
	}
	out := make([]models.Product, len(resp.Msg.Products))
	for i, p := range resp.Msg.Products {
		out[i] = api.ToProduct(p)
	}
	return out, nil
}

func (r *Remote) AddProduct(ctx context.Context, p models.Product) (models.Product, error) {
	resp, err := r.products.AddProduct(ctx, connect.NewRequest(&api.AddProductRequest{
		RestaurantId: p.RestaurantID,
		Name:         p.Name,
		Unit:         p.Unit,
		Quantity:     p.Quantity,
	}))
	if err != nil {
		return models.Product{}, translate(err, storage.ErrNotFound)
	}
	return api.ToProduct(resp.Msg.Product), nil
}

// AddProducts inserts products for one restaurant in a single atomic call.
func (r *Remote) AddProducts(ctx context.Context, restaurantID int64, products []models.Product) ([]models.Product, error) {
	in := make([]*api.Product, len(products))
	for i, p := range products {
		in[i] = api.FromProduct(p, false)
	}
	resp, err := r.products.AddProducts(ctx, connect.NewRequest(&api.AddProductsRequest{
		RestaurantId: restaurantID,
		Products:     in,
	}))
	if err != nil {
		return nil, translate(err, storage.ErrNotFound)
	}
	out := make([]models.Product, len(resp.Msg.Products))
	for i, p := range resp.Msg.Products {
		out[i] = api.ToProduct(p)
	}
	return out, nil
}

func (r *Remote) DeleteProduct(ctx context.Context, id int64) error {
	_, err := r.products.DeleteProduct(ctx, connect.NewRequest(&api.DeleteProductRequest{ProductId: id}))
	return translate(err, storage.ErrNotFound)
}

func (r *Remote) AdjustQuantity(ctx context.Context, id int64, delta float64) (models.Product, error) {
	resp, err := r.products.AdjustQuantity(ctx, connect.NewRequest(&api.AdjustQuantityRequest{ProductId: id, Delta: delta}))
	if err != nil {
		return models.Product{}, translate(err, storage.ErrNotFound)
	}
	return api.ToProduct(resp.Msg.Product), nil
}

// Geocode resolves an address on the server; it makes Remote a geo.Geocoder.
func (r *Remote) Geocode(ctx context.Context, address string) (geo.Place, error) {
	resp, err := r.location.Geocode(ctx, connect.NewRequest(&api.GeocodeRequest{Address: address}))
	if err != nil {
		if connect.CodeOf(err) == connect.CodeInvalidArgument {
			return geo.Place{}, fmt.Errorf("%w: %v", geo.ErrEmptyAddress, err)
		}
		return geo.Place{}, translate(err, geo.ErrAddressNotFound)
	}
	return geo.Place{
		Coordinates: geo.Coordinates{Latitude: resp.Msg.Latitude, Longitude: resp.Msg.Longitude},
		DisplayName: resp.Msg.DisplayName,
	}, nil
}

// MapURI asks the server for the multi-marker URI of restaurants.
func (r *Remote) MapURI(ctx context.Context, restaurants []models.Restaurant) (string, error) {
	in := make([]*api.Restaurant, len(restaurants))
	for i, rest := range restaurants {
		in[i] = api.FromRestaurant(rest)
	}
	resp, err := r.location.MapRestaurants(ctx, connect.NewRequest(&api.MapRestaurantsRequest{Restaurants: in}))
	if err != nil {
		if connect.CodeOf(err) == connect.CodeFailedPrecondition {
			return "", fmt.Errorf("%w: %v", geo.ErrNoAddresses, err)
		}
		return "", err
	}
	return resp.Msg.Uri, nil
}
