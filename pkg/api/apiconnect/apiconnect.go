// Package apiconnect wires the ordena.v1 services to Connect handlers and clients.
package apiconnect

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/pkg/api"
)

const (
	RestaurantServiceName = "ordena.v1.RestaurantService"
	ProductServiceName    = "ordena.v1.ProductService"
	LocationServiceName   = "ordena.v1.LocationService"
)

const (
	RestaurantServiceListRestaurantsProcedure   = "/ordena.v1.RestaurantService/ListRestaurants"
	RestaurantServiceGetRestaurantProcedure     = "/ordena.v1.RestaurantService/GetRestaurant"
	RestaurantServiceAddRestaurantProcedure     = "/ordena.v1.RestaurantService/AddRestaurant"
	RestaurantServiceDeleteRestaurantProcedure  = "/ordena.v1.RestaurantService/DeleteRestaurant"
	RestaurantServiceRestoreRestaurantProcedure = "/ordena.v1.RestaurantService/RestoreRestaurant"
	RestaurantServiceUploadPhotoProcedure       = "/ordena.v1.RestaurantService/UploadPhoto"

	ProductServiceListProductsProcedure   = "/ordena.v1.ProductService/ListProducts"
	ProductServiceAddProductProcedure     = "/ordena.v1.ProductService/AddProduct"
	ProductServiceAddProductsProcedure    = "/ordena.v1.ProductService/AddProducts"
	ProductServiceAdjustQuantityProcedure = "/ordena.v1.ProductService/AdjustQuantity"
	ProductServiceDeleteProductProcedure  = "/ordena.v1.ProductService/DeleteProduct"

	LocationServiceGeocodeProcedure        = "/ordena.v1.LocationService/Geocode"
	LocationServiceMapRestaurantsProcedure = "/ordena.v1.LocationService/MapRestaurants"
)

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
}

// route dispatches a service's requests to the handler for their procedure.
func route(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
