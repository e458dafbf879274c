package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/internal/geo"
	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/pkg/api"
	"github.com/mmynk/ordena/pkg/api/apiconnect"
)

// LocationService implements the Connect LocationService
type LocationService struct {
	apiconnect.UnimplementedLocationServiceHandler
	geocoder geo.Geocoder
}

// NewLocationService creates a new LocationService.
func NewLocationService(geocoder geo.Geocoder) *LocationService {
	return &LocationService{geocoder: geocoder}
}

// Geocode resolves an address and returns the geo: URI that shows it.
func (s *LocationService) Geocode(ctx context.Context, req *connect.Request[api.GeocodeRequest]) (*connect.Response[api.GeocodeResponse], error) {
	slog.Info("Geocode request received", "address", req.Msg.Address)

	place, err := s.geocoder.Geocode(ctx, req.Msg.Address)
	if err != nil {
		slog.Error("Geocode failed", "address", req.Msg.Address, "error", err)
		switch {
		case errors.Is(err, geo.ErrEmptyAddress):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		case errors.Is(err, geo.ErrAddressNotFound):
			return nil, connect.NewError(connect.CodeNotFound, err)
		default:
			return nil, connect.NewError(connect.CodeUnavailable, err)
		}
	}

	slog.Info("Geocode successful", "lat", place.Latitude, "lng", place.Longitude)

	return connect.NewResponse(&api.GeocodeResponse{
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		DisplayName: place.DisplayName,
		Uri:         geo.URI(place.Coordinates, req.Msg.Address),
	}), nil
}

// MapRestaurants builds one multi-marker URI for the restaurants that have an address.
func (s *LocationService) MapRestaurants(ctx context.Context, req *connect.Request[api.MapRestaurantsRequest]) (*connect.Response[api.MapRestaurantsResponse], error) {
	slog.Info("MapRestaurants request received", "count", len(req.Msg.Restaurants))

	restaurants := make([]models.Restaurant, len(req.Msg.Restaurants))
	for i, r := range req.Msg.Restaurants {
		restaurants[i] = api.ToRestaurant(r)
	}

	uri, markers, err := geo.MapURI(restaurants)
	if err != nil {
		slog.Warn("MapRestaurants failed", "error", err)
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	}

	slog.Info("MapRestaurants successful", "markers", markers)

	return connect.NewResponse(&api.MapRestaurantsResponse{Uri: uri, Markers: int32(markers)}), nil
}
