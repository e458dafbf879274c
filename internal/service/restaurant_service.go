package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/internal/inventory"
	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/internal/photos"
	"github.com/mmynk/ordena/internal/storage"
	"github.com/mmynk/ordena/pkg/api"
	"github.com/mmynk/ordena/pkg/api/apiconnect"
)

// RestaurantService implements the Connect RestaurantService
type RestaurantService struct {
	apiconnect.UnimplementedRestaurantServiceHandler
	store  storage.Store
	photos *photos.Store
}

// NewRestaurantService creates a new RestaurantService. photoStore may be nil, which disables uploads.
func NewRestaurantService(store storage.Store, photoStore *photos.Store) *RestaurantService {
	return &RestaurantService{store: store, photos: photoStore}
}

// ListRestaurants returns every restaurant in insertion order.
func (s *RestaurantService) ListRestaurants(ctx context.Context, req *connect.Request[api.ListRestaurantsRequest]) (*connect.Response[api.ListRestaurantsResponse], error) {
	slog.Info("ListRestaurants request received")

	restaurants, err := s.store.ListRestaurants(ctx)
	if err != nil {
		slog.Error("ListRestaurants failed", "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Restaurant, len(restaurants))
	for i, r := range restaurants {
		out[i] = api.FromRestaurant(*r)
	}

	slog.Info("ListRestaurants successful", "count", len(out))

	return connect.NewResponse(&api.ListRestaurantsResponse{Restaurants: out}), nil
}

// GetRestaurant retrieves a restaurant by ID.
func (s *RestaurantService) GetRestaurant(ctx context.Context, req *connect.Request[api.GetRestaurantRequest]) (*connect.Response[api.GetRestaurantResponse], error) {
	slog.Info("GetRestaurant request received", "restaurant_id", req.Msg.RestaurantId)

	r, err := s.store.GetRestaurant(ctx, req.Msg.RestaurantId)
	if err != nil {
		slog.Error("GetRestaurant failed", "restaurant_id", req.Msg.RestaurantId, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetRestaurantResponse{Restaurant: api.FromRestaurant(*r)}), nil
}

// AddRestaurant validates the form values and persists a new restaurant.
func (s *RestaurantService) AddRestaurant(ctx context.Context, req *connect.Request[api.AddRestaurantRequest]) (*connect.Response[api.AddRestaurantResponse], error) {
	slog.Info("AddRestaurant request received",
		"name", req.Msg.Name,
		"has_photo", req.Msg.ImagePath != "",
	)

	in, err := inventory.ValidateRestaurant(inventory.RestaurantInput{
		Name:        req.Msg.Name,
		Description: req.Msg.Description,
		Address:     req.Msg.Address,
	})
	if err != nil {
		slog.Warn("AddRestaurant validation failed", "error", err)
		return nil, validationError(err)
	}

	if req.Msg.ImagePath != "" {
		if err := s.checkPhoto(req.Msg.ImagePath); err != nil {
			slog.Warn("AddRestaurant rejected image path", "image_path", req.Msg.ImagePath, "error", err)
			return nil, invalidArgument(err)
		}
	}

	r := &models.Restaurant{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		ImageResID:  models.DefaultImageResID,
		ImagePath:   req.Msg.ImagePath,
	}
	if err := s.store.CreateRestaurant(ctx, r); err != nil {
		slog.Error("AddRestaurant failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Restaurant created", "restaurant_id", r.ID)

	return connect.NewResponse(&api.AddRestaurantResponse{Restaurant: api.FromRestaurant(*r)}), nil
}

// checkPhoto accepts only paths UploadPhoto handed out.
func (s *RestaurantService) checkPhoto(path string) error {
	if s.photos == nil {
		return errors.New("photo uploads are not enabled")
	}
	if err := s.photos.Check(path); err != nil {
		return fmt.Errorf("image_path: %w", err)
	}
	return nil
}

// DeleteRestaurant removes one restaurant row. Its products and photo file
// are kept so the restaurant can still be restored.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, req *connect.Request[api.DeleteRestaurantRequest]) (*connect.Response[api.DeleteRestaurantResponse], error) {
	slog.Info("DeleteRestaurant request received", "restaurant_id", req.Msg.RestaurantId)

	if err := s.store.DeleteRestaurant(ctx, req.Msg.RestaurantId); err != nil {
		slog.Error("DeleteRestaurant failed", "restaurant_id", req.Msg.RestaurantId, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Restaurant deleted", "restaurant_id", req.Msg.RestaurantId)

	return connect.NewResponse(&api.DeleteRestaurantResponse{}), nil
}

// RestoreRestaurant re-inserts a deleted restaurant under a new ID and
// reattaches the products it left behind.
func (s *RestaurantService) RestoreRestaurant(ctx context.Context, req *connect.Request[api.RestoreRestaurantRequest]) (*connect.Response[api.RestoreRestaurantResponse], error) {
	if req.Msg.Restaurant == nil {
		return nil, invalidArgument(errors.New("restaurant is required"))
	}
	slog.Info("RestoreRestaurant request received",
		"previous_id", req.Msg.Restaurant.Id,
		"name", req.Msg.Restaurant.Name,
	)

	previousID := req.Msg.Restaurant.Id
	r := api.ToRestaurant(req.Msg.Restaurant).WithID(0)
	if r.Name == "" {
		return nil, invalidArgument(errors.New("restaurant name is required"))
	}
	if err := s.store.RestoreRestaurant(ctx, &r, previousID); err != nil {
		slog.Error("RestoreRestaurant failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Restaurant restored", "previous_id", req.Msg.Restaurant.Id, "restaurant_id", r.ID)

	return connect.NewResponse(&api.RestoreRestaurantResponse{Restaurant: api.FromRestaurant(r)}), nil
}

// UploadPhoto stores a JPEG and returns the path to put in AddRestaurant.
func (s *RestaurantService) UploadPhoto(ctx context.Context, req *connect.Request[api.UploadPhotoRequest]) (*connect.Response[api.UploadPhotoResponse], error) {
	slog.Info("UploadPhoto request received", "bytes", len(req.Msg.Data))

	if s.photos == nil {
		return nil, connect.NewError(connect.CodeUnimplemented, errors.New("photo uploads are disabled"))
	}

	path, err := s.photos.Save(ctx, req.Msg.Data)
	if err != nil {
		slog.Error("UploadPhoto failed", "error", err)
		if errors.Is(err, photos.ErrEmpty) || errors.Is(err, photos.ErrNotJPEG) || errors.Is(err, photos.ErrTooLarge) {
			return nil, invalidArgument(err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Photo stored", "path", path)

	return connect.NewResponse(&api.UploadPhotoResponse{Path: path}), nil
}
