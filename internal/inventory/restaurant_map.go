package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/ordena/internal/geo"
	"github.com/mmynk/ordena/internal/models"
)

var (
	// ErrNoRestaurants is returned when the map screen is opened with nothing to show.
	ErrNoRestaurants = errors.New("no restaurants to show")

	// ErrRestaurantHasNoAddress is returned by ProductBoard.MapRequest when the
	// open restaurant has no stored address. It matches geo.ErrNoAddresses.
	ErrRestaurantHasNoAddress = fmt.Errorf("restaurant has no address: %w", geo.ErrNoAddresses)
)

// MapRequest carries restaurants to the map screen, each encoded with
// models.Restaurant.MarshalBinary.
type MapRequest struct {
	Restaurants [][]byte
}

// NewMapRequest encodes restaurants for the map screen.
func NewMapRequest(restaurants ...models.Restaurant) (MapRequest, error) {
	req := MapRequest{Restaurants: make([][]byte, 0, len(restaurants))}
	for _, r := range restaurants {
		data, err := r.MarshalBinary()
		if err != nil {
			return MapRequest{}, fmt.Errorf("failed to encode restaurant %d: %w", r.ID, err)
		}
		req.Restaurants = append(req.Restaurants, data)
	}
	return req, nil
}

// Decode returns the restaurants carried by the request.
func (m MapRequest) Decode() ([]models.Restaurant, error) {
	out := make([]models.Restaurant, len(m.Restaurants))
	for i, data := range m.Restaurants {
		if err := out[i].UnmarshalBinary(data); err != nil {
			return nil, fmt.Errorf("failed to decode restaurant %d: %w", i, err)
		}
	}
	return out, nil
}

// RestaurantMap shows the restaurants of a MapRequest as markers on one map.
type RestaurantMap struct {
	Screen

	locator *Locator
}

// NewRestaurantMap creates the map screen.
func NewRestaurantMap(locator *Locator) *RestaurantMap {
	return &RestaurantMap{locator: locator}
}

// Open decodes req and opens the map. It returns the URI it built, which is
// set even when no map application could show it. The screen finishes with a
// result when the map opened and is cancelled otherwise.
func (m *RestaurantMap) Open(ctx context.Context, req MapRequest) (string, error) {
	if err := m.Activate(); err != nil {
		return "", err
	}
	restaurants, err := req.Decode()
	if err != nil {
		m.Cancel()
		return "", err
	}
	if len(restaurants) == 0 {
		m.Cancel()
		return "", ErrNoRestaurants
	}

	uri, err := m.locator.MapAll(ctx, restaurants)
	if err != nil {
		m.Cancel()
		return uri, err
	}
	return uri, m.Finish()
}

// MapRequest builds the map hand-off for the open restaurant from its stored
// address. A blank address is ErrRestaurantHasNoAddress.
func (b *ProductBoard) MapRequest(ctx context.Context) (MapRequest, error) {
	if err := b.requireActive(); err != nil {
		return MapRequest{}, err
	}
	address, err := b.repo.RestaurantAddress(ctx, b.restaurant.ID)
	if err != nil {
		return MapRequest{}, fmt.Errorf("failed to read restaurant address: %w", err)
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return MapRequest{}, ErrRestaurantHasNoAddress
	}
	return NewMapRequest(models.Restaurant{
		ID:         b.restaurant.ID,
		Name:       b.restaurant.Name,
		ImageResID: models.DefaultImageResID,
		Address:    address,
	})
}

// MapRequest builds the map hand-off for every loaded restaurant.
func (l *RestaurantList) MapRequest() (MapRequest, error) {
	if err := l.requireActive(); err != nil {
		return MapRequest{}, err
	}
	return NewMapRequest(l.Restaurants()...)
}
