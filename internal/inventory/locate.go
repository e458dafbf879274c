package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/ordena/internal/geo"
	"github.com/mmynk/ordena/internal/models"
)

// Location is a geocoded address and the URI that shows it on a map.
type Location struct {
	geo.Place
	Address string
	URI     string
}

// MapBuilder builds the multi-marker URI for a set of restaurants.
type MapBuilder func(ctx context.Context, restaurants []models.Restaurant) (string, error)

// Locator geocodes addresses and hands geo: URIs to a map application.
type Locator struct {
	geocoder geo.Geocoder
	opener   geo.Opener
	mapURI   MapBuilder
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithMapBuilder replaces the local geo.MapURI builder, e.g. with a server call.
func WithMapBuilder(b MapBuilder) LocatorOption {
	return func(l *Locator) { l.mapURI = b }
}

// NewLocator creates a locator. opener may be nil when no map application is available.
func NewLocator(geocoder geo.Geocoder, opener geo.Opener, opts ...LocatorOption) *Locator {
	l := &Locator{geocoder: geocoder, opener: opener, mapURI: localMapURI}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func localMapURI(_ context.Context, restaurants []models.Restaurant) (string, error) {
	uri, _, err := geo.MapURI(restaurants)
	return uri, err
}

// Geocode resolves address to its best match.
func (l *Locator) Geocode(ctx context.Context, address string) (Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Location{}, &FieldError{Field: "address", Message: "must not be empty"}
	}
	place, err := l.geocoder.Geocode(ctx, address)
	if err != nil {
		return Location{}, err
	}
	return Location{
		Place:   place,
		Address: address,
		URI:     geo.URI(place.Coordinates, address),
	}, nil
}

// Show geocodes address and opens it in the map application.
// Nothing is opened when the address cannot be found.
func (l *Locator) Show(ctx context.Context, address string) (Location, error) {
	loc, err := l.Geocode(ctx, address)
	if err != nil {
		return Location{}, err
	}
	return loc, l.open(ctx, loc.URI)
}

// MapAll opens one map showing every restaurant that has an address.
func (l *Locator) MapAll(ctx context.Context, restaurants []models.Restaurant) (string, error) {
	uri, err := l.mapURI(ctx, restaurants)
	if err != nil {
		return "", err
	}
	return uri, l.open(ctx, uri)
}

func (l *Locator) open(ctx context.Context, uri string) error {
	if l.opener == nil {
		return geo.ErrNoMapApp
	}
	if err := l.opener.Open(ctx, uri); err != nil {
		return fmt.Errorf("failed to open map: %w", err)
	}
	return nil
}
