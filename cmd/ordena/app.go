package main

import (
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/internal/client"
	"github.com/mmynk/ordena/internal/config"
	"github.com/mmynk/ordena/internal/geo"
	"github.com/mmynk/ordena/internal/inventory"
	"github.com/mmynk/ordena/internal/notify"
	"github.com/mmynk/ordena/internal/photos"
	"github.com/mmynk/ordena/internal/storage"
	"github.com/mmynk/ordena/internal/storage/sqlite"
)

// app holds the ports the flows run against: a server, or a local database.
type app struct {
	cfg *config.Config

	restaurants inventory.RestaurantRepository
	products    inventory.ProductRepository
	photos      inventory.PhotoSaver
	geocoder    geo.Geocoder
	opener      geo.Opener
	monitor     *inventory.StockMonitor
	mapURI      inventory.MapBuilder

	closers []func() error
}

func newApp(cfg *config.Config, serverURL, token, dbPath string) (*app, error) {
	a := &app{cfg: cfg, opener: geo.NewCommandOpener()}

	if dbPath == "" {
		remote := client.NewRemote(nil, serverURL, token)
		a.restaurants = remote
		a.products = remote
		a.photos = remote
		a.geocoder = remote
		a.mapURI = remote.MapURI
		slog.Debug("Using server", "url", serverURL)
		return a, nil
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, store.Close)

	photoStore, err := photos.NewOS(cfg.PhotoDir)
	if err != nil {
		store.Close()
		return nil, err
	}

	repo := inventory.NewStoreRepository(store)
	a.restaurants = repo
	a.products = repo
	a.photos = photoStore
	a.geocoder = geo.NewNominatimClient(cfg.GeocoderURL, cfg.GeocoderUserAgent, nil)
	a.monitor = inventory.NewStockMonitor(cfg.LowStockThreshold, notify.NewDispatcher(notify.NewLogNotifier(nil), nil))
	slog.Debug("Using local database", "path", dbPath)
	return a, nil
}

// locator geocodes and maps through the backend's ports. Remote backends
// build map URIs on the server.
func (a *app) locator() *inventory.Locator {
	var opts []inventory.LocatorOption
	if a.mapURI != nil {
		opts = append(opts, inventory.WithMapBuilder(a.mapURI))
	}
	return inventory.NewLocator(a.geocoder, a.opener, opts...)
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			slog.Error("Close failed", "error", err)
		}
	}
}

// describe turns flow and transport errors into a one-line message.
func describe(err error) string {
	if fe, ok := inventory.AsFieldError(err); ok {
		return fmt.Sprintf("invalid %s: %s", fe.Field, fe.Message)
	}
	switch {
	case errors.Is(err, inventory.ErrMissingRestaurant):
		return "no such restaurant"
	case errors.Is(err, inventory.ErrUndoExpired):
		return "too late to undo"
	case errors.Is(err, inventory.ErrPermissionDenied):
		return "photo capture is not permitted"
	case errors.Is(err, geo.ErrAddressNotFound):
		return "address not found"
	case errors.Is(err, inventory.ErrRestaurantHasNoAddress):
		return "this restaurant has no address"
	case errors.Is(err, inventory.ErrNoRestaurants):
		return "no restaurants to show"
	case errors.Is(err, geo.ErrNoAddresses):
		return "no restaurant has an address"
	case errors.Is(err, geo.ErrNoMapApp):
		return "no map application available"
	case errors.Is(err, storage.ErrNotFound):
		return "not found"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return fmt.Sprintf("%s (%s)", connectErr.Message(), connectErr.Code())
	}
	return err.Error()
}
