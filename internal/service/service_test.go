package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/spf13/afero"

	"github.com/mmynk/ordena/internal/geo"
	"github.com/mmynk/ordena/internal/inventory"
	"github.com/mmynk/ordena/internal/notify"
	"github.com/mmynk/ordena/internal/photos"
	"github.com/mmynk/ordena/internal/storage/sqlite"
	"github.com/mmynk/ordena/pkg/api"
	"github.com/mmynk/ordena/pkg/api/apiconnect"
)

// alertCollector records delivered alerts.
type alertCollector struct {
	mu     sync.Mutex
	alerts []notify.Alert
}

func (c *alertCollector) Notify(_ context.Context, a notify.Alert) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alerts = append(c.alerts, a)
	return nil
}

func (c *alertCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.alerts)
}

type stubGeocoder map[string]geo.Place

func (s stubGeocoder) Geocode(_ context.Context, address string) (geo.Place, error) {
	if address == "" {
		return geo.Place{}, geo.ErrEmptyAddress
	}
	p, ok := s[address]
	if !ok {
		return geo.Place{}, geo.ErrAddressNotFound
	}
	return p, nil
}

type testClients struct {
	restaurants apiconnect.RestaurantServiceClient
	products    apiconnect.ProductServiceClient
	location    apiconnect.LocationServiceClient
	alerts      *alertCollector
	store       *sqlite.SQLiteStore
}

// setupTestServer creates a test server with all three services on a temp database.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	photoStore, err := photos.New(afero.NewMemMapFs(), "/photos")
	if err != nil {
		t.Fatalf("failed to create photo store: %v", err)
	}

	alerts := &alertCollector{}
	monitor := inventory.NewStockMonitor(2, notify.NewDispatcher(alerts, nil))
	geocoder := stubGeocoder{
		"1 Main St": {Coordinates: geo.Coordinates{Latitude: 52.5, Longitude: 13.4}, DisplayName: "1 Main St, Berlin"},
	}

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewRestaurantServiceHandler(NewRestaurantService(store, photoStore)))
	mux.Handle(apiconnect.NewProductServiceHandler(NewProductService(store, monitor)))
	mux.Handle(apiconnect.NewLocationServiceHandler(NewLocationService(geocoder)))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testClients{
		restaurants: apiconnect.NewRestaurantServiceClient(http.DefaultClient, server.URL),
		products:    apiconnect.NewProductServiceClient(http.DefaultClient, server.URL),
		location:    apiconnect.NewLocationServiceClient(http.DefaultClient, server.URL),
		alerts:      alerts,
		store:       store,
	}
}

func addRestaurant(t *testing.T, c *testClients, name, address string) *api.Restaurant {
	t.Helper()
	resp, err := c.restaurants.AddRestaurant(context.Background(), connect.NewRequest(&api.AddRestaurantRequest{
		Name:        name,
		Description: name + " description",
		Address:     address,
	}))
	if err != nil {
		t.Fatalf("AddRestaurant failed: %v", err)
	}
	return resp.Msg.Restaurant
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
