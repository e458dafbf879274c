package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/ordena/internal/geo"
	"github.com/mmynk/ordena/internal/inventory"
	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/internal/notify"
	"github.com/mmynk/ordena/internal/photos"
	"github.com/mmynk/ordena/internal/service"
	"github.com/mmynk/ordena/internal/storage/sqlite"
	"github.com/mmynk/ordena/pkg/api/apiconnect"
)

type noPlaces struct{}

func (noPlaces) Geocode(context.Context, string) (geo.Place, error) {
	return geo.Place{}, geo.ErrAddressNotFound
}

func newRemote(t *testing.T) *Remote {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "Restaurants.db"))
	require.NoError(t, err)
	photoStore, err := photos.New(afero.NewMemMapFs(), "/photos")
	require.NoError(t, err)
	monitor := inventory.NewStockMonitor(0, notify.NewDispatcher(notify.NewLogNotifier(nil), nil))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewRestaurantServiceHandler(service.NewRestaurantService(store, photoStore)))
	mux.Handle(apiconnect.NewProductServiceHandler(service.NewProductService(store, monitor)))
	mux.Handle(apiconnect.NewLocationServiceHandler(service.NewLocationService(noPlaces{})))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return NewRemote(server.Client(), server.URL, "")
}

func TestRemoteRestaurantFlow(t *testing.T) {
	remote := newRemote(t)
	ctx := context.Background()

	list := inventory.NewRestaurantList(remote, nil, nil)
	require.NoError(t, list.Load(ctx))
	assert.Empty(t, list.Restaurants())

	for _, name := range []string{"A", "B"} {
		form := inventory.NewAddRestaurantForm(remote, nil)
		r, err := form.Submit(inventory.RestaurantInput{Name: name, Description: "d", Address: name + " Street"})
		require.NoError(t, err)
		_, err = list.MergeAdded(ctx, r)
		require.NoError(t, err)
	}

	pending, err := list.Swipe(ctx, 0)
	require.NoError(t, err)
	restored, err := list.Undo(ctx, pending)
	require.NoError(t, err)
	assert.NotEqual(t, pending.Restaurant.ID, restored.ID)

	require.NoError(t, list.Load(ctx))
	got := list.Restaurants()
	require.Len(t, got, 2)
	// The server keeps insertion order, so the restored copy is now last.
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
}

func TestRemoteProductFlow(t *testing.T) {
	remote := newRemote(t)
	ctx := context.Background()

	r, err := remote.AddRestaurant(ctx, models.Restaurant{Name: "Diner", Description: "d", Address: "1 Main St"})
	require.NoError(t, err)

	board := inventory.NewProductBoard(remote, nil, nil)
	assert.ErrorIs(t, board.Open(ctx, r.ID+100), inventory.ErrMissingRestaurant)
	require.NoError(t, board.Open(ctx, r.ID))

	_, err = board.Add(ctx, "Salt", "kg", "oops")
	require.NoError(t, err)
	p, err := board.Decrement(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Quantity)
	p, err = board.Increment(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Quantity)
	assert.True(t, board.Rows()[0].Alert)

	added, err := remote.AddProducts(ctx, r.ID, []models.Product{{Name: "Oil", Unit: "l", Quantity: 4}, {Name: "Rice", Unit: "kg", Quantity: 9}})
	require.NoError(t, err)
	require.Len(t, added, 2)

	_, err = board.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, board.Products(), 3)

	require.NoError(t, board.Delete(ctx, 0))
	assert.Len(t, board.Products(), 2)
}

func TestRemoteLocation(t *testing.T) {
	remote := newRemote(t)
	ctx := context.Background()

	opened := 0
	locator := inventory.NewLocator(remote, geo.OpenerFunc(func(context.Context, string) error {
		opened++
		return nil
	}))

	_, err := locator.Show(ctx, "nowhere")
	assert.ErrorIs(t, err, geo.ErrAddressNotFound)
	assert.Zero(t, opened)

	uri, err := remote.MapURI(ctx, []models.Restaurant{{Name: "A", Address: "1 Main St"}})
	require.NoError(t, err)
	assert.Equal(t, "geo:0,0?q=1%20Main%20St", uri)

	_, err = remote.MapURI(ctx, []models.Restaurant{{Name: "A"}})
	assert.ErrorIs(t, err, geo.ErrNoAddresses)
}

func TestRemoteUndoKeepsStock(t *testing.T) {
	remote := newRemote(t)
	ctx := context.Background()

	r, err := remote.AddRestaurant(ctx, models.Restaurant{Name: "Diner", Description: "d", Address: "1 Main St"})
	require.NoError(t, err)
	_, err = remote.AddProducts(ctx, r.ID, []models.Product{{Name: "Oil", Unit: "l", Quantity: 4}, {Name: "Rice", Unit: "kg", Quantity: 9}})
	require.NoError(t, err)

	list := inventory.NewRestaurantList(remote, nil, nil)
	require.NoError(t, list.Load(ctx))
	pending, err := list.Swipe(ctx, 0)
	require.NoError(t, err)
	restored, err := list.Undo(ctx, pending)
	require.NoError(t, err)

	products, err := remote.ListProducts(ctx, restored.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Oil", products[0].Name)
	assert.Equal(t, 9.0, products[1].Quantity)
}

func TestRemoteBoardMap(t *testing.T) {
	remote := newRemote(t)
	ctx := context.Background()

	r, err := remote.AddRestaurant(ctx, models.Restaurant{Name: "Diner", Description: "d", Address: "1 Main St"})
	require.NoError(t, err)
	address, err := remote.RestaurantAddress(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", address)

	board := inventory.NewProductBoard(remote, nil, nil)
	require.NoError(t, board.Open(ctx, r.ID))
	req, err := board.MapRequest(ctx)
	require.NoError(t, err)

	var opened []string
	locator := inventory.NewLocator(remote, geo.OpenerFunc(func(_ context.Context, uri string) error {
		opened = append(opened, uri)
		return nil
	}), inventory.WithMapBuilder(remote.MapURI))
	uri, err := inventory.NewRestaurantMap(locator).Open(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "geo:0,0?q=1%20Main%20St", uri)
	assert.Equal(t, []string{uri}, opened)
}
