package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/ordena/internal/listview"
	"github.com/mmynk/ordena/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func seedRestaurants(t *testing.T, repo *StoreRepository, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := repo.AddRestaurant(context.Background(), models.Restaurant{Name: name, Description: name + " desc"})
		require.NoError(t, err)
	}
}

func names(rs []models.Restaurant) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestRestaurantListLoad(t *testing.T) {
	repo, _ := newTestRepository(t)
	seedRestaurants(t, repo, "A", "B", "C")
	obs := &recorder{}

	list := NewRestaurantList(repo, obs, nil)
	require.NoError(t, list.Load(context.Background()))

	assert.Equal(t, []string{"A", "B", "C"}, names(list.Restaurants()))
	assert.Equal(t, []string{"refresh"}, obs.events)
	assert.Equal(t, Active, list.State())
	assert.Equal(t, "A desc", list.Rows()[0].Subtitle)
}

func TestRestaurantListMergeAdded(t *testing.T) {
	repo, _ := newTestRepository(t)
	seedRestaurants(t, repo, "A")
	obs := &recorder{}
	list := NewRestaurantList(repo, obs, nil)
	ctx := context.Background()
	require.NoError(t, list.Load(ctx))

	form := NewAddRestaurantForm(nil, nil)
	added, err := form.Submit(RestaurantInput{Name: "B", Description: "d", Address: "1 Main St"})
	require.NoError(t, err)

	saved, err := list.MergeAdded(ctx, added)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, []string{"refresh", "insert 1"}, obs.events)

	stored, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names(stored))
	assert.Equal(t, "1 Main St", stored[1].Address)
}

func TestRestaurantListSwipeAndUndo(t *testing.T) {
	repo, _ := newTestRepository(t)
	seedRestaurants(t, repo, "A", "B", "C")
	clock := &fakeClock{now: time.Unix(1000, 0)}
	obs := &recorder{}
	list := NewRestaurantList(repo, obs, nil, WithClock(clock.Now))
	ctx := context.Background()
	require.NoError(t, list.Load(ctx))

	before := list.Restaurants()
	pending, err := list.Swipe(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "B", pending.Restaurant.Name)
	assert.Equal(t, []string{"A", "C"}, names(list.Restaurants()))
	assert.Equal(t, []string{"refresh", "remove 1"}, obs.events)
	stored, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	clock.now = clock.now.Add(DefaultUndoWindow - time.Millisecond)
	restored, err := list.Undo(ctx, pending)
	require.NoError(t, err)

	assert.Equal(t, "B", restored.Name)
	assert.NotEqual(t, before[1].ID, restored.ID)
	assert.Equal(t, []string{"A", "B", "C"}, names(list.Restaurants()))
	assert.Equal(t, []string{"refresh", "remove 1", "insert 1"}, obs.events)

	_, err = list.Undo(ctx, pending)
	assert.ErrorIs(t, err, ErrUndoExpired)

	stored, err = repo.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestRestaurantListUndoKeepsStock(t *testing.T) {
	repo, store := newTestRepository(t)
	seedRestaurants(t, repo, "A")
	ctx := context.Background()
	list := NewRestaurantList(repo, nil, nil)
	require.NoError(t, list.Load(ctx))

	owner := list.Restaurants()[0]
	for _, name := range []string{"Rice", "Beans"} {
		_, err := repo.AddProduct(ctx, models.Product{Name: name, Unit: "kg", Quantity: 2, RestaurantID: owner.ID})
		require.NoError(t, err)
	}

	pending, err := list.Swipe(ctx, 0)
	require.NoError(t, err)
	kept, err := store.ListProducts(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 2, "swipe must delete only the restaurant row")

	restored, err := list.Undo(ctx, pending)
	require.NoError(t, err)
	assert.NotEqual(t, owner.ID, restored.ID)

	products, err := repo.ListProducts(ctx, restored.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Rice", products[0].Name)
	assert.Equal(t, "Beans", products[1].Name)
}

func TestRestaurantListUndoExpired(t *testing.T) {
	repo, _ := newTestRepository(t)
	seedRestaurants(t, repo, "A", "B")
	clock := &fakeClock{now: time.Unix(1000, 0)}
	list := NewRestaurantList(repo, nil, nil, WithClock(clock.Now), WithUndoWindow(time.Second))
	ctx := context.Background()
	require.NoError(t, list.Load(ctx))

	pending, err := list.Swipe(ctx, 0)
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Second + time.Millisecond)
	_, err = list.Undo(ctx, pending)
	assert.ErrorIs(t, err, ErrUndoExpired)
	assert.Equal(t, []string{"B"}, names(list.Restaurants()))

	_, err = list.Undo(ctx, nil)
	assert.ErrorIs(t, err, ErrUndoExpired)
}

func TestRestaurantListSwipeLastThenUndo(t *testing.T) {
	repo, _ := newTestRepository(t)
	seedRestaurants(t, repo, "A", "B")
	list := NewRestaurantList(repo, nil, nil)
	ctx := context.Background()
	require.NoError(t, list.Load(ctx))

	pending, err := list.Swipe(ctx, 1)
	require.NoError(t, err)
	_, err = list.Undo(ctx, pending)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, names(list.Restaurants()))
}

func TestRestaurantListSwipeOutOfRange(t *testing.T) {
	repo, _ := newTestRepository(t)
	seedRestaurants(t, repo, "A")
	list := NewRestaurantList(repo, nil, nil)
	ctx := context.Background()
	require.NoError(t, list.Load(ctx))

	_, err := list.Swipe(ctx, 5)
	assert.ErrorIs(t, err, listview.ErrPosition)
	assert.Len(t, list.Restaurants(), 1)
}

func TestRestaurantListSelect(t *testing.T) {
	repo, _ := newTestRepository(t)
	seedRestaurants(t, repo, "A", "B")

	var selected []models.Restaurant
	list := NewRestaurantList(repo, nil, listview.SelectionFunc[models.Restaurant](func(r models.Restaurant) {
		selected = append(selected, r)
	}))

	require.ErrorIs(t, list.Select(0), ErrNotActive)
	require.NoError(t, list.Load(context.Background()))
	require.NoError(t, list.Select(1))

	require.Len(t, selected, 1)
	assert.Equal(t, "B", selected[0].Name)
}
