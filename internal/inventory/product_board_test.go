package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/internal/notify"
)

type alertSink struct {
	alerts []notify.Alert
}

func (s *alertSink) Notify(_ context.Context, a notify.Alert) error {
	s.alerts = append(s.alerts, a)
	return nil
}

func openBoard(t *testing.T, quantities ...float64) (*ProductBoard, *alertSink, *recorder) {
	t.Helper()
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	r, err := repo.AddRestaurant(ctx, models.Restaurant{Name: "Diner"})
	require.NoError(t, err)
	for i, q := range quantities {
		_, err := repo.AddProduct(ctx, models.Product{
			Name:         string(rune('a' + i)),
			Unit:         "kg",
			Quantity:     q,
			RestaurantID: r.ID,
		})
		require.NoError(t, err)
	}

	sink := &alertSink{}
	obs := &recorder{}
	board := NewProductBoard(repo, NewStockMonitor(0, notify.NewDispatcher(sink, nil)), obs)
	require.NoError(t, board.Open(ctx, r.ID))
	return board, sink, obs
}

func TestProductBoardOpenMissingRestaurant(t *testing.T) {
	repo, _ := newTestRepository(t)
	board := NewProductBoard(repo, nil, nil)

	assert.ErrorIs(t, board.Open(context.Background(), 0), ErrMissingRestaurant)
	assert.ErrorIs(t, board.Open(context.Background(), 99), ErrMissingRestaurant)
	assert.Equal(t, Created, board.State())

	_, err := board.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestProductBoardLoadRaisesOneAlertPerLowProduct(t *testing.T) {
	board, sink, obs := openBoard(t, 5, 2, 0.5, 10, 2.01)
	ctx := context.Background()

	alerts, err := board.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, alerts)
	require.Len(t, sink.alerts, 2)
	assert.Equal(t, "Low stock: b", sink.alerts[0].Title)
	assert.Equal(t, "Low stock: c", sink.alerts[1].Title)
	assert.Equal(t, []string{"refresh"}, obs.events)

	// Without suppression every load pass alerts again.
	alerts, err = board.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, alerts)
	assert.Len(t, sink.alerts, 4)

	rows := board.Rows()
	require.Len(t, rows, 5)
	assert.False(t, rows[0].Alert)
	assert.True(t, rows[1].Alert)
	assert.Equal(t, "0.50", rows[2].Detail)
}

func TestProductBoardAdd(t *testing.T) {
	board, _, obs := openBoard(t)
	ctx := context.Background()
	_, err := board.Load(ctx)
	require.NoError(t, err)

	tests := []struct {
		text string
		want float64
	}{
		{"3.5", 3.5},
		{"abc", 0},
		{"-4", 0},
		{"", 0},
	}
	for _, tt := range tests {
		p, err := board.Add(ctx, "Flour", "kg", tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.Quantity, "quantity text %q", tt.text)
		assert.NotZero(t, p.ID)
	}
	assert.Equal(t, []string{"refresh", "insert 0", "insert 1", "insert 2", "insert 3"}, obs.events)

	_, err = board.Add(ctx, "  ", "kg", "1")
	fe, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "name", fe.Field)
	assert.Len(t, board.Products(), 4)
}

func TestProductBoardIncrementDecrement(t *testing.T) {
	board, _, obs := openBoard(t, 1)
	ctx := context.Background()
	_, err := board.Load(ctx)
	require.NoError(t, err)

	p, err := board.Increment(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Quantity)

	for i := 0; i < 4; i++ {
		p, err = board.Decrement(ctx, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Quantity, 0.0)
	}
	assert.Equal(t, 0.0, p.Quantity)
	assert.Equal(t, 0.0, board.Products()[0].Quantity)
	assert.Equal(t, "change 0", obs.events[len(obs.events)-1])

	// The stored value matches the board.
	_, err = board.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, board.Products()[0].Quantity)
}

func TestProductBoardDelete(t *testing.T) {
	board, _, obs := openBoard(t, 4, 5, 6)
	ctx := context.Background()
	_, err := board.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, board.Delete(ctx, 1))
	assert.Equal(t, []string{"refresh", "remove 1"}, obs.events)

	_, err = board.Load(ctx)
	require.NoError(t, err)
	require.Len(t, board.Products(), 2)
	assert.Equal(t, "a", board.Products()[0].Name)
	assert.Equal(t, "c", board.Products()[1].Name)
}

func TestProductBoardClose(t *testing.T) {
	board, _, _ := openBoard(t)
	require.NoError(t, board.Close())

	_, err := board.Increment(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestBoardActions(t *testing.T) {
	board, _, _ := openBoard(t, 3, 7)
	ctx := context.Background()
	_, err := board.Load(ctx)
	require.NoError(t, err)

	var errs []error
	actions := BoardActions{Board: board, Ctx: ctx, OnError: func(err error) { errs = append(errs, err) }}

	actions.QuantityChangeRequested(0, 1)
	actions.QuantityChangeRequested(1, -1)
	actions.DeleteRequested(0)
	actions.DeleteRequested(9)

	require.Len(t, errs, 1)
	products := board.Products()
	require.Len(t, products, 1)
	assert.Equal(t, 6.0, products[0].Quantity)
}
