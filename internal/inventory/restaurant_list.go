package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/ordena/internal/listview"
	"github.com/mmynk/ordena/internal/models"
)

// DefaultUndoWindow is how long a swiped restaurant can be restored.
const DefaultUndoWindow = 2750 * time.Millisecond

// PendingUndo is returned by Swipe and can be passed to Undo until Deadline.
type PendingUndo struct {
	Restaurant models.Restaurant
	Position   int
	Deadline   time.Time

	used bool
}

// ListOption configures a RestaurantList.
type ListOption func(*RestaurantList)

// WithUndoWindow sets how long swipe deletions can be undone.
func WithUndoWindow(d time.Duration) ListOption {
	return func(l *RestaurantList) {
		if d > 0 {
			l.undoWindow = d
		}
	}
}

// WithClock replaces time.Now for undo deadlines.
func WithClock(now func() time.Time) ListOption {
	return func(l *RestaurantList) {
		l.now = now
	}
}

// RestaurantList is the main screen: all restaurants in insertion order.
type RestaurantList struct {
	Screen

	repo       RestaurantRepository
	list       *listview.List[models.Restaurant]
	undoWindow time.Duration
	now        func() time.Time
}

// NewRestaurantList creates the list screen. observer and onSelect may be nil.
func NewRestaurantList(repo RestaurantRepository, observer listview.Observer, onSelect listview.SelectionHandler[models.Restaurant], opts ...ListOption) *RestaurantList {
	l := &RestaurantList{
		repo:       repo,
		list:       listview.New(listview.RestaurantRow, observer, onSelect),
		undoWindow: DefaultUndoWindow,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// UndoWindow returns the configured undo window.
func (l *RestaurantList) UndoWindow() time.Duration {
	return l.undoWindow
}

// Load reads every restaurant and refreshes the whole list.
func (l *RestaurantList) Load(ctx context.Context) error {
	if err := l.Activate(); err != nil {
		return err
	}
	restaurants, err := l.repo.ListRestaurants(ctx)
	if err != nil {
		return fmt.Errorf("failed to load restaurants: %w", err)
	}
	l.list.Replace(restaurants)
	return nil
}

// Restaurants returns the restaurants currently shown.
func (l *RestaurantList) Restaurants() []models.Restaurant {
	return l.list.Items()
}

// Rows renders the list.
func (l *RestaurantList) Rows() []listview.Row {
	return l.list.Rows()
}

// MergeAdded persists the result of the add form and appends it.
func (l *RestaurantList) MergeAdded(ctx context.Context, r models.Restaurant) (models.Restaurant, error) {
	if err := l.requireActive(); err != nil {
		return models.Restaurant{}, err
	}
	saved, err := l.repo.AddRestaurant(ctx, r)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to add restaurant: %w", err)
	}
	l.list.Append(saved)
	return saved, nil
}

// Swipe deletes the restaurant at position and removes its row.
// The returned PendingUndo restores it until the undo window closes.
func (l *RestaurantList) Swipe(ctx context.Context, position int) (*PendingUndo, error) {
	if err := l.requireActive(); err != nil {
		return nil, err
	}
	r, err := l.list.At(position)
	if err != nil {
		return nil, err
	}
	if err := l.repo.DeleteRestaurant(ctx, r.ID); err != nil {
		return nil, fmt.Errorf("failed to delete restaurant: %w", err)
	}
	if _, err := l.list.Remove(position); err != nil {
		return nil, err
	}
	return &PendingUndo{
		Restaurant: r,
		Position:   position,
		Deadline:   l.now().Add(l.undoWindow),
	}, nil
}

// Undo re-inserts a swiped restaurant at its old position. The restored
// restaurant has a new ID and keeps the products of the deleted row.
// A PendingUndo can be used once.
func (l *RestaurantList) Undo(ctx context.Context, pending *PendingUndo) (models.Restaurant, error) {
	if err := l.requireActive(); err != nil {
		return models.Restaurant{}, err
	}
	if pending == nil || pending.used || l.now().After(pending.Deadline) {
		return models.Restaurant{}, ErrUndoExpired
	}

	restored, err := l.repo.RestoreRestaurant(ctx, pending.Restaurant)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to restore restaurant: %w", err)
	}
	pending.used = true

	pos := min(pending.Position, l.list.Len())
	if err := l.list.Insert(pos, restored); err != nil {
		return models.Restaurant{}, err
	}
	return restored, nil
}

// Select routes the restaurant at position to the selection handler.
func (l *RestaurantList) Select(position int) error {
	if err := l.requireActive(); err != nil {
		return err
	}
	return l.list.Select(position)
}
