// Package listview binds an ordered sequence of entities to rendered rows.
//
// A List owns the sequence. Every structural change is paired with the point
// notification for the affected position so an Observer only redraws that row;
// Replace triggers a single full refresh.
package listview

import "fmt"

// Observer receives change notifications from a List.
type Observer interface {
	ItemInserted(position int)
	ItemRemoved(position int)
	ItemChanged(position int)
	DataSetChanged()
}

// Renderer turns an entity into its row. It must be a pure function of the entity.
type Renderer[T any] func(item T) Row

// SelectionHandler is called when a row is selected.
type SelectionHandler[T any] interface {
	Selected(item T)
}

// SelectionFunc adapts a function to SelectionHandler.
type SelectionFunc[T any] func(item T)

// Selected calls f(item).
func (f SelectionFunc[T]) Selected(item T) { f(item) }

// ProductActions receives the per-row buttons of a product row.
type ProductActions interface {
	DeleteRequested(position int)
	QuantityChangeRequested(position int, delta float64)
}

// List is an ordered sequence of items bound to a renderer and an observer.
type List[T any] struct {
	items    []T
	render   Renderer[T]
	observer Observer
	onSelect SelectionHandler[T]
}

// New creates an empty list. observer and onSelect may be nil.
func New[T any](render Renderer[T], observer Observer, onSelect SelectionHandler[T]) *List[T] {
	if observer == nil {
		observer = nopObserver{}
	}
	return &List[T]{render: render, observer: observer, onSelect: onSelect}
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the item at position.
func (l *List[T]) At(position int) (T, error) {
	var zero T
	if err := l.check(position, len(l.items)); err != nil {
		return zero, err
	}
	return l.items[position], nil
}

// Items returns a copy of the held sequence.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Rows renders every item.
func (l *List[T]) Rows() []Row {
	rows := make([]Row, len(l.items))
	for i, item := range l.items {
		rows[i] = l.render(item)
	}
	return rows
}

// Row renders the item at position.
func (l *List[T]) Row(position int) (Row, error) {
	item, err := l.At(position)
	if err != nil {
		return Row{}, err
	}
	return l.render(item), nil
}

// Replace swaps the whole sequence and triggers a full refresh.
func (l *List[T]) Replace(items []T) {
	l.items = append(l.items[:0:0], items...)
	l.observer.DataSetChanged()
}

// Append adds an item at the end.
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
	l.observer.ItemInserted(len(l.items) - 1)
}

// Insert places item at position, shifting later items down. position may equal Len.
func (l *List[T]) Insert(position int, item T) error {
	if err := l.check(position, len(l.items)+1); err != nil {
		return err
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[position+1:], l.items[position:])
	l.items[position] = item
	l.observer.ItemInserted(position)
	return nil
}

// Remove deletes and returns the item at position.
func (l *List[T]) Remove(position int) (T, error) {
	var zero T
	if err := l.check(position, len(l.items)); err != nil {
		return zero, err
	}
	item := l.items[position]
	l.items = append(l.items[:position], l.items[position+1:]...)
	l.observer.ItemRemoved(position)
	return item, nil
}

// Set replaces the item at position.
func (l *List[T]) Set(position int, item T) error {
	if err := l.check(position, len(l.items)); err != nil {
		return err
	}
	l.items[position] = item
	l.observer.ItemChanged(position)
	return nil
}

// Select forwards the item at position to the selection handler.
func (l *List[T]) Select(position int) error {
	item, err := l.At(position)
	if err != nil {
		return err
	}
	if l.onSelect != nil {
		l.onSelect.Selected(item)
	}
	return nil
}

func (l *List[T]) check(position, limit int) error {
	if position < 0 || position >= limit {
		return fmt.Errorf("%w: %d (len %d)", ErrPosition, position, len(l.items))
	}
	return nil
}

type nopObserver struct{}

func (nopObserver) ItemInserted(int) {}
func (nopObserver) ItemRemoved(int)  {}
func (nopObserver) ItemChanged(int)  {}
func (nopObserver) DataSetChanged()  {}
