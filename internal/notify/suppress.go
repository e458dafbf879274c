package notify

import (
	"context"
	"sync"
	"time"
)

// Suppressor decides whether an alert with the given key may be sent now.
type Suppressor interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Never suppresses nothing: every load pass re-sends every alert.
type Never struct{}

// Allow always returns true.
func (Never) Allow(context.Context, string) (bool, error) {
	return true, nil
}

// WindowSuppressor allows one alert per key per window, in process memory.
type WindowSuppressor struct {
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	seen map[string]time.Time
}

// NewWindowSuppressor creates an in-memory suppressor.
func NewWindowSuppressor(window time.Duration) *WindowSuppressor {
	return &WindowSuppressor{
		window: window,
		now:    time.Now,
		seen:   make(map[string]time.Time),
	}
}

// Allow returns true if key has not been allowed within the window.
func (s *WindowSuppressor) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if last, ok := s.seen[key]; ok && now.Sub(last) < s.window {
		return false, nil
	}
	s.seen[key] = now

	// Drop expired keys so the map does not grow with deleted products.
	for k, t := range s.seen {
		if now.Sub(t) >= s.window {
			delete(s.seen, k)
		}
	}
	return true, nil
}
