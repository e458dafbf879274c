// Package inventory contains the screen flows of the app: the restaurant
// list, the add-restaurant form, the product board and map hand-off.
//
// Flows read through a repository into a listview.List, write through the
// repository on user action and then apply the matching point mutation.
package inventory

import (
	"errors"
	"fmt"
)

// State is the lifecycle state of a screen.
type State int

const (
	Created State = iota
	Active
	FinishedWithResult
	FinishedCancelled
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Active:
		return "active"
	case FinishedWithResult:
		return "finished_with_result"
	case FinishedCancelled:
		return "finished_cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Finished reports whether the screen has been closed.
func (s State) Finished() bool {
	return s == FinishedWithResult || s == FinishedCancelled
}

var (
	ErrInvalidTransition = errors.New("invalid screen transition")
	ErrNotActive         = errors.New("screen is not active")
)

// Screen tracks the lifecycle Created -> Active -> FinishedWithResult | FinishedCancelled.
type Screen struct {
	state State
}

// State returns the current state.
func (s *Screen) State() State {
	return s.state
}

// Activate moves a created screen to Active. Activating an active screen is a no-op.
func (s *Screen) Activate() error {
	return s.transition(Active, Created, Active)
}

// Finish closes an active screen with a result.
func (s *Screen) Finish() error {
	return s.transition(FinishedWithResult, Active)
}

// Cancel closes a created or active screen without a result.
func (s *Screen) Cancel() error {
	return s.transition(FinishedCancelled, Created, Active)
}

func (s *Screen) requireActive() error {
	if s.state != Active {
		return fmt.Errorf("%w: %s", ErrNotActive, s.state)
	}
	return nil
}

func (s *Screen) transition(to State, from ...State) error {
	for _, f := range from {
		if s.state == f {
			s.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
}
